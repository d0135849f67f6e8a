package tree

import (
	"fmt"
	"iter"
)

// Ancestors yields the parent chain of the node, nearest parent first and the
// root last. The root itself has no ancestors. Each call returns a fresh sequence.
func (t *Tree[T]) Ancestors() iter.Seq[*Tree[T]] {
	return func(yield func(*Tree[T]) bool) {
		for ancestor := t.parent; ancestor != nil; ancestor = ancestor.parent {
			if !yield(ancestor) {
				return
			}
		}
	}
}

// SearchAncestors returns the ancestor that is node, or nil if node is not an ancestor.
func (t *Tree[T]) SearchAncestors(node *Tree[T]) (*Tree[T], error) {
	return t.singleAncestor(func(ancestor *Tree[T]) bool {
		return ancestor == node
	})
}

// SearchAncestorsValue returns the ancestor holding value, or nil if there is none.
// It expects at most one match and returns ErrAmbiguousMatch otherwise.
func (t *Tree[T]) SearchAncestorsValue(value T) (*Tree[T], error) {
	return t.singleAncestor(func(ancestor *Tree[T]) bool {
		return ancestor.data == value
	})
}

// singleAncestor walks the whole ancestor chain and fails on a second match
// instead of returning the first one.
func (t *Tree[T]) singleAncestor(match func(*Tree[T]) bool) (*Tree[T], error) {
	var found *Tree[T]
	for ancestor := range t.Ancestors() {
		if !match(ancestor) {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("search ancestors of %v: %v and %v both match: %w",
				t.data, found.data, ancestor.data, ErrAmbiguousMatch)
		}
		found = ancestor
	}
	return found, nil
}

// Descendants yields every node below the receiver breadth first, children in
// insertion order. The receiver itself is not yielded.
func (t *Tree[T]) Descendants() iter.Seq[*Tree[T]] {
	return t.DescendantsFrom(t)
}

// DescendantsFrom is Descendants started at root instead of the receiver.
// A nil root means the receiver.
func (t *Tree[T]) DescendantsFrom(root *Tree[T]) iter.Seq[*Tree[T]] {
	if root == nil {
		root = t
	}
	return func(yield func(*Tree[T]) bool) {
		visited := map[*Tree[T]]struct{}{root: {}}
		queue := []*Tree[T]{root}

		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]

			for _, child := range node.children {
				// a removal during iteration leaves nil slots behind
				if child == nil {
					continue
				}
				if _, seen := visited[child]; seen {
					continue
				}
				visited[child] = struct{}{}
				if !yield(child) {
					return
				}
				queue = append(queue, child)
			}
		}
	}
}

// SearchInDescendants returns node if it is the receiver or one of its
// descendants, nil otherwise.
func (t *Tree[T]) SearchInDescendants(node *Tree[T]) *Tree[T] {
	return t.searchBreadthFirst(func(current *Tree[T]) bool {
		return current == node
	})
}

// SearchInDescendantsValue returns the first node holding value, checking the
// receiver first and then its descendants breadth first. It returns nil if no
// node holds value.
func (t *Tree[T]) SearchInDescendantsValue(value T) *Tree[T] {
	return t.searchBreadthFirst(func(current *Tree[T]) bool {
		return current.data == value
	})
}

func (t *Tree[T]) searchBreadthFirst(match func(*Tree[T]) bool) *Tree[T] {
	if match(t) {
		return t
	}
	for node := range t.Descendants() {
		if match(node) {
			return node
		}
	}
	return nil
}

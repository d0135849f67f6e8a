package tree

import (
	"errors"
	"fmt"
	"slices"

	"github.com/xlab/treeprint"
)

var (
	// ErrNotFound is returned when a node or value is not an immediate child.
	ErrNotFound = errors.New("tree: not found")
	// ErrAmbiguousMatch is returned when a search that expects a single match finds more.
	ErrAmbiguousMatch = errors.New("tree: ambiguous match")
)

// Tree is a generic node of an N-ary tree.
type Tree[T comparable] struct {
	data     T
	parent   *Tree[T]   // nil for the root, never reassigned
	children []*Tree[T] // insertion ordered
}

// New creates a root node holding data.
func New[T comparable](data T) *Tree[T] {
	return newNode(data, nil)
}

func newNode[T comparable](data T, parent *Tree[T]) *Tree[T] {
	return &Tree[T]{
		data:   data,
		parent: parent,
	}
}

// Data returns the payload of the node.
func (t *Tree[T]) Data() T {
	return t.data
}

// Parent returns the parent of the node, or nil for the root.
func (t *Tree[T]) Parent() *Tree[T] {
	return t.parent
}

// Children returns a copy of the immediate children in insertion order.
func (t *Tree[T]) Children() []*Tree[T] {
	return slices.Clone(t.children)
}

// ChildrenWithValue returns the immediate children holding value, in insertion order.
func (t *Tree[T]) ChildrenWithValue(value T) []*Tree[T] {
	matches := []*Tree[T]{}
	for _, child := range t.children {
		if child.data == value {
			matches = append(matches, child)
		}
	}
	return matches
}

// IsRoot checks if the node has no parent.
func (t *Tree[T]) IsRoot() bool {
	return t.parent == nil
}

// IsLeaf checks if the node has no children.
func (t *Tree[T]) IsLeaf() bool {
	return len(t.children) == 0
}

// Level is the distance from the root, 0 for the root itself.
func (t *Tree[T]) Level() int {
	level := 0
	for ancestor := t.parent; ancestor != nil; ancestor = ancestor.parent {
		level++
	}
	return level
}

// AddChild creates a new child holding value, appends it after the existing
// children and returns it, so trees can be built with chained calls:
//
//	root.AddChild("Germany").AddChild("Berlin")
func (t *Tree[T]) AddChild(value T) *Tree[T] {
	child := newNode(value, t)
	t.children = append(t.children, child)
	return child
}

// RemoveChild detaches node and its whole subtree from the receiver.
// The detached node keeps its parent pointer, but is no longer reachable from t.
// node is matched by identity. It returns ErrNotFound if node is not an
// immediate child.
func (t *Tree[T]) RemoveChild(node *Tree[T]) error {
	pos := slices.Index(t.children, node)
	if pos < 0 {
		return fmt.Errorf("remove child: node is not a child of %v: %w", t.data, ErrNotFound)
	}
	t.children = slices.Delete(t.children, pos, pos+1)
	return nil
}

// RemoveChildValue detaches the first immediate child (in insertion order)
// holding value, together with its subtree. Only immediate children are
// considered. It returns ErrNotFound if no child holds value.
// Values that are not equal to themselves, like NaN, are never found.
func (t *Tree[T]) RemoveChildValue(value T) error {
	pos := slices.IndexFunc(t.children, func(child *Tree[T]) bool {
		return child.data == value
	})
	if pos < 0 {
		return fmt.Errorf("remove child: no child of %v holds %v: %w", t.data, value, ErrNotFound)
	}
	t.children = slices.Delete(t.children, pos, pos+1)
	return nil
}

// ForEachChild applies f to each immediate child.
// will return the original node t
func (t *Tree[T]) ForEachChild(f func(child *Tree[T])) *Tree[T] {
	for _, child := range t.children {
		f(child)
	}
	return t
}

// Root returns the root of the tree the node belongs to.
func (t *Tree[T]) Root() *Tree[T] {
	root := t
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Path returns the payloads from the root down to the node.
func (t *Tree[T]) Path() []T {
	path := []T{t.data}
	for ancestor := range t.Ancestors() {
		path = append(path, ancestor.data)
	}
	slices.Reverse(path)
	return path
}

// Leafs returns the leaves of the subtree in breadth first order.
// A leaf receiver returns itself.
func (t *Tree[T]) Leafs() []*Tree[T] {
	if t.IsLeaf() {
		return []*Tree[T]{t}
	}
	leafs := []*Tree[T]{}
	for node := range t.Descendants() {
		if node.IsLeaf() {
			leafs = append(leafs, node)
		}
	}
	return leafs
}

// Size counts the nodes of the subtree, the receiver included.
func (t *Tree[T]) Size() int {
	size := 1
	for range t.Descendants() {
		size++
	}
	return size
}

// String renders the subtree as an indented drawing.
func (t *Tree[T]) String() string {
	printer := treeprint.NewWithRoot(fmt.Sprint(t.data))
	addBranches(printer, t)
	return printer.String()
}

func addBranches[T comparable](printer treeprint.Tree, t *Tree[T]) {
	for _, child := range t.children {
		if child.IsLeaf() {
			printer.AddNode(fmt.Sprint(child.data))
			continue
		}
		addBranches(printer.AddBranch(fmt.Sprint(child.data)), child)
	}
}

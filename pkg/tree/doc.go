// ## Overview
// Package tree implements a generic, mutable N-ary tree.
// Every node is at the same time the tree and the subtree rooted at itself, so
// all operations work relative to the receiver. Nodes are only created through
// New (a root) or AddChild (a child of the receiver), which keeps the structure
// acyclic and the parent/children links consistent.
//
// Ancestors and Descendants return lazy iterators (iter.Seq) that can be
// stopped at any point. Descendants and SearchInDescendants walk the subtree
// breadth first, children in insertion order.
//
// ## Example usage:
//
//	world := tree.New("World")
//	europe := world.AddChild("Europe")
//	europe.AddChild("France").AddChild("Paris")
//
//	paris := world.SearchInDescendantsValue("Paris")
//	fmt.Println(paris.Level()) // Output: 3
//
//	for node := range world.Descendants() {
//	    fmt.Println(node.Data())
//	}
//
//	if err := europe.RemoveChildValue("France"); err != nil {
//	    // errors.Is(err, tree.ErrNotFound)
//	}
//
// The tree is not safe for concurrent use, and it must not be mutated while one
// of its iterators is being consumed.
package tree

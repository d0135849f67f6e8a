package cli

import (
	"fmt"
	"strings"

	"github.com/khalid-nowaf/narytree/pkg/tree"
)

type ShowCmd struct {
	Input
	Of string `help:"Print only the subtree of this value"`
}

// Run executes the show command.
func (cmd *ShowCmd) Run(ctx *Context) error {
	root, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	node, err := find(root, cmd.Of)
	if err != nil {
		return err
	}
	fmt.Fprint(ctx.Out, node.String())
	return nil
}

type SearchCmd struct {
	Input
	Value string `help:"Value to search for" required:""`
}

// Run executes the search command. A missing value is reported, not returned as an error.
func (cmd *SearchCmd) Run(ctx *Context) error {
	root, err := cmd.load(ctx)
	if err != nil {
		return err
	}

	node := root.SearchInDescendantsValue(cmd.Value)
	if node == nil {
		fmt.Fprintf(ctx.Out, "%s: not found\n", cmd.Value)
		return nil
	}

	fmt.Fprintf(ctx.Out, "%s: level %d, leaf %t, children %d\n", node.Data(), node.Level(), node.IsLeaf(), len(node.Children()))
	fmt.Fprintf(ctx.Out, "path: %s\n", strings.Join(node.Path(), " > "))
	return nil
}

type AncestorsCmd struct {
	Input
	Value string `help:"Value whose ancestors are printed" required:""`
	Find  string `help:"Only print the ancestor holding this value"`
}

// Run executes the ancestors command.
func (cmd *AncestorsCmd) Run(ctx *Context) error {
	root, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	node, err := find(root, cmd.Value)
	if err != nil {
		return err
	}

	if cmd.Find != "" {
		ancestor, err := node.SearchAncestorsValue(cmd.Find)
		if err != nil {
			return err
		}
		if ancestor == nil {
			fmt.Fprintf(ctx.Out, "%s is not an ancestor of %s\n", cmd.Find, cmd.Value)
			return nil
		}
		fmt.Fprintf(ctx.Out, "%s (level %d)\n", ancestor.Data(), ancestor.Level())
		return nil
	}

	for ancestor := range node.Ancestors() {
		fmt.Fprintf(ctx.Out, "%s (level %d)\n", ancestor.Data(), ancestor.Level())
	}
	return nil
}

type DescendantsCmd struct {
	Input
	Of    string `help:"Start below this value instead of the root"`
	Limit int    `help:"Stop after this many nodes, 0 lists all" default:"0"`
}

// Run executes the descendants command.
func (cmd *DescendantsCmd) Run(ctx *Context) error {
	root, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	start, err := find(root, cmd.Of)
	if err != nil {
		return err
	}

	count := 0
	for node := range root.DescendantsFrom(start) {
		if cmd.Limit > 0 && count == cmd.Limit {
			ctx.Logger.Debug("descendants listing stopped", "limit", cmd.Limit)
			break
		}
		fmt.Fprintf(ctx.Out, "%s (level %d)\n", node.Data(), node.Level())
		count++
	}
	return nil
}

type RemoveCmd struct {
	Input
	Parent string `help:"Value of the parent to remove from" required:""`
	Child  string `help:"Value of the child to remove" required:""`
}

// Run executes the remove command and prints the remaining tree.
func (cmd *RemoveCmd) Run(ctx *Context) error {
	root, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	parent, err := find(root, cmd.Parent)
	if err != nil {
		return err
	}

	before := root.Size()
	if err := parent.RemoveChildValue(cmd.Child); err != nil {
		return err
	}
	ctx.Logger.Info("child removed", "parent", cmd.Parent, "child", cmd.Child, "removed", before-root.Size())

	fmt.Fprint(ctx.Out, root.String())
	return nil
}

type ExportCmd struct {
	Input
	Of     string `help:"Export only the subtree of this value"`
	Format string `help:"Output format" enum:"csv,tsv,json" default:"csv"`
	Output string `help:"Output file" default:"tree.csv" type:"path"`
}

// Run executes the export command.
func (cmd *ExportCmd) Run(ctx *Context) error {
	keys := Keys{Parent: cmd.ParentKey, Child: cmd.ChildKey}
	if err := keys.validate(); err != nil {
		return err
	}
	root, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	node, err := find(root, cmd.Of)
	if err != nil {
		return err
	}

	stats := &Stats{}
	writer := NewWriter(cmd.Format, keys, stats)
	if err := writeFile(writer, node, cmd.Output); err != nil {
		return err
	}
	ctx.Logger.Info("tree exported", "file", cmd.Output, "format", cmd.Format, "edges", stats.Output)
	return nil
}

// find returns the node holding value, or root when value is empty.
func find(root *tree.Tree[string], value string) (*tree.Tree[string], error) {
	if value == "" {
		return root, nil
	}
	node := root.SearchInDescendantsValue(value)
	if node == nil {
		return nil, fmt.Errorf("%q: %w", value, tree.ErrNotFound)
	}
	return node, nil
}

package cli

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/khalid-nowaf/narytree/pkg/tree"
)

// levelKey names the depth column written next to every edge.
const levelKey = "level"

// Writer exports a tree as an edge list that the parsers can read back.
// Edges are written breadth first, the root first with an empty parent.
type Writer interface {
	Write(root *tree.Tree[string], out io.Writer) error
}

// NewWriter returns the writer for format (csv, tsv or json).
func NewWriter(format string, keys Keys, stats *Stats) Writer {
	switch format {
	case "json":
		return &JsonWriter{keys: keys, Stats: stats}
	case "tsv":
		return &CsvWriter{isTSV: true, keys: keys, Stats: stats}
	default:
		return &CsvWriter{keys: keys, Stats: stats}
	}
}

// writeFile creates filePath and writes the tree into it with w.
func writeFile(w Writer, root *tree.Tree[string], filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := w.Write(root, file); err != nil {
		return err
	}
	return file.Close()
}

// edges lists the root followed by its descendants in breadth first order.
func edges(root *tree.Tree[string]) []*tree.Tree[string] {
	nodes := []*tree.Tree[string]{root}
	for node := range root.Descendants() {
		nodes = append(nodes, node)
	}
	return nodes
}

// parentOf returns the parent value of node inside the exported subtree.
// The subtree root is exported as a root, even if it has a parent.
func parentOf(node *tree.Tree[string], root *tree.Tree[string]) (string, bool) {
	if node == root {
		return "", false
	}
	return node.Parent().Data(), true
}

type JsonWriter struct {
	keys  Keys
	Stats *Stats
}

func (w *JsonWriter) Write(root *tree.Tree[string], out io.Writer) error {
	encoder := json.NewEncoder(out)

	if _, err := out.Write([]byte("[")); err != nil {
		return err
	}
	baseLevel := root.Level()
	for i, node := range edges(root) {
		if i > 0 {
			if _, err := out.Write([]byte(",")); err != nil {
				return err
			}
		}

		record := map[string]any{
			w.keys.Child: node.Data(),
			levelKey:     node.Level() - baseLevel,
		}
		if parent, ok := parentOf(node, root); ok {
			record[w.keys.Parent] = parent
		} else {
			record[w.keys.Parent] = nil
		}

		if err := encoder.Encode(record); err != nil {
			return err
		}
		w.Stats.Output++
	}
	_, err := out.Write([]byte("]"))
	return err
}

type CsvWriter struct {
	isTSV bool
	keys  Keys
	Stats *Stats
}

func (w *CsvWriter) Write(root *tree.Tree[string], out io.Writer) error {
	writer := csv.NewWriter(out)
	if w.isTSV {
		writer.Comma = '\t'
	}

	if err := writer.Write([]string{w.keys.Parent, w.keys.Child, levelKey}); err != nil {
		return err
	}

	baseLevel := root.Level()
	for _, node := range edges(root) {
		parent, _ := parentOf(node, root)
		record := []string{parent, node.Data(), strconv.Itoa(node.Level() - baseLevel)}
		if err := writer.Write(record); err != nil {
			return err
		}
		w.Stats.Output++
	}

	writer.Flush()
	return writer.Error()
}

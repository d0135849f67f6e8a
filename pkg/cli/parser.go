package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/khalid-nowaf/narytree/pkg/tree"
)

// Edge links a child value to its parent value. An empty Parent declares the root.
type Edge struct {
	Parent string
	Child  string
}

// Keys names the parent and child fields of an input record.
type Keys struct {
	Parent string
	Child  string
}

// validate rejects keys that would collide in an exported record.
func (k Keys) validate() error {
	if k.Parent == "" || k.Child == "" {
		return fmt.Errorf("keys %q and %q: a key is empty", k.Parent, k.Child)
	}
	if k.Parent == k.Child {
		return fmt.Errorf("keys %q and %q: parent and child keys must differ", k.Parent, k.Child)
	}
	if k.Parent == levelKey || k.Child == levelKey {
		return fmt.Errorf("keys %q and %q: %q is reserved for the level column", k.Parent, k.Child, levelKey)
	}
	return nil
}

type Record map[string]string

type Stats struct {
	Input  int
	Output int
}

// Loader builds a tree from edges given top down: a parent must be known
// before any of its children is added.
type Loader struct {
	root   *tree.Tree[string]
	logger *slog.Logger
	Stats  *Stats
}

type Option func(*Loader) *Loader

// WithLogger sets the logger used to report every added edge.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) *Loader {
		l.logger = logger
		return l
	}
}

// WithRoot starts the loader with an existing tree, new edges are added under it.
func WithRoot(root *tree.Tree[string]) Option {
	return func(l *Loader) *Loader {
		l.root = root
		return l
	}
}

func NewLoader(opts ...Option) *Loader {
	loader := &Loader{
		logger: slog.Default(),
		Stats:  &Stats{},
	}
	for _, opt := range opts {
		loader = opt(loader)
	}
	return loader
}

// Add attaches one edge to the tree.
// The parent is looked up breadth first from the root, so when several nodes
// hold the parent value the shallowest one gets the child.
func (l *Loader) Add(edge Edge) error {
	if edge.Child == "" {
		return fmt.Errorf("edge %q -> %q: child is empty", edge.Parent, edge.Child)
	}
	l.Stats.Input++

	if edge.Parent == "" {
		if l.root == nil {
			l.root = tree.New(edge.Child)
			l.logger.Debug("root declared", "root", edge.Child)
			return nil
		}
		if l.root.Data() != edge.Child {
			return fmt.Errorf("edge %q -> %q: root is already %q", edge.Parent, edge.Child, l.root.Data())
		}
		return nil
	}

	if l.root == nil {
		l.root = tree.New(edge.Parent)
		l.logger.Debug("root inferred from first edge", "root", edge.Parent)
	}

	parent := l.root.SearchInDescendantsValue(edge.Parent)
	if parent == nil {
		return fmt.Errorf("edge %q -> %q: parent %q is not in the tree: %w", edge.Parent, edge.Child, edge.Parent, tree.ErrNotFound)
	}
	parent.AddChild(edge.Child)
	l.logger.Debug("edge added", "parent", edge.Parent, "child", edge.Child, "level", parent.Level()+1)
	return nil
}

// Tree returns the loaded tree, or an error when no edge was added.
func (l *Loader) Tree() (*tree.Tree[string], error) {
	if l.root == nil {
		return nil, errors.New("no edges loaded")
	}
	return l.root, nil
}

// parseFile picks the parser from the file extension.
func parseFile(path string, keys Keys, onEachEdge func(edge Edge) error) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJson(path, keys, onEachEdge)
	case ".tsv":
		return parseCsv(path, '\t', keys, onEachEdge)
	default:
		return parseCsv(path, ',', keys, onEachEdge)
	}
}

func parseJson(path string, keys Keys, onEachEdge func(edge Edge) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	// Read opening bracket of the array
	token, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("%s: expected an array of edges", path)
	}

	for decoder.More() {
		raw := map[string]any{}
		if err := decoder.Decode(&raw); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		record := make(Record, len(raw))
		for key, value := range raw {
			// null parents are how a JSON export marks the root
			if value != nil {
				record[key] = fmt.Sprint(value)
			}
		}
		if err := onEachEdge(parseEdge(record, keys)); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	// Read closing bracket of the array
	if _, err = decoder.Token(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func parseCsv(path string, separator rune, keys Keys, onEachEdge func(edge Edge) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = separator
	reader.Comment = '#'

	// the first line is the header
	headers, err := reader.Read()
	if err != nil {
		return fmt.Errorf("%s: reading header: %w", path, err)
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		record := make(Record, len(headers))
		for i, value := range row {
			record[headers[i]] = value
		}

		if err := onEachEdge(parseEdge(record, keys)); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
}

func parseEdge(record Record, keys Keys) Edge {
	return Edge{
		Parent: strings.TrimSpace(record[keys.Parent]),
		Child:  strings.TrimSpace(record[keys.Child]),
	}
}

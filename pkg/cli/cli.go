package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/khalid-nowaf/narytree/pkg/tree"
)

// Context is bound to every command Run method.
type Context struct {
	Logger *slog.Logger
	Out    io.Writer
}

// Commands is the kong grammar of the narytree binary.
type Commands struct {
	LogLevel  string `help:"Log level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"info" env:"NARYTREE_LOG_LEVEL"`
	LogFormat string `help:"Log format (text, json)" enum:"text,json" default:"text" env:"NARYTREE_LOG_FORMAT"`

	Show        ShowCmd        `cmd:"" help:"Print the tree"`
	Search      SearchCmd      `cmd:"" help:"Find a value breadth first and print where it is"`
	Ancestors   AncestorsCmd   `cmd:"" help:"Print the ancestors of a value, nearest first"`
	Descendants DescendantsCmd `cmd:"" help:"List the descendants of a value breadth first"`
	Remove      RemoveCmd      `cmd:"" help:"Remove the first child holding a value, with its subtree"`
	Export      ExportCmd      `cmd:"" help:"Write the tree edges to a CSV, TSV or JSON file"`
}

var CLI Commands

// NewLogger builds the process logger from the log flags and sets it as default.
func NewLogger(level string, format string, writer io.Writer) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "error":
		lvl = slog.LevelError
	case "warn":
		lvl = slog.LevelWarn
	case "debug":
		lvl = slog.LevelDebug
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler = slog.NewTextHandler(writer, opts)
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// Input is embedded by every command that reads a tree.
type Input struct {
	Files     []string `arg:"" optional:"" type:"existingfile" help:"Edge files in CSV, TSV or JSON format, the built-in world tree is used when none is given"`
	ParentKey string   `help:"Name of the parent column" default:"parent"`
	ChildKey  string   `help:"Name of the child column" default:"child"`
}

// load reads every input file into a single tree.
func (in *Input) load(ctx *Context) (*tree.Tree[string], error) {
	if len(in.Files) == 0 {
		ctx.Logger.Debug("no input files, using the world sample")
		return SampleWorld(), nil
	}

	loader := NewLoader(WithLogger(ctx.Logger))
	keys := Keys{Parent: in.ParentKey, Child: in.ChildKey}
	for _, file := range in.Files {
		if err := parseFile(file, keys, loader.Add); err != nil {
			return nil, err
		}
	}

	root, err := loader.Tree()
	if err != nil {
		return nil, err
	}
	ctx.Logger.Info("tree loaded", "files", len(in.Files), "edges", loader.Stats.Input, "nodes", root.Size())
	return root, nil
}

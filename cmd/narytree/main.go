package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/narytree/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI,
		kong.Name("narytree"),
		kong.Description("Load parent/child edge lists into a tree and query it."),
		kong.UsageOnError(),
	)
	logger := cli.NewLogger(cli.CLI.LogLevel, cli.CLI.LogFormat, os.Stderr)
	if err := ctx.Run(&cli.Context{Logger: logger, Out: os.Stdout}); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// Command gridpath runs row-goal grid searches from the command line.
//
// Subcommands:
//
//	find   search once and draw the path
//	sweep  search from every cell and print the cost table
//	init   print a scenario template
//	mcp    serve the pathfinder as MCP tools over stdio
//
// Scenario files are YAML (see package scenario). GRIDPATH_SCENARIO and
// GRIDPATH_DEBUG may be set in the environment or in a .env file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	if err := newCommand(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		os.Exit(1)
	}
}

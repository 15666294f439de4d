// Package main is the entry point for the claude-clear CLI.
package main

import (
	"os"

	"github.com/thoreinstein/claude-clear/cmd/claude-clear/commands"
)

func main() {
	os.Exit(commands.Execute())
}

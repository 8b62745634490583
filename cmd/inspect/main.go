// Package main provides the inspect command-line tool for reviewing corpus files.
package main

import (
	"os"

	"vsnorm/cmd/inspect/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

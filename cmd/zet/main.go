// Package main is the entry point for the zet CLI tool.
package main

import (
	"os"

	"github.com/zetkit/zet/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main is the entry point for the unitconv CLI. All
// functionality lives in internal/cli.
package main

import (
	"fmt"
	"os"

	"unit-algebra/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

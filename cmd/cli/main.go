// Package main is the entry point for the market-equilibrium CLI.
package main

import (
	"os"

	"market-equilibrium/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

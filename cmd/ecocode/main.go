// Package main provides the entry point for the EcoCode command-line client.
package main

import (
	"os"

	"github.com/ecocode-app/ecocode-cli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main is the entry point for the facture CLI.
package main

import (
	"os"

	"github.com/plouvier/facture/cmd/facture/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

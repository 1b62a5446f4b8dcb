// Package main is the entry point for the escrow-report CLI
package main

import (
	"os"

	"escrow-dashboard/cmd/escrow-report/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

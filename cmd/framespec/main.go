// Package main provides the framespec CLI tool for condensing and expanding
// frame sequences and their file names.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

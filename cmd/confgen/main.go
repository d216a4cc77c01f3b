package main

import (
	"fmt"
	"os"
)

// Build-time variables (set by the build system via -ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// labelset — Synthetic labeled-text image datasets.
//
// Usage:
//
//	labelset [generate] [-n count] [-d dir] [--font-path file] [options]
//	labelset sample [-o file]
//	labelset config [--format yaml|toml]
//	labelset version
package main

import (
	"fmt"
	"os"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

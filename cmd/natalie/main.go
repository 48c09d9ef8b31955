package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information, set at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	GoVersion = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "natalie",
		Short: "A Ruby-like language lexer, parser, and GC'd runtime heap",
		Long: `natalie lexes and parses Ruby-like source into S-expressions and exercises
a bump-allocated, size-class-segregated mark-sweep heap.`,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(watchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

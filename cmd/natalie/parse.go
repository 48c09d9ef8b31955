package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/natalie-lang/natalie-sub003/internal/compiler/errors"
	"github.com/natalie-lang/natalie-sub003/internal/compiler/lexer"
	"github.com/natalie-lang/natalie-sub003/internal/compiler/parser"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its S-expression tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		tokens, lexErrs := lexer.New(string(source), path).Tokens()
		for _, le := range lexErrs {
			printSyntaxFailure(errors.SyntaxError{
				Message:  le.Message,
				Location: errors.Location{File: le.File, Line: le.Line, Column: le.Column},
			})
		}

		tree, synErr := parser.New(tokens, path).Tree()
		if synErr != nil {
			printSyntaxFailure(*synErr)
			return fmt.Errorf("parsing %s failed", path)
		}

		if len(lexErrs) > 0 {
			return fmt.Errorf("%d lex error(s)", len(lexErrs))
		}

		if parseJSON {
			encoded, err := json.MarshalIndent(tree.ToSexp(), "", "  ")
			if err != nil {
				return fmt.Errorf("encoding tree as JSON: %w", err)
			}
			fmt.Println(string(encoded))
			return nil
		}

		fmt.Println(tree.ToSexp().String())
		return nil
	},
}

func printSyntaxFailure(e errors.SyntaxError) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintln(os.Stderr, errors.FormatTerminal(&e))
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the tree as JSON instead of s-expression text")
}

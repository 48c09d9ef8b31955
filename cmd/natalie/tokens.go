package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/natalie-lang/natalie-sub003/internal/compiler/lexer"
)

var tokensPreserveComments bool

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Lex a source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		l := lexer.New(string(source), path)
		l.SetPreserveComments(tokensPreserveComments)
		tokens, lexErrs := l.Tokens()

		for _, tok := range tokens {
			fmt.Println(tok.String())
		}

		if len(lexErrs) > 0 {
			red := color.New(color.FgRed, color.Bold)
			for _, le := range lexErrs {
				red.Fprintf(os.Stderr, "lex error: %s:%d:%d: %s\n", le.File, le.Line, le.Column, le.Message)
			}
			return fmt.Errorf("%d lex error(s)", len(lexErrs))
		}

		return nil
	},
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensPreserveComments, "preserve-comments", false, "keep comment tokens in the output")
}

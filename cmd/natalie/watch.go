package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/natalie-lang/natalie-sub003/internal/compiler/errors"
	"github.com/natalie-lang/natalie-sub003/internal/compiler/lexer"
	"github.com/natalie-lang/natalie-sub003/internal/compiler/parser"
	"github.com/natalie-lang/natalie-sub003/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-lex and re-parse a file on every save, printing diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		logger, _ := zap.NewDevelopment()
		defer logger.Sync()

		check := func(files []string) error {
			checkFile(path)
			return nil
		}

		w, err := watch.NewFileWatcher([]string{}, []string{}, check, logger)
		if err != nil {
			return err
		}
		defer w.Stop()

		checkFile(path)
		if err := w.Watch([]string{path}); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "watching %s (ctrl-c to stop)\n", path)
		select {}
	},
}

func checkFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "reading %s: %v\n", path, err)
		return
	}

	tokens, lexErrs := lexer.New(string(source), path).Tokens()
	for _, le := range lexErrs {
		printSyntaxFailure(errors.SyntaxError{
			Message:  le.Message,
			Location: errors.Location{File: le.File, Line: le.Line, Column: le.Column},
		})
	}

	if _, synErr := parser.New(tokens, path).Tree(); synErr != nil {
		printSyntaxFailure(*synErr)
		return
	}

	if len(lexErrs) == 0 {
		color.New(color.FgGreen).Fprintf(os.Stderr, "%s: ok\n", path)
	}
}

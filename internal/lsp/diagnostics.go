package lsp

import (
	"go.lsp.dev/protocol"

	"github.com/natalie-lang/natalie-sub003/internal/compiler/errors"
	"github.com/natalie-lang/natalie-sub003/internal/compiler/lexer"
	"github.com/natalie-lang/natalie-sub003/internal/compiler/parser"
)

// diagnose lexes and parses content and converts every recoverable
// LexError plus the parser's SyntaxError, if any, into LSP Diagnostics.
// Parsing halts on the first SyntaxError (internal/compiler/errors' model),
// so at most one syntax diagnostic is ever produced per call.
func diagnose(file, content string) []protocol.Diagnostic {
	tokens, lexErrs := lexer.New(content, file).Tokens()

	diags := make([]protocol.Diagnostic, 0, len(lexErrs)+1)
	for _, le := range lexErrs {
		diags = append(diags, lexErrorDiagnostic(le))
	}

	if _, synErr := parser.New(tokens, file).Tree(); synErr != nil {
		diags = append(diags, syntaxErrorDiagnostic(synErr))
	}

	return diags
}

func lexErrorDiagnostic(e lexer.LexError) protocol.Diagnostic {
	pos := protocol.Position{Line: lspLine(e.Line), Character: lspColumn(e.Column)}
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: pos, End: pos},
		Severity: protocol.DiagnosticSeverityError,
		Source:   "natalie-lexer",
		Message:  e.Message,
	}
}

func syntaxErrorDiagnostic(e *errors.SyntaxError) protocol.Diagnostic {
	pos := protocol.Position{Line: lspLine(e.Location.Line), Character: lspColumn(e.Location.Column)}
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: pos, End: pos},
		Severity: protocol.DiagnosticSeverityError,
		Code:     string(e.Code),
		Source:   "natalie-parser",
		Message:  e.Message,
	}
}

// lspLine/lspColumn convert the lexer/parser's 1-based line/column to LSP's
// 0-based positions.
func lspLine(line int) uint32 {
	if line <= 0 {
		return 0
	}
	return uint32(line - 1)
}

func lspColumn(col int) uint32 {
	if col <= 0 {
		return 0
	}
	return uint32(col - 1)
}

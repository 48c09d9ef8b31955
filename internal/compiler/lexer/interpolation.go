package lexer

import "strings"

// beginToEnd maps each interpolation-begin token type to its matching end
// type, for the expandInterpolation pass.
var beginToEnd = map[TokenType]TokenType{
	TOKEN_INTERPOLATED_STRING_BEGIN: TOKEN_INTERPOLATED_STRING_END,
	TOKEN_INTERPOLATED_REGEXP_BEGIN: TOKEN_INTERPOLATED_REGEXP_END,
	TOKEN_INTERPOLATED_SHELL_BEGIN:  TOKEN_INTERPOLATED_SHELL_END,
}

// expandInterpolation walks the raw token stream and, for every
// *_BEGIN token produced by scanDoubleQuotedLike/tryScanHeredocStart,
// splices its raw literal content into a Begin/component/End token
// sequence: literal runs become TOKEN_STRING components, and each #{...}
// span is recursively sub-lexed and wrapped in
// TOKEN_EVALUATE_TO_STRING_BEGIN/END.
func (l *Lexer) expandInterpolation(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		endType, ok := beginToEnd[t.Type]
		if !ok {
			out = append(out, t)
			continue
		}
		content, _ := t.Literal.(string)
		out = append(out, l.expandOne(t, content, endType)...)
	}
	return out
}

func (l *Lexer) expandOne(begin Token, content string, endType TokenType) []Token {
	result := make([]Token, 0, 4)
	beginTok := begin
	beginTok.Literal = nil
	result = append(result, beginTok)

	runes := []rune(content)
	var literal strings.Builder

	flush := func() {
		if literal.Len() == 0 {
			return
		}
		result = append(result, Token{
			Type:    TOKEN_STRING,
			Lexeme:  literal.String(),
			Literal: resolveEscapes(literal.String()),
			File:    begin.File,
			Line:    begin.Line,
			Column:  begin.Column,
		})
		literal.Reset()
	}

	for i := 0; i < len(runes); {
		switch {
		case runes[i] == '#' && i+1 < len(runes) && runes[i+1] == '{':
			flush()
			depth := 1
			j := i + 2
			start := j
			for j < len(runes) && depth > 0 {
				switch runes[j] {
				case '{':
					depth++
				case '}':
					depth--
					if depth == 0 {
						goto foundClose
					}
				}
				j++
			}
		foundClose:
			inner := string(runes[start:j])
			result = append(result, Token{Type: TOKEN_EVALUATE_TO_STRING_BEGIN, File: begin.File, Line: begin.Line, Column: begin.Column})
			subLexer := New(inner, begin.File)
			subTokens, subErrors := subLexer.Tokens()
			l.errors = append(l.errors, subErrors...)
			for _, st := range subTokens {
				if st.Type == TOKEN_EOF {
					continue
				}
				result = append(result, st)
			}
			result = append(result, Token{Type: TOKEN_EVALUATE_TO_STRING_END, File: begin.File, Line: begin.Line, Column: begin.Column})
			i = j + 1
		case runes[i] == '\\' && i+1 < len(runes):
			literal.WriteRune(runes[i])
			literal.WriteRune(runes[i+1])
			i += 2
		default:
			literal.WriteRune(runes[i])
			i++
		}
	}
	flush()
	result = append(result, Token{Type: endType, File: begin.File, Line: begin.Line, Column: begin.Column})
	return result
}

package lexer

import "strings"

// scanSingleQuoted scans a non-interpolable string: the only escapes are
// \\ and \<delimiter>
func (l *Lexer) scanSingleQuoted(delim rune) Token {
	var value strings.Builder
	for {
		if l.isAtEnd() {
			return l.unterminated(TOKEN_UNTERMINATED_STRING, "unterminated string")
		}
		r := l.advance()
		if r == delim {
			break
		}
		if r == '\\' && (l.peek() == delim || l.peek() == '\\') {
			value.WriteRune(l.advance())
			continue
		}
		if r == '\n' {
			l.line++
			l.column = 1
		}
		value.WriteRune(r)
	}
	return l.emit(TOKEN_STRING, value.String())
}

// scanDoubleQuotedLike scans a (possibly) interpolable literal delimited by
// delim. If the raw content contains no "#{", the resolved string is
// emitted directly as plainType; otherwise the raw content (escapes intact)
// is emitted as beginType, left for expandInterpolation to split into a
// Begin/component/End token sequence.
func (l *Lexer) scanDoubleQuotedLike(delim rune, beginType, plainType TokenType) Token {
	var raw strings.Builder
	hasInterpolation := false
	depth := 0
	for {
		if l.isAtEnd() {
			return l.unterminated(TOKEN_UNTERMINATED_STRING, "unterminated string")
		}
		r := l.advance()
		if r == delim && depth == 0 {
			break
		}
		if r == '\\' && !l.isAtEnd() {
			raw.WriteRune(r)
			raw.WriteRune(l.advance())
			continue
		}
		if r == '#' && l.peek() == '{' {
			hasInterpolation = true
			raw.WriteRune(r)
			raw.WriteRune(l.advance())
			depth++
			continue
		}
		if depth > 0 {
			if r == '{' {
				depth++
			} else if r == '}' {
				depth--
			}
		}
		if r == '\n' {
			l.line++
			l.column = 1
		}
		raw.WriteRune(r)
	}
	if hasInterpolation {
		return l.emit(beginType, raw.String())
	}
	return l.emit(plainType, resolveEscapes(raw.String()))
}

// scanRegexp scans a regexp literal, then any trailing option letters
// (i, m, x, o). Interpolation is handled the same way double-quoted strings
// are; the options live on Token.Options.
func (l *Lexer) scanRegexp(delim rune) Token {
	tok := l.scanDoubleQuotedLike(delim, TOKEN_INTERPOLATED_REGEXP_BEGIN, TOKEN_REGEXP)
	if tok.Type == TOKEN_UNTERMINATED_STRING {
		tok.Type = TOKEN_UNTERMINATED_REGEXP
		return tok
	}
	optStart := l.current
	for isRegexpOption(l.peek()) {
		l.advance()
	}
	tok.Options = string(l.source[optStart:l.current])
	tok.Lexeme = string(l.source[l.start:l.current])
	return tok
}

func isRegexpOption(r rune) bool {
	return r == 'i' || r == 'm' || r == 'x' || r == 'o'
}

// resolveEscapes interprets backslash escapes in a literal with no
// interpolation boundaries (plain strings, non-interpolated regexp/shell
// literals, heredoc bodies with no `#{}`).
func resolveEscapes(raw string) string {
	var out strings.Builder
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '\\' || i+1 >= len(runes) {
			out.WriteRune(runes[i])
			continue
		}
		i++
		switch runes[i] {
		case 'n':
			out.WriteRune('\n')
		case 't':
			out.WriteRune('\t')
		case 'r':
			out.WriteRune('\r')
		case '0':
			out.WriteRune(0)
		case 's':
			out.WriteRune(' ')
		case '\\':
			out.WriteRune('\\')
		case '"', '\'', '`', '#':
			out.WriteRune(runes[i])
		default:
			out.WriteRune('\\')
			out.WriteRune(runes[i])
		}
	}
	return out.String()
}

func (l *Lexer) unterminated(t TokenType, message string) Token {
	l.addError(message)
	tok := l.emit(t, nil)
	tok.Err = &l.errors[len(l.errors)-1]
	return tok
}

// tryScanPercentLiteral handles the %q/%Q/%w/%W/%i/%I family. Returns
// ok=false if the character(s) after `%` don't form one of these literals,
// leaving the cursor untouched so the caller falls back to TOKEN_MODULUS
// handling.
func (l *Lexer) tryScanPercentLiteral() (Token, bool) {
	mark := l.current
	kind := l.peek()
	switch kind {
	case 'q', 'Q', 'w', 'W', 'i', 'I':
		l.advance()
	default:
		return Token{}, false
	}
	if l.isAtEnd() || isOpenDelimiter(l.peek()) == 0 {
		l.current = mark
		return Token{}, false
	}
	open := l.advance()
	close := matchingCloseDelimiter(open)

	var raw strings.Builder
	depth := 1
	for {
		if l.isAtEnd() {
			return l.unterminated(TOKEN_UNTERMINATED_STRING, "unterminated percent literal"), true
		}
		r := l.advance()
		if r == open && open != close {
			depth++
		}
		if r == close {
			depth--
			if depth == 0 {
				break
			}
		}
		if r == '\\' && !l.isAtEnd() {
			raw.WriteRune(r)
			raw.WriteRune(l.advance())
			continue
		}
		if r == '\n' {
			l.line++
			l.column = 1
		}
		raw.WriteRune(r)
	}

	switch kind {
	case 'q':
		return l.emit(TOKEN_STRING, resolveEscapes(raw.String())), true
	case 'Q':
		content := raw.String()
		if strings.Contains(content, "#{") {
			return l.emit(TOKEN_INTERPOLATED_STRING_BEGIN, content), true
		}
		return l.emit(TOKEN_STRING, resolveEscapes(content)), true
	case 'w':
		return l.emit(TOKEN_PERCENT_LOWER_W, strings.Fields(raw.String())), true
	case 'W':
		return l.emit(TOKEN_PERCENT_UPPER_W, strings.Fields(raw.String())), true
	case 'i':
		return l.emit(TOKEN_PERCENT_LOWER_I, strings.Fields(raw.String())), true
	case 'I':
		return l.emit(TOKEN_PERCENT_UPPER_I, strings.Fields(raw.String())), true
	}
	return l.emit(TOKEN_INVALID, nil), true
}

func isOpenDelimiter(r rune) rune {
	switch r {
	case '(', '[', '{', '<', '|', '!', '/':
		return r
	}
	return 0
}

func matchingCloseDelimiter(open rune) rune {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	case '<':
		return '>'
	default:
		return open
	}
}

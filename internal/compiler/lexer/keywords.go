package lexer

// keywords maps reserved bare-name spellings to their dedicated token type.
// Anything not in this table lexes as TOKEN_BARE_NAME and is disambiguated
// from a local-variable reference by the parser.
var keywords = map[string]TokenType{
	"alias":        TOKEN_ALIAS_KEYWORD,
	"and":          TOKEN_AND_KEYWORD,
	"begin":        TOKEN_BEGIN_KEYWORD,
	"BEGIN":        TOKEN_BEGIN_UPPER_KEYWORD,
	"break":        TOKEN_BREAK_KEYWORD,
	"case":         TOKEN_CASE_KEYWORD,
	"class":        TOKEN_CLASS_KEYWORD,
	"defined?":     TOKEN_DEFINED_KEYWORD,
	"def":          TOKEN_DEF_KEYWORD,
	"do":           TOKEN_DO_KEYWORD,
	"else":         TOKEN_ELSE_KEYWORD,
	"elsif":        TOKEN_ELSIF_KEYWORD,
	"__ENCODING__": TOKEN_ENCODING_KEYWORD,
	"end":          TOKEN_END_KEYWORD,
	"END":          TOKEN_END_UPPER_KEYWORD,
	"ensure":       TOKEN_ENSURE_KEYWORD,
	"false":        TOKEN_FALSE_KEYWORD,
	"__FILE__":     TOKEN_FILE_KEYWORD,
	"for":          TOKEN_FOR_KEYWORD,
	"if":           TOKEN_IF_KEYWORD,
	"in":           TOKEN_IN_KEYWORD,
	"__LINE__":     TOKEN_LINE_KEYWORD,
	"module":       TOKEN_MODULE_KEYWORD,
	"next":         TOKEN_NEXT_KEYWORD,
	"nil":          TOKEN_NIL_KEYWORD,
	"not":          TOKEN_NOT_KEYWORD,
	"or":           TOKEN_OR_KEYWORD,
	"redo":         TOKEN_REDO_KEYWORD,
	"rescue":       TOKEN_RESCUE_KEYWORD,
	"retry":        TOKEN_RETRY_KEYWORD,
	"return":       TOKEN_RETURN_KEYWORD,
	"self":         TOKEN_SELF_KEYWORD,
	"super":        TOKEN_SUPER_KEYWORD,
	"then":         TOKEN_THEN_KEYWORD,
	"true":         TOKEN_TRUE_KEYWORD,
	"undef":        TOKEN_UNDEF_KEYWORD,
	"unless":       TOKEN_UNLESS_KEYWORD,
	"until":        TOKEN_UNTIL_KEYWORD,
	"when":         TOKEN_WHEN_KEYWORD,
	"while":        TOKEN_WHILE_KEYWORD,
	"yield":        TOKEN_YIELD_KEYWORD,
}

// lookupKeyword reports whether lexeme is a reserved word and, if so, its
// token type.
func lookupKeyword(lexeme string) (TokenType, bool) {
	t, ok := keywords[lexeme]
	return t, ok
}

var tokenTypeNames = map[TokenType]string{
	TOKEN_INVALID: "INVALID",
	TOKEN_EOF:     "EOF",
	TOKEN_EOL:     "EOL",
	TOKEN_COMMENT: "COMMENT",

	TOKEN_ALIAS_KEYWORD:       "ALIAS",
	TOKEN_AND_KEYWORD:         "AND_KW",
	TOKEN_BEGIN_KEYWORD:       "BEGIN_KW",
	TOKEN_BEGIN_UPPER_KEYWORD: "BEGIN_UPPER",
	TOKEN_BREAK_KEYWORD:       "BREAK",
	TOKEN_CASE_KEYWORD:        "CASE",
	TOKEN_CLASS_KEYWORD:       "CLASS",
	TOKEN_DEFINED_KEYWORD:     "DEFINED",
	TOKEN_DEF_KEYWORD:         "DEF",
	TOKEN_DO_KEYWORD:          "DO",
	TOKEN_ELSE_KEYWORD:        "ELSE",
	TOKEN_ELSIF_KEYWORD:       "ELSIF",
	TOKEN_ENCODING_KEYWORD:    "ENCODING",
	TOKEN_END_KEYWORD:         "END",
	TOKEN_END_UPPER_KEYWORD:   "END_UPPER",
	TOKEN_ENSURE_KEYWORD:      "ENSURE",
	TOKEN_FALSE_KEYWORD:       "FALSE",
	TOKEN_FILE_KEYWORD:        "FILE_KW",
	TOKEN_FOR_KEYWORD:         "FOR",
	TOKEN_IF_KEYWORD:          "IF",
	TOKEN_IN_KEYWORD:          "IN",
	TOKEN_LINE_KEYWORD:        "LINE_KW",
	TOKEN_MODULE_KEYWORD:      "MODULE",
	TOKEN_NEXT_KEYWORD:        "NEXT",
	TOKEN_NIL_KEYWORD:         "NIL",
	TOKEN_NOT_KEYWORD:         "NOT_KW",
	TOKEN_OR_KEYWORD:          "OR_KW",
	TOKEN_REDO_KEYWORD:        "REDO",
	TOKEN_RESCUE_KEYWORD:      "RESCUE",
	TOKEN_RETRY_KEYWORD:       "RETRY",
	TOKEN_RETURN_KEYWORD:      "RETURN",
	TOKEN_SELF_KEYWORD:        "SELF",
	TOKEN_SUPER_KEYWORD:       "SUPER",
	TOKEN_THEN_KEYWORD:        "THEN",
	TOKEN_TRUE_KEYWORD:        "TRUE",
	TOKEN_UNDEF_KEYWORD:       "UNDEF",
	TOKEN_UNLESS_KEYWORD:      "UNLESS",
	TOKEN_UNTIL_KEYWORD:       "UNTIL",
	TOKEN_WHEN_KEYWORD:        "WHEN",
	TOKEN_WHILE_KEYWORD:       "WHILE",
	TOKEN_YIELD_KEYWORD:       "YIELD",

	TOKEN_BARE_NAME:         "BARE_NAME",
	TOKEN_CONSTANT:          "CONSTANT",
	TOKEN_GLOBAL_VARIABLE:   "GVAR",
	TOKEN_INSTANCE_VARIABLE: "IVAR",
	TOKEN_CLASS_VARIABLE:    "CVAR",

	TOKEN_INTEGER:    "INTEGER",
	TOKEN_FLOAT:      "FLOAT",
	TOKEN_STRING:     "STRING",
	TOKEN_SYMBOL:     "SYMBOL",
	TOKEN_SYMBOL_KEY: "SYMBOL_KEY",
	TOKEN_REGEXP:     "REGEXP",
	TOKEN_SHELL:      "SHELL",

	TOKEN_INTERPOLATED_STRING_BEGIN: "DSTR_BEGIN",
	TOKEN_INTERPOLATED_STRING_END:   "DSTR_END",
	TOKEN_INTERPOLATED_REGEXP_BEGIN: "DREGX_BEGIN",
	TOKEN_INTERPOLATED_REGEXP_END:   "DREGX_END",
	TOKEN_INTERPOLATED_SHELL_BEGIN:  "DXSTR_BEGIN",
	TOKEN_INTERPOLATED_SHELL_END:    "DXSTR_END",
	TOKEN_EVALUATE_TO_STRING_BEGIN:  "EVSTR_BEGIN",
	TOKEN_EVALUATE_TO_STRING_END:    "EVSTR_END",

	TOKEN_PERCENT_LOWER_I: "PERCENT_I",
	TOKEN_PERCENT_LOWER_W: "PERCENT_W",
	TOKEN_PERCENT_UPPER_I: "PERCENT_UPPER_I",
	TOKEN_PERCENT_UPPER_W: "PERCENT_UPPER_W",

	TOKEN_PLUS:            "PLUS",
	TOKEN_PLUS_EQUAL:      "PLUS_EQUAL",
	TOKEN_MINUS:           "MINUS",
	TOKEN_MINUS_EQUAL:     "MINUS_EQUAL",
	TOKEN_MULTIPLY:        "MULTIPLY",
	TOKEN_MULTIPLY_EQUAL:  "MULTIPLY_EQUAL",
	TOKEN_DIVIDE:          "DIVIDE",
	TOKEN_DIVIDE_EQUAL:    "DIVIDE_EQUAL",
	TOKEN_MODULUS:         "MODULUS",
	TOKEN_MODULUS_EQUAL:   "MODULUS_EQUAL",
	TOKEN_EXPONENT:        "EXPONENT",
	TOKEN_EXPONENT_EQUAL:  "EXPONENT_EQUAL",

	TOKEN_EQUAL:             "EQUAL",
	TOKEN_EQUAL_EQUAL:       "EQUAL_EQUAL",
	TOKEN_EQUAL_EQUAL_EQUAL: "EQUAL_EQUAL_EQUAL",
	TOKEN_NOT_EQUAL:         "NOT_EQUAL",
	TOKEN_MATCH:             "MATCH",
	TOKEN_NOT_MATCH:         "NOT_MATCH",
	TOKEN_COMPARISON:        "COMPARISON",

	TOKEN_LESS_THAN:             "LESS_THAN",
	TOKEN_LESS_THAN_OR_EQUAL:    "LESS_THAN_OR_EQUAL",
	TOKEN_GREATER_THAN:          "GREATER_THAN",
	TOKEN_GREATER_THAN_OR_EQUAL: "GREATER_THAN_OR_EQUAL",

	TOKEN_LEFT_SHIFT:        "LEFT_SHIFT",
	TOKEN_LEFT_SHIFT_EQUAL:  "LEFT_SHIFT_EQUAL",
	TOKEN_RIGHT_SHIFT:       "RIGHT_SHIFT",
	TOKEN_RIGHT_SHIFT_EQUAL: "RIGHT_SHIFT_EQUAL",

	TOKEN_BITWISE_AND:             "BITWISE_AND",
	TOKEN_BITWISE_AND_EQUAL:       "BITWISE_AND_EQUAL",
	TOKEN_BITWISE_OR:              "BITWISE_OR",
	TOKEN_BITWISE_OR_EQUAL:        "BITWISE_OR_EQUAL",
	TOKEN_BITWISE_XOR:             "BITWISE_XOR",
	TOKEN_BITWISE_XOR_EQUAL:       "BITWISE_XOR_EQUAL",
	TOKEN_BINARY_ONES_COMPLEMENT:  "ONES_COMPLEMENT",

	TOKEN_AND:       "AND",
	TOKEN_AND_EQUAL: "AND_EQUAL",
	TOKEN_OR:        "OR",
	TOKEN_OR_EQUAL:  "OR_EQUAL",
	TOKEN_NOT:       "NOT",

	TOKEN_ARROW:              "ARROW",
	TOKEN_HASH_ROCKET:        "HASH_ROCKET",
	TOKEN_SAFE_NAVIGATION:    "SAFE_NAVIGATION",
	TOKEN_CONSTANT_RESOLUTION: "CONSTANT_RESOLUTION",

	TOKEN_DOT:       "DOT",
	TOKEN_DOT_DOT:   "DOT_DOT",
	TOKEN_DOT_DOT_DOT: "DOT_DOT_DOT",
	TOKEN_COMMA:     "COMMA",
	TOKEN_SEMICOLON: "SEMICOLON",

	TOKEN_TERNARY_QUESTION: "TERNARY_QUESTION",
	TOKEN_TERNARY_COLON:    "TERNARY_COLON",

	TOKEN_LBRACKET:                "LBRACKET",
	TOKEN_RBRACKET:                "RBRACKET",
	TOKEN_LBRACKET_RBRACKET:       "LBRACKET_RBRACKET",
	TOKEN_LBRACKET_RBRACKET_EQUAL: "LBRACKET_RBRACKET_EQUAL",

	TOKEN_LCURLY_BRACE: "LCURLY_BRACE",
	TOKEN_RCURLY_BRACE: "RCURLY_BRACE",
	TOKEN_LPAREN:       "LPAREN",
	TOKEN_RPAREN:       "RPAREN",

	TOKEN_UNTERMINATED_STRING:   "UNTERMINATED_STRING",
	TOKEN_UNTERMINATED_REGEXP:   "UNTERMINATED_REGEXP",
	TOKEN_UNTERMINATED_HEREDOC:  "UNTERMINATED_HEREDOC",
	TOKEN_INVALID_NUMBER_SUFFIX: "INVALID_NUMBER_SUFFIX",
}

// tokenDisplayValues gives the surface spelling for tokens whose text is
// fixed by their type, used when composing syntax error messages.
var tokenDisplayValues = map[TokenType]string{
	TOKEN_ALIAS_KEYWORD:       "alias",
	TOKEN_AND_KEYWORD:         "and",
	TOKEN_BEGIN_KEYWORD:       "begin",
	TOKEN_BEGIN_UPPER_KEYWORD: "BEGIN",
	TOKEN_BREAK_KEYWORD:       "break",
	TOKEN_CASE_KEYWORD:        "case",
	TOKEN_CLASS_KEYWORD:       "class",
	TOKEN_DEFINED_KEYWORD:     "defined?",
	TOKEN_DEF_KEYWORD:         "def",
	TOKEN_DO_KEYWORD:          "do",
	TOKEN_ELSE_KEYWORD:        "else",
	TOKEN_ELSIF_KEYWORD:       "elsif",
	TOKEN_ENCODING_KEYWORD:    "__ENCODING__",
	TOKEN_END_KEYWORD:         "end",
	TOKEN_END_UPPER_KEYWORD:   "END",
	TOKEN_ENSURE_KEYWORD:      "ensure",
	TOKEN_FALSE_KEYWORD:       "false",
	TOKEN_FILE_KEYWORD:        "__FILE__",
	TOKEN_FOR_KEYWORD:         "for",
	TOKEN_IF_KEYWORD:          "if",
	TOKEN_IN_KEYWORD:          "in",
	TOKEN_LINE_KEYWORD:        "__LINE__",
	TOKEN_MODULE_KEYWORD:      "module",
	TOKEN_NEXT_KEYWORD:        "next",
	TOKEN_NIL_KEYWORD:         "nil",
	TOKEN_NOT_KEYWORD:         "not",
	TOKEN_OR_KEYWORD:          "or",
	TOKEN_REDO_KEYWORD:        "redo",
	TOKEN_RESCUE_KEYWORD:      "rescue",
	TOKEN_RETRY_KEYWORD:       "retry",
	TOKEN_RETURN_KEYWORD:      "return",
	TOKEN_SELF_KEYWORD:        "self",
	TOKEN_SUPER_KEYWORD:       "super",
	TOKEN_THEN_KEYWORD:        "then",
	TOKEN_TRUE_KEYWORD:        "true",
	TOKEN_UNDEF_KEYWORD:       "undef",
	TOKEN_UNLESS_KEYWORD:      "unless",
	TOKEN_UNTIL_KEYWORD:       "until",
	TOKEN_WHEN_KEYWORD:        "when",
	TOKEN_WHILE_KEYWORD:       "while",
	TOKEN_YIELD_KEYWORD:       "yield",

	TOKEN_EOF: "EOF",
	TOKEN_EOL: "\n",

	TOKEN_PLUS:           "+",
	TOKEN_PLUS_EQUAL:     "+=",
	TOKEN_MINUS:          "-",
	TOKEN_MINUS_EQUAL:    "-=",
	TOKEN_MULTIPLY:       "*",
	TOKEN_MULTIPLY_EQUAL: "*=",
	TOKEN_DIVIDE:         "/",
	TOKEN_DIVIDE_EQUAL:   "/=",
	TOKEN_MODULUS:        "%",
	TOKEN_MODULUS_EQUAL:  "%=",
	TOKEN_EXPONENT:       "**",
	TOKEN_EXPONENT_EQUAL: "**=",

	TOKEN_EQUAL:             "=",
	TOKEN_EQUAL_EQUAL:       "==",
	TOKEN_EQUAL_EQUAL_EQUAL: "===",
	TOKEN_NOT_EQUAL:         "!=",
	TOKEN_MATCH:             "=~",
	TOKEN_NOT_MATCH:         "!~",
	TOKEN_COMPARISON:        "<=>",

	TOKEN_LESS_THAN:             "<",
	TOKEN_LESS_THAN_OR_EQUAL:    "<=",
	TOKEN_GREATER_THAN:          ">",
	TOKEN_GREATER_THAN_OR_EQUAL: ">=",

	TOKEN_LEFT_SHIFT:        "<<",
	TOKEN_LEFT_SHIFT_EQUAL:  "<<=",
	TOKEN_RIGHT_SHIFT:       ">>",
	TOKEN_RIGHT_SHIFT_EQUAL: ">>=",

	TOKEN_BITWISE_AND:            "&",
	TOKEN_BITWISE_AND_EQUAL:      "&=",
	TOKEN_BITWISE_OR:             "|",
	TOKEN_BITWISE_OR_EQUAL:       "|=",
	TOKEN_BITWISE_XOR:            "^",
	TOKEN_BITWISE_XOR_EQUAL:      "^=",
	TOKEN_BINARY_ONES_COMPLEMENT: "~",

	TOKEN_AND:       "&&",
	TOKEN_AND_EQUAL: "&&=",
	TOKEN_OR:        "||",
	TOKEN_OR_EQUAL:  "||=",
	TOKEN_NOT:       "!",

	TOKEN_ARROW:               "->",
	TOKEN_HASH_ROCKET:         "=>",
	TOKEN_SAFE_NAVIGATION:     "&.",
	TOKEN_CONSTANT_RESOLUTION: "::",

	TOKEN_DOT:         ".",
	TOKEN_DOT_DOT:     "..",
	TOKEN_DOT_DOT_DOT: "...",
	TOKEN_COMMA:       ",",
	TOKEN_SEMICOLON:   ";",

	TOKEN_TERNARY_QUESTION: "?",
	TOKEN_TERNARY_COLON:    ":",

	TOKEN_LBRACKET:                "[",
	TOKEN_RBRACKET:                "]",
	TOKEN_LBRACKET_RBRACKET:       "[]",
	TOKEN_LBRACKET_RBRACKET_EQUAL: "[]=",

	TOKEN_LCURLY_BRACE: "{",
	TOKEN_RCURLY_BRACE: "}",
	TOKEN_LPAREN:       "(",
	TOKEN_RPAREN:       ")",
}

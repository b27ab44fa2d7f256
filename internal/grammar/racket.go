package grammar

// Racket identifiers admit most symbol characters, so words like + and <=
// are lexed as identifier-shaped tokens and resolved by ClassifyWord.
// Bytes >= 0x80 (λ and friends) are accepted as identifier characters.
func isRacketSymbolByte(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '<', '>', '=', '!', '?', ':', '$', '%', '&', '^', '~', '@', '_':
		return true
	}
	return b >= 0x80
}

func newRacketTable() *Table {
	t := &Table{
		Lang:          Racket,
		CaseSensitive: true,
		keywords: wordSet(true,
			"define", "define-values", "define-syntax", "define-struct",
			"define-macro", "define-for-syntax",
			"if", "cond", "case", "when", "unless", "and", "or", "not",
			"lambda", "λ", "procedure?", "apply", "curry", "compose",
			"let", "let*", "letrec", "let-values", "let*-values",
			"parameterize", "with-handlers",
			"for", "for/list", "for/vector", "for/hash", "for/sum",
			"for/fold", "for*", "for*/list", "do", "map", "filter",
			"foldl", "foldr", "andmap", "ormap",
			"eval", "compile", "expand", "syntax-e", "syntax->datum",
			"datum->syntax", "quote", "quasiquote", "unquote",
			"unquote-splicing",
			"module", "module*", "module+", "require", "provide",
			"only-in", "except-in", "prefix-in", "rename-in",
			"syntax-rules", "syntax-case", "syntax", "with-syntax",
			"contract", "define/contract", "provide/contract",
			"class", "class*", "interface", "mixin", "new", "instantiate",
			"send", "super", "inner",
			"raise", "raise-argument-error", "raise-type-error",
			"call/cc", "call-with-current-continuation",
			"with-input-from-file", "with-output-to-file",
			"call-with-input-file", "call-with-output-file",
			"begin", "begin0", "set!", "values", "void", "time",
			"match", "match-lambda", "match-let",
		),
		builtins: wordSet(true,
			"cons", "car", "cdr", "caar", "cadr", "cdar", "cddr",
			"list", "list*", "append", "reverse", "length", "list-ref",
			"list-tail", "member", "memq", "memv", "assoc", "assq", "assv",
			"null?", "pair?", "list?",
			"number?", "complex?", "real?", "rational?", "integer?",
			"exact?", "inexact?", "zero?", "positive?", "negative?",
			"odd?", "even?", "max", "min", "abs",
			"numerator", "denominator", "floor", "ceiling", "truncate",
			"round", "exp", "log", "sin", "cos", "tan", "asin", "acos",
			"atan", "sqrt", "expt", "exact->inexact", "inexact->exact",
			"string?", "string-length", "string-ref", "string=?",
			"string<?", "string>?", "substring", "string-append",
			"string->list", "list->string", "string->number",
			"number->string", "string->symbol", "symbol->string",
			"string-upcase", "string-downcase",
			"char?", "char=?", "char<?", "char>?", "char->integer",
			"integer->char", "char-upcase", "char-downcase",
			"char-alphabetic?", "char-numeric?", "char-whitespace?",
			"vector", "make-vector", "vector-ref", "vector-set!",
			"vector-length", "vector->list", "list->vector",
			"symbol?", "symbol->string", "error",
		),
		booleans: wordSet(true, "#t", "#f", "#true", "#false"),
		nones:    map[string]struct{}{},
		opWords: wordSet(true,
			"+", "-", "*", "/", "=", "<", ">", "<=", ">=",
			"quotient", "remainder", "modulo", "gcd", "lcm",
		),

		LineComments: []string{";"},
		BlockOpen:    "#|",
		BlockClose:   "|#",
		BlockNest:    true,

		Quotes: []byte{'"'},

		// Racket's # lead introduces booleans (#t), character literals
		// (#\a) and block comments (#| |#).
		HashLead:  true,
		Rationals: true,

		identStart: func(b byte) bool { return isASCIILetter(b) || isRacketSymbolByte(b) },
		identPart: func(b byte) bool {
			return isASCIILetter(b) || isDigit(b) || isRacketSymbolByte(b)
		},
	}

	// Punctuation outside the symbol alphabet: 'x quotes, `x quasiquotes,
	// ,x and ,@x unquote, and . builds dotted pairs.
	t.setOperators("'", "`", ",", ",@", ".")
	t.setDelimiters("()[]{}")

	return t
}

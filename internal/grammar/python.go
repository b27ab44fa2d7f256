package grammar

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func newPythonTable() *Table {
	t := &Table{
		Lang:          Python,
		CaseSensitive: true,
		keywords: wordSet(true,
			"and", "as", "assert", "async", "await", "break", "class",
			"continue", "def", "del", "elif", "else", "except", "finally",
			"for", "from", "global", "if", "import", "in", "is", "lambda",
			"nonlocal", "not", "or", "pass", "raise", "return", "try",
			"while", "with", "yield",
		),
		builtins: wordSet(true,
			"print", "len", "range", "str", "int", "float", "list", "dict",
			"set", "tuple", "bool", "type", "isinstance", "hasattr",
			"getattr", "setattr", "open", "input", "abs", "max", "min",
			"sum", "all", "any", "enumerate", "zip", "map", "filter",
			"sorted", "reversed", "round", "pow", "divmod",
		),
		booleans: wordSet(true, "True", "False"),
		nones:    wordSet(true, "None"),
		opWords:  map[string]struct{}{},

		LineComments: []string{"#"},

		Quotes:         []byte{'"', '\''},
		TripleQuotes:   true,
		StringPrefixes: "rbfuRBFU",

		IndentSignificant: true,

		identStart: func(b byte) bool { return isASCIILetter(b) || b == '_' },
		identPart:  func(b byte) bool { return isASCIILetter(b) || isDigit(b) || b == '_' },
	}

	t.setOperators(
		"+", "-", "*", "/", "//", "%", "**",
		"=", "+=", "-=", "*=", "/=", "//=", "%=", "**=",
		"==", "!=", "<", ">", "<=", ">=", "<>",
		"&", "|", "^", "~", "<<", ">>", "&=", "|=", "^=", "<<=", ">>=",
		"!", "@", "@=", "->", ":=",
	)
	t.setDelimiters("()[]{},:;.")

	return t
}

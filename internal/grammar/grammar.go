// Package grammar holds the per-language lexical tables consumed by the
// automaton. Tables are pure lookup structures: keyword sets, operator
// tables, string and comment delimiter rules. They are built once per
// language at first use and never mutated, so concurrent reads need no
// synchronization.
package grammar

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/salog0d/glint/internal/token"
)

// Language identifies a supported grammar.
type Language string

const (
	Python Language = "python"
	Racket Language = "racket"
	SQL    Language = "sql"
)

// ErrUnknownLanguage is returned when a language name has no grammar table.
// It is the only error that prevents tokenization entirely.
var ErrUnknownLanguage = fmt.Errorf("unknown language")

// ParseLanguage resolves a language name to a Language.
func ParseLanguage(name string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(name))) {
	case Python:
		return Python, nil
	case Racket:
		return Racket, nil
	case SQL:
		return SQL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
}

// DetectLanguage guesses the language from a file extension.
func DetectLanguage(path string) (Language, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return Python, nil
	case ".rkt", ".scm", ".ss":
		return Racket, nil
	case ".sql":
		return SQL, nil
	default:
		return "", fmt.Errorf("%w: cannot detect language for %q", ErrUnknownLanguage, path)
	}
}

// Table is the immutable lexical configuration for one language.
type Table struct {
	Lang Language

	// CaseSensitive controls keyword/builtin lookup. SQL is insensitive.
	CaseSensitive bool

	keywords map[string]struct{}
	builtins map[string]struct{}
	booleans map[string]struct{}
	nones    map[string]struct{}
	// operator words classified by ClassifyWord, for languages where
	// symbols like + lex as identifier-shaped words (Racket).
	opWords map[string]struct{}

	// opsByLen[n-1] holds the n-character operators; matching is always
	// longest-prefix against these sets.
	opsByLen   [3]map[string]struct{}
	delimiters [256]bool

	// LineComments are comment lead prefixes terminating at newline.
	LineComments []string
	// BlockOpen/BlockClose delimit block comments; empty means none.
	BlockOpen  string
	BlockClose string
	// BlockNest selects nesting policy: Racket #| |# nests, SQL /* */ does not.
	BlockNest bool

	// Quotes are the string delimiter bytes. TripleQuotes enables
	// Python-style ''' and """ literals. StringPrefixes are the letters
	// that may precede an opening quote (r, b, f, u for Python).
	Quotes         []byte
	TripleQuotes   bool
	StringPrefixes string

	// IndentSignificant is true only for Python.
	IndentSignificant bool

	// HashLead enables Racket's # forms: #t/#f booleans, #\x character
	// literals and the #| |# block comment opener.
	HashLead bool

	// Rationals enables Racket number forms: a leading sign, a trailing
	// fraction slash (1/3) and an imaginary suffix (2i).
	Rationals bool

	identStart func(byte) bool
	identPart  func(byte) bool
}

// ClassifyWord resolves an identifier-shaped word to its token kind:
// keyword, builtin, boolean, none value, operator word, or identifier.
func (t *Table) ClassifyWord(word string) token.Kind {
	key := word
	if !t.CaseSensitive {
		key = strings.ToUpper(word)
	}
	if _, ok := t.booleans[key]; ok {
		return token.Boolean
	}
	if _, ok := t.nones[key]; ok {
		return token.NoneValue
	}
	if _, ok := t.keywords[key]; ok {
		return token.Keyword
	}
	if _, ok := t.opWords[key]; ok {
		return token.Operator
	}
	if _, ok := t.builtins[key]; ok {
		return token.Builtin
	}
	return token.Identifier
}

// IsIdentStart reports whether b can start an identifier.
func (t *Table) IsIdentStart(b byte) bool { return t.identStart(b) }

// IsIdentPart reports whether b can continue an identifier.
func (t *Table) IsIdentPart(b byte) bool { return t.identPart(b) }

// IsDelimiter reports whether b is a delimiter byte.
func (t *Table) IsDelimiter(b byte) bool { return t.delimiters[b] }

// IsQuote reports whether b opens a string literal.
func (t *Table) IsQuote(b byte) bool {
	for _, q := range t.Quotes {
		if q == b {
			return true
		}
	}
	return false
}

// MatchOperator returns the length of the longest operator at src[i],
// or 0 when none matches. Longest-prefix wins: >= before >.
func (t *Table) MatchOperator(src string, i int) int {
	for n := 3; n >= 1; n-- {
		if i+n > len(src) {
			continue
		}
		if _, ok := t.opsByLen[n-1][src[i:i+n]]; ok {
			return n
		}
	}
	return 0
}

// LineCommentAt returns the length of the line comment prefix at src[i],
// or 0 when the position does not start a line comment.
func (t *Table) LineCommentAt(src string, i int) int {
	for _, p := range t.LineComments {
		if strings.HasPrefix(src[i:], p) {
			return len(p)
		}
	}
	return 0
}

// BlockCommentAt reports whether a block comment opens at src[i].
func (t *Table) BlockCommentAt(src string, i int) bool {
	return t.BlockOpen != "" && strings.HasPrefix(src[i:], t.BlockOpen)
}

// IsStringPrefix reports whether b is a valid string prefix letter.
func (t *Table) IsStringPrefix(b byte) bool {
	return strings.IndexByte(t.StringPrefixes, b) >= 0
}

func (t *Table) setOperators(ops ...string) {
	for i := range t.opsByLen {
		t.opsByLen[i] = make(map[string]struct{})
	}
	for _, op := range ops {
		if n := len(op); n >= 1 && n <= 3 {
			t.opsByLen[n-1][op] = struct{}{}
		}
	}
}

func (t *Table) setDelimiters(delims string) {
	for i := 0; i < len(delims); i++ {
		t.delimiters[delims[i]] = true
	}
}

func wordSet(caseSensitive bool, words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if !caseSensitive {
			w = strings.ToUpper(w)
		}
		set[w] = struct{}{}
	}
	return set
}

var (
	tables   = map[Language]*Table{}
	tablesMu sync.Mutex
	builders = map[Language]func() *Table{
		Python: newPythonTable,
		Racket: newRacketTable,
		SQL:    newSQLTable,
	}
)

// For returns the process-wide table for lang, building it on first use.
func For(lang Language) (*Table, error) {
	tablesMu.Lock()
	defer tablesMu.Unlock()

	if t, ok := tables[lang]; ok {
		return t, nil
	}
	build, ok := builders[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	t := build()
	tables[lang] = t
	return t, nil
}

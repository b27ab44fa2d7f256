package highlight

import (
	"encoding/json"
	"fmt"

	"github.com/salog0d/glint/internal/grammar"
	"github.com/salog0d/glint/internal/token"
)

// jsonDocument is the top-level JSON output shape.
type jsonDocument struct {
	Language grammar.Language `json:"language"`
	Stats    Stats            `json:"stats"`
	Tokens   []jsonToken      `json:"tokens"`
}

// jsonToken flattens a token for machine consumers.
type jsonToken struct {
	Kind         string `json:"kind"`
	Text         string `json:"text"`
	Start        int    `json:"start"`
	End          int    `json:"end"`
	Line         int    `json:"line"`
	Column       int    `json:"column"`
	Unterminated bool   `json:"unterminated,omitempty"`
}

// JSON renders the token stream and its stats as an indented JSON
// document.
func JSON(lang grammar.Language, toks []token.Token) (string, error) {
	doc := jsonDocument{
		Language: lang,
		Stats:    Collect(toks),
		Tokens:   make([]jsonToken, 0, len(toks)),
	}
	for _, t := range toks {
		doc.Tokens = append(doc.Tokens, jsonToken{
			Kind:         t.Kind.String(),
			Text:         t.Text,
			Start:        t.Start,
			End:          t.End,
			Line:         t.Line,
			Column:       t.Column,
			Unterminated: t.Unterminated,
		})
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal tokens: %w", err)
	}
	return string(out) + "\n", nil
}

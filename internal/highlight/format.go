package highlight

import (
	"fmt"
	"strings"

	"github.com/salog0d/glint/internal/token"
)

// Format selects an output renderer.
type Format string

const (
	FormatANSI Format = "ansi"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatANSI:
		return FormatANSI, nil
	case FormatHTML:
		return FormatHTML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want ansi, html or json)", name)
	}
}

// Render dispatches to the renderer for the format.
func Render(f Format, doc Doc, toks []token.Token) (string, error) {
	switch f {
	case FormatANSI:
		return ANSI(toks), nil
	case FormatHTML:
		return HTML(doc, toks), nil
	case FormatJSON:
		return JSON(doc.Language, toks)
	default:
		return "", fmt.Errorf("unknown output format %q", f)
	}
}

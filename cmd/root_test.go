package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salog0d/glint/internal/grammar"
	"github.com/salog0d/glint/internal/highlight"
)

func TestHashKey_DeterministicPerContent(t *testing.T) {
	a := hashKey(grammar.Python, highlight.FormatANSI, "x = 1\n")
	b := hashKey(grammar.Python, highlight.FormatANSI, "x = 1\n")
	assert.Equal(t, a, b)
}

func TestHashKey_VariesWithInputs(t *testing.T) {
	base := hashKey(grammar.Python, highlight.FormatANSI, "x = 1\n")

	assert.NotEqual(t, base, hashKey(grammar.Python, highlight.FormatANSI, "x = 2\n"),
		"content change must change the key")
	assert.NotEqual(t, base, hashKey(grammar.SQL, highlight.FormatANSI, "x = 1\n"),
		"language change must change the key")
	assert.NotEqual(t, base, hashKey(grammar.Python, highlight.FormatHTML, "x = 1\n"),
		"format change must change the key")
}

func TestResolveLanguage_ConfigOverridesExtension(t *testing.T) {
	old := cfg.Language
	t.Cleanup(func() { cfg.Language = old })

	cfg.Language = "racket"
	lang, err := resolveLanguage("script.py")
	require.NoError(t, err)
	assert.Equal(t, grammar.Racket, lang)
}

func TestResolveLanguage_DetectsFromExtension(t *testing.T) {
	old := cfg.Language
	t.Cleanup(func() { cfg.Language = old })
	cfg.Language = ""

	tests := map[string]grammar.Language{
		"main.py":    grammar.Python,
		"lib.rkt":    grammar.Racket,
		"schema.sql": grammar.SQL,
	}
	for path, want := range tests {
		lang, err := resolveLanguage(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, lang, path)
	}

	_, err := resolveLanguage("notes.txt")
	assert.Error(t, err)
}

func TestResolveLanguage_RejectsUnknownOverride(t *testing.T) {
	old := cfg.Language
	t.Cleanup(func() { cfg.Language = old })

	cfg.Language = "cobol"
	_, err := resolveLanguage("main.py")
	assert.Error(t, err)
}

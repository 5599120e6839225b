package ortho

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProfile = `# digraphs before single letters
sch	ʃ
ch	x
a
b
c
h
s
u
`

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile(strings.NewReader(sampleProfile))
	require.NoError(t, err)
	assert.Equal(t, 8, p.Len())
}

func TestParseProfile_Errors(t *testing.T) {
	_, err := ParseProfile(strings.NewReader("# only comments\n"))
	assert.ErrorContains(t, err, "no graphemes")

	_, err = ParseProfile(strings.NewReader("\tipa-only\n"))
	assert.ErrorContains(t, err, "empty grapheme")
}

func TestTokenizer_LongestMatch(t *testing.T) {
	p, err := ParseProfile(strings.NewReader(sampleProfile))
	require.NoError(t, err)
	tok := NewTokenizer(p)

	tests := []struct {
		input string
		want  string
	}{
		// "sch" wins over "s"+"ch" and "s"+"c"+"h"
		{"schach", "ʃ a x"},
		{"bach", "b a x"},
		{"busch", "b u ʃ"},
		// unknown runes pass through as single tokens
		{"bax", "b a x"},
		// whitespace separates but produces no token
		{"ab  ba", "a b b a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.Tokenize(tt.input))
		})
	}
}

func TestTokenizer_GraphemeFallback(t *testing.T) {
	tok := NewTokenizer(nil)

	assert.Equal(t, "h e l l o", tok.Tokenize("hello"))

	// Combining marks stay attached to their base character.
	decomposed := "e\u0301le\u0301"
	assert.Equal(t, "\u00e9 l \u00e9", tok.Tokenize(decomposed))

	// Whitespace separates tokens.
	assert.Equal(t, "a b", tok.Tokenize("a b"))
}

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deu.prf")
	require.NoError(t, os.WriteFile(path, []byte(sampleProfile), 0o644))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "ʃ a x", NewTokenizer(p).Tokenize("schach"))

	_, err = LoadProfile(filepath.Join(dir, "missing.prf"))
	assert.Error(t, err)
}

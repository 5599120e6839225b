package dict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glottolabs/qlcdict/internal/ortho"
)

const helloQLC = `ID	HEAD	TRANSLATION
1	hello	hallo
2	foot	fuss
`

func helloDict(t *testing.T) *Dictionary {
	t.Helper()
	doc, err := qlcParse(t, helloQLC)
	require.NoError(t, err)
	d, err := New(doc, Options{})
	require.NoError(t, err)
	return d
}

func TestTokenize_TokensTarget(t *testing.T) {
	d := helloDict(t)
	tok := ortho.NewTokenizer(nil)

	err := d.Tokenize(tok, TokenizeOptions{})
	require.NoError(t, err)

	values, err := d.Values("tokens")
	require.NoError(t, err)

	// The reserved "tokens" target stores token sequences, not strings.
	seq, ok := values[0].([]string)
	require.True(t, ok, "expected a token sequence, got %T", values[0])
	assert.Equal(t, []string{"h", "e", "l", "l", "o"}, seq)
}

func TestTokenize_StringTarget(t *testing.T) {
	d := helloDict(t)
	tok := ortho.NewTokenizer(nil)

	err := d.Tokenize(tok, TokenizeOptions{Target: "graphemes"})
	require.NoError(t, err)

	values, err := d.Values("graphemes")
	require.NoError(t, err)

	// Any other target stores the tokenizer's native joined output.
	s, ok := values[0].(string)
	require.True(t, ok, "expected a string, got %T", values[0])
	assert.Equal(t, "h e l l o", s)
}

func TestTokenize_SourceAndOverride(t *testing.T) {
	d := helloDict(t)
	tok := ortho.NewTokenizer(nil)

	require.NoError(t, d.Tokenize(tok, TokenizeOptions{Source: "translation"}))

	values, err := d.Values("tokens")
	require.NoError(t, err)
	assert.Equal(t, []string{"h", "a", "l", "l", "o"}, values[0])

	// Re-tokenizing the same target without override is a conflict.
	err = d.Tokenize(tok, TokenizeOptions{Source: "head"})
	assert.ErrorIs(t, err, ErrColumnExists)

	require.NoError(t, d.Tokenize(tok, TokenizeOptions{Source: "head", Override: true}))
	values, err = d.Values("tokens")
	require.NoError(t, err)
	assert.Equal(t, []string{"h", "e", "l", "l", "o"}, values[0])
}

func TestTokenize_WithProfile(t *testing.T) {
	profile, err := ortho.ParseProfile(strings.NewReader("sch\tʃ\nf\nu\ns\n"))
	require.NoError(t, err)

	doc, err := qlcParse(t, "ID\tHEAD\n1\tfuss\n")
	require.NoError(t, err)
	d, err := New(doc, Options{})
	require.NoError(t, err)

	err = d.Tokenize(ortho.NewTokenizer(profile), TokenizeOptions{})
	require.NoError(t, err)

	values, err := d.Values("tokens")
	require.NoError(t, err)
	assert.Equal(t, []string{"f", "u", "s", "s"}, values[0])
}

package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	r := New()

	err := r.Register("head", []string{"head", "HEAD", "hd"}, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, r.Len(), "expected one registered column")

	canonical, err := r.Resolve("head")
	require.NoError(t, err)
	assert.Equal(t, "head", canonical)
}

func TestRegistry_Resolve(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("head", []string{"head", "HEAD", "hd"}, 0))
	require.NoError(t, r.Register("translation", nil, 1))

	tests := []struct {
		name      string
		lookup    string
		want      string
		wantIndex int
		wantErr   bool
	}{
		{name: "canonical name", lookup: "head", want: "head", wantIndex: 0},
		{name: "uppercase alias", lookup: "HEAD", want: "head", wantIndex: 0},
		{name: "short alias", lookup: "hd", want: "head", wantIndex: 0},
		{name: "mixed case", lookup: "Head", want: "head", wantIndex: 0},
		{name: "synthesized upper alias", lookup: "TRANSLATION", want: "translation", wantIndex: 1},
		{name: "unknown name", lookup: "gloss", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.lookup)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownColumn)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			idx, err := r.IndexOf(tt.lookup)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, idx)
		})
	}
}

func TestRegistry_AliasConsistency(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("head", []string{"head", "HEAD", "hd"}, 0))
	require.NoError(t, r.Register("translation", []string{"translation", "TRANSLATION"}, 1))

	// Every alias of a canonical name must resolve to the same index.
	for _, name := range r.Entries() {
		want, err := r.IndexOf(name)
		require.NoError(t, err)

		aliases, err := r.Aliases(name)
		require.NoError(t, err)
		for _, a := range aliases {
			got, err := r.IndexOf(a)
			require.NoError(t, err)
			assert.Equal(t, want, got, "alias %q of %q", a, name)
		}
	}
}

func TestRegistry_DuplicateColumn(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("head", nil, 0))

	err := r.Register("head", nil, 1)
	assert.ErrorIs(t, err, ErrDuplicateColumn)

	// Case-folded canonical names collide too.
	err = r.Register("HEAD", nil, 1)
	assert.ErrorIs(t, err, ErrDuplicateColumn)
}

func TestRegistry_NextIndex(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.NextIndex(), "empty registry starts at 0")

	require.NoError(t, r.Register("head", nil, 0))
	require.NoError(t, r.Register("translation", nil, 1))
	assert.Equal(t, 2, r.NextIndex())

	// Index assignment is append-only even with gaps.
	require.NoError(t, r.Register("ipa", nil, 5))
	assert.Equal(t, 6, r.NextIndex())
}

func TestRegistry_Entries(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("translation", nil, 0))
	require.NoError(t, r.Register("head", nil, 1))
	require.NoError(t, r.Register("ipa", nil, 2))

	assert.Equal(t, []string{"head", "ipa", "translation"}, r.Entries(), "entries are sorted")
}

func TestRegistry_SynthesizedAliases(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("tokens", nil, 0))

	aliases, err := r.Aliases("tokens")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"tokens", "TOKENS"}, aliases,
		"default alias pair is lower and upper spelling")
}

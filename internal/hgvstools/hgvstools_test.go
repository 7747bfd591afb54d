package hgvstools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Substitution(t *testing.T) {
	e, err := Parse("NC_000001.11:g.100A>T")
	require.NoError(t, err)
	assert.Equal(t, EditSubstitution, e.Edit)
	assert.Equal(t, int64(100), e.Start)
	assert.Equal(t, "A", e.Ref)
	assert.Equal(t, "T", e.Alt)
}

func TestParse_Deletion(t *testing.T) {
	e, err := Parse("NC_000001.11:g.100_102delACG")
	require.NoError(t, err)
	assert.Equal(t, EditDeletion, e.Edit)
	assert.Equal(t, int64(100), e.Start)
	assert.Equal(t, int64(102), e.End)
	assert.Equal(t, "ACG", e.Ref)
}

func TestParse_Insertion(t *testing.T) {
	e, err := Parse("NC_000001.11:g.100_101insGGG")
	require.NoError(t, err)
	assert.Equal(t, EditInsertion, e.Edit)
	assert.Equal(t, "GGG", e.Alt)
}

func TestParse_Delins(t *testing.T) {
	e, err := Parse("NC_000001.11:g.100_102delinsGGG")
	require.NoError(t, err)
	assert.Equal(t, EditDelins, e.Edit)
	assert.Equal(t, "GGG", e.Alt)
}

func TestFormat_RoundTrip(t *testing.T) {
	for _, s := range []string{
		"NC_000001.11:g.100A>T",
		"NC_000001.11:g.100_102delACG",
		"NC_000001.11:g.100_101insGGG",
		"NC_000001.11:g.100_102delinsGGG",
	} {
		e, err := Parse(s)
		require.NoError(t, err)
		out, err := Format(e)
		require.NoError(t, err)
		assert.Equal(t, s, out)
	}
}

func TestParse_Unrecognized(t *testing.T) {
	_, err := Parse("not a variant")
	assert.Error(t, err)
}

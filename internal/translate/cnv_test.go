package translate

import (
	"context"
	"testing"

	"github.com/ga4gh/vrs-go/internal/vrs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyNumberTranslator_FromHGVS_DeletionDefaultsToLoss(t *testing.T) {
	repo := newFakeRepo()
	tr := NewCopyNumberTranslator(repo, nil)

	result, err := tr.FromHGVS(context.Background(), "SQ.test:g.1_4del", CopyNumberOptions{})
	require.NoError(t, err)

	cx, ok := result.(*vrs.CopyNumberChange)
	require.True(t, ok)
	assert.Equal(t, vrs.CopyChangeLoss, cx.CopyChange)
	assert.Regexp(t, `^ga4gh:CX\.[0-9A-Za-z_-]{32}$`, cx.ID)

	loc, ok := cx.Subject.Value()
	require.True(t, ok)
	assert.Equal(t, int64(0), loc.Start.Value())
	assert.Equal(t, int64(4), loc.End.Value())
}

func TestCopyNumberTranslator_FromHGVS_DuplicationDefaultsToGain(t *testing.T) {
	repo := newFakeRepo()
	tr := NewCopyNumberTranslator(repo, nil)

	result, err := tr.FromHGVS(context.Background(), "SQ.test:g.1_4dup", CopyNumberOptions{})
	require.NoError(t, err)

	cx, ok := result.(*vrs.CopyNumberChange)
	require.True(t, ok)
	assert.Equal(t, vrs.CopyChangeGain, cx.CopyChange)
}

func TestCopyNumberTranslator_FromHGVS_ExplicitCopies(t *testing.T) {
	repo := newFakeRepo()
	tr := NewCopyNumberTranslator(repo, nil)

	copies := int64(3)
	result, err := tr.FromHGVS(context.Background(), "SQ.test:g.1_4del", CopyNumberOptions{Copies: &copies})
	require.NoError(t, err)

	cn, ok := result.(*vrs.CopyNumberCount)
	require.True(t, ok)
	assert.Equal(t, int64(3), cn.Copies.Value())
	assert.Regexp(t, `^ga4gh:CN\.[0-9A-Za-z_-]{32}$`, cn.ID)
}

func TestCopyNumberTranslator_FromHGVS_RejectsNonStructuralEdit(t *testing.T) {
	repo := newFakeRepo()
	tr := NewCopyNumberTranslator(repo, nil)

	_, err := tr.FromHGVS(context.Background(), "SQ.test:g.5A>T", CopyNumberOptions{})
	assert.Error(t, err)
}

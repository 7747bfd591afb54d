package translate

import (
	"context"
	"testing"

	"github.com/ga4gh/vrs-go/internal/seqrepo"
	"github.com/ga4gh/vrs-go/internal/vrs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	sequences map[string]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{sequences: map[string]string{"SQ.test": "ACGTACGT"}}
}

func (f *fakeRepo) GetSequence(_ context.Context, accession string, start, end int64) (string, error) {
	return f.sequences[accession][start:end], nil
}

func (f *fakeRepo) GetMetadata(_ context.Context, accession string) (seqrepo.Metadata, error) {
	return seqrepo.Metadata{RefgetAccession: accession, Length: int64(len(f.sequences[accession]))}, nil
}

func (f *fakeRepo) TranslateSequenceIdentifier(_ context.Context, alias string) (string, error) {
	return alias, nil
}

func TestTranslateFrom_SPDI(t *testing.T) {
	repo := newFakeRepo()
	tr := NewAlleleTranslator(repo, nil)

	allele, err := tr.TranslateFrom(context.Background(), "SQ.test:4:A:T", FormatSPDI)
	require.NoError(t, err)
	state, ok := allele.State.(vrs.LiteralSequenceExpression)
	require.True(t, ok)
	assert.Equal(t, "T", state.Sequence)
}

func TestTranslateFrom_GnomAD(t *testing.T) {
	repo := newFakeRepo()
	tr := NewAlleleTranslator(repo, nil)

	allele, err := tr.TranslateFrom(context.Background(), "SQ.test-5-A-T", FormatGnomAD)
	require.NoError(t, err)
	loc, _ := allele.Location.Value()
	assert.Equal(t, int64(4), loc.Start.Value())
	assert.Equal(t, int64(5), loc.End.Value())
}

func TestTranslateFrom_Beacon(t *testing.T) {
	repo := newFakeRepo()
	tr := NewAlleleTranslator(repo, nil)

	allele, err := tr.TranslateFrom(context.Background(), "SQ.test:5A>T", FormatBeacon)
	require.NoError(t, err)
	loc, _ := allele.Location.Value()
	assert.Equal(t, int64(4), loc.Start.Value())
}

func TestTranslateFrom_RefMismatch(t *testing.T) {
	repo := newFakeRepo()
	tr := NewAlleleTranslator(repo, nil)

	_, err := tr.TranslateFrom(context.Background(), "SQ.test:4:C:T", FormatSPDI)
	assert.Error(t, err)
}

func TestTranslateFrom_HGVS(t *testing.T) {
	repo := newFakeRepo()
	tr := NewAlleleTranslator(repo, nil)

	allele, err := tr.TranslateFrom(context.Background(), "SQ.test:g.5A>T", FormatHGVS)
	require.NoError(t, err)
	loc, _ := allele.Location.Value()
	assert.Equal(t, int64(4), loc.Start.Value())
	assert.Equal(t, int64(5), loc.End.Value())
}

func TestTranslateTo_SPDI_RoundTrip(t *testing.T) {
	repo := newFakeRepo()
	tr := NewAlleleTranslator(repo, nil)

	allele, err := tr.TranslateFrom(context.Background(), "SQ.test:4:A:T", FormatSPDI)
	require.NoError(t, err)

	out, err := tr.TranslateTo(context.Background(), allele, FormatSPDI)
	require.NoError(t, err)
	assert.Equal(t, "SQ.test:4:A:T", out)
}

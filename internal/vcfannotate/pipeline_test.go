package vcfannotate

import (
	"context"
	"testing"

	"github.com/ga4gh/vrs-go/internal/seqrepo"
	"github.com/ga4gh/vrs-go/internal/translate"
	"github.com/ga4gh/vrs-go/internal/vcf"
	"github.com/ga4gh/vrs-go/internal/vrs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	sequences map[string]string
}

func (f *fakeRepo) GetSequence(_ context.Context, accession string, start, end int64) (string, error) {
	return f.sequences[accession][start:end], nil
}

func (f *fakeRepo) GetMetadata(_ context.Context, accession string) (seqrepo.Metadata, error) {
	return seqrepo.Metadata{RefgetAccession: accession}, nil
}

func (f *fakeRepo) TranslateSequenceIdentifier(_ context.Context, alias string) (string, error) {
	return "SQ." + alias, nil
}

func TestPipeline_TranslateOne(t *testing.T) {
	repo := &fakeRepo{sequences: map[string]string{"SQ.GRCh38:1": "ACGTACGT"}}
	resolve := func(ctx context.Context, name string) (string, error) {
		return repo.TranslateSequenceIdentifier(ctx, name)
	}
	tr := translate.NewAlleleTranslator(repo, resolve)
	p := NewPipeline(tr)

	v := &vcf.Variant{Chrom: "1", Pos: 5, Ref: "A", Alt: "T"}
	alt, ref, err := p.TranslateOne(context.Background(), v)
	require.NoError(t, err)
	require.NotNil(t, alt)
	state, ok := alt.State.(vrs.LiteralSequenceExpression)
	require.True(t, ok)
	assert.Equal(t, "T", state.Sequence)

	require.NotNil(t, ref)
	refState, ok := ref.State.(vrs.LiteralSequenceExpression)
	require.True(t, ok)
	assert.Equal(t, "A", refState.Sequence)
}

func TestPipeline_TranslateOne_SkipRef(t *testing.T) {
	repo := &fakeRepo{sequences: map[string]string{"SQ.GRCh38:1": "ACGTACGT"}}
	resolve := func(ctx context.Context, name string) (string, error) {
		return repo.TranslateSequenceIdentifier(ctx, name)
	}
	tr := translate.NewAlleleTranslator(repo, resolve)
	p := NewPipeline(tr)
	p.SetSkipRef(true)

	v := &vcf.Variant{Chrom: "1", Pos: 5, Ref: "A", Alt: "T"}
	alt, ref, err := p.TranslateOne(context.Background(), v)
	require.NoError(t, err)
	require.NotNil(t, alt)
	assert.Nil(t, ref)
}

func TestParallelTranslateAndOrderedCollect_PreservesOrder(t *testing.T) {
	repo := &fakeRepo{sequences: map[string]string{"SQ.GRCh38:1": "ACGTACGTACGT"}}
	resolve := func(ctx context.Context, name string) (string, error) {
		return repo.TranslateSequenceIdentifier(ctx, name)
	}
	tr := translate.NewAlleleTranslator(repo, resolve)
	p := NewPipeline(tr)

	items := make(chan WorkItem, 10)
	for i := 0; i < 10; i++ {
		items <- WorkItem{Seq: i, Variant: &vcf.Variant{Chrom: "1", Pos: int64(i + 1), Ref: "A", Alt: "T"}}
	}
	close(items)

	results := p.ParallelTranslate(context.Background(), items, 4)

	var seen []int
	err := OrderedCollect(results, func(r WorkResult) error {
		seen = append(seen, r.Seq)
		return nil
	})
	require.NoError(t, err)
	for i, s := range seen {
		assert.Equal(t, i, s)
	}
}

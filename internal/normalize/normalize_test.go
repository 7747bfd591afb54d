package normalize

import (
	"context"
	"testing"

	"github.com/ga4gh/vrs-go/internal/vrs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves slices of a single fixed reference sequence,
// keyed by accession, for deterministic test fixtures.
type fakeSource struct {
	sequences map[string]string
}

func (f *fakeSource) GetSequence(_ context.Context, accession string, start, end int64) (string, error) {
	seq := f.sequences[accession]
	if start < 0 {
		start = 0
	}
	if end > int64(len(seq)) {
		end = int64(len(seq))
	}
	return seq[start:end], nil
}

func TestNormalize_Substitution(t *testing.T) {
	src := &fakeSource{sequences: map[string]string{"SQ.test": "ACGTACGTACGT"}}
	allele := &vrs.Allele{
		Location: vrs.Inline(vrs.SequenceLocation{
			SequenceReference: vrs.Inline(vrs.SequenceReference{RefgetAccession: "SQ.test"}),
			Start:             vrs.Definite(4),
			End:                vrs.Definite(5),
		}),
		State: vrs.LiteralSequenceExpression{Sequence: "T"},
	}
	out, err := Normalize(context.Background(), src, allele)
	require.NoError(t, err)
	lit, ok := out.State.(vrs.LiteralSequenceExpression)
	require.True(t, ok)
	assert.Equal(t, "T", lit.Sequence)
	loc, _ := out.Location.Value()
	assert.Equal(t, int64(4), loc.Start.Value())
	assert.Equal(t, int64(5), loc.End.Value())
}

func TestNormalize_InsertionRollsAcrossTandemRepeat(t *testing.T) {
	// Reference: AT|AT|AT|AT|GG, inserting another "AT" anywhere within
	// the repeat run should normalize to the same representation
	// regardless of where the insertion was originally anchored.
	src := &fakeSource{sequences: map[string]string{"SQ.test": "ATATATATGG"}}

	insertAt := func(pos int64) *vrs.Allele {
		return &vrs.Allele{
			Location: vrs.Inline(vrs.SequenceLocation{
				SequenceReference: vrs.Inline(vrs.SequenceReference{RefgetAccession: "SQ.test"}),
				Start:             vrs.Definite(pos),
				End:                vrs.Definite(pos),
			}),
			State: vrs.LiteralSequenceExpression{Sequence: "AT"},
		}
	}

	out0, err := Normalize(context.Background(), src, insertAt(0))
	require.NoError(t, err)
	out4, err := Normalize(context.Background(), src, insertAt(4))
	require.NoError(t, err)

	rle0, ok := out0.State.(vrs.ReferenceLengthExpression)
	require.True(t, ok, "expected insertion in a tandem repeat to normalize to a ReferenceLengthExpression")
	rle4, ok := out4.State.(vrs.ReferenceLengthExpression)
	require.True(t, ok)

	loc0, _ := out0.Location.Value()
	loc4, _ := out4.Location.Value()
	assert.Equal(t, loc0.Start.Value(), loc4.Start.Value(), "differently anchored insertions in the same repeat must converge")
	assert.Equal(t, loc0.End.Value(), loc4.End.Value())
	assert.Equal(t, rle0.RepeatSubunitLength, rle4.RepeatSubunitLength)
}

func TestNormalize_PassesThroughRangeCoordinates(t *testing.T) {
	src := &fakeSource{sequences: map[string]string{"SQ.test": "ACGT"}}
	lower, upper := int64(1), int64(3)
	allele := &vrs.Allele{
		Location: vrs.Inline(vrs.SequenceLocation{
			SequenceReference: vrs.Inline(vrs.SequenceReference{RefgetAccession: "SQ.test"}),
			Start:             vrs.RangeCoordinate(&lower, &upper),
			End:                vrs.Definite(4),
		}),
		State: vrs.LiteralSequenceExpression{Sequence: "T"},
	}
	out, err := Normalize(context.Background(), src, allele)
	require.NoError(t, err)
	assert.Same(t, allele, out)
}

package enderef

import (
	"context"
	"testing"

	"github.com/ga4gh/vrs-go/internal/objectstore"
	"github.com/ga4gh/vrs-go/internal/vrs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrefDerefAllele_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := objectstore.NewMemStore()

	sr := vrs.SequenceReference{RefgetAccession: "SQ.ss8r_wB0-b9r44TQTMmVTI92884QvBiB"}
	loc := vrs.SequenceLocation{
		SequenceReference: vrs.Inline(sr),
		Start:             vrs.Definite(100),
		End:               vrs.Definite(101),
	}
	allele := &vrs.Allele{
		Location: vrs.Inline(loc),
		State:    vrs.LiteralSequenceExpression{Sequence: "T"},
	}

	require.NoError(t, EnrefAllele(ctx, store, allele))
	assert.True(t, allele.Location.IsRef())
	assert.Regexp(t, `^ga4gh:SL\.`, allele.Location.ID())
	assert.Regexp(t, `^ga4gh:VA\.`, allele.ID)

	has, err := store.Has(ctx, allele.Location.ID())
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, DerefAllele(ctx, store, allele))
	assert.False(t, allele.Location.IsRef())
	derefLoc, ok := allele.Location.Value()
	require.True(t, ok)
	assert.Equal(t, int64(100), derefLoc.Start.Value())
	assert.Equal(t, int64(101), derefLoc.End.Value())
}

func TestDerefAllele_UnknownReference(t *testing.T) {
	ctx := context.Background()
	store := objectstore.NewMemStore()
	allele := &vrs.Allele{
		Location: vrs.ByID[vrs.SequenceLocation]("ga4gh:SL.doesnotexist00000000000000000"),
		State:    vrs.LiteralSequenceExpression{Sequence: "T"},
	}
	err := DerefAllele(ctx, store, allele)
	assert.Error(t, err)
}

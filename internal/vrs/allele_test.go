package vrs

import (
	"testing"

	"github.com/ga4gh/vrs-go/internal/digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAllele() *Allele {
	sr := SequenceReference{RefgetAccession: "SQ.ss8r_wB0-b9r44TQTMmVTI92884QvBiB"}
	loc := SequenceLocation{
		SequenceReference: Inline(sr),
		Start:             Definite(100),
		End:                Definite(101),
	}
	return &Allele{
		Location: Inline(loc),
		State:    LiteralSequenceExpression{Sequence: "T"},
	}
}

func TestAllele_Identify(t *testing.T) {
	a := newTestAllele()
	id, err := digest.Identify(a)
	require.NoError(t, err)
	assert.Regexp(t, `^ga4gh:VA\.[0-9A-Za-z_-]{32}$`, id)
}

func TestAllele_Identify_Deterministic(t *testing.T) {
	a1 := newTestAllele()
	a2 := newTestAllele()
	id1, err := digest.Identify(a1)
	require.NoError(t, err)
	id2, err := digest.Identify(a2)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}

func TestAllele_Identify_IgnoresAnnotations(t *testing.T) {
	a1 := newTestAllele()
	a2 := newTestAllele()
	a2.Label = "some label"
	a2.Description = "some description"
	a2.Extensions = []Extension{{Name: "foo", Value: "bar"}}

	id1, err := digest.Identify(a1)
	require.NoError(t, err)
	id2, err := digest.Identify(a2)
	require.NoError(t, err)
	assert.Equal(t, id1, id2, "annotation-only fields must not affect the digest")
}

func TestAllele_Identify_DiffersOnState(t *testing.T) {
	a1 := newTestAllele()
	a2 := newTestAllele()
	a2.State = LiteralSequenceExpression{Sequence: "A"}

	id1, err := digest.Identify(a1)
	require.NoError(t, err)
	id2, err := digest.Identify(a2)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
}

func TestCopyNumberCount_Identify(t *testing.T) {
	sr := SequenceReference{RefgetAccession: "SQ.ss8r_wB0-b9r44TQTMmVTI92884QvBiB"}
	loc := SequenceLocation{
		SequenceReference: Inline(sr),
		Start:             Definite(0),
		End:                Definite(1000),
	}
	cn := &CopyNumberCount{
		Subject: Inline(loc),
		Copies:  Definite(3),
	}
	id, err := digest.Identify(cn)
	require.NoError(t, err)
	assert.Regexp(t, `^ga4gh:CN\.[0-9A-Za-z_-]{32}$`, id)
}

func TestCopyNumberChange_Identify(t *testing.T) {
	sr := SequenceReference{RefgetAccession: "SQ.ss8r_wB0-b9r44TQTMmVTI92884QvBiB"}
	loc := SequenceLocation{
		SequenceReference: Inline(sr),
		Start:             Definite(0),
		End:                Definite(1000),
	}
	cx := &CopyNumberChange{
		Subject:    Inline(loc),
		CopyChange: CopyChangeLoss,
	}
	id, err := digest.Identify(cx)
	require.NoError(t, err)
	assert.Regexp(t, `^ga4gh:CX\.[0-9A-Za-z_-]{32}$`, id)
}

func TestSequenceLocation_Identify_ReferencedSequenceReference(t *testing.T) {
	loc := SequenceLocation{
		SequenceReference: ByID[SequenceReference]("ga4gh:SQR.abcdefghijklmnopqrstuvwxyz012345"),
		Start:              Definite(5),
		End:                Definite(10),
	}
	id, err := digest.Identify(&loc)
	require.NoError(t, err)
	assert.Regexp(t, `^ga4gh:SL\.[0-9A-Za-z_-]{32}$`, id)
}

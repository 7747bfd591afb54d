package translate

import (
	"context"

	"github.com/ga4gh/vrs-go/internal/digest"
	"github.com/ga4gh/vrs-go/internal/hgvstools"
	"github.com/ga4gh/vrs-go/internal/seqrepo"
	"github.com/ga4gh/vrs-go/internal/vrs"
	"github.com/ga4gh/vrs-go/internal/vrserr"
)

// CopyNumberTranslator converts structural HGVS dup/del expressions to
// a VRS CopyNumberCount or CopyNumberChange, the Go analogue of
// ga4gh/vrs/extras/translator.py's CnvTranslator.
type CopyNumberTranslator struct {
	Repo    seqrepo.Repository
	Resolve AccessionResolver
}

// NewCopyNumberTranslator returns a CopyNumberTranslator backed by repo.
func NewCopyNumberTranslator(repo seqrepo.Repository, resolve AccessionResolver) *CopyNumberTranslator {
	return &CopyNumberTranslator{Repo: repo, Resolve: resolve}
}

// CopyNumberOptions selects which of CopyNumberCount or
// CopyNumberChange FromHGVS produces. When Copies is non-nil the
// result is a CopyNumberCount holding that absolute count; otherwise
// it is a CopyNumberChange holding CopyChange, or -- when CopyChange
// is the empty string -- a format-appropriate default (loss for a
// deletion, gain for a duplication).
type CopyNumberOptions struct {
	Copies     *int64
	CopyChange vrs.CopyChange
}

func (t *CopyNumberTranslator) resolveAccession(ctx context.Context, name string) (string, error) {
	return resolveAccessionVia(ctx, t.Resolve, name)
}

// FromHGVS parses a structural genomic HGVS deletion or duplication
// expression (e.g. "NC_000014.9:g.45002867_45015056del") into an
// identified CopyNumberVariation.
func (t *CopyNumberTranslator) FromHGVS(ctx context.Context, expr string, opts CopyNumberOptions) (vrs.CopyNumberVariation, error) {
	e, err := hgvstools.Parse(expr)
	if err != nil {
		return nil, err
	}
	if e.Edit != hgvstools.EditDeletion && e.Edit != hgvstools.EditDuplication {
		return nil, &vrserr.UnrepresentableError{Format: "hgvs", Reason: "copy number translation requires a structural deletion or duplication"}
	}

	accession, err := t.resolveAccession(ctx, e.Accession)
	if err != nil {
		return nil, err
	}

	loc := vrs.SequenceLocation{
		SequenceReference: vrs.Inline(vrs.SequenceReference{RefgetAccession: accession}),
		Start:             vrs.Definite(e.Start - 1),
		End:               vrs.Definite(e.End),
	}

	if opts.Copies != nil {
		cn := &vrs.CopyNumberCount{Subject: vrs.Inline(loc), Copies: vrs.Definite(*opts.Copies)}
		if err := identify(cn); err != nil {
			return nil, err
		}
		return cn, nil
	}

	copyChange := opts.CopyChange
	if copyChange == "" {
		if e.Edit == hgvstools.EditDeletion {
			copyChange = vrs.CopyChangeLoss
		} else {
			copyChange = vrs.CopyChangeGain
		}
	}
	cx := &vrs.CopyNumberChange{Subject: vrs.Inline(loc), CopyChange: copyChange}
	if err := identify(cx); err != nil {
		return nil, err
	}
	return cx, nil
}

func identify(d digest.Digestible) error {
	id, err := digest.Identify(d)
	if err != nil {
		return err
	}
	switch v := d.(type) {
	case *vrs.CopyNumberCount:
		v.ID = id
		v.Digest = id[len(id)-32:]
	case *vrs.CopyNumberChange:
		v.ID = id
		v.Digest = id[len(id)-32:]
	}
	return nil
}

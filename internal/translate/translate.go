// Package translate converts between VRS Alleles and external variant
// grammars (HGVS, SPDI, gnomAD-style, Beacon-style), the Go analogue
// of ga4gh/vrs/extras/translator.py's AlleleTranslator. Each format's
// regex is grounded directly on translator.py's beacon_re/gnomad_re/
// spdi_re, and the multi-stage pipeline (parse -> resolve accession
// -> build allele -> normalize -> identify) matches _create_allele's
// call sequence there.
package translate

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ga4gh/vrs-go/internal/digest"
	"github.com/ga4gh/vrs-go/internal/hgvstools"
	"github.com/ga4gh/vrs-go/internal/normalize"
	"github.com/ga4gh/vrs-go/internal/seqrepo"
	"github.com/ga4gh/vrs-go/internal/vrs"
	"github.com/ga4gh/vrs-go/internal/vrserr"
)

// Format identifies an external variant grammar.
type Format int

const (
	FormatHGVS Format = iota
	FormatSPDI
	FormatGnomAD
	FormatBeacon
)

var (
	// spdiRe: NC_000001.11:100:A:T  (0-based interbase position)
	spdiRe = regexp.MustCompile(`^([^:]+):(\d+):([A-Za-z]*|\d+):([A-Za-z]*)$`)
	// gnomadRe: 1-100-A-T  (1-based position, chromosome name only)
	gnomadRe = regexp.MustCompile(`^([^-]+)-(\d+)-([ACGTN]+)-([ACGTN]+)$`)
	// beaconRe: 1 : 100 A > T  (1-based position, permissive whitespace)
	beaconRe = regexp.MustCompile(`^([^\s:]+)\s*:\s*(\d+)\s*([ACGTN]+)\s*>\s*([ACGTN]+)$`)
)

// AccessionResolver resolves a bare chromosome/contig name (as used by
// gnomAD and Beacon expressions, which carry no assembly accession) to
// a refget accession via repo's alias translation. Callers that
// already have a fully qualified RefSeq/Ensembl accession can pass it
// straight to the translator's From* functions instead.
type AccessionResolver func(ctx context.Context, name string) (refgetAccession string, err error)

// AlleleTranslator converts between Alleles and the supported
// external grammars, backed by a sequence repository for coordinate
// resolution, state expansion, and normalization.
type AlleleTranslator struct {
	Repo     seqrepo.Repository
	Resolve  AccessionResolver
	// AssemblyName qualifies the bare chromosome name a gnomAD or
	// Beacon expression carries (they omit any assembly accession) into
	// an alias of the form "<assembly>:<chrom>" before resolution.
	// Defaults to "GRCh38" when empty.
	AssemblyName string
}

// NewAlleleTranslator returns a translator backed by repo. resolve may
// be nil; when nil, TranslateFrom for gnomAD/Beacon inputs requires
// the chromosome token to already equal a refget accession.
func NewAlleleTranslator(repo seqrepo.Repository, resolve AccessionResolver) *AlleleTranslator {
	return &AlleleTranslator{Repo: repo, Resolve: resolve}
}

func (t *AlleleTranslator) assemblyName() string {
	if t.AssemblyName == "" {
		return "GRCh38"
	}
	return t.AssemblyName
}

func (t *AlleleTranslator) resolveAccession(ctx context.Context, name string) (string, error) {
	return resolveAccessionVia(ctx, t.Resolve, name)
}

// resolveAccessionVia resolves name to a refget accession, passing
// SQ.-prefixed names through unchanged and otherwise delegating to
// resolve. Shared by AlleleTranslator and CopyNumberTranslator.
func resolveAccessionVia(ctx context.Context, resolve AccessionResolver, name string) (string, error) {
	if strings.HasPrefix(name, "SQ.") {
		return name, nil
	}
	if resolve != nil {
		return resolve(ctx, name)
	}
	return "", &vrserr.UnknownReferenceError{Identifier: name}
}

// TranslateFrom parses expr in the given format and returns the
// resulting, fully-justified-normalized, identified Allele.
func (t *AlleleTranslator) TranslateFrom(ctx context.Context, expr string, format Format) (*vrs.Allele, error) {
	var (
		accessionToken string
		start, end     int64
		ref, alt       string
		err            error
	)

	switch format {
	case FormatHGVS:
		return t.fromHGVS(ctx, expr)
	case FormatSPDI:
		m := spdiRe.FindStringSubmatch(expr)
		if m == nil {
			return nil, &vrserr.UnrepresentableError{Format: "spdi", Reason: fmt.Sprintf("cannot parse SPDI expression %q", expr)}
		}
		accessionToken = m[1]
		pos, perr := strconv.ParseInt(m[2], 10, 64)
		if perr != nil {
			return nil, &vrserr.UnrepresentableError{Format: "spdi", Reason: "invalid position"}
		}
		ref = strings.ToUpper(m[3])
		alt = strings.ToUpper(m[4])
		start = pos
		end = pos + int64(len(ref))
	case FormatGnomAD:
		m := gnomadRe.FindStringSubmatch(expr)
		if m == nil {
			return nil, &vrserr.UnrepresentableError{Format: "gnomad", Reason: fmt.Sprintf("cannot parse gnomAD expression %q", expr)}
		}
		accessionToken = m[1]
		pos, _ := strconv.ParseInt(m[2], 10, 64)
		ref = strings.ToUpper(m[3])
		alt = strings.ToUpper(m[4])
		start = pos - 1 // gnomAD is 1-based; VRS is 0-based interbase
		end = start + int64(len(ref))
	case FormatBeacon:
		m := beaconRe.FindStringSubmatch(expr)
		if m == nil {
			return nil, &vrserr.UnrepresentableError{Format: "beacon", Reason: fmt.Sprintf("cannot parse Beacon expression %q", expr)}
		}
		accessionToken = m[1]
		pos, _ := strconv.ParseInt(m[2], 10, 64)
		ref = strings.ToUpper(m[3])
		alt = strings.ToUpper(m[4])
		start = pos - 1
		end = start + int64(len(ref))
	default:
		return nil, &vrserr.UnrepresentableError{Format: "unknown", Reason: "unsupported translation format"}
	}

	// gnomAD and Beacon expressions carry a bare chromosome name with no
	// assembly accession; qualify it into a "<assembly>:<chrom>" alias
	// before resolution, unless the caller already passed a refget
	// accession directly.
	if (format == FormatGnomAD || format == FormatBeacon) && !strings.HasPrefix(accessionToken, "SQ.") {
		accessionToken = t.assemblyName() + ":" + accessionToken
	}

	accession, err := t.resolveAccession(ctx, accessionToken)
	if err != nil {
		return nil, err
	}
	if err := t.validateRef(ctx, accession, start, end, ref); err != nil {
		return nil, err
	}

	allele := &vrs.Allele{
		Location: vrs.Inline(vrs.SequenceLocation{
			SequenceReference: vrs.Inline(vrs.SequenceReference{RefgetAccession: accession}),
			Start:             vrs.Definite(start),
			End:               vrs.Definite(end),
		}),
		State: vrs.LiteralSequenceExpression{Sequence: alt},
	}
	return t.postProcess(ctx, allele)
}

// validateRef checks that the reference bases an external expression
// claims actually match the repository, corresponding to the
// optional RefValidated pipeline stage: ungapped SPDI/gnomAD/Beacon
// inputs carry a literal reference allele that can disagree with the
// assembly if the caller transcribed coordinates incorrectly.
func (t *AlleleTranslator) validateRef(ctx context.Context, accession string, start, end int64, ref string) error {
	if ref == "" {
		return nil
	}
	observed, err := t.Repo.GetSequence(ctx, accession, start, end)
	if err != nil {
		return err
	}
	if !strings.EqualFold(observed, ref) {
		return &vrserr.ReferenceMismatchError{Accession: accession, Start: start, End: end, Expected: ref, Observed: observed}
	}
	return nil
}

func (t *AlleleTranslator) fromHGVS(ctx context.Context, expr string) (*vrs.Allele, error) {
	e, err := hgvstools.Parse(expr)
	if err != nil {
		return nil, err
	}
	accession, err := t.resolveAccession(ctx, e.Accession)
	if err != nil {
		return nil, err
	}

	// HGVS positions are 1-based inclusive; VRS locations are 0-based
	// interbase. start = firstBase-1, end = lastBase.
	var start, end int64
	var state vrs.StateExpression
	switch e.Edit {
	case hgvstools.EditSubstitution:
		start, end = e.Start-1, e.Start
		state = vrs.LiteralSequenceExpression{Sequence: e.Alt}
	case hgvstools.EditDeletion:
		start, end = e.Start-1, e.End
		state = vrs.LiteralSequenceExpression{Sequence: ""}
	case hgvstools.EditInsertion:
		start, end = e.Start, e.Start // insertions anchor between two HGVS-adjacent bases
		state = vrs.LiteralSequenceExpression{Sequence: e.Alt}
	case hgvstools.EditDelins:
		start, end = e.Start-1, e.End
		state = vrs.LiteralSequenceExpression{Sequence: e.Alt}
	case hgvstools.EditDuplication:
		start, end = e.End, e.End // a duplication inserts a copy immediately after the duplicated span
		dup, derr := t.Repo.GetSequence(ctx, accession, e.Start-1, e.End)
		if derr != nil {
			return nil, derr
		}
		state = vrs.LiteralSequenceExpression{Sequence: dup}
	default:
		return nil, &vrserr.UnrepresentableError{Format: "hgvs", Reason: "unsupported edit type"}
	}

	allele := &vrs.Allele{
		Location: vrs.Inline(vrs.SequenceLocation{
			SequenceReference: vrs.Inline(vrs.SequenceReference{RefgetAccession: accession}),
			Start:             vrs.Definite(start),
			End:               vrs.Definite(end),
		}),
		State: state,
	}
	return t.postProcess(ctx, allele)
}

// postProcess normalizes and identifies a freshly built allele, the
// Go counterpart of translator.py's _post_process_imported_allele.
func (t *AlleleTranslator) postProcess(ctx context.Context, allele *vrs.Allele) (*vrs.Allele, error) {
	if lit, ok := allele.State.(vrs.LiteralSequenceExpression); ok {
		if err := vrs.ValidateSequence(vrs.AlphabetDNA, lit.Sequence); err != nil {
			return nil, err
		}
	}

	normalized, err := normalize.Normalize(ctx, t.Repo, allele)
	if err != nil {
		return nil, err
	}
	id, err := digest.Identify(normalized)
	if err != nil {
		return nil, err
	}
	normalized.ID = id
	normalized.Digest = id[len(id)-32:]
	return normalized, nil
}

// TranslateTo renders allele in the given external format. Only
// LiteralSequenceExpression and fully-decompressible
// ReferenceLengthExpression states can be rendered; a
// LengthExpression state has no defined literal sequence and yields
// *vrserr.UnrepresentableError.
func (t *AlleleTranslator) TranslateTo(ctx context.Context, allele *vrs.Allele, format Format) (string, error) {
	loc, ok := allele.Location.Value()
	if !ok {
		return "", &vrserr.InvalidInputError{Input: "allele.location", Reason: "translation requires an inlined location"}
	}
	sr, ok := loc.SequenceReference.Value()
	if !ok {
		return "", &vrserr.InvalidInputError{Input: "allele.location.sequenceReference", Reason: "translation requires an inlined sequence reference"}
	}
	if !loc.IsDefinite() {
		return "", &vrserr.UnrepresentableError{Format: formatName(format), Reason: "range-valued coordinates have no exact external representation"}
	}

	alt, err := literalState(ctx, t.Repo, sr.RefgetAccession, allele.State)
	if err != nil {
		return "", err
	}
	start, end := loc.Start.Value(), loc.End.Value()
	ref, err := t.Repo.GetSequence(ctx, sr.RefgetAccession, start, end)
	if err != nil {
		return "", err
	}

	switch format {
	case FormatSPDI:
		return fmt.Sprintf("%s:%d:%s:%s", sr.RefgetAccession, start, ref, alt), nil
	case FormatGnomAD:
		return fmt.Sprintf("%s-%d-%s-%s", sr.RefgetAccession, start+1, ref, alt), nil
	case FormatBeacon:
		return fmt.Sprintf("%s:%d%s>%s", sr.RefgetAccession, start+1, ref, alt), nil
	case FormatHGVS:
		return toHGVS(sr.RefgetAccession, start, end, ref, alt)
	default:
		return "", &vrserr.UnrepresentableError{Format: "unknown", Reason: "unsupported translation format"}
	}
}

func literalState(ctx context.Context, repo seqrepo.Repository, refgetAccession string, state vrs.StateExpression) (string, error) {
	switch s := state.(type) {
	case vrs.LiteralSequenceExpression:
		return s.Sequence, nil
	case vrs.ReferenceLengthExpression:
		if s.Sequence != "" {
			return s.Sequence, nil
		}
		return "", &vrserr.UnrepresentableError{Format: "literal", Reason: "ReferenceLengthExpression has no anchored repeat subunit to expand"}
	default:
		return "", &vrserr.UnrepresentableError{Format: "literal", Reason: fmt.Sprintf("%T has no literal sequence", state)}
	}
}

func toHGVS(accession string, start, end int64, ref, alt string) (string, error) {
	e := &hgvstools.Expression{Accession: accession}
	switch {
	case len(ref) == 1 && len(alt) == 1:
		e.Edit, e.Start, e.End, e.Ref, e.Alt = hgvstools.EditSubstitution, start+1, start+1, ref, alt
	case alt == "":
		e.Edit, e.Start, e.End, e.Ref = hgvstools.EditDeletion, start+1, end, ref
	case ref == "":
		e.Edit, e.Start, e.End, e.Alt = hgvstools.EditInsertion, start, start+1, alt
	default:
		e.Edit, e.Start, e.End, e.Alt = hgvstools.EditDelins, start+1, end, alt
	}
	return hgvstools.Format(e)
}

func formatName(f Format) string {
	switch f {
	case FormatHGVS:
		return "hgvs"
	case FormatSPDI:
		return "spdi"
	case FormatGnomAD:
		return "gnomad"
	case FormatBeacon:
		return "beacon"
	default:
		return "unknown"
	}
}

// Package normalize implements fully-justified allele normalization:
// trimming a literal allele down to its minimal variable region and,
// for insertions/deletions, rolling that region as far as the
// surrounding reference allows so that two differently-anchored
// descriptions of the same variant converge on one canonical
// representation. Grounded on ga4gh/vrs/_internal/vmc/normalize.py's
// trim_left/normalize functions, extended here to roll in both
// directions rather than vmc's right-only trim.
package normalize

import (
	"context"
	"fmt"

	"github.com/ga4gh/vrs-go/internal/vrs"
	"github.com/ga4gh/vrs-go/internal/vrserr"
)

// SequenceSource supplies reference bases for a refget accession,
// interbase-coordinate half-open [start, end). Implementations
// typically wrap internal/seqrepo.Repository.
type SequenceSource interface {
	GetSequence(ctx context.Context, refgetAccession string, start, end int64) (string, error)
}

// windowRadius bounds how far normalization will roll or extend its
// search window past the original allele bounds when looking for a
// tandem-repeat boundary. Rolling stops at the edge of this window,
// so a repeat run that extends further is only partly covered.
const windowRadius = 10000

// Normalize returns a new Allele equivalent to in, trimmed of any
// invariant prefix/suffix shared between reference and alternate
// sequence and, for pure insertions/deletions, rolled both left and
// right across the surrounding repeat run so that the location spans
// every position the indel could occupy. in is not modified.
func Normalize(ctx context.Context, src SequenceSource, in *vrs.Allele) (*vrs.Allele, error) {
	loc, ok := in.Location.Value()
	if !ok {
		return nil, &vrserr.InvalidInputError{Input: "allele.location", Reason: "normalization requires an inlined SequenceLocation"}
	}
	if !loc.IsDefinite() {
		// Range-valued coordinates describe a genuinely uncertain
		// breakpoint; leave collapsing that uncertainty to the caller.
		return in, nil
	}
	sr, ok := loc.SequenceReference.Value()
	if !ok {
		return nil, &vrserr.InvalidInputError{Input: "allele.location.sequenceReference", Reason: "normalization requires an inlined SequenceReference"}
	}

	altSeq, err := literalAlt(ctx, src, sr.RefgetAccession, in.State)
	if err != nil {
		return nil, err
	}
	refSeq, err := src.GetSequence(ctx, sr.RefgetAccession, loc.Start.Value(), loc.End.Value())
	if err != nil {
		return nil, err
	}

	start, end := loc.Start.Value(), loc.End.Value()
	trimRef, trimAlt, start, end := trim(refSeq, altSeq, start, end)

	var outState vrs.StateExpression
	switch {
	case trimRef == "" && trimAlt == "":
		// Identity: the alternate equals the reference span; the allele is
		// emitted with its original location and the reference span as state.
		start, end = loc.Start.Value(), loc.End.Value()
		outState = vrs.LiteralSequenceExpression{Sequence: refSeq}
	case trimRef == "" || trimAlt == "":
		start, end, outState, err = rollIndel(ctx, src, sr.RefgetAccession, start, end, trimRef, trimAlt)
		if err != nil {
			return nil, err
		}
	default:
		// Substitution or complex delins: no rolling applies, the
		// trimmed literal is already maximally justified.
		outState = vrs.LiteralSequenceExpression{Sequence: trimAlt}
	}

	out := &vrs.Allele{
		Location: vrs.Inline(vrs.SequenceLocation{
			SequenceReference: vrs.Inline(sr),
			Start:              vrs.Definite(start),
			End:                vrs.Definite(end),
		}),
		State:       outState,
		Annotations: in.Annotations,
	}
	return out, nil
}

// literalAlt resolves in's State to a literal sequence, expanding a
// ReferenceLengthExpression against src when necessary.
func literalAlt(ctx context.Context, src SequenceSource, refgetAccession string, state vrs.StateExpression) (string, error) {
	switch s := state.(type) {
	case vrs.LiteralSequenceExpression:
		return s.Sequence, nil
	case vrs.ReferenceLengthExpression:
		if s.Sequence != "" {
			return s.Sequence, nil
		}
		return "", &vrserr.UnrepresentableError{Format: "ReferenceLengthExpression", Reason: "cannot expand without a repeat subunit anchor"}
	default:
		return "", &vrserr.UnrepresentableError{Format: fmt.Sprintf("%T", state), Reason: "normalization requires a literal or reference-length state"}
	}
}

// trim strips the longest common prefix and suffix shared between
// ref and alt, shrinking [start, end) to match the remaining ref
// span. Grounded on vmc/normalize.py's trim_left, generalized to trim
// both ends.
func trim(ref, alt string, start, end int64) (trimmedRef, trimmedAlt string, newStart, newEnd int64) {
	i := 0
	for i < len(ref) && i < len(alt) && ref[i] == alt[i] {
		i++
	}
	ref, alt = ref[i:], alt[i:]
	start += int64(i)

	j := 0
	for j < len(ref) && j < len(alt) && ref[len(ref)-1-j] == alt[len(alt)-1-j] {
		j++
	}
	ref = ref[:len(ref)-j]
	alt = alt[:len(alt)-j]
	end -= int64(j)

	return ref, alt, start, end
}

// rollIndel rolls a pure insertion or deletion left and right as far
// as the reference allows, widens the location to the rolled span, and
// expresses the state over that span: the reference flank left of the
// change, the inserted sequence (empty for a deletion), then the
// reference flank right of it. bubble is whichever of trimRef/trimAlt
// is non-empty -- the inserted or deleted sequence.
func rollIndel(ctx context.Context, src SequenceSource, refgetAccession string, start, end int64, trimRef, trimAlt string) (int64, int64, vrs.StateExpression, error) {
	isDeletion := trimRef != ""
	bubble := trimRef
	if !isDeletion {
		bubble = trimAlt
	}
	n := int64(len(bubble))

	loFetch := start - windowRadius
	if loFetch < 0 {
		loFetch = 0
	}
	hiFetch := end + windowRadius

	flank, err := src.GetSequence(ctx, refgetAccession, loFetch, hiFetch)
	if err != nil {
		return 0, 0, nil, err
	}
	// localStart/localEnd locate [start,end) within flank.
	localStart := start - loFetch
	localEnd := end - loFetch

	// Roll right: while the residue just past the bubble's current
	// position equals the residue the bubble would vacate (circular
	// indexing within bubble), shift the window one base right.
	origBubble := bubble
	rightBound := localEnd
	for rightBound < int64(len(flank)) {
		vacated := bubble[0]
		incoming := flank[rightBound]
		if incoming != vacated {
			break
		}
		bubble = bubble[1:] + string(incoming)
		rightBound++
	}
	// Roll left independently, starting from the original bubble --
	// not the one the right-roll above left rotated to -- since the
	// two directions explore distinct candidate windows and the
	// right-roll's step count need not be a multiple of n.
	bubble = origBubble
	leftBound := localStart
	for leftBound > 0 {
		vacated := bubble[n-1]
		incoming := flank[leftBound-1]
		if incoming != vacated {
			break
		}
		bubble = string(incoming) + bubble[:n-1]
		leftBound--
	}

	newStart := loFetch + leftBound
	newEnd := loFetch + rightBound

	literal := flank[leftBound:localStart] + trimAlt + flank[localEnd:rightBound]
	if isTandemRepeat(flank, leftBound, rightBound, n) {
		return newStart, newEnd, vrs.ReferenceLengthExpression{
			Length:              int64(len(literal)),
			RepeatSubunitLength: n,
			Sequence:            literal,
		}, nil
	}
	return newStart, newEnd, vrs.LiteralSequenceExpression{Sequence: literal}, nil
}

// isTandemRepeat reports whether the reference spanning
// [leftBound, rightBound) in flank is composed of whole copies of a
// subunitLen-length repeat unit -- the condition under which a
// ReferenceLengthExpression is the more informative representation.
func isTandemRepeat(flank string, leftBound, rightBound, subunitLen int64) bool {
	span := rightBound - leftBound
	if subunitLen == 0 || span < subunitLen*2 {
		return false
	}
	if span%subunitLen != 0 {
		return false
	}
	unit := flank[leftBound : leftBound+subunitLen]
	for p := leftBound + subunitLen; p+subunitLen <= rightBound; p += subunitLen {
		if flank[p:p+subunitLen] != unit {
			return false
		}
	}
	return true
}

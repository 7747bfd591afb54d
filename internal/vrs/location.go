package vrs

import "github.com/ga4gh/vrs-go/internal/digest"

// SequenceLocation is a half-open interbase interval on a
// SequenceReference. Identifiable; digest prefix "SL".
type SequenceLocation struct {
	ID                string
	Digest            string
	SequenceReference Ref[SequenceReference]
	Start             Coordinate
	End               Coordinate
	Annotations
}

// CanonicalValue implements digest.Digestible. The allow-list is
// exactly {type, start, end, sequenceReference}, matching
// SequenceLocation's `class ga4gh: keys` in the original model.
func (l *SequenceLocation) CanonicalValue() (digest.Value, error) {
	seqRefVal, err := refCanonicalValue(l.SequenceReference)
	if err != nil {
		return nil, err
	}
	return map[string]digest.Value{
		"type":              "SequenceLocation",
		"start":             l.Start.canonicalValue(),
		"end":               l.End.canonicalValue(),
		"sequenceReference": seqRefVal,
	}, nil
}

// TypePrefix implements digest.Digestible.
func (l *SequenceLocation) TypePrefix() string { return "SL" }

// refCanonicalValue renders a SequenceReference slot for digesting: a
// reference string if the slot is a reference, else the reference's
// own canonical value inlined (SequenceReference is never collapsed
// to its SQR identifier inside a SequenceLocation's digest input,
// since ordinary VRS usage inlines the reference -- see DESIGN.md's
// open questions for why enref does not touch this field).
func refCanonicalValue(r Ref[SequenceReference]) (digest.Value, error) {
	if r.IsRef() {
		return r.ID(), nil
	}
	sr := r.MustValue()
	return sr.CanonicalValue()
}

// Length returns the definite length of the location's span
// (End - Start), valid only when neither bound is a range.
func (l *SequenceLocation) Length() int64 {
	return l.End.Value() - l.Start.Value()
}

// IsDefinite reports whether both Start and End are definite
// (non-range) coordinates.
func (l *SequenceLocation) IsDefinite() bool {
	return !l.Start.IsRange() && !l.End.IsRange()
}

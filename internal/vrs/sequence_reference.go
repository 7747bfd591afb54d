package vrs

import "github.com/ga4gh/vrs-go/internal/digest"

// SequenceReference points to a biological sequence by its refget
// accession: a content-based 32-character base64url digest of the
// sequence itself (computed the same way as a VRS sha512t24u digest,
// see internal/digest). The accession is the reference's identity;
// SequenceReference additionally implements Digestible with a "SQR"
// prefix so digest.Identify can give it a ga4gh identifier like any
// other identifiable VRS entity, per ga4gh/vrs/_internal/models.py's
// `class ga4gh: prefix = 'SQR'`. internal/enderef never enrefs it.
type SequenceReference struct {
	ID              string
	Digest          string
	RefgetAccession string
	ResidueAlphabet ResidueAlphabet
	Circular        *bool
	Annotations
}

// CanonicalValue implements digest.Digestible.
func (s *SequenceReference) CanonicalValue() (digest.Value, error) {
	return map[string]digest.Value{
		"type":            "SequenceReference",
		"refgetAccession": s.RefgetAccession,
	}, nil
}

// TypePrefix implements digest.Digestible.
func (s *SequenceReference) TypePrefix() string { return "SQR" }

// IsCircular reports whether this reference wraps around (e.g. a
// mitochondrial genome or plasmid).
func (s *SequenceReference) IsCircular() bool {
	return s.Circular != nil && *s.Circular
}

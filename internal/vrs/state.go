package vrs

import "github.com/ga4gh/vrs-go/internal/digest"

// StateExpression is the closed set of ways an Allele's sequence state
// can be expressed. Implementations are matched by type switch rather
// than a discriminant field, so a consumer cannot construct an
// inconsistent combination of state fields (see design notes: "Do not
// use nullable fields").
type StateExpression interface {
	stateCanonicalValue() digest.Value
	StateType() string
}

// LiteralSequenceExpression states the replacement sequence outright.
type LiteralSequenceExpression struct {
	Sequence string
}

func (s LiteralSequenceExpression) StateType() string { return "LiteralSequenceExpression" }

func (s LiteralSequenceExpression) stateCanonicalValue() digest.Value {
	return map[string]digest.Value{
		"type":     s.StateType(),
		"sequence": s.Sequence,
	}
}

// ReferenceLengthExpression states a tandem-repeat block by its
// repeat subunit and copy count, rather than spelling the expanded
// sequence out literally. Length is the definite total length of the
// expressed sequence (subunit length * count, when RepeatSubunitLength
// divides evenly); it is carried explicitly because the subunit
// sequence alone underdetermines a partial final repeat.
type ReferenceLengthExpression struct {
	Length               int64
	RepeatSubunitLength  int64
	Sequence             string // optional literal rendering, annotation-only
}

func (s ReferenceLengthExpression) StateType() string { return "ReferenceLengthExpression" }

func (s ReferenceLengthExpression) stateCanonicalValue() digest.Value {
	return map[string]digest.Value{
		"type":                s.StateType(),
		"length":              s.Length,
		"repeatSubunitLength": s.RepeatSubunitLength,
	}
}

// LengthExpression states only the resulting sequence's length,
// without specifying its content at all -- used when a variant's
// effect on length is known but its precise sequence is not.
type LengthExpression struct {
	Length int64
}

func (s LengthExpression) StateType() string { return "LengthExpression" }

func (s LengthExpression) stateCanonicalValue() digest.Value {
	return map[string]digest.Value{
		"type":   s.StateType(),
		"length": s.Length,
	}
}

package vrs

import (
	"encoding/json"
	"fmt"

	"github.com/ga4gh/vrs-go/internal/vrserr"
)

// MarshalJSON renders a definite Coordinate as a bare integer and a
// range Coordinate as a two-element array, matching canonicalValue's
// digest shape (and thus the wire shape GA4GH tooling expects).
func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.isRange {
		return json.Marshal(c.value)
	}
	return json.Marshal([2]*int64{c.lower, c.upper})
}

// UnmarshalJSON accepts either a bare integer or a two-element array.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*c = Definite(n)
		return nil
	}
	var pair [2]*int64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coordinate: %w", err)
	}
	*c = RangeCoordinate(pair[0], pair[1])
	return nil
}

// MarshalJSON renders a reference slot as its bare id string, or the
// inlined value's own JSON otherwise -- the wire analogue of
// canonicalValue's "either a string or the object" digest rule.
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.IsRef() {
		return json.Marshal(r.id)
	}
	return json.Marshal(r.inline)
}

// UnmarshalJSON accepts either a bare ga4gh id string or an inlined
// object.
func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = ByID[T](id)
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Inline(v)
	return nil
}

// stateWire is the discriminated-union wire shape shared by all three
// StateExpression implementations.
type stateWire struct {
	Type                string `json:"type"`
	Sequence            string `json:"sequence,omitempty"`
	Length              *int64 `json:"length,omitempty"`
	RepeatSubunitLength *int64 `json:"repeatSubunitLength,omitempty"`
}

func marshalState(s StateExpression) ([]byte, error) {
	switch v := s.(type) {
	case LiteralSequenceExpression:
		return json.Marshal(stateWire{Type: v.StateType(), Sequence: v.Sequence})
	case ReferenceLengthExpression:
		return json.Marshal(stateWire{Type: v.StateType(), Length: &v.Length, RepeatSubunitLength: &v.RepeatSubunitLength, Sequence: v.Sequence})
	case LengthExpression:
		return json.Marshal(stateWire{Type: v.StateType(), Length: &v.Length})
	default:
		return nil, &vrserr.SerializationError{Reason: fmt.Sprintf("unknown state expression type %T", s)}
	}
}

func unmarshalState(data []byte) (StateExpression, error) {
	var w stateWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	switch w.Type {
	case "LiteralSequenceExpression":
		return LiteralSequenceExpression{Sequence: w.Sequence}, nil
	case "ReferenceLengthExpression":
		var length, subunit int64
		if w.Length != nil {
			length = *w.Length
		}
		if w.RepeatSubunitLength != nil {
			subunit = *w.RepeatSubunitLength
		}
		return ReferenceLengthExpression{Length: length, RepeatSubunitLength: subunit, Sequence: w.Sequence}, nil
	case "LengthExpression":
		var length int64
		if w.Length != nil {
			length = *w.Length
		}
		return LengthExpression{Length: length}, nil
	default:
		return nil, &vrserr.SerializationError{Reason: fmt.Sprintf("unknown state expression type %q", w.Type)}
	}
}

type alleleWire struct {
	Type     string               `json:"type"`
	ID       string               `json:"id,omitempty"`
	Digest   string               `json:"digest,omitempty"`
	Location json.RawMessage      `json:"location"`
	State    json.RawMessage      `json:"state"`
	Annotations
}

// MarshalJSON implements json.Marshaler for Allele.
func (a Allele) MarshalJSON() ([]byte, error) {
	locBytes, err := json.Marshal(a.Location)
	if err != nil {
		return nil, err
	}
	stateBytes, err := marshalState(a.State)
	if err != nil {
		return nil, err
	}
	return json.Marshal(alleleWire{
		Type: "Allele", ID: a.ID, Digest: a.Digest,
		Location: locBytes, State: stateBytes, Annotations: a.Annotations,
	})
}

// UnmarshalJSON implements json.Unmarshaler for Allele.
func (a *Allele) UnmarshalJSON(data []byte) error {
	var w alleleWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	var loc Ref[SequenceLocation]
	if err := json.Unmarshal(w.Location, &loc); err != nil {
		return err
	}
	state, err := unmarshalState(w.State)
	if err != nil {
		return err
	}
	a.ID, a.Digest, a.Location, a.State, a.Annotations = w.ID, w.Digest, loc, state, w.Annotations
	return nil
}

type sequenceLocationWire struct {
	Type              string                       `json:"type"`
	ID                string                       `json:"id,omitempty"`
	Digest            string                       `json:"digest,omitempty"`
	SequenceReference Ref[SequenceReference]       `json:"sequenceReference"`
	Start             Coordinate                   `json:"start"`
	End               Coordinate                   `json:"end"`
	Annotations
}

// MarshalJSON implements json.Marshaler for SequenceLocation.
func (l SequenceLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(sequenceLocationWire{
		Type: "SequenceLocation", ID: l.ID, Digest: l.Digest,
		SequenceReference: l.SequenceReference, Start: l.Start, End: l.End,
		Annotations: l.Annotations,
	})
}

// UnmarshalJSON implements json.Unmarshaler for SequenceLocation.
func (l *SequenceLocation) UnmarshalJSON(data []byte) error {
	var w sequenceLocationWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	l.ID, l.Digest, l.SequenceReference, l.Start, l.End, l.Annotations =
		w.ID, w.Digest, w.SequenceReference, w.Start, w.End, w.Annotations
	return nil
}

type sequenceReferenceWire struct {
	Type            string          `json:"type"`
	ID              string          `json:"id,omitempty"`
	Digest          string          `json:"digest,omitempty"`
	RefgetAccession string          `json:"refgetAccession"`
	ResidueAlphabet ResidueAlphabet `json:"residueAlphabet,omitempty"`
	Circular        *bool           `json:"circular,omitempty"`
	Annotations
}

// MarshalJSON implements json.Marshaler for SequenceReference.
func (s SequenceReference) MarshalJSON() ([]byte, error) {
	return json.Marshal(sequenceReferenceWire{
		Type: "SequenceReference", ID: s.ID, Digest: s.Digest,
		RefgetAccession: s.RefgetAccession, ResidueAlphabet: s.ResidueAlphabet,
		Circular: s.Circular, Annotations: s.Annotations,
	})
}

// UnmarshalJSON implements json.Unmarshaler for SequenceReference.
func (s *SequenceReference) UnmarshalJSON(data []byte) error {
	var w sequenceReferenceWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.ID, s.Digest, s.RefgetAccession, s.ResidueAlphabet, s.Circular, s.Annotations =
		w.ID, w.Digest, w.RefgetAccession, w.ResidueAlphabet, w.Circular, w.Annotations
	return nil
}

type copyNumberCountWire struct {
	Type    string                 `json:"type"`
	ID      string                 `json:"id,omitempty"`
	Digest  string                 `json:"digest,omitempty"`
	Subject Ref[SequenceLocation]  `json:"subject"`
	Copies  Coordinate             `json:"copies"`
	Annotations
}

// MarshalJSON implements json.Marshaler for CopyNumberCount.
func (c CopyNumberCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(copyNumberCountWire{
		Type: "CopyNumberCount", ID: c.ID, Digest: c.Digest,
		Subject: c.Subject, Copies: c.Copies, Annotations: c.Annotations,
	})
}

// UnmarshalJSON implements json.Unmarshaler for CopyNumberCount.
func (c *CopyNumberCount) UnmarshalJSON(data []byte) error {
	var w copyNumberCountWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	c.ID, c.Digest, c.Subject, c.Copies, c.Annotations = w.ID, w.Digest, w.Subject, w.Copies, w.Annotations
	return nil
}

type copyNumberChangeWire struct {
	Type       string                 `json:"type"`
	ID         string                 `json:"id,omitempty"`
	Digest     string                 `json:"digest,omitempty"`
	Subject    Ref[SequenceLocation]  `json:"subject"`
	CopyChange CopyChange             `json:"copyChange"`
	Annotations
}

// MarshalJSON implements json.Marshaler for CopyNumberChange.
func (c CopyNumberChange) MarshalJSON() ([]byte, error) {
	return json.Marshal(copyNumberChangeWire{
		Type: "CopyNumberChange", ID: c.ID, Digest: c.Digest,
		Subject: c.Subject, CopyChange: c.CopyChange, Annotations: c.Annotations,
	})
}

// UnmarshalJSON implements json.Unmarshaler for CopyNumberChange.
func (c *CopyNumberChange) UnmarshalJSON(data []byte) error {
	var w copyNumberChangeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	c.ID, c.Digest, c.Subject, c.CopyChange, c.Annotations = w.ID, w.Digest, w.Subject, w.CopyChange, w.Annotations
	return nil
}

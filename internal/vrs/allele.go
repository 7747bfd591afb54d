package vrs

import "github.com/ga4gh/vrs-go/internal/digest"

// Allele states that a molecule at a SequenceLocation has a
// particular sequence state. Identifiable; digest prefix "VA".
type Allele struct {
	ID       string
	Digest   string
	Location Ref[SequenceLocation]
	State    StateExpression
	Annotations
}

// CanonicalValue implements digest.Digestible. Allele's allow-list is
// {type, location, state}, per models.py's Allele.ga4gh.keys.
func (a *Allele) CanonicalValue() (digest.Value, error) {
	locVal, err := locationCanonicalValue(a.Location)
	if err != nil {
		return nil, err
	}
	return map[string]digest.Value{
		"type":     "Allele",
		"location": locVal,
		"state":    a.State.stateCanonicalValue(),
	}, nil
}

// TypePrefix implements digest.Digestible.
func (a *Allele) TypePrefix() string { return "VA" }

func locationCanonicalValue(r Ref[SequenceLocation]) (digest.Value, error) {
	if r.IsRef() {
		return r.ID(), nil
	}
	loc := r.MustValue()
	id, err := digest.Identify(&loc)
	if err != nil {
		return nil, err
	}
	return id, nil
}

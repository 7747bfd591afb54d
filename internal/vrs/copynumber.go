package vrs

import "github.com/ga4gh/vrs-go/internal/digest"

// CopyChange is a controlled EFO vocabulary describing a copy number
// change relative to the expected ploidy, independent of count.
type CopyChange string

const (
	CopyChangeCompleteGenomicLoss CopyChange = "efo:0030069"
	CopyChangeHighLevelLoss       CopyChange = "efo:0020073"
	CopyChangeLowLevelLoss        CopyChange = "efo:0030068"
	CopyChangeLoss                CopyChange = "efo:0030067"
	CopyChangeRegionalBaseCN      CopyChange = "efo:0030064"
	CopyChangeGain                CopyChange = "efo:0030070"
	CopyChangeLowLevelGain        CopyChange = "efo:0030071"
	CopyChangeHighLevelGain       CopyChange = "efo:0030072"
)

// CopyNumberVariation is the closed set of ways a copy number
// variation can be expressed: an absolute count or a qualitative
// change. Implementations are matched by type switch, the same
// discriminated-union idiom as StateExpression.
type CopyNumberVariation interface {
	digest.Digestible
	isCopyNumberVariation()
}

// CopyNumberCount states an absolute integer copy count for the
// sequence at a location. Identifiable; digest prefix "CN". Its
// location field is named "subject" in the canonical value, matching
// models.py's CopyNumberCount.
type CopyNumberCount struct {
	ID      string
	Digest  string
	Subject Ref[SequenceLocation]
	Copies  Coordinate
	Annotations
}

func (c *CopyNumberCount) CanonicalValue() (digest.Value, error) {
	subjVal, err := locationCanonicalValue(c.Subject)
	if err != nil {
		return nil, err
	}
	return map[string]digest.Value{
		"type":    "CopyNumberCount",
		"subject": subjVal,
		"copies":  c.Copies.canonicalValue(),
	}, nil
}

func (c *CopyNumberCount) TypePrefix() string { return "CN" }

func (c *CopyNumberCount) isCopyNumberVariation() {}

// CopyNumberChange states a relative, qualitative copy number change
// for the sequence at a location. Identifiable; digest prefix "CX".
type CopyNumberChange struct {
	ID         string
	Digest     string
	Subject    Ref[SequenceLocation]
	CopyChange CopyChange
	Annotations
}

func (c *CopyNumberChange) CanonicalValue() (digest.Value, error) {
	subjVal, err := locationCanonicalValue(c.Subject)
	if err != nil {
		return nil, err
	}
	return map[string]digest.Value{
		"type":       "CopyNumberChange",
		"subject":    subjVal,
		"copyChange": string(c.CopyChange),
	}, nil
}

func (c *CopyNumberChange) TypePrefix() string { return "CX" }

func (c *CopyNumberChange) isCopyNumberVariation() {}

package vrs

import "github.com/ga4gh/vrs-go/internal/digest"

// Coordinate is a tagged sum of a definite non-negative integer or an
// uncertain range `[lower, upper]` with `lower <= upper`. Either bound
// of a range may be open (nil), meaning "unknown in that direction".
// Used for SequenceLocation.start/end and CopyNumberCount.copies.
type Coordinate struct {
	isRange bool
	value   int64
	lower   *int64
	upper   *int64
}

// Definite returns a Coordinate holding a single non-negative integer.
func Definite(v int64) Coordinate {
	return Coordinate{value: v}
}

// RangeCoordinate returns a Coordinate holding an uncertain interval.
// A nil bound means that side of the range is open.
func RangeCoordinate(lower, upper *int64) Coordinate {
	return Coordinate{isRange: true, lower: lower, upper: upper}
}

// IsRange reports whether c holds an uncertain range rather than a
// definite value.
func (c Coordinate) IsRange() bool { return c.isRange }

// Value returns the definite integer value. Only meaningful when
// !IsRange().
func (c Coordinate) Value() int64 { return c.value }

// Bounds returns the range's lower and upper pointers. Only meaningful
// when IsRange().
func (c Coordinate) Bounds() (lower, upper *int64) { return c.lower, c.upper }

// canonicalValue renders c per the VRS `Range` root type: a definite
// coordinate serializes as a bare integer, a range as a two-element
// array with null standing in for an open bound.
func (c Coordinate) canonicalValue() digest.Value {
	if !c.isRange {
		return c.value
	}
	arr := make([]digest.Value, 2)
	if c.lower != nil {
		arr[0] = *c.lower
	}
	if c.upper != nil {
		arr[1] = *c.upper
	}
	return arr
}

// Package hgvstools implements a minimal genomic HGVS expression
// grammar: parsing substitution/deletion/insertion/delins/duplication
// expressions into an Expression AST, and formatting an Expression
// back to its HGVS string. It deliberately covers only the genomic
// ("g.") substrate the allele translator needs -- a full HGVS grammar
// (transcript coordinates, intronic offsets, protein consequences) is
// the job of a dedicated external grammar library, not this package.
package hgvstools

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ga4gh/vrs-go/internal/vrserr"
)

// EditType identifies the kind of sequence change an Expression
// describes.
type EditType int

const (
	EditSubstitution EditType = iota
	EditDeletion
	EditInsertion
	EditDelins
	EditDuplication
	EditIdentity
)

// Expression is a parsed genomic HGVS variant expression, e.g.
// "NC_000001.11:g.100A>T" or "NC_000001.11:g.100_102del".
type Expression struct {
	Accession string
	Edit      EditType
	// Start/End are 1-based inclusive HGVS positions. End == Start
	// for single-position edits (substitution, single-base deletion).
	Start int64
	End   int64
	// Ref/Alt hold the edit's reference/alternate sequence, when the
	// expression spells them out (substitution, delins, insertion).
	Ref string
	Alt string
}

var (
	reSub    = regexp.MustCompile(`^([^:]+):g\.(\d+)([ACGTN])>([ACGTN])$`)
	reDel    = regexp.MustCompile(`^([^:]+):g\.(\d+)(?:_(\d+))?del([ACGTN]*)$`)
	reIns    = regexp.MustCompile(`^([^:]+):g\.(\d+)_(\d+)ins([ACGTN]+)$`)
	reDelins = regexp.MustCompile(`^([^:]+):g\.(\d+)(?:_(\d+))?delins([ACGTN]+)$`)
	reDup    = regexp.MustCompile(`^([^:]+):g\.(\d+)(?:_(\d+))?dup([ACGTN]*)$`)
)

// Parse parses a genomic HGVS expression string.
func Parse(s string) (*Expression, error) {
	if m := reSub.FindStringSubmatch(s); m != nil {
		pos, _ := strconv.ParseInt(m[2], 10, 64)
		return &Expression{Accession: m[1], Edit: EditSubstitution, Start: pos, End: pos, Ref: m[3], Alt: m[4]}, nil
	}
	// delins is checked before plain del/ins/dup; every regex is anchored
	// at both ends, so no two of them match the same string.
	if m := reDelins.FindStringSubmatch(s); m != nil {
		start, end := parseRange(m[2], m[3])
		return &Expression{Accession: m[1], Edit: EditDelins, Start: start, End: end, Alt: m[4]}, nil
	}
	if m := reIns.FindStringSubmatch(s); m != nil {
		start, _ := strconv.ParseInt(m[2], 10, 64)
		end, _ := strconv.ParseInt(m[3], 10, 64)
		return &Expression{Accession: m[1], Edit: EditInsertion, Start: start, End: end, Alt: m[4]}, nil
	}
	if m := reDup.FindStringSubmatch(s); m != nil {
		start, end := parseRange(m[2], m[3])
		return &Expression{Accession: m[1], Edit: EditDuplication, Start: start, End: end, Ref: m[4]}, nil
	}
	if m := reDel.FindStringSubmatch(s); m != nil {
		start, end := parseRange(m[2], m[3])
		return &Expression{Accession: m[1], Edit: EditDeletion, Start: start, End: end, Ref: m[4]}, nil
	}
	return nil, &vrserr.UnrepresentableError{Format: "hgvs", Reason: fmt.Sprintf("cannot parse genomic HGVS expression %q", s)}
}

func parseRange(startStr, endStr string) (int64, int64) {
	start, _ := strconv.ParseInt(startStr, 10, 64)
	end := start
	if endStr != "" {
		end, _ = strconv.ParseInt(endStr, 10, 64)
	}
	return start, end
}

// Format renders e back to its HGVS string form.
func Format(e *Expression) (string, error) {
	var b strings.Builder
	b.WriteString(e.Accession)
	b.WriteString(":g.")
	switch e.Edit {
	case EditSubstitution:
		fmt.Fprintf(&b, "%d%s>%s", e.Start, e.Ref, e.Alt)
	case EditDeletion:
		writeRange(&b, e.Start, e.End)
		b.WriteString("del")
		b.WriteString(e.Ref)
	case EditInsertion:
		writeRange(&b, e.Start, e.End)
		b.WriteString("ins")
		b.WriteString(e.Alt)
	case EditDelins:
		writeRange(&b, e.Start, e.End)
		b.WriteString("delins")
		b.WriteString(e.Alt)
	case EditDuplication:
		writeRange(&b, e.Start, e.End)
		b.WriteString("dup")
		b.WriteString(e.Ref)
	default:
		return "", &vrserr.UnrepresentableError{Format: "hgvs", Reason: "cannot format identity edit"}
	}
	return b.String(), nil
}

func writeRange(b *strings.Builder, start, end int64) {
	if start == end {
		fmt.Fprintf(b, "%d", start)
		return
	}
	fmt.Fprintf(b, "%d_%d", start, end)
}

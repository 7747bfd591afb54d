package vcfannotate

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/ga4gh/vrs-go/internal/vcf"
	"github.com/ga4gh/vrs-go/internal/vrs"
)

// NDJSONWriter emits one JSON object per translated record: the
// original variant's coordinates alongside its VRS Allele. When
// translation failed, the allele is null; the error message is
// included only when RequireValidation was set, since otherwise the
// pipeline reports the failure as a nil allele with no error.
type NDJSONWriter struct {
	w   io.Writer
	enc *json.Encoder
}

func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	return &NDJSONWriter{w: w, enc: json.NewEncoder(w)}
}

type ndjsonRecord struct {
	Chrom     string      `json:"chrom"`
	Pos       int64       `json:"pos"`
	Ref       string      `json:"ref"`
	Alt       string      `json:"alt"`
	Allele    interface{} `json:"vrs_allele,omitempty"`
	RefAllele interface{} `json:"vrs_ref_allele,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// Write emits one record for result.
func (w *NDJSONWriter) Write(result WorkResult) error {
	rec := ndjsonRecord{
		Chrom: result.Variant.Chrom,
		Pos:   result.Variant.Pos,
		Ref:   result.Variant.Ref,
		Alt:   result.Variant.Alt,
	}
	if result.Err != nil {
		rec.Error = result.Err.Error()
	} else {
		if result.Allele != nil {
			rec.Allele = result.Allele
		}
		if result.Ref != nil {
			rec.RefAllele = result.Ref
		}
	}
	return w.enc.Encode(rec)
}

// VCFAnnotationWriter rewrites each input VCF line with a VRS
// identifier appended to its INFO column, so the original record
// order and remaining columns survive untouched -- matching how a
// VCF reformatting tool is expected to behave: annotate, don't
// restructure.
type VCFAnnotationWriter struct {
	w             io.Writer
	vrsAttributes bool
}

func NewVCFAnnotationWriter(w io.Writer) *VCFAnnotationWriter {
	return &VCFAnnotationWriter{w: w}
}

// SetVRSAttributes controls whether WriteVariant also emits the
// VRS_Start, VRS_End, and VRS_State INFO fields alongside VRS_ID.
func (w *VCFAnnotationWriter) SetVRSAttributes(enabled bool) { w.vrsAttributes = enabled }

// WriteHeaderLines copies header through unchanged except for adding
// the INFO definition lines this writer populates, inserted
// immediately before the #CHROM column header line.
func (w *VCFAnnotationWriter) WriteHeaderLines(header []string) error {
	infoLines := []string{
		`##INFO=<ID=VRS_ID,Number=1,Type=String,Description="GA4GH VRS allele identifier">`,
		`##INFO=<ID=VRS_REF_ID,Number=1,Type=String,Description="GA4GH VRS identifier for the REF allele">`,
	}
	if w.vrsAttributes {
		infoLines = append(infoLines,
			`##INFO=<ID=VRS_Start,Number=1,Type=Integer,Description="GA4GH VRS location start (interbase)">`,
			`##INFO=<ID=VRS_End,Number=1,Type=Integer,Description="GA4GH VRS location end (interbase)">`,
			`##INFO=<ID=VRS_State,Number=1,Type=String,Description="GA4GH VRS literal sequence state">`,
		)
	}
	for _, line := range header {
		if len(line) >= 6 && line[:6] == "#CHROM" {
			for _, infoLine := range infoLines {
				if _, err := fmt.Fprintln(w.w, infoLine); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintln(w.w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteVariant writes v's original fields with VRS_ID (and, when ref
// is non-nil, VRS_REF_ID) INFO entries appended. When vrsAttributes
// was enabled via SetVRSAttributes, alt's location and literal state
// are also emitted as VRS_Start, VRS_End, and VRS_State.
func (w *VCFAnnotationWriter) WriteVariant(v *vcf.Variant, alt, ref *vrs.Allele) error {
	qual := "."
	if v.Qual != 0 {
		qual = fmt.Sprintf("%g", v.Qual)
	}

	altID := ""
	if alt != nil {
		altID = alt.ID
	}
	info := "VRS_ID=" + altID
	if ref != nil {
		info += ";VRS_REF_ID=" + ref.ID
	}
	if w.vrsAttributes && alt != nil {
		if attrs, ok := vrsAttributes(alt); ok {
			info += ";" + attrs
		}
	}

	_, err := fmt.Fprintf(w.w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
		v.Chrom, v.Pos, orDot(v.ID), v.Ref, v.Alt, qual, orDot(v.Filter), info)
	return err
}

// vrsAttributes renders alt's location bounds and literal sequence
// state as VRS_Start/VRS_End/VRS_State INFO key-value pairs. Returns
// false when alt carries a referenced (not inlined) location or a
// non-literal state, since neither renders as a scalar INFO value.
func vrsAttributes(alt *vrs.Allele) (string, bool) {
	loc, ok := alt.Location.Value()
	if !ok || loc.Start.IsRange() || loc.End.IsRange() {
		return "", false
	}
	state, ok := alt.State.(vrs.LiteralSequenceExpression)
	if !ok {
		return "", false
	}
	return "VRS_Start=" + strconv.FormatInt(loc.Start.Value(), 10) +
		";VRS_End=" + strconv.FormatInt(loc.End.Value(), 10) +
		";VRS_State=" + state.Sequence, true
}

func orDot(s string) string {
	if s == "" {
		return "."
	}
	return s
}

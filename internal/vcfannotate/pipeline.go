// Package vcfannotate streams VCF records through the VRS translator
// to attach a ga4gh identifier and (optionally) the full VRS Allele
// to each record, fanning out across a worker pool and reassembling
// results in file order.
package vcfannotate

import (
	"context"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/ga4gh/vrs-go/internal/translate"
	"github.com/ga4gh/vrs-go/internal/vcf"
	"github.com/ga4gh/vrs-go/internal/vrs"
)

// WorkItem holds a parsed VCF variant ready for translation.
type WorkItem struct {
	Seq     int
	Variant *vcf.Variant
}

// WorkResult holds the translation output for a single variant. Ref
// is populated only when the pipeline was not configured to skip
// REF-allele computation.
type WorkResult struct {
	Seq     int
	Variant *vcf.Variant
	Allele  *vrs.Allele
	Ref     *vrs.Allele
	Err     error
}

// Pipeline translates VCF variants to VRS Alleles against a single
// chromosome-accession resolver and sequence repository.
type Pipeline struct {
	translator        *translate.AlleleTranslator
	requireValidation bool
	skipRef           bool
	logger            *zap.Logger
}

// NewPipeline returns a Pipeline backed by translator.
func NewPipeline(translator *translate.AlleleTranslator) *Pipeline {
	return &Pipeline{translator: translator, logger: zap.NewNop()}
}

// SetLogger sets the logger used for per-variant warnings.
func (p *Pipeline) SetLogger(l *zap.Logger) { p.logger = l }

// SetRequireValidation controls whether a reference-mismatch error
// aborts the variant (true) or is merely logged and the variant
// carried through unidentified (false).
func (p *Pipeline) SetRequireValidation(require bool) { p.requireValidation = require }

// SetSkipRef controls whether TranslateOne also computes a VRS
// Allele for the variant's REF field. Skipping halves the translator
// calls a record needs when only the ALT identifier is wanted.
func (p *Pipeline) SetSkipRef(skip bool) { p.skipRef = skip }

// TranslateOne converts a single VCF variant's ALT (and, unless
// SetSkipRef was called, REF) field to a VRS Allele via the
// gnomAD-style "accession-pos-ref-alt" grammar, since that is the
// form a VCF record's own fields naturally populate.
func (p *Pipeline) TranslateOne(ctx context.Context, v *vcf.Variant) (alt, ref *vrs.Allele, err error) {
	alt, err = p.translateExpr(ctx, gnomadExpression(v, v.Alt))
	if err != nil {
		return nil, nil, err
	}
	if p.skipRef {
		return alt, nil, nil
	}
	ref, err = p.translateExpr(ctx, gnomadExpression(v, v.Ref))
	if err != nil {
		return nil, nil, err
	}
	return alt, ref, nil
}

func (p *Pipeline) translateExpr(ctx context.Context, expr string) (*vrs.Allele, error) {
	allele, err := p.translator.TranslateFrom(ctx, expr, translate.FormatGnomAD)
	if err != nil {
		p.logger.Warn("translation failed", zap.String("variant", expr), zap.Error(err))
		if p.requireValidation {
			return nil, err
		}
		return nil, nil
	}
	return allele, nil
}

func gnomadExpression(v *vcf.Variant, allele string) string {
	return v.NormalizeChrom() + "-" + itoa(v.Pos) + "-" + v.Ref + "-" + allele
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// ParallelTranslate translates work items using a pool of workers.
// Results arrive on the returned channel in arrival order; use
// OrderedCollect to consume them in sequence-number order. workers<=0
// defaults to runtime.NumCPU().
func (p *Pipeline) ParallelTranslate(ctx context.Context, items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for item := range items {
				alt, ref, err := p.TranslateOne(ctx, item.Variant)
				results <- WorkResult{Seq: item.Seq, Variant: item.Variant, Allele: alt, Ref: ref, Err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order.
// It buffers out-of-order results in a pending map and emits them as
// soon as the next expected sequence number is available. Blocks
// until the results channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				for range results {
				}
				return err
			}
		}
	}

	return nil
}

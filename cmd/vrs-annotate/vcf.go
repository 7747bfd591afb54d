package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ga4gh/vrs-go/internal/seqrepo"
	"github.com/ga4gh/vrs-go/internal/translate"
	"github.com/ga4gh/vrs-go/internal/vcfannotate"
	"github.com/ga4gh/vrs-go/internal/vrserr"
)

type vcfOptions struct {
	outPath           string
	ndjsonOutPath     string
	assembly          string
	vrsAttributes     bool
	skipRef           bool
	requireValidation bool
	strict            bool
	silent            bool
	workers           int
}

func newVCFCmd() *cobra.Command {
	var opts vcfOptions

	cmd := &cobra.Command{
		Use:   "vcf <input.vcf>",
		Short: "Annotate every record in a VCF with a GA4GH VRS identifier",
		Long: `Reads a VCF (plain, gzip, or bgzip compressed, or '-' for stdin),
translates each bi-allelic record to a VRS Allele, and writes an
annotated VCF (--vcf_out), one VRS record per line as NDJSON
(--ndjson_out), or both. At least one of the two output flags is required.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.outPath == "" && opts.ndjsonOutPath == "" {
				return fmt.Errorf("at least one of --vcf_out or --ndjson_out is required")
			}
			return runVCF(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.outPath, "vcf_out", "", "write an annotated VCF here (default: none)")
	cmd.Flags().StringVar(&opts.ndjsonOutPath, "ndjson_out", "", "write NDJSON VRS records here ('-' for stdout, default: none)")
	cmd.Flags().StringVar(&opts.assembly, "assembly", "GRCh38", "assembly used to resolve bare chromosome names")
	cmd.Flags().BoolVar(&opts.vrsAttributes, "vrs_attributes", false, "emit per-record VRS_Start, VRS_End, VRS_State INFO fields")
	cmd.Flags().BoolVar(&opts.skipRef, "skip_ref", false, "do not compute identifiers for REF alleles, only ALT")
	cmd.Flags().BoolVar(&opts.requireValidation, "require_validation", false, "reject records whose REF field disagrees with the assembly")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit with a failure status if any record fails translation")
	cmd.Flags().BoolVar(&opts.silent, "silent", false, "suppress per-variant warning logs")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "translation worker count (default: number of CPUs)")

	return cmd
}

func runVCF(cmd *cobra.Command, inputPath string, opts vcfOptions) error {
	ctx := context.Background()

	uri, err := resolveDataproxyURI(cmd)
	if err != nil {
		return err
	}
	repo, err := seqrepo.Open(uri)
	if err != nil {
		return err
	}
	cachedRepo, err := seqrepo.NewCachedRepository(repo, 4096)
	if err != nil {
		return err
	}

	resolve := func(ctx context.Context, name string) (string, error) {
		return cachedRepo.TranslateSequenceIdentifier(ctx, name)
	}
	translator := translate.NewAlleleTranslator(cachedRepo, resolve)
	translator.AssemblyName = opts.assembly

	pipeline := vcfannotate.NewPipeline(translator)
	pipeline.SetRequireValidation(opts.requireValidation)
	pipeline.SetSkipRef(opts.skipRef)
	if !opts.silent {
		pipeline.SetLogger(newLogger(cmd))
	} else {
		pipeline.SetLogger(zap.NewNop())
	}

	parser, closeSource, err := vcfannotate.OpenSource(inputPath)
	if err != nil {
		return err
	}
	defer closeSource()

	var ndjsonWriter *vcfannotate.NDJSONWriter
	if opts.ndjsonOutPath == "-" {
		ndjsonWriter = vcfannotate.NewNDJSONWriter(os.Stdout)
	} else if opts.ndjsonOutPath != "" {
		f, err := os.Create(opts.ndjsonOutPath)
		if err != nil {
			return err
		}
		defer f.Close()
		ndjsonWriter = vcfannotate.NewNDJSONWriter(f)
	}

	var vcfWriter *vcfannotate.VCFAnnotationWriter
	if opts.outPath != "" {
		f, err := os.Create(opts.outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		vcfWriter = vcfannotate.NewVCFAnnotationWriter(f)
		vcfWriter.SetVRSAttributes(opts.vrsAttributes)
		if err := vcfWriter.WriteHeaderLines(parser.Header()); err != nil {
			return err
		}
	}

	items := make(chan vcfannotate.WorkItem, 64)
	go func() {
		defer close(items)
		seq := 0
		for {
			v, err := parser.Next()
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error reading VCF:", err)
				return
			}
			if v == nil {
				return
			}
			items <- vcfannotate.WorkItem{Seq: seq, Variant: v}
			seq++
		}
	}()

	results := pipeline.ParallelTranslate(ctx, items, opts.workers)

	annotated, failed := 0, 0
	err = vcfannotate.OrderedCollect(results, func(r vcfannotate.WorkResult) error {
		if r.Err != nil || r.Allele == nil || (!opts.skipRef && r.Ref == nil) {
			failed++
		} else {
			annotated++
		}
		if ndjsonWriter != nil {
			if err := ndjsonWriter.Write(r); err != nil {
				return err
			}
		}
		if vcfWriter != nil {
			if err := vcfWriter.WriteVariant(r.Variant, r.Allele, r.Ref); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Annotated %d variant(s), %d failed\n", annotated, failed)
	if opts.strict && failed > 0 {
		return &vrserr.ToleranceExceededError{Failed: failed}
	}
	return nil
}

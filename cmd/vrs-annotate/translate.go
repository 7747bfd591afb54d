package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ga4gh/vrs-go/internal/seqrepo"
	"github.com/ga4gh/vrs-go/internal/translate"
	"github.com/ga4gh/vrs-go/internal/vrs"
)

var formatNames = map[string]translate.Format{
	"hgvs":   translate.FormatHGVS,
	"spdi":   translate.FormatSPDI,
	"gnomad": translate.FormatGnomAD,
	"beacon": translate.FormatBeacon,
}

var copyChangeNames = map[string]vrs.CopyChange{
	"complete-genomic-loss": vrs.CopyChangeCompleteGenomicLoss,
	"high-level-loss":       vrs.CopyChangeHighLevelLoss,
	"low-level-loss":        vrs.CopyChangeLowLevelLoss,
	"loss":                  vrs.CopyChangeLoss,
	"regional-base-cn":      vrs.CopyChangeRegionalBaseCN,
	"gain":                  vrs.CopyChangeGain,
	"low-level-gain":        vrs.CopyChangeLowLevelGain,
	"high-level-gain":       vrs.CopyChangeHighLevelGain,
}

func newTranslateCmd() *cobra.Command {
	var fromFormat string
	var toFormat string
	var assembly string
	var copies int64
	var copyChangeName string

	cmd := &cobra.Command{
		Use:   "translate <expression>",
		Short: "Translate a single variant expression to a VRS Allele or CopyNumberVariation (and optionally back to another format)",
		Example: `  vrs-annotate translate --from spdi "SQ.ss8r_wB0-b9r44TQTMmVTI92884QvBiB:4:A:T"
  vrs-annotate translate --from hgvs --to spdi "NC_000001.11:g.100A>T"
  vrs-annotate translate --from hgvs --copy-change loss "NC_000014.9:g.45002867_45015056del"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args[0], fromFormat, toFormat, assembly, copies, copyChangeName)
		},
	}

	cmd.Flags().StringVar(&fromFormat, "from", "spdi", "input format: hgvs, spdi, gnomad, beacon")
	cmd.Flags().StringVar(&toFormat, "to", "", "also render the result in this format: hgvs, spdi, gnomad, beacon")
	cmd.Flags().StringVar(&assembly, "assembly", "GRCh38", "assembly used to resolve bare chromosome names in gnomad/beacon expressions")
	cmd.Flags().Int64Var(&copies, "copies", 0, "for a structural HGVS del/dup, produce a CopyNumberCount with this absolute copy count")
	cmd.Flags().StringVar(&copyChangeName, "copy-change", "", "for a structural HGVS del/dup, produce a CopyNumberChange with this term: "+
		"complete-genomic-loss, high-level-loss, low-level-loss, loss, regional-base-cn, gain, low-level-gain, high-level-gain "+
		"(no default: without --copies or --copy-change the expression is translated as an Allele)")

	return cmd
}

func runTranslate(cmd *cobra.Command, expr, fromFormat, toFormat, assembly string, copies int64, copyChangeName string) error {
	from, ok := formatNames[fromFormat]
	if !ok {
		return fmt.Errorf("unknown --from format %q", fromFormat)
	}

	uri, err := resolveDataproxyURI(cmd)
	if err != nil {
		return err
	}
	repo, err := seqrepo.Open(uri)
	if err != nil {
		return err
	}
	cachedRepo, err := seqrepo.NewCachedRepository(repo, 1024)
	if err != nil {
		return err
	}
	resolve := func(ctx context.Context, name string) (string, error) {
		return cachedRepo.TranslateSequenceIdentifier(ctx, name)
	}
	ctx := context.Background()

	if copies != 0 || copyChangeName != "" {
		if from != translate.FormatHGVS {
			return fmt.Errorf("--copies/--copy-change require --from hgvs")
		}
		var opts translate.CopyNumberOptions
		if copies != 0 {
			opts.Copies = &copies
		} else {
			cc, ok := copyChangeNames[copyChangeName]
			if !ok {
				return fmt.Errorf("unknown --copy-change term %q", copyChangeName)
			}
			opts.CopyChange = cc
		}
		cnvTranslator := translate.NewCopyNumberTranslator(cachedRepo, resolve)
		cnv, err := cnvTranslator.FromHGVS(ctx, expr, opts)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(cnv, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	translator := translate.NewAlleleTranslator(cachedRepo, resolve)
	translator.AssemblyName = assembly

	allele, err := translator.TranslateFrom(ctx, expr, from)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(allele, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if toFormat != "" {
		to, ok := formatNames[toFormat]
		if !ok {
			return fmt.Errorf("unknown --to format %q", toFormat)
		}
		rendered, err := translator.TranslateTo(ctx, allele, to)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%s: %s\n", toFormat, rendered)
	}

	return nil
}

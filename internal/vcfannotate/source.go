package vcfannotate

import (
	"github.com/ga4gh/vrs-go/internal/vcf"
)

// OpenSource opens path (plain, gzip, or bgzip VCF, or "-" for stdin)
// and returns a vcf.Parser reading from it, plus a close function the
// caller must invoke when done.
func OpenSource(path string) (*vcf.Parser, func() error, error) {
	r, closeFn, err := openVCFReader(path)
	if err != nil {
		return nil, nil, err
	}
	parser, err := vcf.NewParserFromReader(r)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return parser, closeFn, nil
}

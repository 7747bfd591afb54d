package vcfannotate

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bgzf"
)

// openVCFReader opens path and returns a plain io.Reader suitable for
// vcf.NewParserFromReader. BGZF-compressed VCFs (bgzip, the common
// format for indexed .vcf.gz files) are read through
// biogo/hts/bgzf.Reader for virtual-offset-aware block decompression;
// plain gzip falls back to compress/gzip; uncompressed files are
// passed through unchanged.
func openVCFReader(path string) (io.Reader, func() error, error) {
	if path == "-" {
		return os.Stdin, func() error { return nil }, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	if !strings.HasSuffix(path, ".gz") && !strings.HasSuffix(path, ".bgz") {
		return bufio.NewReader(f), f.Close, nil
	}

	if isBGZF(f) {
		bgReader, err := bgzf.NewReader(f, 0)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return bgReader, func() error {
			bgReader.Close()
			return f.Close()
		}, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return gz, func() error {
		gz.Close()
		return f.Close()
	}, nil
}

// isBGZF sniffs for BGZF's extra "BC" subfield in the gzip header,
// present on every bgzip-compressed block but absent from plain
// gzip output, then rewinds f for the real reader to consume.
func isBGZF(f *os.File) bool {
	defer f.Seek(0, io.SeekStart)
	header := make([]byte, 18)
	n, err := f.Read(header)
	if err != nil || n < 18 {
		return false
	}
	return header[0] == 0x1f && header[1] == 0x8b && header[12] == 'B' && header[13] == 'C'
}

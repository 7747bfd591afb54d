// Package seqrepo provides read access to reference sequences and
// their refget accessions, the role ga4gh/vrs/dataproxy.py's
// _DataProxy plays for the Python reference implementation. A
// Repository is opened from a URI (seqrepo+file://... or
// seqrepo+http(s)://...) exactly as create_dataproxy dispatches there.
package seqrepo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ga4gh/vrs-go/internal/digest"
	"github.com/ga4gh/vrs-go/internal/vrserr"
)

// Metadata describes a sequence's identity and basic statistics.
type Metadata struct {
	Length          int64
	Alphabet        string
	Aliases         []string
	RefgetAccession string
}

// Repository resolves sequence identifiers and serves sequence slices
// by refget accession. Implementations must be safe for concurrent
// use -- the vcfannotate worker pool calls through a single shared
// Repository.
type Repository interface {
	// GetSequence returns seq[start:end) (interbase, half-open) for
	// the sequence named by refgetAccession.
	GetSequence(ctx context.Context, refgetAccession string, start, end int64) (string, error)
	// GetMetadata returns identifying metadata for refgetAccession.
	GetMetadata(ctx context.Context, refgetAccession string) (Metadata, error)
	// TranslateSequenceIdentifier resolves an arbitrary alias (e.g.
	// "GRCh38:1", "refseq:NC_000001.11") to its refget accession.
	TranslateSequenceIdentifier(ctx context.Context, alias string) (string, error)
}

// Open dispatches a seqrepo URI to the matching Repository
// implementation:
//
//	seqrepo+file:///path/to/seqrepo/root  -> file-backed Repository
//	seqrepo+http://host/seqrepo           -> REST-backed Repository
//	seqrepo+https://host/seqrepo          -> REST-backed Repository
func Open(uri string) (Repository, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, &vrserr.InvalidInputError{Input: uri, Reason: fmt.Sprintf("parse seqrepo URI: %v", err)}
	}
	if !strings.HasPrefix(u.Scheme, "seqrepo+") {
		return nil, &vrserr.InvalidInputError{Input: uri, Reason: "seqrepo URI must use a seqrepo+<scheme> prefix"}
	}
	inner := strings.TrimPrefix(u.Scheme, "seqrepo+")
	switch inner {
	case "file":
		return NewFileRepository(u.Path)
	case "http", "https":
		base := inner + "://" + u.Host + u.Path
		return NewRESTRepository(base), nil
	default:
		return nil, &vrserr.InvalidInputError{Input: uri, Reason: fmt.Sprintf("unsupported seqrepo scheme %q", inner)}
	}
}

// refgetAccession computes the sha512t24u-based accession of seq,
// matching GA4GH RefGet's identifier algorithm -- the same digest
// package VRS object identifiers use.
func refgetAccession(seq []byte) string {
	return "SQ." + digest.SHA512t24u(seq)
}

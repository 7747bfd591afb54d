package seqrepo

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ga4gh/vrs-go/internal/vrserr"
)

// FileRepository serves sequences scanned out of FASTA files under a
// root directory, using a gzip-aware bufio.Scanner to load them and
// indexing each sequence by refget accession (computed from the
// sequence bytes), while also tracking the alias a header line carries
// (its first token).
type FileRepository struct {
	root string

	mu        sync.RWMutex
	sequences map[string]string   // refget accession -> full sequence
	aliases   map[string]string   // alias -> refget accession
}

// NewFileRepository scans every *.fa / *.fa.gz / *.fasta / *.fasta.gz
// file directly under root and indexes their sequences by refget
// accession.
func NewFileRepository(root string) (*FileRepository, error) {
	r := &FileRepository{
		root:      root,
		sequences: make(map[string]string),
		aliases:   make(map[string]string),
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read seqrepo root: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !isFASTAFile(name) {
			continue
		}
		if err := r.loadFASTA(filepath.Join(root, name)); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func isFASTAFile(name string) bool {
	for _, suffix := range []string{".fa", ".fa.gz", ".fasta", ".fasta.gz"} {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func (r *FileRepository) loadFASTA(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open FASTA file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	scanner := bufio.NewScanner(reader)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 64*1024*1024)

	var currentAliases []string
	var currentSeq strings.Builder

	flush := func() {
		if len(currentAliases) == 0 || currentSeq.Len() == 0 {
			return
		}
		accession := refgetAccession([]byte(currentSeq.String()))
		r.mu.Lock()
		r.sequences[accession] = currentSeq.String()
		for _, alias := range currentAliases {
			r.aliases[alias] = accession
		}
		r.mu.Unlock()
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			flush()
			currentAliases = parseHeaderAliases(line)
			currentSeq.Reset()
			continue
		}
		currentSeq.WriteString(strings.TrimSpace(line))
	}
	flush()

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan FASTA: %w", err)
	}
	return nil
}

// parseHeaderAliases splits a FASTA header line on whitespace and
// pipes and returns only the first token as the sequence alias,
// covering both GENCODE-style pipe-delimited headers and plain
// ">chr1 description" headers; later tokens are not aliases.
func parseHeaderAliases(header string) []string {
	header = strings.TrimPrefix(header, ">")
	fields := strings.FieldsFunc(header, func(r rune) bool {
		return r == '|' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil
	}
	return fields[:1]
}

func (r *FileRepository) GetSequence(_ context.Context, refgetAccession string, start, end int64) (string, error) {
	r.mu.RLock()
	seq, ok := r.sequences[refgetAccession]
	r.mu.RUnlock()
	if !ok {
		return "", &vrserr.UnknownReferenceError{Identifier: refgetAccession}
	}
	if start < 0 || end > int64(len(seq)) || start > end {
		return "", &vrserr.InvalidInputError{Input: fmt.Sprintf("[%d,%d)", start, end), Reason: "sequence slice out of range"}
	}
	return seq[start:end], nil
}

func (r *FileRepository) GetMetadata(_ context.Context, refgetAccession string) (Metadata, error) {
	r.mu.RLock()
	seq, ok := r.sequences[refgetAccession]
	r.mu.RUnlock()
	if !ok {
		return Metadata{}, &vrserr.UnknownReferenceError{Identifier: refgetAccession}
	}
	var aliases []string
	r.mu.RLock()
	for alias, acc := range r.aliases {
		if acc == refgetAccession {
			aliases = append(aliases, alias)
		}
	}
	r.mu.RUnlock()
	return Metadata{
		Length:          int64(len(seq)),
		Alphabet:        "DNA",
		Aliases:         aliases,
		RefgetAccession: refgetAccession,
	}, nil
}

func (r *FileRepository) TranslateSequenceIdentifier(_ context.Context, alias string) (string, error) {
	r.mu.RLock()
	accession, ok := r.aliases[alias]
	r.mu.RUnlock()
	if !ok {
		return "", &vrserr.UnknownReferenceError{Identifier: alias}
	}
	return accession, nil
}

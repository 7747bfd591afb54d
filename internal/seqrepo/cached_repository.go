package seqrepo

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedRepository decorates a Repository with an LRU cache over
// GetMetadata and TranslateSequenceIdentifier lookups -- both are
// small, frequently repeated lookups (the same transcript/contig
// alias recurs across every variant in a VCF) for which an in-memory
// cache pays for itself immediately, unlike GetSequence slices whose
// ranges vary per call. Sequence reads are passed straight through.
type CachedRepository struct {
	inner      Repository
	metadata   *lru.Cache[string, Metadata]
	translated *lru.Cache[string, string]
}

// NewCachedRepository wraps inner with LRU caches of the given size
// for metadata and alias-translation lookups.
func NewCachedRepository(inner Repository, size int) (*CachedRepository, error) {
	metadata, err := lru.New[string, Metadata](size)
	if err != nil {
		return nil, err
	}
	translated, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &CachedRepository{inner: inner, metadata: metadata, translated: translated}, nil
}

func (c *CachedRepository) GetSequence(ctx context.Context, refgetAccession string, start, end int64) (string, error) {
	return c.inner.GetSequence(ctx, refgetAccession, start, end)
}

func (c *CachedRepository) GetMetadata(ctx context.Context, refgetAccession string) (Metadata, error) {
	if m, ok := c.metadata.Get(refgetAccession); ok {
		return m, nil
	}
	m, err := c.inner.GetMetadata(ctx, refgetAccession)
	if err != nil {
		return Metadata{}, err
	}
	c.metadata.Add(refgetAccession, m)
	return m, nil
}

func (c *CachedRepository) TranslateSequenceIdentifier(ctx context.Context, alias string) (string, error) {
	if acc, ok := c.translated.Get(alias); ok {
		return acc, nil
	}
	acc, err := c.inner.TranslateSequenceIdentifier(ctx, alias)
	if err != nil {
		return "", err
	}
	c.translated.Add(alias, acc)
	return acc, nil
}

package seqrepo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFASTA(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestFileRepository_GetSequenceAndTranslate(t *testing.T) {
	dir := t.TempDir()
	writeFASTA(t, dir, "chr1.fa", ">chr1 test chromosome\nACGTACGTACGT\nNNNN\n")

	repo, err := NewFileRepository(dir)
	require.NoError(t, err)

	accession, err := repo.TranslateSequenceIdentifier(context.Background(), "chr1")
	require.NoError(t, err)
	assert.Regexp(t, `^SQ\.[0-9A-Za-z_-]{32}$`, accession)

	seq, err := repo.GetSequence(context.Background(), accession, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", seq)

	meta, err := repo.GetMetadata(context.Background(), accession)
	require.NoError(t, err)
	assert.Equal(t, int64(16), meta.Length)
	assert.Contains(t, meta.Aliases, "chr1")
}

func TestFileRepository_UnknownAccession(t *testing.T) {
	dir := t.TempDir()
	writeFASTA(t, dir, "chr1.fa", ">chr1\nACGT\n")
	repo, err := NewFileRepository(dir)
	require.NoError(t, err)

	_, err = repo.GetSequence(context.Background(), "SQ.doesnotexist", 0, 1)
	assert.Error(t, err)
}

func TestOpen_RejectsNonSeqrepoScheme(t *testing.T) {
	_, err := Open("http://example.org/seqrepo")
	assert.Error(t, err)
}

func TestOpen_DispatchesFileScheme(t *testing.T) {
	dir := t.TempDir()
	writeFASTA(t, dir, "chr1.fa", ">chr1\nACGT\n")
	repo, err := Open("seqrepo+file://" + dir)
	require.NoError(t, err)
	_, ok := repo.(*FileRepository)
	assert.True(t, ok)
}

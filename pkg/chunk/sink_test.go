package chunk

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func sealed(bodies ...string) []Chunk {
	chunks := make([]Chunk, 0, len(bodies))
	for _, b := range bodies {
		chunks = append(chunks, Chunk{Fragments: []string{b}, Files: []string{"x"}})
	}
	return chunks
}

func TestSinkSingleChunkGoesToClipboard(t *testing.T) {
	out := t.TempDir()
	cb := &fakeClipboard{}
	s := NewSink(testConfig(".", out), cb, zaptest.NewLogger(t))

	copied, written, err := s.Emit(sealed("only\nchunk\n"))

	require.NoError(t, err)
	assert.True(t, copied)
	assert.Empty(t, written)
	assert.Equal(t, []string{"only\nchunk\n"}, cb.writes)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSinkClipboardFailure(t *testing.T) {
	cb := &fakeClipboard{err: errors.New("xclip exited 1")}
	s := NewSink(testConfig(".", t.TempDir()), cb, nil)

	copied, _, err := s.Emit(sealed("a\n"))

	assert.False(t, copied)
	assert.ErrorContains(t, err, "xclip exited 1")
}

func TestSinkWritesNumberedFiles(t *testing.T) {
	out := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(out, "chunk_2.txt"), []byte("stale content\n"), 0o644))
	cb := &fakeClipboard{}
	s := NewSink(testConfig(".", out), cb, nil)

	copied, written, err := s.Emit(sealed("a\nb\n", "c\n", "d\ne\nf"))

	require.NoError(t, err)
	assert.False(t, copied)
	assert.Empty(t, cb.writes)
	assert.Equal(t, []WrittenFile{
		{Path: filepath.Join(out, "chunk_1.txt"), Lines: 2},
		{Path: filepath.Join(out, "chunk_2.txt"), Lines: 1},
		{Path: filepath.Join(out, "chunk_3.txt"), Lines: 3},
	}, written)

	got, err := os.ReadFile(filepath.Join(out, "chunk_2.txt"))
	require.NoError(t, err)
	assert.Equal(t, "c\n", string(got))
}

func TestSinkWithoutClipboardWritesSingleChunk(t *testing.T) {
	out := t.TempDir()
	cfg := testConfig(".", out)
	cfg.OutputPrefix = "part"
	s := NewSink(cfg, nil, nil)

	copied, written, err := s.Emit(sealed("solo\n"))

	require.NoError(t, err)
	assert.False(t, copied)
	require.Len(t, written, 1)
	assert.Equal(t, filepath.Join(out, "part_1.txt"), written[0].Path)
}

func TestSinkWriteFailureStopsRemainingChunks(t *testing.T) {
	out := t.TempDir()
	// A directory in the way of chunk_2.txt makes its write fail.
	require.NoError(t, os.Mkdir(filepath.Join(out, "chunk_2.txt"), 0o755))
	s := NewSink(testConfig(".", out), nil, nil)

	_, written, err := s.Emit(sealed("1\n", "2\n", "3\n"))

	require.Error(t, err)
	assert.Len(t, written, 1)
	_, statErr := os.Stat(filepath.Join(out, "chunk_3.txt"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestClipboardUnavailableError(t *testing.T) {
	err := NewClipboardUnavailableError()

	assert.ErrorIs(t, err, ErrClipboardUnavailable)
	assert.NotEmpty(t, err.Remedy)
	assert.Contains(t, err.Error(), err.Remedy)
}

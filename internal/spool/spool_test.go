package spool

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpool(t *testing.T) *Spool {
	t.Helper()

	base := t.TempDir()
	s, err := New(filepath.Join(base, "uploads"), filepath.Join(base, "outputs"))
	require.NoError(t, err)
	return s
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestNew_CreatesDirectories(t *testing.T) {
	s := newTestSpool(t)

	for _, dir := range []string{s.UploadDir(), s.OutputDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestSaveUpload(t *testing.T) {
	s := newTestSpool(t)

	path, err := s.SaveUpload(strings.NewReader("fake wav bytes"))
	require.NoError(t, err)

	assert.Equal(t, s.UploadDir(), filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "speaker_"))
	assert.True(t, strings.HasSuffix(path, ".wav"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fake wav bytes", string(data))
}

func TestSaveUpload_UniqueNames(t *testing.T) {
	s := newTestSpool(t)

	seen := make(map[string]bool)
	for range 10 {
		path, err := s.SaveUpload(strings.NewReader("x"))
		require.NoError(t, err)
		assert.False(t, seen[path], "duplicate upload path %s", path)
		seen[path] = true
	}
}

func TestOutputPath_UniqueNames(t *testing.T) {
	s := newTestSpool(t)

	a := s.OutputPath()
	b := s.OutputPath()

	assert.NotEqual(t, a, b)
	assert.Equal(t, s.OutputDir(), filepath.Dir(a))
	assert.True(t, strings.HasPrefix(filepath.Base(a), "output_"))
	assert.True(t, strings.HasSuffix(a, ".wav"))
}

func TestRemove_BestEffort(t *testing.T) {
	s := newTestSpool(t)

	path, err := s.SaveUpload(strings.NewReader("x"))
	require.NoError(t, err)

	s.Remove(path)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Removing a missing file must not panic or log spuriously.
	s.Remove(path)
}

func TestSweep_RemovesOnlyAgedFiles(t *testing.T) {
	s := newTestSpool(t)

	oldUpload, err := s.SaveUpload(strings.NewReader("old"))
	require.NoError(t, err)

	oldOutput := s.OutputPath()
	require.NoError(t, os.WriteFile(oldOutput, []byte("old"), 0o600))

	fresh, err := s.SaveUpload(strings.NewReader("fresh"))
	require.NoError(t, err)

	// Age the old files past the TTL.
	past := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(oldUpload, past, past))
	require.NoError(t, os.Chtimes(oldOutput, past, past))

	s.Sweep(time.Hour)

	_, err = os.Stat(oldUpload)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(oldOutput)
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(fresh)
	assert.NoError(t, err)
	assert.Len(t, listDir(t, s.UploadDir()), 1)
}

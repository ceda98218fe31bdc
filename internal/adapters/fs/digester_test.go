package fs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/launchpad/internal/adapters/fs"
	"go.trai.ch/launchpad/internal/core/domain"
)

func TestDigester_DigestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero_line_wars")
	content := []byte("\x7fELF fake executable")
	require.NoError(t, os.WriteFile(path, content, domain.FilePerm))

	digest, err := fs.NewDigester().DigestFile(path)
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("%016x", xxhash.Sum64(content)), digest)
	assert.Len(t, digest, 16)
}

func TestDigester_ChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app")
	d := fs.NewDigester()

	require.NoError(t, os.WriteFile(path, []byte("v1"), domain.FilePerm))
	first, err := d.DigestFile(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("v2"), domain.FilePerm))
	second, err := d.DigestFile(path)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDigester_MissingFile(t *testing.T) {
	_, err := fs.NewDigester().DigestFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDigestFailed)
}

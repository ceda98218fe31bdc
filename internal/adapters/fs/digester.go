// Package fs provides filesystem helpers for the launcher.
package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/launchpad/internal/core/domain"
	"go.trai.ch/launchpad/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Digester = (*Digester)(nil)

// Digester fingerprints files with XXHash.
type Digester struct{}

// NewDigester creates a new Digester.
func NewDigester() *Digester {
	return &Digester{}
}

// DigestFile returns the XXHash of the file's content as 16 hex digits.
func (d *Digester) DigestFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrDigestFailed, "failed to open file"), "path", path), "reason", err.Error())
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrDigestFailed, "failed to hash file content"), "path", path), "reason", err.Error())
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

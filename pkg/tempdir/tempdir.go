// Package tempdir provides scoped temporary directories for test runs.
package tempdir

import (
	"os"

	"github.com/rs/zerolog/log"
)

// Acquire returns a usable directory together with a release func that must
// be called when the scope ends. When outDir is non-empty it is created
// recursively if missing and the release func is a no-op: caller-supplied
// directories are caller-owned. When outDir is empty a fresh uniquely-named
// directory is created with the given name prefix and release removes it
// recursively. A removal failure is logged rather than surfaced so it never
// masks whatever error ended the scope.
func Acquire(outDir, prefix string) (string, func(), error) {
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return "", nil, err
		}
		return outDir, func() {}, nil
	}
	dir, err := os.MkdirTemp("", prefix)
	if err != nil {
		return "", nil, err
	}
	release := func() {
		if err := os.RemoveAll(dir); err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("temp directory cleanup failed")
		}
	}
	return dir, release, nil
}

// With acquires a directory per Acquire, runs fn with it, and releases it on
// every exit path including panics. Generated directories are removed even
// when fn fails; caller-supplied ones are left in place.
func With(outDir, prefix string, fn func(dir string) error) error {
	dir, release, err := Acquire(outDir, prefix)
	if err != nil {
		return err
	}
	defer release()
	return fn(dir)
}

// Package pathutil provides small path rewriting helpers for test tooling
// that derives output file names from input file names.
package pathutil

import (
	"path/filepath"
	"strings"
)

// ChangeExt returns path with the extension of its final element replaced by
// newExt. The extension is the suffix starting at the last '.' in the final
// element; when there is none, newExt is appended.
func ChangeExt(path, newExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + newExt
}

// ChangeDir returns the base name of path placed under newDir, discarding
// the original directory portion.
func ChangeDir(path, newDir string) string {
	return filepath.Join(newDir, filepath.Base(path))
}

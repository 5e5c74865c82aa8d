package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChangeExt(t *testing.T) {
	tests := []struct {
		path   string
		newExt string
		want   string
	}{
		{"a/b.c", ".txt", "a/b.txt"},
		{"a/b", ".txt", "a/b.txt"},
		{"a.d/b.wasm", ".wat", "a.d/b.wat"},
		{"b.wast", "", "b"},
		{"b.one.two", ".x", "b.one.x"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ChangeExt(tt.path, tt.newExt), "ChangeExt(%q, %q)", tt.path, tt.newExt)
	}
}

func TestChangeDir(t *testing.T) {
	tests := []struct {
		path   string
		newDir string
		want   string
	}{
		{"a/b.c", "x", filepath.Join("x", "b.c")},
		{"b.c", "x/y", filepath.Join("x", "y", "b.c")},
		{"deep/nested/file.wasm", "out", filepath.Join("out", "file.wasm")},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ChangeDir(tt.path, tt.newDir), "ChangeDir(%q, %q)", tt.path, tt.newDir)
	}
}

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const fullLine = "0000000: 3031 3233 3435 3637 3839 6162 6364 6566  0123456789abcdef\n"

func TestHexdumpFromStdin(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("0123456789abcdef"))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"hexdump"})
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, fullLine, out.String())
}

func TestHexdumpFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.bin")
	require.NoError(t, os.WriteFile(path, []byte("0123456789abcdef"), 0o666))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"hexdump", path})
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, fullLine, out.String())
}

func TestRunForwardsStdout(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"run", "echo", "hi"})
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, "hi\n", out.String())
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInjectLinesWritesEveryLineNewlineTerminated exercises the one
// piece of this harness that's worth unit testing without a real qemu
// child process: that every line in the injection file reaches the
// writer newline-terminated, in order, the same contract
// apetest.loadBinary's table-driven checks apply to a loaded binary
// fixture rather than a live process.
func TestInjectLinesWritesEveryLineNewlineTerminated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commands.txt")
	require.NoError(t, os.WriteFile(path, []byte("help\necho hi\nps\n"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, injectLines(path, &buf))

	require.Equal(t, "help\necho hi\nps\n", buf.String())
}

func TestInjectLinesMissingFileReturnsError(t *testing.T) {
	var buf bytes.Buffer
	err := injectLines(filepath.Join(t.TempDir(), "nope.txt"), &buf)
	require.Error(t, err)
}

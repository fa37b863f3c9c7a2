package sysopen

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOpen_UsesOverrideCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a shell script")
	}

	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	script := filepath.Join(dir, "opener.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho \"$1\" > "+out+"\n"), 0o755))

	require.NoError(t, Open("/some/path", script))

	// Open starts the handler without waiting, so poll for its output.
	deadline := time.Now().Add(2 * time.Second)
	for {
		data, err := os.ReadFile(out)
		if err == nil {
			require.Equal(t, "/some/path\n", string(data))
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("override command never ran")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestOpen_MissingCommand(t *testing.T) {
	err := Open(t.TempDir(), filepath.Join(t.TempDir(), "no-such-opener"))
	require.Error(t, err)
}

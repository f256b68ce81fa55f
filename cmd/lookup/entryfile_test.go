package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plume-lib/lookup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEntryFile(t *testing.T) {
	t.Parallel()

	t.Run("picks the first readable candidate", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		first := filepath.Join(dir, "first")
		second := filepath.Join(dir, "second")
		require.NoError(t, os.WriteFile(first, []byte("a\n"), 0o644))
		require.NoError(t, os.WriteFile(second, []byte("b\n"), 0o644))

		path, err := resolveEntryFile(first + ":" + second)

		require.NoError(t, err)
		assert.Equal(t, first, path)
	})

	t.Run("skips unreadable candidates", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		present := filepath.Join(dir, "present")
		require.NoError(t, os.WriteFile(present, []byte("a\n"), 0o644))

		path, err := resolveEntryFile(filepath.Join(dir, "missing") + ":" + present)

		require.NoError(t, err)
		assert.Equal(t, present, path)
	})

	t.Run("fails when no candidate is readable", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		_, err := resolveEntryFile(filepath.Join(dir, "nope"))

		require.Error(t, err)
		assert.Equal(t, lookup.ENOTFOUND, lookup.ErrorCode(err))
	})
}

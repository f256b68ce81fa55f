package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/plume-lib/lookup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(&exitError{code: 1, msg: "item-num out of range"}))
	assert.Equal(t, 254, exitCode(&exitError{code: 254, msg: "usage"}))
	assert.Equal(t, 254, exitCode(errors.New("anything else")))
}

func TestPrintMatches_ItemNumBounds(t *testing.T) {
	t.Parallel()

	matches := []*lookup.Entry{
		{FirstLine: "one", Body: "one\n", Filename: "f", LineNumber: 1, Short: true},
		{FirstLine: "two", Body: "two\n", Filename: "f", LineNumber: 3, Short: true},
	}

	t.Run("non-positive item-num exits with status 1", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n := 0
		err := printMatches(&buf, matches, &printOptions{itemNum: &n})

		require.Error(t, err)
		assert.Equal(t, 1, exitCode(err))
		assert.Equal(t, "Illegal --item-num 0, should be positive\n", buf.String())
	})

	t.Run("item-num above the match count exits with status 1", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n := 3
		err := printMatches(&buf, matches, &printOptions{itemNum: &n})

		require.Error(t, err)
		assert.Equal(t, 1, exitCode(err))
		assert.Equal(t, "Illegal --item-num 3, should be <= 2\n", buf.String())
	})

	t.Run("item-num is ignored for a single match", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n := 9
		err := printMatches(&buf, matches[:1], &printOptions{itemNum: &n})

		require.NoError(t, err)
		assert.Equal(t, "one\n", buf.String())
	})
}

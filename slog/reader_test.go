package slog_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/plume-lib/lookup"
	"github.com/plume-lib/lookup/mock"
	lookupslog "github.com/plume-lib/lookup/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingReader(t *testing.T) {
	t.Parallel()

	newLogger := func(buf *bytes.Buffer) *slog.Logger {
		return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	t.Run("logs progress at the configured interval", func(t *testing.T) {
		t.Parallel()

		entries := []*lookup.Entry{
			{FirstLine: "a", Body: "a\n", Filename: "root", LineNumber: 1, Short: true},
			{FirstLine: "b", Body: "b\n", Filename: "root", LineNumber: 3, Short: true},
			{FirstLine: "c", Body: "c\n", Filename: "root", LineNumber: 5, Short: true},
			{FirstLine: "d", Body: "d\n", Filename: "root", LineNumber: 7, Short: true},
		}
		i := 0
		next := &mock.EntryReader{
			ReadEntryFn: func() (*lookup.Entry, error) {
				if i >= len(entries) {
					return nil, io.EOF
				}
				e := entries[i]
				i++
				return e, nil
			},
		}

		var buf bytes.Buffer
		reader := lookupslog.NewLoggingReader(next, newLogger(&buf), 2)

		for {
			_, err := reader.ReadEntry()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
		}

		assert.Contains(t, buf.String(), "entries=2")
		assert.Contains(t, buf.String(), "entries=4")
		assert.NotContains(t, buf.String(), "entries=3")
	})

	t.Run("logs a file transition once per file", func(t *testing.T) {
		t.Parallel()

		entries := []*lookup.Entry{
			{FirstLine: "a", Body: "a\n", Filename: "root", LineNumber: 1, Short: true},
			{FirstLine: "b", Body: "b\n", Filename: "included", LineNumber: 1, Short: true},
			{FirstLine: "c", Body: "c\n", Filename: "included", LineNumber: 3, Short: true},
		}
		i := 0
		next := &mock.EntryReader{
			ReadEntryFn: func() (*lookup.Entry, error) {
				if i >= len(entries) {
					return nil, io.EOF
				}
				e := entries[i]
				i++
				return e, nil
			},
		}

		var buf bytes.Buffer
		reader := lookupslog.NewLoggingReader(next, newLogger(&buf), 1000)

		for {
			_, err := reader.ReadEntry()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
		}

		assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("file=included")))
		assert.Contains(t, buf.String(), "file=root")
	})

	t.Run("delegates position queries and close", func(t *testing.T) {
		t.Parallel()

		closed := false
		next := &mock.EntryReader{
			FileNameFn:   func() string { return "somewhere" },
			LineNumberFn: func() int { return 42 },
			CloseFn:      func() error { closed = true; return nil },
		}

		var buf bytes.Buffer
		reader := lookupslog.NewLoggingReader(next, newLogger(&buf), 0)

		assert.Equal(t, "somewhere", reader.FileName())
		assert.Equal(t, 42, reader.LineNumber())
		require.NoError(t, reader.Close())
		assert.True(t, closed)
	})
}

// Package slog provides logging decorators for lookup interfaces.
package slog

import (
	"log/slog"

	"github.com/plume-lib/lookup"
)

// Ensure LoggingReader implements lookup.EntryReader.
var _ lookup.EntryReader = (*LoggingReader)(nil)

// LoggingReader wraps an EntryReader with progress logging: a debug line
// whenever reading moves to a different file, and an info line every
// interval entries.
type LoggingReader struct {
	next     lookup.EntryReader
	logger   *slog.Logger
	interval int
	count    int
	lastFile string
}

// NewLoggingReader creates a new LoggingReader. An interval of zero or
// less defaults to 1000 entries.
func NewLoggingReader(next lookup.EntryReader, logger *slog.Logger, interval int) *LoggingReader {
	if interval <= 0 {
		interval = 1000
	}
	return &LoggingReader{next: next, logger: logger, interval: interval}
}

// ReadEntry delegates to the wrapped reader and logs progress.
func (r *LoggingReader) ReadEntry() (*lookup.Entry, error) {
	entry, err := r.next.ReadEntry()
	if err != nil {
		return nil, err
	}
	if entry.Filename != r.lastFile {
		r.logger.Debug("reading entries", "file", entry.Filename)
		r.lastFile = entry.Filename
	}
	r.count++
	if r.count%r.interval == 0 {
		r.logger.Info("progress",
			"entries", r.count,
			"file", entry.Filename,
			"line", entry.LineNumber,
		)
	}
	return entry, nil
}

// FileName delegates to the wrapped reader.
func (r *LoggingReader) FileName() string { return r.next.FileName() }

// LineNumber delegates to the wrapped reader.
func (r *LoggingReader) LineNumber() int { return r.next.LineNumber() }

// Close delegates to the wrapped reader.
func (r *LoggingReader) Close() error { return r.next.Close() }

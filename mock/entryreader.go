package mock

import "github.com/plume-lib/lookup"

var _ lookup.EntryReader = (*EntryReader)(nil)

// EntryReader is a mock implementation of lookup.EntryReader.
type EntryReader struct {
	ReadEntryFn  func() (*lookup.Entry, error)
	FileNameFn   func() string
	LineNumberFn func() int
	CloseFn      func() error
}

func (r *EntryReader) ReadEntry() (*lookup.Entry, error) {
	return r.ReadEntryFn()
}

func (r *EntryReader) FileName() string {
	return r.FileNameFn()
}

func (r *EntryReader) LineNumber() int {
	return r.LineNumberFn()
}

func (r *EntryReader) Close() error {
	return r.CloseFn()
}

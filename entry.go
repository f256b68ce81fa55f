package lookup

import (
	"io"
	"regexp"
)

// Entry is a matchable unit of text read from an entry file: either a
// short (paragraph) entry or a long (explicitly delimited) entry.
// Entries are immutable once produced by a reader.
type Entry struct {
	// FirstLine is the first line of the entry. For long entries the
	// entry-start marker has been stripped from it, which can leave it
	// empty.
	FirstLine string

	// Body is the full entry text, one newline-terminated line per input
	// line. It is never empty for a returned entry.
	Body string

	// Filename is the file the entry started in, after include resolution.
	Filename string

	// LineNumber is the 1-based line within Filename where the entry began.
	LineNumber int

	// Short reports whether this is a paragraph entry rather than a
	// delimited long entry.
	Short bool
}

// Description returns the entry's one-line description. If re is non-nil
// and matches FirstLine, the first capture group of the match is returned;
// otherwise FirstLine is returned verbatim.
func (e *Entry) Description(re *regexp.Regexp) string {
	if re != nil {
		if m := re.FindStringSubmatch(e.FirstLine); len(m) > 1 {
			return m[1]
		}
	}
	return e.FirstLine
}

// EntryReader produces a lazy sequence of entries from an entry file and
// any files it includes. ReadEntry returns io.EOF once all entries have
// been read; the sequence cannot be rewound once advanced. FileName and
// LineNumber report the position of the last line read and remain usable
// after ReadEntry has failed or returned io.EOF, for error reporting.
type EntryReader interface {
	ReadEntry() (*Entry, error)
	FileName() string
	LineNumber() int
	io.Closer
}

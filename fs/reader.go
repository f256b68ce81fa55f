package fs

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/plume-lib/lookup"
)

// Ensure Reader implements lookup.EntryReader at compile time.
var _ lookup.EntryReader = (*Reader)(nil)

// Reader reads entries from a root file and any files it includes. An
// include directive splices the named file into the stream: reading
// continues in the included file and returns to the including file, at its
// saved position, once the included file is exhausted. Line numbers always
// refer to the file a line physically came from.
//
// Include cycles are not detected; a file that includes itself, directly
// or transitively, recurses until resource exhaustion.
//
// Reader is single-threaded and not safe for concurrent use.
type Reader struct {
	cfg     *lookup.ReaderConfig
	sources []*lineSource // include stack; the top is the active file
	file    string        // position of the last line read
	line    int
}

// NewReader opens the root entry file for reading with the given
// configuration. The caller must Close the reader when done.
func NewReader(root string, cfg *lookup.ReaderConfig) (*Reader, error) {
	src, err := openLineSource(root)
	if err != nil {
		return nil, err
	}
	return &Reader{cfg: cfg, sources: []*lineSource{src}, file: root}, nil
}

// FileName returns the file, after include resolution, that the last line
// was read from. It remains valid after ReadEntry has returned io.EOF or
// an error.
func (r *Reader) FileName() string { return r.file }

// LineNumber returns the 1-based number of the last line read, within
// FileName.
func (r *Reader) LineNumber() int { return r.line }

// Close closes every file still open on the include stack.
func (r *Reader) Close() error {
	var firstErr error
	for _, src := range r.sources {
		if err := src.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.sources = nil
	return firstErr
}

// ReadEntry returns the next entry, or io.EOF when no entries remain.
func (r *Reader) ReadEntry() (*lookup.Entry, error) {
	// Skip blank lines between entries.
	line, err := r.readLine()
	for err == nil && isBlank(line) {
		line, err = r.readLine()
	}
	if err != nil {
		return nil, err
	}

	filename := r.file
	lineNumber := r.line

	if r.cfg.EntryStart != nil && r.cfg.EntryStart.MatchString(line) {
		return r.readLongEntry(line, filename, lineNumber)
	}
	return r.readShortEntry(line, filename, lineNumber)
}

// readLongEntry accumulates a delimited entry starting at line. The entry
// ends at the next entry-start line (pushed back), at a stop line
// (consumed), at a file boundary, or at end of input.
func (r *Reader) readLongEntry(line, filename string, lineNumber int) (*lookup.Entry, error) {
	firstLine := r.cfg.EntryStart.ReplaceAllString(line, "${1}")

	var body strings.Builder
	cur := firstLine
	for {
		body.WriteString(cur)
		body.WriteByte('\n')

		next, err := r.readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if r.file != filename {
			// Entries never span file boundaries.
			break
		}
		if r.cfg.EntryStart.MatchString(next) {
			if err := r.putback(next); err != nil {
				return nil, err
			}
			break
		}
		if r.cfg.EntryStop != nil && r.cfg.EntryStop.MatchString(next) {
			break
		}
		cur = next
	}

	return &lookup.Entry{
		FirstLine:  firstLine,
		Body:       body.String(),
		Filename:   filename,
		LineNumber: lineNumber,
	}, nil
}

// readShortEntry accumulates a paragraph entry starting at line. The entry
// ends at a blank line (two consecutive blank lines with TwoBlankLines; a
// lone blank line is then folded into the body), at a file boundary, or at
// end of input. Terminating blank lines are consumed but not part of the
// body.
func (r *Reader) readShortEntry(line, filename string, lineNumber int) (*lookup.Entry, error) {
	var body strings.Builder
	cur := line
	for {
		body.WriteString(cur)
		body.WriteByte('\n')

		next, err := r.readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if r.file != filename {
			if perr := r.putback(next); perr != nil {
				return nil, perr
			}
			break
		}
		if !isBlank(next) {
			cur = next
			continue
		}
		if !r.cfg.TwoBlankLines {
			break
		}
		after, err := r.readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if isBlank(after) {
			break
		}
		if r.file != filename {
			if perr := r.putback(after); perr != nil {
				return nil, perr
			}
			break
		}
		// A lone blank line is part of the entry.
		body.WriteString(next)
		body.WriteByte('\n')
		cur = after
	}

	return &lookup.Entry{
		FirstLine:  line,
		Body:       body.String(),
		Filename:   filename,
		LineNumber: lineNumber,
		Short:      true,
	}, nil
}

// readLine returns the next content line: comment lines are elided,
// include directives are expanded onto the source stack, and exhausted
// included files are popped and closed. io.EOF means the whole stream is
// exhausted.
func (r *Reader) readLine() (string, error) {
	for {
		if len(r.sources) == 0 {
			return "", io.EOF
		}
		top := r.sources[len(r.sources)-1]
		line, err := top.readLine()
		if err == io.EOF {
			r.sources = r.sources[:len(r.sources)-1]
			if cerr := top.close(); cerr != nil {
				return "", cerr
			}
			continue
		}
		if err != nil {
			return "", err
		}
		r.file = top.name
		r.line = top.line

		if r.cfg.Comment != nil && r.cfg.Comment.MatchString(line) {
			continue
		}
		if r.cfg.Include != nil {
			if m := r.cfg.Include.FindStringSubmatch(line); m != nil {
				src, err := openLineSource(resolveInclude(top.name, m[1]))
				if err != nil {
					return "", err
				}
				r.sources = append(r.sources, src)
				continue
			}
		}
		return line, nil
	}
}

// putback returns line to the active source so the next readLine call
// yields it again.
func (r *Reader) putback(line string) error {
	if len(r.sources) == 0 {
		return lookup.Errorf(lookup.EINTERNAL, "pushback of %q with no open file", line)
	}
	return r.sources[len(r.sources)-1].pushback(line)
}

// resolveInclude resolves an include target named in the file from. A
// leading ~ expands to the user's home directory; other relative paths are
// taken relative to the including file's directory.
func resolveInclude(from, target string) string {
	target = ExpandTilde(target)
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(filepath.Dir(from), target)
}

// isBlank reports whether line is empty or all whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

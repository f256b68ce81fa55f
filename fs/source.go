// Package fs implements file-backed entry reading: buffered line sources
// with single-slot pushback, include-directive resolution via a stack of
// sources, and the entry segmentation state machine.
package fs

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/plume-lib/lookup"
)

// maxLineLen bounds a single input line.
const maxLineLen = 1024 * 1024

// lineSource yields the lines of one open file and tracks the 1-based
// number of the last line returned. It holds a single-slot pushback
// buffer; pushing a second line without an intervening read violates the
// reader's internal contract.
type lineSource struct {
	file    *os.File
	scanner *bufio.Scanner
	name    string
	line    int
	pushed  *string
}

// openLineSource opens path for line-at-a-time reading. A file that
// cannot be opened is reported as ENOTFOUND carrying the attempted path.
func openLineSource(path string) (*lineSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, lookup.Errorf(lookup.ENOTFOUND, "%s", path)
	}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	return &lineSource{file: f, scanner: sc, name: path}, nil
}

// readLine returns the next line without its terminator, draining the
// pushback buffer first. It returns io.EOF at end of file.
func (s *lineSource) readLine() (string, error) {
	if s.pushed != nil {
		line := *s.pushed
		s.pushed = nil
		s.line++
		return line, nil
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", lookup.Errorf(lookup.EINTERNAL, "reading %s: %v", s.name, err)
		}
		return "", io.EOF
	}
	s.line++
	return s.scanner.Text(), nil
}

// pushback stores line to be returned by the next readLine call, restoring
// the line counter to the position before the line was read.
func (s *lineSource) pushback(line string) error {
	if s.pushed != nil {
		return lookup.Errorf(lookup.EINTERNAL, "pushback of %q overwrites a pending line in %s", line, s.name)
	}
	s.pushed = &line
	s.line--
	return nil
}

func (s *lineSource) close() error {
	return s.file.Close()
}

// ExpandTilde replaces a leading "~" in path with the user's home
// directory. Paths that do not start with "~" are returned unchanged, as
// is any path when the home directory cannot be determined.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

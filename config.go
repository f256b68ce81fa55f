package lookup

import "regexp"

// Default patterns understood by the reader. Existing entry-file corpora
// depend on these, so they must be preserved verbatim.
const (
	DefaultEntryStart = "^>entry *()"
	DefaultEntryStop  = "^<entry"
	DefaultComment    = "^%.*"
	DefaultInclude    = `\\include\{(.*)\}`
)

// ReaderConfig carries the compiled patterns that drive entry segmentation.
// Construct it with NewReaderConfig, which validates pattern compilability
// and capture-group arity before any file is read.
type ReaderConfig struct {
	// EntryStart matches the start of a long entry. The matched text is
	// replaced by capture group 1 to form the entry's first line.
	EntryStart *regexp.Regexp

	// EntryStop matches, in full, the line that ends a long entry. The
	// stop line is consumed but not part of the entry body.
	EntryStop *regexp.Regexp

	// Comment matches, in full, a line to elide from the stream. Comment
	// lines are neither content nor blank-line separators. Nil disables
	// comment filtering.
	Comment *regexp.Regexp

	// Include matches, in full, an include directive; capture group 1 is
	// the target file name. Nil disables include processing.
	Include *regexp.Regexp

	// TwoBlankLines requires two consecutive blank lines, rather than one,
	// to terminate a short entry.
	TwoBlankLines bool
}

// NewReaderConfig compiles the supplied patterns into a ReaderConfig.
// comment and include may be empty to disable the respective processing.
// entryStop, comment and include are matched against entire lines;
// entryStart uses ordinary find semantics so the marker may carry trailing
// description text. Pattern problems are reported as EINVALID.
func NewReaderConfig(entryStart, entryStop, comment, include string, twoBlankLines bool) (*ReaderConfig, error) {
	cfg := &ReaderConfig{TwoBlankLines: twoBlankLines}

	start, err := regexp.Compile(entryStart)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid entry-start pattern %q: %v", entryStart, err)
	}
	if start.NumSubexp() < 1 {
		return nil, Errorf(EINVALID, "entry-start pattern %q needs a capture group for the description", entryStart)
	}
	cfg.EntryStart = start

	stop, err := compileFullLine(entryStop)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid entry-stop pattern %q: %v", entryStop, err)
	}
	cfg.EntryStop = stop

	if comment != "" {
		c, err := compileFullLine(comment)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid comment pattern %q: %v", comment, err)
		}
		cfg.Comment = c
	}

	if include != "" {
		inc, err := compileFullLine(include)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid include pattern %q: %v", include, err)
		}
		if inc.NumSubexp() < 1 {
			return nil, Errorf(EINVALID, "include pattern %q needs a capture group for the file name", include)
		}
		cfg.Include = inc
	}

	return cfg, nil
}

// DefaultReaderConfig returns the configuration for the default entry-file
// format: ">entry"/"<entry" long-entry markers, "%" comments, \include
// directives, and single-blank-line paragraph separation.
func DefaultReaderConfig() *ReaderConfig {
	cfg, err := NewReaderConfig(DefaultEntryStart, DefaultEntryStop, DefaultComment, DefaultInclude, false)
	if err != nil {
		panic(err) // the default patterns compile
	}
	return cfg
}

// compileFullLine compiles pattern so that it must match an entire line.
func compileFullLine(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`\A(?:` + pattern + `)\z`)
}

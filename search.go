package lookup

import (
	"regexp"
	"strings"
)

// Query describes one search. Every keyword must match for an entry to be
// selected.
type Query struct {
	// Keywords are the search terms. With Regex set they are compiled as
	// regular expressions, otherwise they are literal text matches.
	Keywords []string

	// Regex treats keywords as regular expressions.
	Regex bool

	// CaseSensitive disables the default case-insensitive matching.
	CaseSensitive bool

	// WordMatch matches text keywords only as whole words, not as
	// substrings of words. Ignored when Regex is set.
	WordMatch bool

	// SearchBody searches the body of long entries in addition to their
	// description. Short-entry bodies are always searched.
	SearchBody bool

	// Description optionally extracts a long entry's description from its
	// first line (capture group 1) before matching.
	Description *regexp.Regexp
}

// Matcher is a compiled Query. Keywords are compiled once at construction
// so that per-entry matching is cheap.
type Matcher struct {
	query    Query
	patterns []*regexp.Regexp
	keywords []string
}

// NewMatcher compiles q's keywords. A regex keyword that fails to compile
// is reported as EINVALID.
func NewMatcher(q Query) (*Matcher, error) {
	m := &Matcher{query: q}

	switch {
	case q.Regex:
		for _, kw := range q.Keywords {
			re, err := compileKeyword(kw, q.CaseSensitive)
			if err != nil {
				return nil, Errorf(EINVALID, "not a regex: %s", kw)
			}
			m.patterns = append(m.patterns, re)
		}
	case q.WordMatch:
		for _, kw := range q.Keywords {
			re, err := compileKeyword(`\b`+regexp.QuoteMeta(kw)+`\b`, q.CaseSensitive)
			if err != nil {
				return nil, Errorf(EINVALID, "not a regex: %s", kw)
			}
			m.patterns = append(m.patterns, re)
		}
	default:
		for _, kw := range q.Keywords {
			if !q.CaseSensitive {
				kw = strings.ToLower(kw)
			}
			m.keywords = append(m.keywords, kw)
		}
	}

	return m, nil
}

// Matches reports whether every keyword of the query matches e. The text
// searched is the body for short entries or when SearchBody is set, and
// the long entry's description otherwise.
func (m *Matcher) Matches(e *Entry) bool {
	text := e.Body
	if !m.query.SearchBody && !e.Short {
		text = e.Description(m.query.Description)
	}

	if len(m.patterns) > 0 {
		for _, re := range m.patterns {
			if !re.MatchString(text) {
				return false
			}
		}
		return true
	}

	if !m.query.CaseSensitive {
		text = strings.ToLower(text)
	}
	for _, kw := range m.keywords {
		if !strings.Contains(text, kw) {
			return false
		}
	}
	return true
}

func compileKeyword(pattern string, caseSensitive bool) (*regexp.Regexp, error) {
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	return regexp.Compile(pattern)
}

package main

import (
	"fmt"
	"io"
	"regexp"

	"github.com/plume-lib/lookup"
)

// printOptions controls how matching entries are rendered.
type printOptions struct {
	printAll     bool
	itemNum      *int
	showLocation bool
	description  *regexp.Regexp
}

// printMatches renders the search results in the legacy output format:
// a single match prints its body, multiple matches print a synopsis
// unless a specific item or print-all is requested.
func printMatches(w io.Writer, matches []*lookup.Entry, opts *printOptions) error {
	switch len(matches) {
	case 0:
		fmt.Fprintln(w, "Nothing found.")
		return nil
	case 1:
		printEntry(w, matches[0], opts.showLocation)
		return nil
	}

	if opts.itemNum != nil {
		n := *opts.itemNum
		if n < 1 {
			fmt.Fprintf(w, "Illegal --item-num %d, should be positive\n", n)
			return &exitError{code: 1, msg: "item-num out of range"}
		}
		if n > len(matches) {
			fmt.Fprintf(w, "Illegal --item-num %d, should be <= %d\n", n, len(matches))
			return &exitError{code: 1, msg: "item-num out of range"}
		}
		printEntry(w, matches[n-1], opts.showLocation)
		return nil
	}

	if opts.printAll {
		fmt.Fprintf(w, "%d matches found (separated by dashes below)\n", len(matches))
	} else {
		fmt.Fprintf(w, "%d matches found. Use -i to print a specific match or -a to see them all.\n", len(matches))
	}

	for i, e := range matches {
		if opts.printAll {
			if opts.showLocation {
				fmt.Fprintf(w, "\n-------------------------\n%s:%d:\n", e.Filename, e.LineNumber)
			} else {
				fmt.Fprintf(w, "\n-------------------------\n")
			}
			fmt.Fprint(w, e.Body)
		} else {
			if opts.showLocation {
				fmt.Fprintf(w, "  -i=%d %s:%d: %s\n", i+1, e.Filename, e.LineNumber, e.FirstLine)
			} else {
				fmt.Fprintf(w, "  -i=%d %s\n", i+1, e.Description(opts.description))
			}
		}
	}
	return nil
}

// printEntry prints one entry's body, preceded by a file:line: header when
// requested.
func printEntry(w io.Writer, e *lookup.Entry, showLocation bool) {
	if showLocation {
		fmt.Fprintf(w, "%s:%d:\n", e.Filename, e.LineNumber)
	}
	fmt.Fprint(w, e.Body)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/plume-lib/lookup"
	lookupfs "github.com/plume-lib/lookup/fs"
	lookupslog "github.com/plume-lib/lookup/slog"
)

func main() {
	m := NewMain()

	if err := m.Run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(exitCode(err))
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong. The option
// surface and defaults mirror the legacy lookup tool.
type CLI struct {
	EntryFile  string `short:"f" default:"~/lookup/root" group:"Where to search" help:"The colon-separated search list of files of information; only the first file found is used, though it may itself contain include directives."`
	SearchBody bool   `short:"b" group:"Where to search" help:"Search the body of long entries in addition to the entry's description."`

	RegularExpressions bool `short:"e" group:"What to search for" help:"Keywords are regular expressions."`
	CaseSensitive      bool `short:"c" group:"What to search for" help:"Keyword matching is case sensitive."`
	WordMatch          bool `short:"w" group:"What to search for" help:"Only match search terms against complete words."`

	PrintAll     bool `short:"a" group:"How to print matches" help:"Print the entire entry for each match."`
	ItemNum      *int `short:"i" group:"How to print matches" help:"Choose a specific item when there are multiple matches; index is 1-based."`
	ShowLocation bool `short:"l" group:"How to print matches" help:"Show the location of each matching entry."`

	TwoBlankLines bool   `group:"File format" help:"Entries are separated by two blank lines."`
	EntryStartRe  string `default:"${entry_start_re}" group:"File format" help:"Regex that denotes the start of a long entry."`
	EntryStopRe   string `default:"${entry_stop_re}" group:"File format" help:"Regex that denotes the end of a long entry."`
	DescriptionRe string `group:"File format" help:"Regex that finds an entry's description (for long entries)."`
	CommentRe     string `default:"${comment_re}" group:"File format" help:"Regex that matches an entire comment (not just a comment start)."`
	IncludeRe     string `default:"${include_re}" group:"File format" help:"Regex that matches an include directive; group 1 is the file name."`

	Verbose bool `short:"v" help:"Print progress information."`

	Keywords []string `arg:"" optional:"" help:"Search keywords; an entry matches when every keyword matches."`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lookup"),
		kong.Description("Search a set of files by entry, like a paragraph-wise grep."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"entry_start_re": lookup.DefaultEntryStart,
			"entry_stop_re":  lookup.DefaultEntryStop,
			"comment_re":     lookup.DefaultComment,
			"include_re":     lookup.DefaultInclude,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return &exitError{code: 254, msg: err.Error()}
	}

	if len(cli.Keywords) == 0 {
		fmt.Fprintln(stdout, "Error: No keywords specified")
		_, _ = parser.Parse([]string{"--help"})
		return &exitError{code: 254, msg: "no keywords specified"}
	}

	cfg, err := lookup.NewReaderConfig(cli.EntryStartRe, cli.EntryStopRe, cli.CommentRe, cli.IncludeRe, cli.TwoBlankLines)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %s\n", lookup.ErrorMessage(err))
		return &exitError{code: 254, msg: lookup.ErrorMessage(err)}
	}

	var descriptionRe *regexp.Regexp
	if cli.DescriptionRe != "" {
		descriptionRe, err = regexp.Compile(cli.DescriptionRe)
		if err != nil {
			fmt.Fprintf(stdout, "Error: not a regex: %s\n", cli.DescriptionRe)
			return &exitError{code: 254, msg: "invalid description pattern"}
		}
	}

	matcher, err := lookup.NewMatcher(lookup.Query{
		Keywords:      cli.Keywords,
		Regex:         cli.RegularExpressions,
		CaseSensitive: cli.CaseSensitive,
		WordMatch:     cli.WordMatch,
		SearchBody:    cli.SearchBody,
		Description:   descriptionRe,
	})
	if err != nil {
		fmt.Fprintf(stdout, "Error: %s\n", lookup.ErrorMessage(err))
		return &exitError{code: 254, msg: lookup.ErrorMessage(err)}
	}

	rootFile, err := resolveEntryFile(cli.EntryFile)
	if err != nil {
		fmt.Fprintln(stdout, "Error: Can't read any entry files.")
		for _, candidate := range strings.Split(cli.EntryFile, ":") {
			fmt.Fprintf(stdout, "  entry file %s\n", lookupfs.ExpandTilde(candidate))
		}
		return &exitError{code: 254, msg: lookup.ErrorMessage(err)}
	}

	fsReader, err := lookupfs.NewReader(rootFile, cfg)
	if err != nil {
		fmt.Fprintf(stdout, "Error: Can't read %s\n", lookup.ErrorMessage(err))
		return &exitError{code: 254, msg: lookup.ErrorMessage(err)}
	}
	defer fsReader.Close()

	var reader lookup.EntryReader = fsReader
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		reader = lookupslog.NewLoggingReader(fsReader, logger, 1000)
	}

	matches, err := collectMatches(reader, matcher, cli.Verbose, stdout)
	if err != nil {
		fmt.Fprintf(stdout, "Error: Can't read %s at line %d in file %s\n",
			lookup.ErrorMessage(err), reader.LineNumber(), reader.FileName())
		return &exitError{code: 254, msg: lookup.ErrorMessage(err)}
	}

	return printMatches(stdout, matches, &printOptions{
		printAll:     cli.PrintAll,
		itemNum:      cli.ItemNum,
		showLocation: cli.ShowLocation,
		description:  descriptionRe,
	})
}

// collectMatches drains the reader and returns the entries selected by the
// matcher, in file-then-line order.
func collectMatches(reader lookup.EntryReader, matcher *lookup.Matcher, verbose bool, stdout io.Writer) ([]*lookup.Entry, error) {
	var matches []*lookup.Entry
	entryCnt := 0
	for {
		entry, err := reader.ReadEntry()
		if err == io.EOF {
			return matches, nil
		}
		if err != nil {
			return nil, err
		}
		entryCnt++
		if verbose && entryCnt%1000 == 0 {
			fmt.Fprintf(stdout, "%d matches in %d entries\r", len(matches), entryCnt)
		}
		if matcher.Matches(entry) {
			matches = append(matches, entry)
		}
	}
}

// exitError carries the process exit status for a failed run. The
// user-facing message has already been printed when it is returned.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

// exitCode maps an error returned by Run to a process exit status: 1 for
// an out-of-range --item-num, 254 for every other failure, matching the
// legacy tool.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 254
}

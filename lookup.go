// Package lookup provides an entry-wise search tool for plain-text files,
// much like grep, except that it searches by entry (by default, paragraphs)
// rather than by line, ignores comment lines, and follows \include
// directives into other files.
//
// A file contains short entries (paragraphs, delimited by blank lines) and
// long entries (delimited by explicit start and stop marker lines). Every
// search keyword must match for an entry to be selected; short entries are
// matched against their whole body, long entries against their first-line
// description unless body search is requested.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, slog/).
package lookup

package main

import (
	"os"
	"strings"

	"github.com/plume-lib/lookup"
	lookupfs "github.com/plume-lib/lookup/fs"
)

// resolveEntryFile picks the first readable candidate from the
// colon-separated search list. A leading ~ in a candidate expands to the
// user's home directory. Only the first readable file is used; the search
// path exists so a personal file can shadow a system-wide one.
func resolveEntryFile(searchList string) (string, error) {
	for _, candidate := range strings.Split(searchList, ":") {
		path := lookupfs.ExpandTilde(candidate)
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		f.Close()
		return path, nil
	}
	return "", lookup.Errorf(lookup.ENOTFOUND, "no readable entry file in %q", searchList)
}

package engine

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Entry is the svn:ignore property of one directory: its path relative to
// the conversion root ("." for the root itself) and the raw pattern lines in
// property order.
type Entry struct {
	Path     string
	Patterns []string
}

func newEntry(rel, value string) Entry {
	return Entry{Path: rel, Patterns: strings.Split(value, "\n")}
}

// prunePatterns extracts the lines a directory's property applies to its
// children. svn:ignore has no comment syntax, so "#" lines prune like any
// other pattern.
func prunePatterns(value string) []string {
	var patterns []string
	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// matchesAny reports whether name matches any of the glob patterns.
// Malformed patterns never match.
func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); ok && err == nil {
			return true
		}
	}
	return false
}

// depthOf is the number of levels rel sits below the root: 0 for the root
// itself, 1 for its immediate children.
func depthOf(rel string) int {
	if rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// sortEntries orders entries the way a top-down walk over sorted directory
// listings visits them: root first, parents before children, siblings in
// lexicographic order.
func sortEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		return comparePaths(a.Path, b.Path)
	})
}

// comparePaths compares component-wise so that a directory always sorts
// ahead of its contents.
func comparePaths(a, b string) int {
	if a == b {
		return 0
	}
	if a == "." {
		return -1
	}
	if b == "." {
		return 1
	}
	as := strings.Split(a, string(filepath.Separator))
	bs := strings.Split(b, string(filepath.Separator))
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := strings.Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return len(as) - len(bs)
}

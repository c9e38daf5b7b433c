package svn

import (
	"path/filepath"
	"strings"
)

// ParseProplist splits the output of "svn propget --recursive" into per-path
// values. A line opens a new record when it names root, or a path below
// root, followed by " - ". Every other line continues the previous record's
// value; lines before the first record are dropped.
func ParseProplist(root, output string) []Prop {
	var props []Prop
	current := -1
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if path, value, ok := cutRecord(root, line); ok {
			props = append(props, Prop{Path: path, Value: value})
			current = len(props) - 1
			continue
		}
		if current < 0 {
			continue
		}
		props[current].Value += "\n" + line
	}
	return props
}

// cutRecord splits a "<path> - <value>" record line. The convention is
// ambiguous for directory names containing " - "; the first separator wins.
func cutRecord(root, line string) (path, value string, ok bool) {
	rest, found := strings.CutPrefix(line, root)
	if !found {
		return "", "", false
	}
	if value, found := strings.CutPrefix(rest, " - "); found {
		return root, value, true
	}
	if rest == "" || rest[0] != filepath.Separator {
		return "", "", false
	}
	idx := strings.Index(rest, " - ")
	if idx < 0 {
		return "", "", false
	}
	return root + rest[:idx], rest[idx+len(" - "):], true
}

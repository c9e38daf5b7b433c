package engine

import (
	"path/filepath"
	"strings"
)

// Render converts entries to gitignore text in entry order, without
// deduplication. Root patterns are emitted verbatim; patterns from
// subdirectories are prefixed with their directory path, and each
// subdirectory group opens with a comment naming it. Blank and "#" property
// lines are dropped.
func Render(entries []Entry) string {
	var lines []string
	for _, entry := range entries {
		dir := filepath.ToSlash(entry.Path)
		if dir != "." {
			lines = append(lines, "", "# svn:ignore from "+dir)
		}
		for _, pattern := range entry.Patterns {
			pattern = strings.TrimSpace(pattern)
			if pattern == "" || strings.HasPrefix(pattern, "#") {
				continue
			}
			if dir == "." {
				lines = append(lines, pattern)
				continue
			}
			combined := strings.ReplaceAll(dir+"/"+pattern, "\\", "/")
			combined = strings.ReplaceAll(combined, "//", "/")
			lines = append(lines, combined)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

package engine

import (
	"path/filepath"
	"strings"

	"github.com/eriseven/svn-git-ignore-converter/svn"
)

// bulkEntries collects the whole tree's properties in one recursive query,
// falling back to per-directory point queries when it fails.
func (e *Engine) bulkEntries() []Entry {
	props, err := e.client.IgnoresTree(e.root)
	if err != nil {
		e.log.Warnf("Recursive property query failed, falling back to per-directory queries: %s", err)
		return e.walk()
	}
	return e.assemble(props)
}

// assemble reconstructs the walk's pruning and depth limit from a bulk
// property listing, which reports every directory regardless of either.
func (e *Engine) assemble(props []svn.Prop) []Entry {
	values := map[string]string{}
	for _, prop := range props {
		rel, err := filepath.Rel(e.root, prop.Path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			e.log.Warnf("Ignoring property path outside the working copy: %s", prop.Path)
			continue
		}
		value := strings.TrimSpace(prop.Value)
		if value == "" {
			continue
		}
		values[rel] = value
	}
	patterns := map[string][]string{}
	for rel, value := range values {
		patterns[rel] = prunePatterns(value)
	}
	pruned := map[string]bool{}
	var entries []Entry
	for rel, value := range values {
		if e.config.MaxDepth > 0 && depthOf(rel) > e.config.MaxDepth {
			continue
		}
		if prunedIn(rel, patterns, pruned) {
			e.log.Debugf("Pruned %s", rel)
			continue
		}
		entries = append(entries, newEntry(rel, value))
	}
	return entries
}

// prunedIn reports whether a physical walk would have pruned rel: a
// directory is pruned when any ancestor's patterns match its name, walking
// up from its parent with the first match winning, or when an ancestor is
// itself pruned.
func prunedIn(rel string, patterns map[string][]string, memo map[string]bool) bool {
	if rel == "." {
		return false
	}
	if pruned, ok := memo[rel]; ok {
		return pruned
	}
	parent := filepath.Dir(rel)
	pruned := prunedIn(parent, patterns, memo)
	if !pruned {
		name := filepath.Base(rel)
		for dir := parent; ; dir = filepath.Dir(dir) {
			if matchesAny(name, patterns[dir]) {
				pruned = true
				break
			}
			if dir == "." {
				break
			}
		}
	}
	memo[rel] = pruned
	return pruned
}

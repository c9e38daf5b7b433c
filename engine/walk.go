package engine

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/eriseven/svn-git-ignore-converter/engine/internal"
	"github.com/eriseven/svn-git-ignore-converter/svn"
)

// walk collects entries top-down with one point query per directory. A
// child directory whose name matches one of its parent's patterns is pruned
// before it is queried, so nothing beneath it is ever visited.
func (e *Engine) walk() []Entry {
	var entries []Entry
	e.walkDir(".", 0, &entries)
	return entries
}

func (e *Engine) walkDir(rel string, depth int, entries *[]Entry) {
	e.log.Debugf("Processing %s", rel)
	value, ok := e.client.Ignores(e.abs(rel))
	if ok {
		*entries = append(*entries, newEntry(rel, value))
	}
	if e.config.MaxDepth > 0 && depth >= e.config.MaxDepth {
		return
	}
	patterns := prunePatterns(value)
	for _, name := range e.subdirs(rel) {
		if matchesAny(name, patterns) {
			e.log.Debugf("Pruned %s", filepath.Join(rel, name))
			continue
		}
		e.walkDir(filepath.Join(rel, name), depth+1, entries)
	}
}

// subdirs lists the subdirectories of rel in name order, excluding
// Subversion metadata. Unreadable directories log a warning and contribute
// nothing. Symlinks are not followed.
func (e *Engine) subdirs(rel string) []string {
	entries, err := os.ReadDir(e.abs(rel))
	if err != nil {
		e.log.Warnf("Failed to list %s: %s", rel, err)
		return nil
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == svn.AdminDir {
			continue
		}
		names = append(names, entry.Name())
	}
	return names
}

// walkParallel is walk with each level's queries fanned out across a
// bounded pool. Pruning needs a parent's patterns before its children are
// enumerated, so parallelism is per level.
func (e *Engine) walkParallel() []Entry {
	type result struct {
		value string
		ok    bool
	}
	var (
		mu      sync.Mutex
		results = map[string]result{}
	)
	var entries []Entry
	level := []string{"."}
	for depth := 0; len(level) > 0; depth++ {
		pool := internal.NewPool(e.config.Threads, func(rel string) {
			value, ok := e.client.Ignores(e.abs(rel))
			mu.Lock()
			defer mu.Unlock()
			results[rel] = result{value, ok}
		})
		for _, rel := range level {
			e.log.Debugf("Processing %s", rel)
			pool.Queue(rel)
		}
		pool.CloseWait()

		var next []string
		for _, rel := range level {
			res := results[rel]
			if res.ok {
				entries = append(entries, newEntry(rel, res.value))
			}
			if e.config.MaxDepth > 0 && depth >= e.config.MaxDepth {
				continue
			}
			patterns := prunePatterns(res.value)
			for _, name := range e.subdirs(rel) {
				if matchesAny(name, patterns) {
					e.log.Debugf("Pruned %s", filepath.Join(rel, name))
					continue
				}
				next = append(next, filepath.Join(rel, name))
			}
		}
		level = next
	}
	return entries
}

// Package engine turns the svn:ignore properties of a Subversion working
// copy into gitignore rules.
package engine

import (
	"fmt"
	"path/filepath"

	"github.com/eriseven/svn-git-ignore-converter/engine/logging"
	"github.com/eriseven/svn-git-ignore-converter/svn"
)

// MaxThreads bounds the width of the parallel query pool.
const MaxThreads = 10

// Config controls a conversion run.
type Config struct {
	Recursive bool // Collect properties from subdirectories too.
	MaxDepth  int  // Deepest level to visit, 0 for unlimited.
	Threads   int  // Parallel point queries, clamped to 1..MaxThreads.
}

type Engine struct {
	root   string
	config Config
	log    *logging.Logger
	client svn.Client
}

// New validates that root is a Subversion working copy and returns an Engine
// that collects its ignore properties.
func New(log *logging.Logger, client svn.Client, root string, config Config) (*Engine, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", root, err)
	}
	if err := client.Check(abs); err != nil {
		return nil, err
	}
	if config.Threads < 1 {
		config.Threads = 1
	} else if config.Threads > MaxThreads {
		log.Debugf("Clamping threads from %d to %d", config.Threads, MaxThreads)
		config.Threads = MaxThreads
	}
	return &Engine{root: abs, config: config, log: log, client: client}, nil
}

// Entries collects the ignore properties in scope for the run, ordered root
// first and parents before children. Failed queries are absorbed as absent
// properties, so there is nothing fatal to report.
//
// Recursive runs use one bulk query by default. A thread count above one
// selects per-directory point queries fanned out over a pool instead, and
// point queries are also the fallback when the bulk query fails.
func (e *Engine) Entries() []Entry {
	if !e.config.Recursive {
		value, ok := e.client.Ignores(e.root)
		if !ok {
			return nil
		}
		return []Entry{newEntry(".", value)}
	}
	var entries []Entry
	if e.config.Threads > 1 {
		entries = e.walkParallel()
	} else {
		entries = e.bulkEntries()
	}
	sortEntries(entries)
	return entries
}

func (e *Engine) abs(rel string) string {
	return filepath.Join(e.root, rel)
}

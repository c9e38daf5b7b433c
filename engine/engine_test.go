package engine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/repr"
	"github.com/lithammer/dedent"

	"github.com/eriseven/svn-git-ignore-converter/engine/logging"
	"github.com/eriseven/svn-git-ignore-converter/svn"
)

// fakeClient serves svn:ignore values from a map of absolute directory
// paths and records which directories were point-queried.
type fakeClient struct {
	props    map[string]string
	checkErr error
	treeErr  error

	mu      sync.Mutex
	queried []string
}

func (f *fakeClient) Check(path string) error { return f.checkErr }

func (f *fakeClient) Ignores(dir string) (string, bool) {
	f.mu.Lock()
	f.queried = append(f.queried, dir)
	f.mu.Unlock()
	value := strings.TrimSpace(f.props[dir])
	return value, value != ""
}

func (f *fakeClient) IgnoresTree(root string) ([]svn.Prop, error) {
	if f.treeErr != nil {
		return nil, f.treeErr
	}
	var props []svn.Prop
	for path, value := range f.props {
		props = append(props, svn.Prop{Path: path, Value: value})
	}
	return props, nil
}

func testLogger() *logging.Logger {
	return logging.NewLogger(logging.LogConfig{Level: logging.LogLevelError})
}

// newFixture builds a working copy with properties on the root, src and
// src/deep, a build tree the root's own pattern prunes, a docs directory
// without properties and a vendor directory with a whitespace-only value.
func newFixture(t *testing.T) (string, *fakeClient) {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{
		".svn",
		filepath.Join("build", "nested"),
		"docs",
		filepath.Join("src", ".svn"),
		filepath.Join("src", "deep"),
		"vendor",
	} {
		assert.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o700))
	}
	client := &fakeClient{props: map[string]string{
		root: dedent.Dedent(`
			*.log
			build`),
		filepath.Join(root, "src"):             "*.o",
		filepath.Join(root, "src", "deep"):     "*.tmp",
		filepath.Join(root, "build"):           "*.obj",
		filepath.Join(root, "build", "nested"): "*.cache",
		filepath.Join(root, "vendor"):          "  \n\t",
	}}
	return root, client
}

func newEngine(t *testing.T, client *fakeClient, root string, config Config) *Engine {
	t.Helper()
	eng, err := New(testLogger(), client, root, config)
	assert.NoError(t, err)
	return eng
}

func TestNewRejectsNonWorkingCopy(t *testing.T) {
	client := &fakeClient{checkErr: svn.ErrNotWorkingCopy}
	_, err := New(testLogger(), client, t.TempDir(), Config{})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, svn.ErrNotWorkingCopy))
}

func TestNewClampsThreads(t *testing.T) {
	root, client := newFixture(t)
	eng := newEngine(t, client, root, Config{Recursive: true, Threads: 99})
	assert.Equal(t, MaxThreads, eng.config.Threads)
	eng = newEngine(t, client, root, Config{Recursive: true})
	assert.Equal(t, 1, eng.config.Threads)
}

func TestEntriesNonRecursive(t *testing.T) {
	root, client := newFixture(t)
	eng := newEngine(t, client, root, Config{})
	entries := eng.Entries()
	assert.Equal(t, []Entry{{Path: ".", Patterns: []string{"*.log", "build"}}}, entries)
	assert.Equal(t, []string{root}, client.queried)
}

func TestEntriesNonRecursiveWithoutProperty(t *testing.T) {
	client := &fakeClient{}
	eng := newEngine(t, client, t.TempDir(), Config{})
	assert.Equal(t, 0, len(eng.Entries()))
}

// Every collection strategy reports the same entries in the same order.
func TestEntriesStrategiesAgree(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		treeErr error
	}{
		{name: "Bulk", config: Config{Recursive: true}},
		{name: "PointFallback", config: Config{Recursive: true}, treeErr: errors.New("svn propget: exit status 1")},
		{name: "PointParallel", config: Config{Recursive: true, Threads: 4}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			root, client := newFixture(t)
			client.treeErr = test.treeErr
			eng := newEngine(t, client, root, test.config)
			entries := eng.Entries()
			expected := []Entry{
				{Path: ".", Patterns: []string{"*.log", "build"}},
				{Path: "src", Patterns: []string{"*.o"}},
				{Path: filepath.Join("src", "deep"), Patterns: []string{"*.tmp"}},
			}
			assert.Equal(t, expected, entries, repr.String(entries, repr.Indent("  ")))
		})
	}
}

func TestEntriesRenderDeterministic(t *testing.T) {
	root, client := newFixture(t)
	eng := newEngine(t, client, root, Config{Recursive: true})
	expected := "*.log\nbuild\n\n# svn:ignore from src\nsrc/*.o\n\n# svn:ignore from src/deep\nsrc/deep/*.tmp\n"
	assert.Equal(t, expected, Render(eng.Entries()))
	assert.Equal(t, expected, Render(eng.Entries()))
}

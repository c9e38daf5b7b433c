package engine

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	gitignore "github.com/sabhiram/go-gitignore"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		entries  []Entry
		expected string
	}{
		{
			name: "Empty",
		},
		{
			name:     "RootVerbatim",
			entries:  []Entry{{Path: ".", Patterns: []string{"*.log", "build"}}},
			expected: "*.log\nbuild\n",
		},
		{
			name: "SubdirPrefixedWithHeader",
			entries: []Entry{
				{Path: ".", Patterns: []string{"*.log", "build"}},
				{Path: "src", Patterns: []string{"*.o"}},
			},
			expected: "*.log\nbuild\n\n# svn:ignore from src\nsrc/*.o\n",
		},
		{
			name:     "SkipsBlankAndCommentLines",
			entries:  []Entry{{Path: ".", Patterns: []string{"  ", "# note", "*.tmp", ""}}},
			expected: "*.tmp\n",
		},
		{
			name:     "RootWithOnlyCommentsRendersNothing",
			entries:  []Entry{{Path: ".", Patterns: []string{"# note"}}},
			expected: "",
		},
		{
			name:     "SubdirWithOnlyCommentsKeepsHeader",
			entries:  []Entry{{Path: "src", Patterns: []string{"# note"}}},
			expected: "\n# svn:ignore from src\n",
		},
		{
			name:     "NestedPathUsesForwardSlashes",
			entries:  []Entry{{Path: filepath.Join("a", "b"), Patterns: []string{"*.tmp"}}},
			expected: "\n# svn:ignore from a/b\na/b/*.tmp\n",
		},
		{
			name:     "BackslashesNormalised",
			entries:  []Entry{{Path: "src", Patterns: []string{`temp\cache`}}},
			expected: "\n# svn:ignore from src\nsrc/temp/cache\n",
		},
		{
			name:     "DoubledSlashesCollapsed",
			entries:  []Entry{{Path: "src", Patterns: []string{"/bin"}}},
			expected: "\n# svn:ignore from src\nsrc/bin\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Render(test.entries))
		})
	}
}

func TestRenderGitignoreSemantics(t *testing.T) {
	entries := []Entry{
		{Path: ".", Patterns: []string{"*.log", "build"}},
		{Path: "src", Patterns: []string{"*.o"}},
	}
	ign := gitignore.CompileIgnoreLines(strings.Split(Render(entries), "\n")...)
	assert.True(t, ign.MatchesPath("debug.log"))
	assert.True(t, ign.MatchesPath("build"))
	assert.True(t, ign.MatchesPath("build/cache.bin"))
	assert.True(t, ign.MatchesPath("src/main.o"))
	assert.False(t, ign.MatchesPath("src/main.c"))
	assert.False(t, ign.MatchesPath("lib/main.o"))
}

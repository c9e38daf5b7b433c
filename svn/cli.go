package svn

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/eriseven/svn-git-ignore-converter/engine/logging"
)

// CLI implements Client by invoking the svn binary.
type CLI struct {
	log *logging.Logger
	bin string
}

func NewCLI(log *logging.Logger) *CLI {
	return &CLI{log: log.Scope("svn"), bin: "svn"}
}

// Available verifies that the svn binary is on PATH.
func (c *CLI) Available() error {
	if _, err := exec.LookPath(c.bin); err != nil {
		return fmt.Errorf("svn client not found: %w", err)
	}
	return nil
}

// Check verifies that path belongs to a Subversion working copy.
func (c *CLI) Check(path string) error {
	if _, err := c.run("info", "--", path); err != nil {
		return fmt.Errorf("%w: %s", ErrNotWorkingCopy, path)
	}
	return nil
}

// Ignores returns the svn:ignore value for dir. svn exits non-zero when the
// property is absent, so failures report absence rather than an error.
func (c *CLI) Ignores(dir string) (string, bool) {
	out, err := c.run("propget", PropIgnore, "--", dir)
	if err != nil {
		c.log.Debugf("No %s on %s: %s", PropIgnore, dir, err)
		return "", false
	}
	value := strings.TrimSpace(out)
	return value, value != ""
}

// IgnoresTree returns the svn:ignore values for root and everything below
// it.
func (c *CLI) IgnoresTree(root string) ([]Prop, error) {
	out, err := c.run("propget", PropIgnore, "--recursive", "--", root)
	if err != nil {
		return nil, err
	}
	return ParseProplist(root, out), nil
}

// run executes svn with stdout captured and stderr relayed to the debug log.
func (c *CLI) run(args ...string) (string, error) {
	c.log.Tracef("$ %s", shellquote.Join(append([]string{c.bin}, args...)...))
	stderr := c.log.WriterAt(logging.LogLevelDebug)
	defer stderr.Close()
	var stdout bytes.Buffer
	cmd := exec.Command(c.bin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s: %w", c.bin, args[0], err)
	}
	return stdout.String(), nil
}

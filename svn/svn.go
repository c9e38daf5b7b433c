// Package svn drives the Subversion command line client.
package svn

import "errors"

const (
	// AdminDir is the metadata directory Subversion keeps inside every
	// working copy. It is never traversed or queried.
	AdminDir = ".svn"
	// PropIgnore is the directory property holding ignore patterns.
	PropIgnore = "svn:ignore"
)

// ErrNotWorkingCopy is reported by Check for paths that are not part of a
// Subversion working copy.
var ErrNotWorkingCopy = errors.New("not a Subversion working copy")

// Prop is a property value attached to one working copy path.
type Prop struct {
	Path  string
	Value string
}

// Client resolves svn:ignore properties for working copy paths.
type Client interface {
	// Check verifies that path belongs to a working copy.
	Check(path string) error
	// Ignores returns the svn:ignore value for a single directory. Absent
	// properties and failed queries both report ok false.
	Ignores(dir string) (value string, ok bool)
	// IgnoresTree returns the svn:ignore values for root and every
	// directory below it in one query.
	IgnoresTree(root string) ([]Prop, error)
}

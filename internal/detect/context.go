// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Context is the immutable input of a detection run: the project root, the output directory that must be
// ignored, the rule table, and the file system all probes read through.
//
// Workspaces (the immediate subdirectories considered by the monorepo walk) are enumerated once, when the
// context is created.
type Context struct {
	root       string
	outputDir  string
	fsys       fs.FS
	rules      RuleSet
	workspaces []string
}

type ContextOption func(*Context)

// WithFS overrides the file system rooted at the project root. By default os.DirFS(root) is used.
func WithFS(fsys fs.FS) ContextOption {
	return func(c *Context) {
		c.fsys = fsys
	}
}

// WithRules overrides the built-in rule table.
func WithRules(rules RuleSet) ContextOption {
	return func(c *Context) {
		c.rules = rules
	}
}

// NewContext creates a detection context for the project rooted at root. outputDir is relative to root.
func NewContext(root string, outputDir string, options ...ContextOption) *Context {
	c := &Context{
		root:      root,
		outputDir: path.Clean(filepath.ToSlash(outputDir)),
		rules:     DefaultRules(),
	}

	for _, opt := range options {
		opt(c)
	}

	if c.fsys == nil {
		c.fsys = os.DirFS(root)
	}

	c.workspaces = c.listWorkspaces()
	return c
}

// Workspaces returns the immediate subdirectories searched for markers, in directory listing order.
func (c *Context) Workspaces() []string {
	return c.workspaces
}

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"fmt"
	"io/fs"
	"log"
	"path"

	"github.com/bmatcuk/doublestar/v4"
)

// maxGlobDepth bounds how many directory levels below the root the glob probe descends.
const maxGlobDepth = 3

// Scope controls where a file or directory marker is looked up.
type Scope int

const (
	// Only the project root.
	ScopeRoot Scope = iota
	// The project root, then each workspace.
	ScopeWorkspaces
)

func (c *Context) fileExists(name string) bool {
	info, err := fs.Stat(c.fsys, name)
	return err == nil && !info.IsDir()
}

func (c *Context) dirExists(name string) bool {
	info, err := fs.Stat(c.fsys, name)
	return err == nil && info.IsDir()
}

func (c *Context) exists(name string, kind Kind) bool {
	if kind == KindDirectory {
		return c.dirExists(name)
	}

	return c.fileExists(name)
}

// Match reports the path of the first location where rule's marker is found.
//
// Glob rules always search the whole tree up to maxGlobDepth regardless of scope.
func (c *Context) Match(rule Rule, scope Scope) (string, error) {
	switch rule.Kind {
	case KindGlob:
		return c.findGlob(rule.Marker)
	case KindFile, KindDirectory:
		if scope == ScopeRoot {
			if c.exists(rule.Marker, rule.Kind) {
				return rule.Marker, nil
			}

			return "", absent(rule.Marker)
		}

		return c.findMarker(rule.Marker, rule.Kind)
	}

	return "", fmt.Errorf("unsupported marker kind '%s'", rule.Kind)
}

// findGlob searches for a file whose name matches pattern, skipping hidden and dependency cache
// directories. The search stops at the first match.
func (c *Context) findGlob(pattern string) (string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return "", fmt.Errorf("invalid marker pattern '%s'", pattern)
	}

	var search func(dir string, depth int) (string, bool)
	search = func(dir string, depth int) (string, bool) {
		if depth > maxGlobDepth {
			return "", false
		}

		entries, err := fs.ReadDir(c.fsys, dir)
		if err != nil {
			log.Printf("skipping unreadable directory %s: %v", dir, err)
			return "", false
		}

		for _, entry := range entries {
			name := entry.Name()
			if isHidden(name) || isDependencyCache(name) {
				continue
			}

			p := path.Join(dir, name)
			if !entry.IsDir() {
				if matched, _ := doublestar.Match(pattern, name); matched {
					return p, true
				}

				continue
			}

			if found, ok := search(p, depth+1); ok {
				return found, true
			}
		}

		return "", false
	}

	if found, ok := search(".", 0); ok {
		return found, nil
	}

	return "", absent(pattern)
}

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"io/fs"
	"log"
	"path"
	"strings"
)

// dependencyCacheDirs are package-manager directories never searched for markers.
var dependencyCacheDirs = map[string]struct{}{
	"node_modules":     {},
	"bower_components": {},
	"__pycache__":      {},
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func isDependencyCache(name string) bool {
	_, has := dependencyCacheDirs[name]
	return has
}

// listWorkspaces enumerates the immediate subdirectories of the root, excluding hidden directories,
// dependency caches and the output directory. Nothing deeper is considered a workspace.
func (c *Context) listWorkspaces() []string {
	entries, err := fs.ReadDir(c.fsys, ".")
	if err != nil {
		log.Printf("listing workspaces of %s: %v", c.root, err)
		return nil
	}

	workspaces := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || isHidden(name) || isDependencyCache(name) || name == c.outputDir {
			continue
		}

		workspaces = append(workspaces, name)
	}

	return workspaces
}

// findMarker returns the first of root, then each workspace, that contains name.
func (c *Context) findMarker(name string, kind Kind) (string, error) {
	if c.exists(name, kind) {
		return name, nil
	}

	for _, ws := range c.workspaces {
		p := path.Join(ws, name)
		if c.exists(p, kind) {
			return p, nil
		}
	}

	return "", absent(name)
}

// findAllMarkers returns every location of the file name, root first, then workspaces in listing order.
func (c *Context) findAllMarkers(name string) []string {
	found := []string{}
	if c.fileExists(name) {
		found = append(found, name)
	}

	for _, ws := range c.workspaces {
		p := path.Join(ws, name)
		if c.fileExists(p) {
			found = append(found, p)
		}
	}

	return found
}

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package internal

import (
	"fmt"
	"os"
	"path/filepath"
)

type GlobalCommandOptions struct {
	// Cwd allows the user to override the project root, which otherwise is the current working directory.
	Cwd string

	// EnableDebugLogging routes the diagnostic log to stderr. It's enabled with `--verbose`, for any command,
	// or by setting QA_TOOLKIT_DEBUG.
	EnableDebugLogging bool
}

// ProjectRoot returns the absolute path of the project the command operates on.
func (o *GlobalCommandOptions) ProjectRoot() (string, error) {
	root := o.Cwd
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting cwd: %w", err)
		}

		root = wd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving project root %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project root: %w", err)
	} else if !info.IsDir() {
		return "", fmt.Errorf("project root %s is not a directory", abs)
	}

	return abs, nil
}

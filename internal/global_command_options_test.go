// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectRoot(t *testing.T) {
	dir := t.TempDir()

	root, err := (&GlobalCommandOptions{Cwd: dir}).ProjectRoot()
	require.NoError(t, err)
	require.Equal(t, dir, root)

	wd, err := os.Getwd()
	require.NoError(t, err)

	root, err = (&GlobalCommandOptions{}).ProjectRoot()
	require.NoError(t, err)
	require.Equal(t, wd, root)

	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0600))

	_, err = (&GlobalCommandOptions{Cwd: file}).ProjectRoot()
	require.Error(t, err)

	_, err = (&GlobalCommandOptions{Cwd: filepath.Join(dir, "missing")}).ProjectRoot()
	require.Error(t, err)
}

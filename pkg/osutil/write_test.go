// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package osutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteFileReplace(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.json")

	require.NoError(t, WriteFileReplace(context.Background(), name, []byte("first"), PermissionFile))
	require.NoError(t, WriteFileReplace(context.Background(), name, []byte("second"), PermissionFile))

	contents, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, "second", string(contents))

	// No temporary files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "config.json", entries[0].Name())
}

func TestWriteFileReplaceMissingDirectory(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing", "config.json")

	err := WriteFileReplace(context.Background(), name, []byte("{}"), PermissionFile)
	require.Error(t, err)
}

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package ostest contains test helpers for os package.
package ostest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Setenv sets the value of the environment variable named by the key.
// Any set values are automatically restored during test Cleanup.
func Setenv(t *testing.T, key string, value string) {
	orig, present := os.LookupEnv(key)
	os.Setenv(key, value)

	t.Cleanup(func() {
		if present {
			os.Setenv(key, orig)
		} else {
			os.Unsetenv(key)
		}
	})
}

// Unsetenv unsets the environment variable, which is later restored during test Cleanup.
func Unsetenv(t *testing.T, key string) {
	orig, present := os.LookupEnv(key)
	os.Unsetenv(key)

	t.Cleanup(func() {
		if present {
			os.Setenv(key, orig)
		}
	})
}

// Chdir changes the current working directory to the named directory.
// The working directory is automatically restored as part of Cleanup.
func Chdir(t *testing.T, dir string) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	err = os.Chdir(dir)
	require.NoError(t, err)

	t.Cleanup(func() {
		err = os.Chdir(wd)
		require.NoError(t, err)
	})
}

// WriteFiles creates the files under dir, keyed by slash separated relative path. Keys ending in "/" create
// empty directories.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	for name, contents := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))

		if name[len(name)-1] == '/' {
			require.NoError(t, os.MkdirAll(p, 0755))
			continue
		}

		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(contents), 0600))
	}
}

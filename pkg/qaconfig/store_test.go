// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package qaconfig

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/qa-toolkit/qa-toolkit/internal/detect"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *clock.Mock) {
	clock := clock.NewMock()
	clock.Set(time.Now())

	return NewStore(filepath.Join(t.TempDir(), "qa-artifacts"), clock), clock
}

func sampleConfig(now time.Time) *ProjectConfig {
	return NewProjectConfig(detect.Result{
		Languages:      []string{"Python"},
		Frameworks:     []string{"FastAPI"},
		TestFrameworks: []string{"Pytest"},
		PackageManager: "uv",
		ExistingDocs:   []detect.Doc{{Path: "docs", Type: "docs"}},
	}, "/src/project", "qa-artifacts", now)
}

func TestStoreFreshWithinMaxAge(t *testing.T) {
	store, clock := newTestStore(t)

	_, ok := store.Fresh()
	require.False(t, ok)

	saved := sampleConfig(clock.Now())
	require.NoError(t, store.Save(context.Background(), saved))

	clock.Add(23 * time.Hour)

	loaded, ok := store.Fresh()
	require.True(t, ok)
	require.True(t, saved.DetectedAt.Equal(loaded.DetectedAt))
	require.Equal(t, saved.Languages, loaded.Languages)
	require.Equal(t, "uv", *loaded.PackageManager)
}

func TestStoreStaleAfterMaxAge(t *testing.T) {
	store, clock := newTestStore(t)
	require.NoError(t, store.Save(context.Background(), sampleConfig(clock.Now())))

	clock.Add(MaxAge + time.Minute)

	_, ok := store.Fresh()
	require.False(t, ok)

	// Stale configs can still be read explicitly.
	_, err := store.Load()
	require.NoError(t, err)
}

func TestStoreCorruptIsMiss(t *testing.T) {
	tests := map[string]string{
		"NotJson":         "{ not json",
		"WrongShape":      `{"languages": "Python"}`,
		"MissingDetected": `{"languages": []}`,
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			store, _ := newTestStore(t)
			require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
			require.NoError(t, os.WriteFile(store.Path(), []byte(contents), 0600))

			_, ok := store.Fresh()
			require.False(t, ok)
		})
	}
}

func TestStoreSaveShape(t *testing.T) {
	store, clock := newTestStore(t)

	config := NewProjectConfig(detect.Result{}, "/src/empty", "qa-artifacts", clock.Now())
	require.NoError(t, store.Save(context.Background(), config))

	contents, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(contents, &raw))

	for _, key := range []string{"languages", "frameworks", "testFrameworks", "cicd", "existingDocs", "existingTestDirs"} {
		require.Equal(t, []any{}, raw[key], key)
	}

	require.Contains(t, raw, "packageManager")
	require.Nil(t, raw["packageManager"])
	require.Equal(t, map[string]any{}, raw["existingQaConfig"])
	require.Equal(t, "qa-artifacts", raw["outputDir"])
	require.Equal(t, false, raw["hasClaudeMd"])

	// Pretty printed with two space indentation.
	require.Contains(t, string(contents), "\n  \"detectedAt\": ")
}

func TestStoreSaveOverwrites(t *testing.T) {
	store, clock := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), sampleConfig(clock.Now())))

	clock.Add(time.Hour)
	next := NewProjectConfig(detect.Result{Languages: []string{"Go"}}, "/src/project", "qa-artifacts", clock.Now())
	require.NoError(t, store.Save(context.Background(), next))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, []string{"Go"}, loaded.Languages)
	require.Equal(t, []string{}, loaded.Frameworks)
	require.Nil(t, loaded.PackageManager)
	require.True(t, next.DetectedAt.Equal(loaded.DetectedAt))
}

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package artifacts

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, outputDir string, name string, modTime time.Time) {
	t.Helper()

	p := filepath.Join(outputDir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte("artifact"), 0600))
	require.NoError(t, os.Chtimes(p, modTime, modTime))
}

func TestSummarize(t *testing.T) {
	outputDir := t.TempDir()

	older := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC)

	writeArtifact(t, outputDir, "bug-reports/login.md", older)
	writeArtifact(t, outputDir, "bug-reports/checkout.md", newer)
	writeArtifact(t, outputDir, "pr-reviews/pr-12.md", older)
	writeArtifact(t, outputDir, "test-cases/.gitkeep", newer)
	writeArtifact(t, outputDir, "unrelated/notes.md", newer)

	summaries := Summarize(outputDir)
	require.Len(t, summaries, 2)

	require.Equal(t, "pr-reviews", summaries[0].Name)
	require.Equal(t, "PR reviews", summaries[0].Label)
	require.Equal(t, 1, summaries[0].Count)
	require.Equal(t, "2024-03-01", summaries[0].LatestDate())

	require.Equal(t, "bug-reports", summaries[1].Name)
	require.Equal(t, 2, summaries[1].Count)
	require.Equal(t, "2024-03-15", summaries[1].LatestDate())
}

func TestSummarizeMissingOutputDir(t *testing.T) {
	require.Empty(t, Summarize(filepath.Join(t.TempDir(), "missing")))
}

func TestModifiedSince(t *testing.T) {
	outputDir := t.TempDir()
	now := time.Now()

	writeArtifact(t, outputDir, "test-cases/new.md", now)
	writeArtifact(t, outputDir, "test-cases/old.md", now.Add(-time.Hour))
	writeArtifact(t, outputDir, "e2e-tests/login.spec.ts", now.Add(-time.Minute))
	writeArtifact(t, outputDir, "e2e-tests/.hidden", now)
	writeArtifact(t, outputDir, ".qa-activity.log", now)

	recent := ModifiedSince(outputDir, now.Add(-5*time.Minute))
	require.Equal(t, []string{"test-cases/new.md", "e2e-tests/login.spec.ts"}, recent)
}

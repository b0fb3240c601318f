// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package qacontext

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/qa-toolkit/qa-toolkit/internal/detect"
	"github.com/qa-toolkit/qa-toolkit/pkg/artifacts"
	"github.com/qa-toolkit/qa-toolkit/pkg/qaconfig"
	"github.com/qa-toolkit/qa-toolkit/test/snapshot"
	"github.com/stretchr/testify/require"
)

var detectedAt = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func render(t *testing.T, config *qaconfig.ProjectConfig, outputDir string, summaries []artifacts.Summary) string {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, config, outputDir, summaries))
	return buf.String()
}

func TestRenderEmptyProject(t *testing.T) {
	config := qaconfig.NewProjectConfig(detect.Result{}, "/src/empty", "qa-artifacts", detectedAt)

	out := render(t, config, "qa-artifacts", nil)

	require.Equal(t, strings.Join([]string{
		"[QA Toolkit — Project Context]",
		"CLAUDE.md: not found",
		"Config: qa-artifacts/.qa-config.json",
		"Output Directory: qa-artifacts/",
		"No previous QA artifacts found. This appears to be a fresh project.",
	}, "\n")+"\n", out)
}

func TestRenderFullProject(t *testing.T) {
	config := qaconfig.NewProjectConfig(detect.Result{
		Languages:        []string{"JavaScript/TypeScript", "Python"},
		Frameworks:       []string{"React", "FastAPI"},
		TestFrameworks:   []string{"Playwright", "Pytest"},
		CiCd:             []string{"GitHub Actions", "Docker"},
		PackageManager:   "npm",
		HasClaudeMd:      true,
		HasReadme:        true,
		ExistingDocs:     []detect.Doc{{Path: "docs", Type: "docs"}, {Path: "CLAUDE.md", Type: "claude-md"}},
		ExistingTestDirs: []string{"tests", "app/e2e"},
	}, "/src/shop", "qa", detectedAt)

	summaries := []artifacts.Summary{
		{
			Dir:    artifacts.Dir{Name: "bug-reports", Label: "Bug reports"},
			Count:  1,
			Latest: time.Date(2024, 4, 30, 23, 59, 0, 0, time.UTC),
		},
		{
			Dir:    artifacts.Dir{Name: "e2e-tests", Label: "E2E test scaffolds"},
			Count:  3,
			Latest: time.Date(2024, 4, 2, 1, 0, 0, 0, time.UTC),
		},
	}

	out := render(t, config, "qa", summaries)

	require.Contains(t, out, "Package Manager: npm\n")
	require.Contains(t, out, "CLAUDE.md: exists (will be read for context)\n")
	require.Contains(t, out, "  Bug reports: 1 file (latest: 2024-04-30) → qa/bug-reports/\n")
	require.Contains(t, out, "  E2E test scaffolds: 3 files (latest: 2024-04-02) → qa/e2e-tests/\n")
	require.NotContains(t, out, "fresh project")

	snapshot.NewDefaultConfig().SnapshotT(t, out)
}

func TestRenderUsesConfiguredOutputDir(t *testing.T) {
	// A cached config may have been written with a different output directory.
	config := qaconfig.NewProjectConfig(detect.Result{}, "/src/empty", "old-dir", detectedAt)

	out := render(t, config, "new-dir", nil)

	require.Contains(t, out, "Config: new-dir/.qa-config.json\n")
	require.NotContains(t, out, "old-dir")
}

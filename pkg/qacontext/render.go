// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package qacontext renders the project context block injected into the assistant session.
package qacontext

import (
	"fmt"
	"io"
	"strings"

	"github.com/qa-toolkit/qa-toolkit/pkg/artifacts"
	"github.com/qa-toolkit/qa-toolkit/pkg/qaconfig"
)

const header = "[QA Toolkit — Project Context]"

// Render writes the context block for config to w.
//
// outputDir is the currently configured output directory, which may differ from the one recorded in a cached
// config. summaries are the non-empty artifact directories, as returned by artifacts.Summarize.
func Render(w io.Writer, config *qaconfig.ProjectConfig, outputDir string, summaries []artifacts.Summary) error {
	lines := []string{header}

	lines = appendList(lines, "Languages", config.Languages)
	lines = appendList(lines, "Frameworks", config.Frameworks)
	lines = appendList(lines, "Test Frameworks", config.TestFrameworks)
	lines = appendList(lines, "CI/CD", config.CiCd)
	if config.PackageManager != nil && *config.PackageManager != "" {
		lines = append(lines, "Package Manager: "+*config.PackageManager)
	}
	lines = appendList(lines, "Test Directories", config.ExistingTestDirs)

	if config.HasClaudeMd {
		lines = append(lines, "CLAUDE.md: exists (will be read for context)")
	} else {
		lines = append(lines, "CLAUDE.md: not found")
	}

	if len(config.ExistingDocs) > 0 {
		docTypes := make([]string, len(config.ExistingDocs))
		for i, doc := range config.ExistingDocs {
			docTypes[i] = doc.Type
		}
		lines = appendList(lines, "Existing Docs", docTypes)
	}

	lines = append(lines,
		fmt.Sprintf("Config: %s/%s", outputDir, qaconfig.FileName),
		fmt.Sprintf("Output Directory: %s/", outputDir))

	if len(summaries) == 0 {
		lines = append(lines, "No previous QA artifacts found. This appears to be a fresh project.")
	} else {
		lines = append(lines, "", "[Previous QA Work]")
		for _, s := range summaries {
			lines = append(lines, fmt.Sprintf("  %s: %d %s (latest: %s) → %s/%s/",
				s.Label, s.Count, pluralize("file", s.Count), s.LatestDate(), outputDir, s.Name))
		}
		lines = append(lines, "Read files from these directories for context on previous QA decisions.")
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func appendList(lines []string, label string, values []string) []string {
	if len(values) == 0 {
		return lines
	}

	return append(lines, fmt.Sprintf("%s: %s", label, strings.Join(values, ", ")))
}

func pluralize(noun string, count int) string {
	if count > 1 {
		return noun + "s"
	}

	return noun
}

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package artifacts knows the directories downstream QA skills write their work products to, and summarizes what
// has accumulated in them.
package artifacts

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Dir is an artifact directory under the output directory.
type Dir struct {
	// Name of the directory, relative to the output directory.
	Name string
	// Human readable label used when reporting.
	Label string
}

// Dirs is the fixed, ordered set of artifact directories.
var Dirs = []Dir{
	{Name: "pr-reviews", Label: "PR reviews"},
	{Name: "bug-reports", Label: "Bug reports"},
	{Name: "test-cases", Label: "Test cases"},
	{Name: "api-tests", Label: "API tests"},
	{Name: "regression-plans", Label: "Regression plans"},
	{Name: "test-data", Label: "Test data files"},
	{Name: "a11y-audits", Label: "Accessibility audits"},
	{Name: "release-assessments", Label: "Release assessments"},
	{Name: "e2e-tests", Label: "E2E test scaffolds"},
}

// Summary describes the contents of a non-empty artifact directory.
type Summary struct {
	Dir
	// Number of non-hidden entries.
	Count int
	// Most recent modification time among the entries.
	Latest time.Time
}

// LatestDate formats Latest as a UTC calendar date.
func (s Summary) LatestDate() string {
	return s.Latest.UTC().Format(time.DateOnly)
}

// Summarize returns a Summary for each artifact directory under outputDir that contains at least one non-hidden
// entry, in the order of Dirs. Missing or unreadable directories are skipped.
func Summarize(outputDir string) []Summary {
	var summaries []Summary

	for _, dir := range Dirs {
		entries, err := readEntries(filepath.Join(outputDir, dir.Name))
		if err != nil {
			log.Printf("skipping artifact directory %s: %v", dir.Name, err)
			continue
		}

		if len(entries) == 0 {
			continue
		}

		summary := Summary{Dir: dir, Count: len(entries)}
		for _, info := range entries {
			if info.ModTime().After(summary.Latest) {
				summary.Latest = info.ModTime()
			}
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

// ModifiedSince returns the artifacts under outputDir modified after since, as "<dir>/<name>" paths in the order of
// Dirs.
func ModifiedSince(outputDir string, since time.Time) []string {
	var recent []string

	for _, dir := range Dirs {
		entries, err := readEntries(filepath.Join(outputDir, dir.Name))
		if err != nil {
			log.Printf("skipping artifact directory %s: %v", dir.Name, err)
			continue
		}

		for _, info := range entries {
			if info.ModTime().After(since) {
				recent = append(recent, path.Join(dir.Name, info.Name()))
			}
		}
	}

	return recent
}

// readEntries stats the non-hidden entries of dir. A missing directory has no entries.
func readEntries(dir string) ([]fs.FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	infos := make([]fs.FileInfo, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}

		infos = append(infos, info)
	}

	return infos, nil
}

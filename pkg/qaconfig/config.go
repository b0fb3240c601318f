// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package qaconfig contains the persisted project configuration and the cache that decides whether it is still
// fresh enough to skip detection.
package qaconfig

import (
	"time"

	"github.com/qa-toolkit/qa-toolkit/internal/detect"
)

// FileName is the name of the persisted config file inside the output directory.
const FileName = ".qa-config.json"

// ProjectConfig is the detected technology stack of a project, as persisted to FileName.
type ProjectConfig struct {
	// Time of the last full detection run. It only changes when detection runs.
	DetectedAt time.Time `json:"detectedAt"`
	// Absolute path of the scanned project.
	ProjectRoot string `json:"projectRoot"`
	// Output directory relative to ProjectRoot.
	OutputDir string `json:"outputDir"`

	Languages      []string `json:"languages"`
	Frameworks     []string `json:"frameworks"`
	TestFrameworks []string `json:"testFrameworks"`
	CiCd           []string `json:"cicd"`
	// nil when no lock file was found.
	PackageManager *string `json:"packageManager"`

	HasClaudeMd      bool             `json:"hasClaudeMd"`
	HasReadme        bool             `json:"hasReadme"`
	ExistingDocs     []detect.Doc     `json:"existingDocs"`
	ExistingTestDirs []string         `json:"existingTestDirs"`
	ExistingQaConfig ExistingQaConfig `json:"existingQaConfig"`
}

// ExistingQaConfig holds context gathered from project files that are not part of the stack itself.
type ExistingQaConfig struct {
	// The first lines of CLAUDE.md.
	ClaudeMdSummary string `json:"claudeMdSummary,omitempty"`
}

// NewProjectConfig builds the config for a completed detection run.
func NewProjectConfig(result detect.Result, projectRoot string, outputDir string, detectedAt time.Time) *ProjectConfig {
	config := &ProjectConfig{
		DetectedAt:       detectedAt.UTC(),
		ProjectRoot:      projectRoot,
		OutputDir:        outputDir,
		Languages:        nonNil(result.Languages),
		Frameworks:       nonNil(result.Frameworks),
		TestFrameworks:   nonNil(result.TestFrameworks),
		CiCd:             nonNil(result.CiCd),
		HasClaudeMd:      result.HasClaudeMd,
		HasReadme:        result.HasReadme,
		ExistingDocs:     result.ExistingDocs,
		ExistingTestDirs: nonNil(result.ExistingTestDirs),
		ExistingQaConfig: ExistingQaConfig{
			ClaudeMdSummary: result.ClaudeMdSummary,
		},
	}

	if config.ExistingDocs == nil {
		config.ExistingDocs = []detect.Doc{}
	}

	if result.PackageManager != "" {
		pm := result.PackageManager
		config.PackageManager = &pm
	}

	return config
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

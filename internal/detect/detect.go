// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"errors"
	"io/fs"
	"log"
	"strings"

	"go.uber.org/multierr"
)

// Doc is an existing documentation file or directory.
type Doc struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// Result is everything detection learned about a project. Every slice is non-nil, deduplicated, and ordered by
// the rule that first produced each entry.
type Result struct {
	Languages        []string
	Frameworks       []string
	TestFrameworks   []string
	CiCd             []string
	PackageManager   string
	HasClaudeMd      bool
	HasReadme        bool
	ExistingDocs     []Doc
	ExistingTestDirs []string
	ClaudeMdSummary  string
}

// Detect runs every probe against the project and aggregates the signals.
//
// Detection never fails: unreadable directories and malformed manifests only reduce what is detected. Those
// failures are logged.
func Detect(c *Context) Result {
	log.Printf("detecting project stack of %s, workspaces: %v", c.root, c.Workspaces())

	var softErrs error

	deps, err := c.collectDependencies()
	softErrs = multierr.Append(softErrs, err)

	result := Result{
		Languages:        detectLanguages(c),
		Frameworks:       matchDependencies(c.rules.Frameworks, deps),
		TestFrameworks:   detectTestFrameworks(c, deps),
		CiCd:             detectCiCd(c),
		HasClaudeMd:      c.fileExists(ClaudeMdFile),
		HasReadme:        c.fileExists(ReadmeFile),
		ExistingDocs:     detectDocs(c),
		ExistingTestDirs: detectTestDirs(c),
	}

	if pm, err := detectPackageManager(c); err == nil {
		result.PackageManager = pm
	}

	if result.HasClaudeMd {
		summary, err := readClaudeMdSummary(c)
		if isSoftFailure(err) {
			softErrs = multierr.Append(softErrs, err)
		}
		result.ClaudeMdSummary = summary
	}

	if softErrs != nil {
		for _, err := range multierr.Errors(softErrs) {
			log.Printf("detection signal skipped: %v", err)
		}
	}

	return result
}

// matchRules records the label of every rule whose marker is found.
func matchRules(c *Context, rules []Rule, scope Scope, into *orderedSet) {
	for _, rule := range rules {
		if _, err := c.Match(rule, scope); err != nil {
			if !errors.Is(err, ErrSignalAbsent) {
				log.Printf("matching rule %s: %v", rule.Marker, err)
			}

			continue
		}

		into.add(rule.Label)
	}
}

func detectLanguages(c *Context) []string {
	var languages orderedSet
	matchRules(c, c.rules.Languages, ScopeWorkspaces, &languages)
	return languages.values()
}

// CI/CD configuration is only meaningful at the repository root.
func detectCiCd(c *Context) []string {
	var cicd orderedSet
	matchRules(c, c.rules.CiCd, ScopeRoot, &cicd)
	return cicd.values()
}

// detectPackageManager returns the first package manager whose lock file is found.
func detectPackageManager(c *Context) (string, error) {
	for _, rule := range c.rules.PackageManagers {
		if _, err := c.Match(rule, ScopeWorkspaces); err == nil {
			return rule.Label, nil
		}
	}

	return "", absent("package manager")
}

func matchDependencies(rules []DependencyRule, deps Dependencies) []string {
	var labels orderedSet
	addDependencyMatches(rules, deps, &labels)
	return labels.values()
}

func addDependencyMatches(rules []DependencyRule, deps Dependencies, into *orderedSet) {
	for _, rule := range rules {
		if !deps.Has(rule.Ecosystem, rule.Key) {
			continue
		}

		excluded := false
		for _, ex := range rule.Exclude {
			if deps.Has(rule.Ecosystem, ex) {
				excluded = true
				break
			}
		}

		if !excluded {
			into.add(rule.Label)
		}
	}
}

// detectTestFrameworks combines declared test dependencies with test runner configuration files.
func detectTestFrameworks(c *Context, deps Dependencies) []string {
	var frameworks orderedSet
	addDependencyMatches(c.rules.TestFrameworks, deps, &frameworks)
	matchRules(c, c.rules.TestMarkers, ScopeWorkspaces, &frameworks)
	return frameworks.values()
}

func detectDocs(c *Context) []Doc {
	docs := []Doc{}
	for _, rule := range c.rules.Docs {
		if _, err := c.Match(rule, ScopeRoot); err == nil {
			docs = append(docs, Doc{Path: rule.Marker, Type: rule.Label})
		}
	}

	return docs
}

// detectTestDirs finds known test directory names at the root and one level down, in rule order.
func detectTestDirs(c *Context) []string {
	var dirs orderedSet
	for _, name := range c.rules.TestDirectories {
		rule := Rule{Marker: name, Kind: KindDirectory}
		if p, err := c.Match(rule, ScopeRoot); err == nil {
			dirs.add(p)
		}

		for _, ws := range c.workspaces {
			rule.Marker = ws + "/" + name
			if p, err := c.Match(rule, ScopeRoot); err == nil {
				dirs.add(p)
			}
		}
	}

	return dirs.values()
}

func readClaudeMdSummary(c *Context) (string, error) {
	contents, err := fs.ReadFile(c.fsys, ClaudeMdFile)
	if err != nil {
		return "", absentBecause(ClaudeMdFile, err)
	}

	lines := strings.Split(string(contents), "\n")
	if len(lines) > claudeMdSummaryLines {
		lines = lines[:claudeMdSummaryLines]
	}

	return strings.Join(lines, "\n"), nil
}

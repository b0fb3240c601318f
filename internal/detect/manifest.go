// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/multierr"
)

// packageJsonDependencyFields are merged into a single dependency set.
var packageJsonDependencyFields = []string{"dependencies", "devDependencies", "peerDependencies"}

// ParsePackageJSON returns the lower-cased names declared in the dependency maps of a package.json document.
func ParsePackageJSON(contents []byte) ([]string, error) {
	if !gjson.ValidBytes(contents) {
		return nil, absentBecause("package.json", fmt.Errorf("invalid JSON"))
	}

	doc := gjson.ParseBytes(contents)
	if !doc.IsObject() {
		return nil, absentBecause("package.json", fmt.Errorf("expected a JSON object"))
	}

	seen := map[string]struct{}{}
	deps := []string{}
	for _, field := range packageJsonDependencyFields {
		section := doc.Get(field)
		if !section.IsObject() {
			continue
		}

		section.ForEach(func(key, _ gjson.Result) bool {
			name := strings.ToLower(key.String())
			if _, has := seen[name]; !has {
				seen[name] = struct{}{}
				deps = append(deps, name)
			}

			return true
		})
	}

	return deps, nil
}

// requirementTerminators end the package name in a requirement line: version specifiers, extras,
// environment markers and comments.
const requirementTerminators = "=<>!~[;#"

// ParseRequirements returns the lower-cased package names of a pip requirements file.
//
// pip names are case insensitive: PEP 426.
func ParseRequirements(contents []byte) []string {
	deps := []string{}
	for _, line := range manifestLines(contents) {
		line = strings.TrimSpace(line)
		if i := strings.IndexAny(line, requirementTerminators); i >= 0 {
			line = line[:i]
		}

		module := strings.ToLower(strings.TrimSpace(line))
		if module != "" {
			deps = append(deps, module)
		}
	}

	return deps
}

// pyprojectDependencySections are header prefixes of the TOML tables that declare dependencies.
// Entries without a closing bracket match any sub-table, e.g. [tool.poetry.group.dev.dependencies].
var pyprojectDependencySections = []string{
	"[project.dependencies]",
	"[project.optional-dependencies",
	"[tool.poetry.dependencies]",
	"[tool.poetry.dev-dependencies]",
	"[tool.poetry.group.",
}

var pyprojectDependencyRegex = regexp.MustCompile(`^["']?([a-z0-9_-]+)`)

// ParsePyproject returns the lower-cased dependency names declared in the dependency sections of a
// pyproject.toml document. Lines of any other table are ignored, even when they look like dependencies.
func ParsePyproject(contents []byte) []string {
	deps := []string{}
	inDependencySection := false

	for _, line := range manifestLines(contents) {
		line = strings.ToLower(strings.TrimSpace(line))
		if strings.HasPrefix(line, "[") {
			inDependencySection = false
			for _, section := range pyprojectDependencySections {
				if strings.HasPrefix(line, section) {
					inDependencySection = true
					break
				}
			}

			continue
		}

		if !inDependencySection || line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if match := pyprojectDependencyRegex.FindStringSubmatch(line); match != nil {
			deps = append(deps, match[1])
		}
	}

	return deps
}

// manifestLines splits a line oriented manifest. Lines have no length limit.
func manifestLines(contents []byte) []string {
	return strings.Split(string(contents), "\n")
}

// parseManifest reads and parses a single manifest file.
func (c *Context) parseManifest(p string, format ManifestFormat) ([]string, error) {
	contents, err := fs.ReadFile(c.fsys, p)
	if err != nil {
		return nil, absentBecause(p, err)
	}

	switch format {
	case FormatPackageJSON:
		deps, err := ParsePackageJSON(contents)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}

		return deps, nil
	case FormatRequirements:
		return ParseRequirements(contents), nil
	case FormatPyproject:
		return ParsePyproject(contents), nil
	}

	return nil, fmt.Errorf("unsupported manifest format '%s'", format)
}

// Dependencies holds the declared dependency names per ecosystem, concatenated across every workspace.
// Names may repeat; only membership matters.
type Dependencies map[Ecosystem][]string

// Has reports whether name is declared in the ecosystem.
func (d Dependencies) Has(ecosystem Ecosystem, name string) bool {
	for _, dep := range d[ecosystem] {
		if dep == name {
			return true
		}
	}

	return false
}

// collectDependencies parses every manifest found at the root and in the workspaces. Manifests that cannot be
// read or parsed contribute nothing; their failures are combined into the returned error.
func (c *Context) collectDependencies() (Dependencies, error) {
	deps := Dependencies{}
	var errs error

	for _, manifest := range c.rules.Manifests {
		for _, p := range c.findAllMarkers(manifest.Name) {
			parsed, err := c.parseManifest(p, manifest.Format)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}

			deps[manifest.Ecosystem] = append(deps[manifest.Ecosystem], parsed...)
		}
	}

	return deps, errs
}

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindGlob(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{"Root", map[string]string{"App.csproj": ""}, "App.csproj"},
		{"SrcLayout", map[string]string{"src/MyApp/MyApp.csproj": ""}, "src/MyApp/MyApp.csproj"},
		{"MaxDepth", map[string]string{"a/b/c/App.csproj": ""}, "a/b/c/App.csproj"},
		{"TooDeep", map[string]string{"a/b/c/d/App.csproj": ""}, ""},
		{"HiddenDirSkipped", map[string]string{".cache/App.csproj": ""}, ""},
		{"DependencyCacheSkipped", map[string]string{"node_modules/pkg/App.csproj": ""}, ""},
		{"SuffixOnly", map[string]string{"App.csproj.user": "", "csproj/": ""}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContext("/project", "qa-artifacts", WithFS(newProjectFS(t, tt.files)))

			found, err := c.Match(Rule{Marker: "*.csproj", Label: "C#/.NET", Kind: KindGlob}, ScopeRoot)
			if tt.want == "" {
				require.ErrorIs(t, err, ErrSignalAbsent)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, found)
		})
	}
}

func TestFindGlobInvalidPattern(t *testing.T) {
	c := NewContext("/project", "qa-artifacts", WithFS(newProjectFS(t, map[string]string{})))

	_, err := c.Match(Rule{Marker: "[", Kind: KindGlob}, ScopeRoot)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrSignalAbsent)
}

func TestWorkspaces(t *testing.T) {
	c := NewContext("/project", "qa-artifacts", WithFS(newProjectFS(t, map[string]string{
		"api/":              "",
		".git/":             "",
		"node_modules/":     "",
		"qa-artifacts/":     "",
		"README.md":         "",
		"web/src/":          "",
		"bower_components/": "",
	})))

	require.ElementsMatch(t, []string{"api", "web"}, c.Workspaces())
}

func TestWorkspacesNestedOutputDir(t *testing.T) {
	// Only an output directory that is itself an immediate subdirectory is excluded.
	c := NewContext("/project", "out/qa/", WithFS(newProjectFS(t, map[string]string{
		"out/qa/": "",
	})))

	require.Equal(t, []string{"out"}, c.Workspaces())
}

func TestMatchScopes(t *testing.T) {
	c := NewContext("/project", "qa-artifacts", WithFS(newProjectFS(t, map[string]string{
		"svc/go.mod":               "",
		"svc/internal/Cargo.toml":  "",
		"qa-artifacts/Gemfile":     "",
		".hidden/composer.json":    "",
		"node_modules/Cargo.toml":  "",
		"Package.swift/":           "",
		"tools/.github/workflows/": "",
	})))

	found, err := c.Match(Rule{Marker: "go.mod", Kind: KindFile}, ScopeWorkspaces)
	require.NoError(t, err)
	require.Equal(t, "svc/go.mod", found)

	_, err = c.Match(Rule{Marker: "go.mod", Kind: KindFile}, ScopeRoot)
	require.ErrorIs(t, err, ErrSignalAbsent)

	for _, marker := range []string{"Cargo.toml", "Gemfile", "composer.json", "Package.swift"} {
		_, err = c.Match(Rule{Marker: marker, Kind: KindFile}, ScopeWorkspaces)
		require.ErrorIs(t, err, ErrSignalAbsent, marker)
	}

	found, err = c.Match(Rule{Marker: ".github/workflows", Kind: KindDirectory}, ScopeWorkspaces)
	require.NoError(t, err)
	require.Equal(t, "tools/.github/workflows", found)
}

func TestMatchUnsupportedKind(t *testing.T) {
	c := NewContext("/project", "qa-artifacts", WithFS(newProjectFS(t, map[string]string{})))

	_, err := c.Match(Rule{Marker: "go.mod", Kind: Kind("regex")}, ScopeRoot)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrSignalAbsent)
}

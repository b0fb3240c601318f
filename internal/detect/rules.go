// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

// Kind is the way a marker is matched against the file system.
type Kind string

const (
	// A regular file with the exact marker name.
	KindFile Kind = "file"
	// A directory with the exact marker name.
	KindDirectory Kind = "directory"
	// A file whose name matches the marker pattern, anywhere in the tree up to maxGlobDepth.
	KindGlob Kind = "glob"
)

// Rule maps the presence of a marker to a label.
type Rule struct {
	Marker string
	Label  string
	Kind   Kind
}

// Ecosystem identifies which set of parsed dependencies a DependencyRule is matched against.
type Ecosystem string

const (
	JavaScript Ecosystem = "javascript"
	Python     Ecosystem = "python"
)

// DependencyRule maps a declared dependency to a label.
//
// Exclude suppresses the label when any of the listed dependencies is also declared in the same ecosystem,
// e.g. react-native implies a different toolchain than react.
type DependencyRule struct {
	Ecosystem Ecosystem
	Key       string
	Label     string
	Exclude   []string
}

// Manifest is a dependency manifest file name and the parser applied to it.
type Manifest struct {
	Name      string
	Ecosystem Ecosystem
	Format    ManifestFormat
}

type ManifestFormat string

const (
	// JSON object with dependencies, devDependencies and peerDependencies maps.
	FormatPackageJSON ManifestFormat = "package-json"
	// One requirement per line, pip style.
	FormatRequirements ManifestFormat = "requirements"
	// TOML document where only known dependency sections are read.
	FormatPyproject ManifestFormat = "pyproject"
)

// RuleSet is the complete, ordered rule table used by detection.
//
// Order matters: labels are recorded in the order their rules are declared, and package managers are
// matched first-match-wins.
type RuleSet struct {
	Languages       []Rule
	CiCd            []Rule
	PackageManagers []Rule
	Frameworks      []DependencyRule
	TestFrameworks  []DependencyRule
	TestMarkers     []Rule
	Docs            []Rule
	TestDirectories []string
	Manifests       []Manifest
}

// DefaultRules returns the built-in rule table.
func DefaultRules() RuleSet {
	return RuleSet{
		Languages: []Rule{
			{Marker: "package.json", Label: "JavaScript/TypeScript", Kind: KindFile},
			{Marker: "tsconfig.json", Label: "TypeScript", Kind: KindFile},
			{Marker: "requirements.txt", Label: "Python", Kind: KindFile},
			{Marker: "pyproject.toml", Label: "Python", Kind: KindFile},
			{Marker: "setup.py", Label: "Python", Kind: KindFile},
			{Marker: "Pipfile", Label: "Python", Kind: KindFile},
			{Marker: "go.mod", Label: "Go", Kind: KindFile},
			{Marker: "Cargo.toml", Label: "Rust", Kind: KindFile},
			{Marker: "pom.xml", Label: "Java", Kind: KindFile},
			{Marker: "build.gradle", Label: "Java/Kotlin", Kind: KindFile},
			{Marker: "build.gradle.kts", Label: "Kotlin", Kind: KindFile},
			{Marker: "*.csproj", Label: "C#/.NET", Kind: KindGlob},
			{Marker: "*.sln", Label: "C#/.NET", Kind: KindGlob},
			{Marker: "Gemfile", Label: "Ruby", Kind: KindFile},
			{Marker: "composer.json", Label: "PHP", Kind: KindFile},
			{Marker: "mix.exs", Label: "Elixir", Kind: KindFile},
			{Marker: "Package.swift", Label: "Swift", Kind: KindFile},
			{Marker: "pubspec.yaml", Label: "Dart/Flutter", Kind: KindFile},
		},
		CiCd: []Rule{
			{Marker: ".github/workflows", Label: "GitHub Actions", Kind: KindDirectory},
			{Marker: ".gitlab-ci.yml", Label: "GitLab CI", Kind: KindFile},
			{Marker: "Jenkinsfile", Label: "Jenkins", Kind: KindFile},
			{Marker: "azure-pipelines.yml", Label: "Azure Pipelines", Kind: KindFile},
			{Marker: ".circleci", Label: "CircleCI", Kind: KindDirectory},
			{Marker: "bitbucket-pipelines.yml", Label: "Bitbucket Pipelines", Kind: KindFile},
			{Marker: ".travis.yml", Label: "Travis CI", Kind: KindFile},
			{Marker: "Dockerfile", Label: "Docker", Kind: KindFile},
			{Marker: "docker-compose.yml", Label: "Docker Compose", Kind: KindFile},
			{Marker: "docker-compose.yaml", Label: "Docker Compose", Kind: KindFile},
		},
		// More specific or newer tools are listed first.
		PackageManagers: []Rule{
			{Marker: "pnpm-lock.yaml", Label: "pnpm", Kind: KindFile},
			{Marker: "yarn.lock", Label: "Yarn", Kind: KindFile},
			{Marker: "package-lock.json", Label: "npm", Kind: KindFile},
			{Marker: "bun.lockb", Label: "Bun", Kind: KindFile},
			{Marker: "Pipfile.lock", Label: "Pipenv", Kind: KindFile},
			{Marker: "poetry.lock", Label: "Poetry", Kind: KindFile},
			{Marker: "uv.lock", Label: "uv", Kind: KindFile},
		},
		Frameworks: []DependencyRule{
			{Ecosystem: JavaScript, Key: "react", Label: "React", Exclude: []string{"react-native"}},
			{Ecosystem: JavaScript, Key: "next", Label: "Next.js"},
			{Ecosystem: JavaScript, Key: "vue", Label: "Vue.js"},
			{Ecosystem: JavaScript, Key: "nuxt", Label: "Nuxt"},
			{Ecosystem: JavaScript, Key: "@angular/core", Label: "Angular"},
			{Ecosystem: JavaScript, Key: "svelte", Label: "Svelte"},
			{Ecosystem: JavaScript, Key: "express", Label: "Express.js"},
			{Ecosystem: JavaScript, Key: "fastify", Label: "Fastify"},
			{Ecosystem: JavaScript, Key: "@nestjs/core", Label: "NestJS"},
			{Ecosystem: Python, Key: "django", Label: "Django"},
			{Ecosystem: Python, Key: "flask", Label: "Flask"},
			{Ecosystem: Python, Key: "fastapi", Label: "FastAPI"},
		},
		TestFrameworks: []DependencyRule{
			{Ecosystem: JavaScript, Key: "jest", Label: "Jest"},
			{Ecosystem: JavaScript, Key: "vitest", Label: "Vitest"},
			{Ecosystem: JavaScript, Key: "mocha", Label: "Mocha"},
			{Ecosystem: JavaScript, Key: "@playwright/test", Label: "Playwright"},
			{Ecosystem: JavaScript, Key: "cypress", Label: "Cypress"},
			{Ecosystem: JavaScript, Key: "@testing-library/react", Label: "Testing Library"},
			{Ecosystem: JavaScript, Key: "@testing-library/vue", Label: "Testing Library"},
			{Ecosystem: Python, Key: "pytest", Label: "Pytest"},
			{Ecosystem: Python, Key: "selenium", Label: "Selenium"},
		},
		TestMarkers: []Rule{
			{Marker: "pytest.ini", Label: "Pytest", Kind: KindFile},
			{Marker: "jest.config.js", Label: "Jest", Kind: KindFile},
			{Marker: "jest.config.ts", Label: "Jest", Kind: KindFile},
			{Marker: "vitest.config.ts", Label: "Vitest", Kind: KindFile},
			{Marker: "vitest.config.js", Label: "Vitest", Kind: KindFile},
			{Marker: "playwright.config.ts", Label: "Playwright", Kind: KindFile},
			{Marker: "playwright.config.js", Label: "Playwright", Kind: KindFile},
			{Marker: "cypress.config.js", Label: "Cypress", Kind: KindFile},
			{Marker: "cypress.config.ts", Label: "Cypress", Kind: KindFile},
		},
		// For documentation rules the label is the document type.
		Docs: []Rule{
			{Marker: "docs", Label: "docs", Kind: KindDirectory},
			{Marker: "documentation", Label: "docs", Kind: KindDirectory},
			{Marker: "wiki", Label: "wiki", Kind: KindDirectory},
			{Marker: ".github", Label: "github-config", Kind: KindDirectory},
			{Marker: ClaudeMdFile, Label: "claude-md", Kind: KindFile},
			{Marker: "CONTRIBUTING.md", Label: "contributing", Kind: KindFile},
			{Marker: "API.md", Label: "api-docs", Kind: KindFile},
			{Marker: "ARCHITECTURE.md", Label: "architecture", Kind: KindFile},
			{Marker: "TESTING.md", Label: "testing-guide", Kind: KindFile},
			{Marker: "QA.md", Label: "qa-guide", Kind: KindFile},
			{Marker: ".github/PULL_REQUEST_TEMPLATE.md", Label: "pr-template", Kind: KindFile},
			{Marker: ".github/ISSUE_TEMPLATE", Label: "issue-templates", Kind: KindDirectory},
			{Marker: "openapi.yaml", Label: "openapi-spec", Kind: KindFile},
			{Marker: "openapi.json", Label: "openapi-spec", Kind: KindFile},
			{Marker: "swagger.yaml", Label: "openapi-spec", Kind: KindFile},
			{Marker: "swagger.json", Label: "openapi-spec", Kind: KindFile},
		},
		TestDirectories: []string{"__tests__", "tests", "test", "spec", "specs", "e2e", "integration-tests"},
		Manifests: []Manifest{
			{Name: "package.json", Ecosystem: JavaScript, Format: FormatPackageJSON},
			{Name: "requirements.txt", Ecosystem: Python, Format: FormatRequirements},
			{Name: "requirements-dev.txt", Ecosystem: Python, Format: FormatRequirements},
			{Name: "pyproject.toml", Ecosystem: Python, Format: FormatPyproject},
		},
	}
}

const (
	ClaudeMdFile = "CLAUDE.md"
	ReadmeFile   = "README.md"

	// Number of leading CLAUDE.md lines kept in the detection result.
	claudeMdSummaryLines = 50
)

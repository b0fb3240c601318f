// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package detect fingerprints the technology stack of a project directory.
//
// Detection is driven by a fixed rule table of markers: files, directories, or file name patterns whose
// presence implies a signal such as a language, a CI/CD system or a package manager. Framework and test
// framework signals are derived from dependency manifests (package.json, requirements files, pyproject.toml).
//
// Monorepos are supported by looking for markers and manifests at the project root and in each immediate
// subdirectory (a workspace). Deeper directories are only visited by the bounded glob probe.
//
//   - [NewContext] to build an immutable detection context for a project root.
//   - [Detect] to run every probe and aggregate the results into a [Result].
package detect

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package snapshot configures snapshot testing for rendered command output.
//
// Snapshots are stored under testdata/ next to the test and are committed with it. A missing or changed
// snapshot fails the test; set UPDATE_SNAPSHOTS=true to re-record it, then review and commit the file.
package snapshot

import (
	"github.com/bradleyjkemp/cupaloy/v2"
)

// NewDefaultConfig creates the snapshotter used by tests in this repository.
func NewDefaultConfig() *cupaloy.Config {
	return cupaloy.New(
		cupaloy.SnapshotSubdirectory("testdata"),
		cupaloy.SnapshotFileExtension(".snap"),
	)
}

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package osutil

import "os"

// Permissions used for everything written under the output directory.
const (
	PermissionDirectory os.FileMode = 0755
	PermissionFile      os.FileMode = 0644
)

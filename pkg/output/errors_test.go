// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/qa-toolkit/qa-toolkit/internal"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	t.Run("Plain", func(t *testing.T) {
		var buf bytes.Buffer
		WriteError(&buf, errors.New("boom"))
		require.Equal(t, "Error: boom\n", buf.String())
	})

	t.Run("WithSuggestion", func(t *testing.T) {
		var buf bytes.Buffer
		err := fmt.Errorf("loading settings: %w", &internal.ErrorWithSuggestion{
			Err:        errors.New("bad outputDir"),
			Suggestion: "Use a relative path.",
		})

		WriteError(&buf, err)
		require.Equal(t, "Error: loading settings: bad outputDir\nSuggestion: Use a relative path.\n", buf.String())
	})
}

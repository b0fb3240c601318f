// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/qa-toolkit/qa-toolkit/internal"
)

// WriteError writes the diagnostic for a failed command to w, followed by its suggestion when err carries one.
func WriteError(w io.Writer, err error) {
	fmt.Fprintln(w, WithErrorFormat("Error: %s", err.Error()))

	var suggestionErr *internal.ErrorWithSuggestion
	if errors.As(err, &suggestionErr) && suggestionErr.Suggestion != "" {
		fmt.Fprintln(w, WithHighLightFormat("Suggestion: %s", suggestionErr.Suggestion))
	}
}

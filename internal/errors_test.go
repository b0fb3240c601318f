// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package internal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorWithSuggestion(t *testing.T) {
	cause := errors.New("invalid value")
	err := fmt.Errorf("loading: %w", &ErrorWithSuggestion{Err: cause, Suggestion: "fix it"})

	require.ErrorIs(t, err, cause)
	require.EqualError(t, err, "loading: invalid value")

	var suggestionErr *ErrorWithSuggestion
	require.True(t, errors.As(err, &suggestionErr))
	require.Equal(t, "fix it", suggestionErr.Suggestion)
}

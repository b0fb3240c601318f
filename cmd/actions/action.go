// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package actions contains the contract between the cobra command tree and the application logic behind each
// command.
package actions

import (
	"context"
	"log"
)

// Define a message as the completion of an Action.
type ResultMessage struct {
	Header   string
	FollowUp string
}

// Define the Action outputs.
type ActionResult struct {
	Message *ResultMessage
}

// Action is the representation of the application logic of a CLI command.
type Action interface {
	// Run executes the CLI command.
	Run(ctx context.Context) (*ActionResult, error)
}

// LogActionResults records the completion message of an action in the diagnostic log. Hooks keep stdout for the
// context block, so results are never printed there.
func LogActionResults(actionResult *ActionResult) {
	if actionResult == nil || actionResult.Message == nil {
		return
	}

	log.Printf("%s: %s", actionResult.Message.Header, actionResult.Message.FollowUp)
}

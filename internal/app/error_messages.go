// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing strings shown by the quick-start
// client.
//
// Keeping them in one place ensures the lifecycle adapter and the terminal UI
// use consistent wording.
package app

const (
	// TitleMisconfigured is the title of the blocking setup dialog.
	TitleMisconfigured = ":-("

	// MsgReplaceAppID asks the user to configure a real application ID. It
	// is shown when the configured ID is still the placeholder.
	MsgReplaceAppID = "To correctly use this project you need to replace LAYER_APP_ID " +
		"(APP_ID environment variable or -app-id flag) with your App ID from developer.layer.com."

	// TitleClientError is the title of the dialog shown when the messaging
	// client cannot be constructed.
	TitleClientError = "Messaging client error"

	// MsgConnecting is shown on the loading screen before the conversation
	// is available.
	MsgConnecting = "Connecting to Layer…"

	// MsgAuthenticating is shown while the user session is being established.
	MsgAuthenticating = "Authenticating…"

	// MsgQuitHint tells the user how to leave a blocking dialog.
	MsgQuitHint = "ctrl+c to quit"
)

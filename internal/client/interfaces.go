// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/MKhiriev/layer-quickstart/internal/messaging"

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Screen is the UI surface driven by the lifecycle adapter.
type Screen interface {
	// ShowLoading displays the placeholder shown until the conversation is
	// ready.
	ShowLoading()
	// ShowDialog displays a blocking informational dialog.
	ShowDialog(title, message string)
	// ShowConversation replaces the current screen with view.
	ShowConversation(view ConversationView)
}

// ConversationView is the on-screen conversation. It observes typing
// indicators of the other participants.
type ConversationView interface {
	messaging.TypingIndicatorListener
}

// ConversationViewFactory builds the conversation view for an authenticated
// client and the participants of the conversation.
type ConversationViewFactory func(c messaging.Client, participants []string) ConversationView

// Dispatcher runs fn serially on the UI event loop.
type Dispatcher interface {
	Dispatch(fn func())
}

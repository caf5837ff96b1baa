// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package messaging defines the contract between the quick-start client and
// the messaging SDK it drives.
//
// The SDK owns every piece of session state: connection, authentication,
// conversations, messages and typing indicators. Callers only query the two
// state flags [Client.IsConnected] and [Client.IsAuthenticated], start the
// asynchronous [Client.Connect] / [Client.Authenticate] operations, and react
// to the listener callbacks registered on the client.
//
// Listener callbacks are invoked on SDK goroutines. Callers that need serial
// execution (for example a UI event loop) must re-dispatch them.
package messaging

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/messaging_mock.go -package=mock

// Factory constructs a [Client] for the given application ID and options.
type Factory func(appID string, opts Options) (Client, error)

// Client is the messaging SDK handle.
type Client interface {
	// Connect starts connecting to the messaging service in the background.
	// The outcome is reported through registered [ConnectionListener]s.
	Connect(ctx context.Context)

	// Disconnect closes the realtime connection. Listeners receive
	// OnConnectionDisconnected.
	Disconnect()

	// Authenticate starts authenticating the configured user in the
	// background. The outcome is reported through registered
	// [AuthenticationListener]s.
	Authenticate(ctx context.Context)

	// Deauthenticate drops the current session.
	Deauthenticate(ctx context.Context) error

	// IsConnected reports whether the realtime connection is established.
	IsConnected() bool

	// IsAuthenticated reports whether a user session is active. A client may
	// be authenticated but not connected, and vice versa.
	IsAuthenticated() bool

	// AuthenticatedUserID returns the user of the active session, or "".
	AuthenticatedUserID() string

	RegisterConnectionListener(l ConnectionListener)
	RegisterAuthenticationListener(l AuthenticationListener)

	// RegisterTypingIndicator subscribes l to typing signals. Registering the
	// same listener twice has no effect.
	RegisterTypingIndicator(l TypingIndicatorListener)
	// UnregisterTypingIndicator removes l; unknown listeners are ignored.
	UnregisterTypingIndicator(l TypingIndicatorListener)

	RegisterEventListener(l EventListener)
	UnregisterEventListener(l EventListener)

	// FindOrCreateConversation returns the distinct conversation between
	// participants, creating it when none exists.
	FindOrCreateConversation(ctx context.Context, participants []string) (Conversation, error)

	// Messages returns the locally synced messages of a conversation, oldest
	// first.
	Messages(ctx context.Context, conversationID string) ([]Message, error)

	// SendMessage posts a text message to a conversation.
	SendMessage(ctx context.Context, conversationID, body string) (Message, error)

	// SendTypingIndicator publishes the local user's typing state.
	SendTypingIndicator(ctx context.Context, conversationID string, state TypingState) error

	// MarkAsRead sends a read receipt for message.
	MarkAsRead(ctx context.Context, message Message) error

	// Close releases the connection and every background resource.
	Close() error
}

// ConnectionListener receives connection state changes.
type ConnectionListener interface {
	OnConnectionConnected(c Client)
	OnConnectionDisconnected(c Client)
	OnConnectionError(c Client, err error)
}

// AuthenticationListener receives authentication state changes.
type AuthenticationListener interface {
	OnAuthenticated(c Client, userID string)
	OnDeauthenticated(c Client)
	OnAuthenticationError(c Client, err error)
}

// TypingIndicatorListener receives typing signals from remote participants.
type TypingIndicatorListener interface {
	OnTypingIndicator(c Client, conversationID, userID string, state TypingState)
}

// EventListener receives message change events.
type EventListener interface {
	OnMessageEvent(c Client, event MessageEvent)
}

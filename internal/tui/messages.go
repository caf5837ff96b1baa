package tui

import "github.com/MKhiriev/layer-quickstart/internal/messaging"

// startMsg runs the create/resume lifecycle once the program loop is up.
type startMsg struct{}

// dispatchMsg carries a closure posted from another goroutine.
type dispatchMsg struct {
	fn func()
}

type conversationReadyMsg struct {
	conversation messaging.Conversation
	messages     []messaging.Message
	err          error
}

type typingIndicatorMsg struct {
	conversationID string
	userID         string
	state          messaging.TypingState
}

type messageEventMsg struct {
	event messaging.MessageEvent
}

type messageSentMsg struct {
	message messaging.Message
	err     error
}

type markedReadMsg struct {
	messageID string
	err       error
}

type typingSentMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

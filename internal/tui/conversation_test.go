package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/layer-quickstart/internal/identity"
	"github.com/MKhiriev/layer-quickstart/internal/logger"
	"github.com/MKhiriev/layer-quickstart/internal/messaging"
	"github.com/MKhiriev/layer-quickstart/internal/mock"
)

var testConv = messaging.Conversation{ID: "conv-1", Participants: identity.Participants(), Distinct: true}

// collect runs cmd and every command it batches, returning the produced
// messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func newTestConversation(t *testing.T, ctrl *gomock.Controller) (*conversationModel, *mock.MockClient, *[]tea.Msg) {
	t.Helper()

	c := mock.NewMockClient(ctrl)
	c.EXPECT().RegisterEventListener(gomock.Any())
	c.EXPECT().AuthenticatedUserID().Return(identity.DeviceUserID).AnyTimes()

	var sent []tea.Msg
	m := newConversationModel(context.Background(), c, identity.Participants(), func(msg tea.Msg) {
		sent = append(sent, msg)
	}, logger.Nop())
	m.input.Cursor.SetMode(cursor.CursorStatic)

	return m, c, &sent
}

func readyConversation(t *testing.T, ctrl *gomock.Controller) (*conversationModel, *mock.MockClient) {
	t.Helper()
	m, c, _ := newTestConversation(t, ctrl)
	m.Update(conversationReadyMsg{conversation: testConv})
	require.True(t, m.ready)
	return m, c
}

func TestConversation_LoadMarksUnreadAsRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, c, _ := newTestConversation(t, ctrl)

	base := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	history := []messaging.Message{
		{ID: "m1", ConversationID: "conv-1", Sender: identity.DeviceUserID, Body: "hi", SentAt: base},
		{ID: "m2", ConversationID: "conv-1", Sender: identity.SimulatorUserID, Body: "hello", SentAt: base.Add(time.Minute), IsUnread: true},
	}

	c.EXPECT().FindOrCreateConversation(gomock.Any(), identity.Participants()).Return(testConv, nil)
	c.EXPECT().Messages(gomock.Any(), "conv-1").Return(history, nil)

	var ready conversationReadyMsg
	for _, msg := range collect(m.cmdLoadConversation()) {
		if r, ok := msg.(conversationReadyMsg); ok {
			ready = r
		}
	}
	require.NoError(t, ready.err)

	c.EXPECT().MarkAsRead(gomock.Any(), history[1]).Return(nil)
	msgs := collect(m.Update(ready))
	require.Len(t, msgs, 1)

	m.Update(msgs[0])
	assert.False(t, m.messages[1].IsUnread)

	view := m.View()
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, "sent")
}

func TestConversation_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestConversation(t, ctrl)

	m.Update(conversationReadyMsg{err: errors.New("dial tcp 127.0.0.1:443: connection refused")})

	assert.True(t, m.showError)
	assert.Contains(t, m.View(), "No network or Layer is unreachable")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showError)
}

func TestConversation_ListenersForwardToLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, c, sent := newTestConversation(t, ctrl)

	m.OnTypingIndicator(c, "conv-1", identity.SimulatorUserID, messaging.TypingStarted)
	m.OnMessageEvent(c, messaging.MessageEvent{Operation: messaging.OperationCreate})

	require.Len(t, *sent, 2)
	assert.Equal(t, typingIndicatorMsg{conversationID: "conv-1", userID: identity.SimulatorUserID, state: messaging.TypingStarted}, (*sent)[0])
	assert.IsType(t, messageEventMsg{}, (*sent)[1])
}

func TestConversation_TypingIndicators(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := readyConversation(t, ctrl)

	m.Update(typingIndicatorMsg{conversationID: "conv-1", userID: "Simulator2", state: messaging.TypingStarted})
	m.Update(typingIndicatorMsg{conversationID: "other", userID: "Dashboard", state: messaging.TypingStarted})
	assert.Contains(t, m.View(), "Simulator2 is typing…")

	m.Update(typingIndicatorMsg{conversationID: "conv-1", userID: "Dashboard", state: messaging.TypingStarted})
	assert.Contains(t, m.View(), "Dashboard, Simulator2 are typing…")

	m.Update(typingIndicatorMsg{conversationID: "conv-1", userID: "Simulator2", state: messaging.TypingFinished})
	m.Update(typingIndicatorMsg{conversationID: "conv-1", userID: "Dashboard", state: messaging.TypingPaused})
	assert.NotContains(t, m.View(), "typing…")
}

func TestConversation_ComposeAndSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, c := readyConversation(t, ctrl)

	c.EXPECT().SendTypingIndicator(gomock.Any(), "conv-1", messaging.TypingStarted).Return(nil)
	collect(m.Update(keyRunes("h")))
	assert.True(t, m.composing)

	// still composing: no new indicator
	collect(m.Update(keyRunes("i")))

	sentMsg := messaging.Message{ID: "m9", ConversationID: "conv-1", Sender: identity.DeviceUserID, Body: "hi"}
	c.EXPECT().SendTypingIndicator(gomock.Any(), "conv-1", messaging.TypingFinished).Return(nil)
	c.EXPECT().SendMessage(gomock.Any(), "conv-1", "hi").Return(sentMsg, nil)

	for _, msg := range collect(m.Update(tea.KeyMsg{Type: tea.KeyEnter})) {
		m.Update(msg)
	}

	assert.Empty(t, m.input.Value())
	assert.False(t, m.composing)
	require.Len(t, m.messages, 1)
	assert.Equal(t, "m9", m.messages[0].ID)
}

func TestConversation_ClearingComposerFinishesTyping(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, c := readyConversation(t, ctrl)

	gomock.InOrder(
		c.EXPECT().SendTypingIndicator(gomock.Any(), "conv-1", messaging.TypingStarted).Return(nil),
		c.EXPECT().SendTypingIndicator(gomock.Any(), "conv-1", messaging.TypingFinished).Return(nil),
	)

	collect(m.Update(keyRunes("x")))
	collect(m.Update(tea.KeyMsg{Type: tea.KeyBackspace}))

	assert.False(t, m.composing)
}

func TestConversation_SendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := readyConversation(t, ctrl)

	m.Update(messageSentMsg{err: errors.New("client unauthorized")})

	assert.True(t, m.showError)
	assert.Contains(t, m.View(), "client unauthorized")
}

func TestConversation_MessageEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, c := readyConversation(t, ctrl)

	base := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	incoming := messaging.Message{ID: "m2", ConversationID: "conv-1", Sender: "Dashboard", Body: "ping", SentAt: base.Add(time.Minute), IsUnread: true}
	older := messaging.Message{ID: "m1", ConversationID: "conv-1", Sender: "Device", Body: "first", SentAt: base}

	m.Update(typingIndicatorMsg{conversationID: "conv-1", userID: "Dashboard", state: messaging.TypingStarted})

	c.EXPECT().MarkAsRead(gomock.Any(), incoming).Return(nil)
	collect(m.Update(messageEventMsg{event: messaging.MessageEvent{Operation: messaging.OperationCreate, Message: incoming}}))
	collect(m.Update(messageEventMsg{event: messaging.MessageEvent{Operation: messaging.OperationCreate, Message: older}}))
	// other conversations are ignored
	collect(m.Update(messageEventMsg{event: messaging.MessageEvent{
		Operation: messaging.OperationCreate,
		Message:   messaging.Message{ID: "x", ConversationID: "conv-2"},
	}}))

	require.Len(t, m.messages, 2)
	assert.Equal(t, "m1", m.messages[0].ID, "messages are ordered by time")
	assert.NotContains(t, m.typing, "Dashboard", "a message ends the sender's typing")

	updated := older
	updated.RecipientStatus = map[string]messaging.RecipientStatus{
		"Simulator2": messaging.StatusRead,
		"Dashboard":  messaging.StatusRead,
	}
	collect(m.Update(messageEventMsg{event: messaging.MessageEvent{Operation: messaging.OperationUpdate, Message: updated}}))
	assert.Contains(t, m.View(), "read")

	m.Update(messageEventMsg{event: messaging.MessageEvent{Operation: messaging.OperationDelete, Message: incoming}})
	require.Len(t, m.messages, 1)
}

func TestReceiptLabel(t *testing.T) {
	participants := identity.Participants()
	msg := messaging.Message{Sender: "Device"}

	assert.Equal(t, "sent", receiptLabel(msg, "Device", participants))

	msg.RecipientStatus = map[string]messaging.RecipientStatus{"Simulator2": messaging.StatusDelivered}
	assert.Equal(t, "delivered", receiptLabel(msg, "Device", participants))

	msg.RecipientStatus = map[string]messaging.RecipientStatus{"Simulator2": messaging.StatusRead, "Dashboard": messaging.StatusDelivered}
	assert.Equal(t, "delivered", receiptLabel(msg, "Device", participants))

	msg.RecipientStatus = map[string]messaging.RecipientStatus{"Simulator2": messaging.StatusRead, "Dashboard": messaging.StatusRead}
	assert.Equal(t, "read", receiptLabel(msg, "Device", participants))
}

func TestHumanizeServerUnavailableError(t *testing.T) {
	assert.Empty(t, humanizeServerUnavailableError(nil))
	assert.Equal(t, "No network or Layer is unreachable", humanizeServerUnavailableError(errors.New("context deadline exceeded")))
	assert.Equal(t, "forbidden", humanizeServerUnavailableError(errors.New("forbidden")))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "hello", fitText("hello", 10))
	assert.Equal(t, "he...", fitText("hello world", 5))
	assert.Equal(t, "привет", fitText("привет", 6))
	assert.Equal(t, "при", fitText("привет", 3))
}

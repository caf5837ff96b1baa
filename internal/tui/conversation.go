package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/layer-quickstart/internal/app"
	"github.com/MKhiriev/layer-quickstart/internal/logger"
	"github.com/MKhiriev/layer-quickstart/internal/messaging"
)

const (
	statusTimeout   = 2 * time.Second
	visibleMessages = 20
)

// conversationModel shows the conversation between the fixed participants.
// Its listener methods run on messaging goroutines and only forward to the
// event loop.
type conversationModel struct {
	ctx          context.Context
	client       messaging.Client
	participants []string
	send         func(tea.Msg)
	logger       *logger.Logger

	conversation messaging.Conversation
	ready        bool
	messages     []messaging.Message
	typing       map[string]messaging.TypingState
	input        textinput.Model
	composing    bool

	status       string
	showError    bool
	errorOverlay errorOverlayModel
}

func newConversationModel(
	ctx context.Context,
	c messaging.Client,
	participants []string,
	send func(tea.Msg),
	log *logger.Logger,
) *conversationModel {
	in := textinput.New()
	in.Placeholder = "Type a message"
	in.CharLimit = 2048
	in.Focus()

	m := &conversationModel{
		ctx:          ctx,
		client:       c,
		participants: participants,
		send:         send,
		logger:       log,
		typing:       map[string]messaging.TypingState{},
		input:        in,
	}
	c.RegisterEventListener(m)

	return m
}

func (m *conversationModel) OnTypingIndicator(_ messaging.Client, conversationID, userID string, state messaging.TypingState) {
	m.send(typingIndicatorMsg{conversationID: conversationID, userID: userID, state: state})
}

func (m *conversationModel) OnMessageEvent(_ messaging.Client, event messaging.MessageEvent) {
	m.send(messageEventMsg{event: event})
}

func (m *conversationModel) userID() string {
	return m.client.AuthenticatedUserID()
}

func (m *conversationModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoadConversation())
}

func (m *conversationModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case conversationReadyMsg:
		if msg.err != nil {
			m.showErrorText(humanizeServerUnavailableError(msg.err))
			return nil
		}
		m.conversation = msg.conversation
		m.ready = true
		m.messages = msg.messages
		return m.cmdMarkUnreadAsRead(m.messages...)
	case typingIndicatorMsg:
		if msg.conversationID != m.conversation.ID {
			return nil
		}
		if msg.state == messaging.TypingFinished {
			delete(m.typing, msg.userID)
		} else {
			m.typing[msg.userID] = msg.state
		}
		return nil
	case messageEventMsg:
		return m.applyEvent(msg.event)
	case messageSentMsg:
		if msg.err != nil {
			m.showErrorText(humanizeServerUnavailableError(msg.err))
			return nil
		}
		m.upsert(msg.message)
		return nil
	case markedReadMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("message_id", msg.messageID).Msg("failed to send read receipt")
			return nil
		}
		for i := range m.messages {
			if m.messages[i].ID == msg.messageID {
				m.messages[i].IsUnread = false
			}
		}
		return nil
	case typingSentMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("failed to send typing indicator")
		}
		return nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorText(msg.err.Error())
			return nil
		}
		m.status = "Copied!"
		return cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *conversationModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showError {
		if key.Matches(msg, keys.send) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.send):
		body := strings.TrimSpace(m.input.Value())
		if body == "" || !m.ready {
			return nil
		}
		m.input.Reset()
		m.composing = false
		return tea.Batch(
			m.cmdSendTyping(messaging.TypingFinished),
			m.cmdSendMessage(body),
		)
	case key.Matches(msg, keys.copyLast):
		if len(m.messages) == 0 {
			return nil
		}
		return cmdCopyToClipboard(m.messages[len(m.messages)-1].Body)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return tea.Batch(cmd, m.syncComposing())
}

// syncComposing publishes started/finished when the composer changes between
// empty and non-empty.
func (m *conversationModel) syncComposing() tea.Cmd {
	if !m.ready {
		return nil
	}

	hasText := strings.TrimSpace(m.input.Value()) != ""
	switch {
	case hasText && !m.composing:
		m.composing = true
		return m.cmdSendTyping(messaging.TypingStarted)
	case !hasText && m.composing:
		m.composing = false
		return m.cmdSendTyping(messaging.TypingFinished)
	}
	return nil
}

func (m *conversationModel) applyEvent(event messaging.MessageEvent) tea.Cmd {
	if event.Message.ConversationID != m.conversation.ID {
		return nil
	}

	switch event.Operation {
	case messaging.OperationDelete:
		for i := range m.messages {
			if m.messages[i].ID == event.Message.ID {
				m.messages = append(m.messages[:i], m.messages[i+1:]...)
				break
			}
		}
		return nil
	default:
		m.upsert(event.Message)
		// a new message ends the sender's typing
		delete(m.typing, event.Message.Sender)
		return m.cmdMarkUnreadAsRead(event.Message)
	}
}

func (m *conversationModel) upsert(msg messaging.Message) {
	for i := range m.messages {
		if m.messages[i].ID == msg.ID {
			m.messages[i] = msg
			return
		}
	}
	m.messages = append(m.messages, msg)
	sort.SliceStable(m.messages, func(i, j int) bool {
		return m.messages[i].SentAt.Before(m.messages[j].SentAt)
	})
}

func (m *conversationModel) showErrorText(text string) {
	m.showError = true
	m.errorOverlay.message = text
}

func (m *conversationModel) View() string {
	if m.showError {
		return m.errorOverlay.View()
	}

	if !m.ready {
		return renderPage("CONVERSATION", app.MsgAuthenticating, "")
	}

	var b strings.Builder
	me := m.userID()

	msgs := m.messages
	if len(msgs) > visibleMessages {
		msgs = msgs[len(msgs)-visibleMessages:]
	}
	for _, msg := range msgs {
		b.WriteString(renderMessage(msg, me, m.participants))
		b.WriteString("\n")
	}
	if len(msgs) == 0 {
		b.WriteString(helpStyle.Render("No messages yet"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(typingStyle.Render(typingLine(m.typing)))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	title := "CONVERSATION " + strings.Join(m.participants, ", ")
	return renderPage(title, b.String(), "enter: send  ctrl+y: copy last  ctrl+b: about")
}

func renderMessage(msg messaging.Message, me string, participants []string) string {
	sender := otherSenderStyle.Render(msg.Sender)
	if msg.Sender == me {
		sender = ownSenderStyle.Render(msg.Sender)
	}

	line := fmt.Sprintf("%s %s: %s",
		timestampStyle.Render(msg.SentAt.Local().Format("15:04")),
		sender,
		fitText(msg.Body, 200),
	)
	if msg.Sender == me {
		line += " " + helpStyle.Render(receiptLabel(msg, me, participants))
	}
	return line
}

// receiptLabel summarises delivery state across the other participants:
// read once all have read, delivered once any has received it.
func receiptLabel(msg messaging.Message, me string, participants []string) string {
	total, read, delivered := 0, 0, 0
	for _, p := range participants {
		if p == me {
			continue
		}
		total++
		switch msg.StatusFor(p) {
		case messaging.StatusRead:
			read++
			delivered++
		case messaging.StatusDelivered:
			delivered++
		}
	}

	switch {
	case total > 0 && read == total:
		return "read"
	case delivered > 0:
		return "delivered"
	default:
		return "sent"
	}
}

func typingLine(typing map[string]messaging.TypingState) string {
	if len(typing) == 0 {
		return ""
	}

	users := make([]string, 0, len(typing))
	for user, state := range typing {
		if state == messaging.TypingStarted {
			users = append(users, user)
		}
	}
	sort.Strings(users)

	switch len(users) {
	case 0:
		return ""
	case 1:
		return users[0] + " is typing…"
	default:
		return strings.Join(users, ", ") + " are typing…"
	}
}

func (m *conversationModel) cmdLoadConversation() tea.Cmd {
	ctx, c, participants := m.ctx, m.client, m.participants
	return func() tea.Msg {
		conv, err := c.FindOrCreateConversation(ctx, participants)
		if err != nil {
			return conversationReadyMsg{err: err}
		}
		msgs, err := c.Messages(ctx, conv.ID)
		return conversationReadyMsg{conversation: conv, messages: msgs, err: err}
	}
}

func (m *conversationModel) cmdSendMessage(body string) tea.Cmd {
	ctx, c, convID := m.ctx, m.client, m.conversation.ID
	return func() tea.Msg {
		msg, err := c.SendMessage(ctx, convID, body)
		return messageSentMsg{message: msg, err: err}
	}
}

func (m *conversationModel) cmdSendTyping(state messaging.TypingState) tea.Cmd {
	ctx, c, convID := m.ctx, m.client, m.conversation.ID
	return func() tea.Msg {
		return typingSentMsg{err: c.SendTypingIndicator(ctx, convID, state)}
	}
}

// cmdMarkUnreadAsRead sends read receipts for unread messages of others.
func (m *conversationModel) cmdMarkUnreadAsRead(msgs ...messaging.Message) tea.Cmd {
	me := m.userID()

	var cmds []tea.Cmd
	for _, msg := range msgs {
		if !msg.IsUnread || msg.Sender == me {
			continue
		}
		ctx, c, msg := m.ctx, m.client, msg
		cmds = append(cmds, func() tea.Msg {
			return markedReadMsg{messageID: msg.ID, err: c.MarkAsRead(ctx, msg)}
		})
	}
	return tea.Batch(cmds...)
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

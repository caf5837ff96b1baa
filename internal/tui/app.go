package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/layer-quickstart/internal/app"
	"github.com/MKhiriev/layer-quickstart/internal/client"
	"github.com/MKhiriev/layer-quickstart/internal/logger"
	"github.com/MKhiriev/layer-quickstart/models"
)

// Lifecycle receives the foreground transitions of the terminal session.
type Lifecycle interface {
	OnCreate()
	OnResume(ctx context.Context)
	OnPause()
}

type screen int

const (
	screenBlank screen = iota
	screenLoading
	screenDialog
	screenConversation
)

// rootModel is the TUI router:
//  1. maps terminal focus to the lifecycle
//  2. runs closures dispatched from other goroutines
//  3. handles global hotkeys
//  4. delegates everything else to the conversation
type rootModel struct {
	ctx       context.Context
	lifecycle Lifecycle
	logger    *logger.Logger

	current screen
	spinner spinner.Model

	dialogTitle   string
	dialogMessage string

	conversation *conversationModel

	buildInfo     models.AppBuildInfo
	appID         string
	showBuildInfo bool

	// pending holds commands queued by screen changes made during Update.
	pending []tea.Cmd
}

func newRootModel(ctx context.Context, buildInfo models.AppBuildInfo, appID string, log *logger.Logger) *rootModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &rootModel{
		ctx:       ctx,
		logger:    log,
		spinner:   s,
		buildInfo: buildInfo,
		appID:     appID,
	}
}

func (r *rootModel) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

func (r *rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := r.update(msg)

	cmds := append(r.pending, cmd)
	r.pending = nil
	return r, tea.Batch(cmds...)
}

func (r *rootModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case startMsg:
		if r.lifecycle != nil {
			r.lifecycle.OnCreate()
			r.lifecycle.OnResume(r.ctx)
		}
		return nil
	case tea.FocusMsg:
		r.logger.Debug().Msg("terminal focused")
		if r.lifecycle != nil {
			r.lifecycle.OnResume(r.ctx)
		}
		return nil
	case tea.BlurMsg:
		r.logger.Debug().Msg("terminal blurred")
		if r.lifecycle != nil {
			r.lifecycle.OnPause()
		}
		return nil
	case dispatchMsg:
		if msg.fn != nil {
			msg.fn()
		}
		return nil
	case spinner.TickMsg:
		if r.current != screenLoading {
			return nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		return r.handleKey(msg)
	}

	if r.conversation != nil {
		return r.conversation.Update(msg)
	}
	return nil
}

func (r *rootModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.quit) {
		return tea.Quit
	}

	if r.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) || key.Matches(msg, keys.buildInfoAlt) {
			r.showBuildInfo = false
		}
		return nil
	}

	if key.Matches(msg, keys.buildInfo) ||
		(r.current != screenConversation && key.Matches(msg, keys.buildInfoAlt)) {
		r.showBuildInfo = true
		return nil
	}

	switch r.current {
	case screenDialog:
		// blocking: only quit leaves the dialog
		return nil
	case screenConversation:
		return r.conversation.Update(msg)
	}
	return nil
}

func (r *rootModel) View() string {
	if r.showBuildInfo {
		userID := ""
		if r.conversation != nil {
			userID = r.conversation.userID()
		}
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo, r.appID, userID))
	}

	switch r.current {
	case screenLoading:
		return appStyle.Render(r.spinner.View() + " " + app.MsgConnecting)
	case screenDialog:
		return appStyle.Render(renderDialog(r.dialogTitle, r.dialogMessage))
	case screenConversation:
		return appStyle.Render(r.conversation.View())
	default:
		return ""
	}
}

func (r *rootModel) enqueue(cmd tea.Cmd) {
	if cmd != nil {
		r.pending = append(r.pending, cmd)
	}
}

// The methods below implement client.Screen. They are only called from
// inside Update.

func (r *rootModel) ShowLoading() {
	r.current = screenLoading
	r.enqueue(r.spinner.Tick)
}

func (r *rootModel) ShowDialog(title, message string) {
	r.current = screenDialog
	r.dialogTitle = title
	r.dialogMessage = message
}

func (r *rootModel) ShowConversation(view client.ConversationView) {
	conv, ok := view.(*conversationModel)
	if !ok {
		r.logger.Error().Msgf("unsupported conversation view %T", view)
		return
	}

	r.current = screenConversation
	r.conversation = conv
	r.enqueue(conv.Init())
}

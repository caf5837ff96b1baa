// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal surface of the quick-start: a loading screen,
// the blocking setup dialog and the conversation screen.
//
// Terminal focus changes are reported to the lifecycle as resume/pause.
// [TUI] also serves as the lifecycle's dispatcher: closures posted from
// messaging goroutines run inside the Bubble Tea event loop.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/layer-quickstart/internal/client"
	"github.com/MKhiriev/layer-quickstart/internal/logger"
	"github.com/MKhiriev/layer-quickstart/internal/messaging"
	"github.com/MKhiriev/layer-quickstart/models"
)

var ErrUserQuit = errors.New("user quit")

// TUI owns the Bubble Tea program.
type TUI struct {
	ctx     context.Context
	root    *rootModel
	program *tea.Program
	logger  *logger.Logger
}

var (
	_ client.Screen     = (*TUI)(nil)
	_ client.Dispatcher = (*TUI)(nil)
)

// New builds the program without starting it.
func New(ctx context.Context, buildInfo models.AppBuildInfo, appID string, log *logger.Logger, opts ...tea.ProgramOption) *TUI {
	root := newRootModel(ctx, buildInfo, appID, log)

	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	}, opts...)

	return &TUI{
		ctx:     ctx,
		root:    root,
		program: tea.NewProgram(root, opts...),
		logger:  log,
	}
}

func (t *TUI) ShowLoading() {
	t.root.ShowLoading()
}

func (t *TUI) ShowDialog(title, message string) {
	t.root.ShowDialog(title, message)
}

func (t *TUI) ShowConversation(view client.ConversationView) {
	t.root.ShowConversation(view)
}

// Dispatch posts fn to the event loop. It blocks until the loop accepts the
// message and drops fn once the program has exited.
func (t *TUI) Dispatch(fn func()) {
	t.program.Send(dispatchMsg{fn: fn})
}

// NewConversationView implements client.ConversationViewFactory.
func (t *TUI) NewConversationView(c messaging.Client, participants []string) client.ConversationView {
	return newConversationModel(t.ctx, c, participants, t.program.Send, t.logger)
}

// Run starts the program and blocks until the user quits.
func (t *TUI) Run(lifecycle Lifecycle) error {
	t.root.lifecycle = lifecycle

	if _, err := t.program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return ErrUserQuit
		}
		return err
	}
	return nil
}

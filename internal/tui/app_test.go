package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/layer-quickstart/internal/app"
	"github.com/MKhiriev/layer-quickstart/internal/logger"
	"github.com/MKhiriev/layer-quickstart/internal/mock"
	"github.com/MKhiriev/layer-quickstart/models"
)

type fakeLifecycle struct {
	calls []string
}

func (f *fakeLifecycle) OnCreate()                  { f.calls = append(f.calls, "create") }
func (f *fakeLifecycle) OnResume(_ context.Context) { f.calls = append(f.calls, "resume") }
func (f *fakeLifecycle) OnPause()                   { f.calls = append(f.calls, "pause") }

func newTestRoot() (*rootModel, *fakeLifecycle) {
	lc := &fakeLifecycle{}
	r := newRootModel(context.Background(), models.NewAppBuildInfo("1.0.0", "2026-10-18", "abc123"), "app-id", logger.Nop())
	r.lifecycle = lc
	return r, lc
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRootModel_LifecycleMapping(t *testing.T) {
	r, lc := newTestRoot()

	start := r.Init()
	require.NotNil(t, start)
	r.Update(start())
	r.Update(tea.BlurMsg{})
	r.Update(tea.FocusMsg{})

	assert.Equal(t, []string{"create", "resume", "pause", "resume"}, lc.calls)
}

func TestRootModel_Dispatch(t *testing.T) {
	r, _ := newTestRoot()

	ran := false
	r.Update(dispatchMsg{fn: func() {
		ran = true
		r.ShowDialog(app.TitleMisconfigured, app.MsgReplaceAppID)
	}})

	assert.True(t, ran)
	assert.Equal(t, screenDialog, r.current)
}

func TestRootModel_LoadingScreen(t *testing.T) {
	r, _ := newTestRoot()

	_, cmd := r.Update(dispatchMsg{fn: r.ShowLoading})

	assert.NotNil(t, cmd, "spinner tick must be scheduled")
	assert.Empty(t, r.pending)
	assert.Contains(t, r.View(), app.MsgConnecting)
}

func TestRootModel_DialogIsBlocking(t *testing.T) {
	r, _ := newTestRoot()
	r.ShowDialog(app.TitleMisconfigured, app.MsgReplaceAppID)

	_, cmd := r.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	_, cmd = r.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)

	view := r.View()
	assert.Contains(t, view, app.TitleMisconfigured)
	assert.Contains(t, view, "LAYER_APP_ID")
	assert.Equal(t, screenDialog, r.current)

	_, cmd = r.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_BuildInfo(t *testing.T) {
	r, _ := newTestRoot()
	r.ShowLoading()

	r.Update(keyRunes("v"))
	assert.True(t, r.showBuildInfo)
	view := r.View()
	assert.Contains(t, view, "1.0.0")
	assert.Contains(t, view, "abc123")
	assert.Contains(t, view, "app-id")

	r.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, r.showBuildInfo)

	r.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.True(t, r.showBuildInfo)
}

func TestRootModel_ShowConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewMockClient(ctrl)
	c.EXPECT().RegisterEventListener(gomock.Any())
	c.EXPECT().AuthenticatedUserID().Return("Device").AnyTimes()

	r, _ := newTestRoot()
	view := newConversationModel(context.Background(), c, []string{"Device", "Simulator2", "Dashboard"}, func(tea.Msg) {}, logger.Nop())

	_, cmd := r.Update(dispatchMsg{fn: func() { r.ShowConversation(view) }})

	assert.NotNil(t, cmd, "conversation must start loading")
	assert.Equal(t, screenConversation, r.current)
	assert.Same(t, view, r.conversation)

	// "v" is text on the conversation screen
	r.Update(keyRunes("v"))
	assert.False(t, r.showBuildInfo)
	assert.Equal(t, "v", view.input.Value())

	// mock.MockConversationView is not renderable and is ignored
	r.ShowConversation(mock.NewMockConversationView(ctrl))
	assert.Same(t, view, r.conversation)
}

package client

import (
	"context"

	"github.com/MKhiriev/layer-quickstart/internal/app"
	"github.com/MKhiriev/layer-quickstart/internal/config"
	"github.com/MKhiriev/layer-quickstart/internal/identity"
	"github.com/MKhiriev/layer-quickstart/internal/logger"
	"github.com/MKhiriev/layer-quickstart/internal/messaging"
)

// Dependencies are the collaborators of an [App].
type Dependencies struct {
	Config     config.ClientApp
	NewClient  messaging.Factory
	NewView    ConversationViewFactory
	Screen     Screen
	Dispatcher Dispatcher
	// SetLoggingEnabled toggles messaging client debug logs. Optional.
	SetLoggingEnabled func(enabled bool)
	Logger            *logger.Logger
}

// App is the lifecycle adapter of the quick-start.
type App struct {
	cfg        config.ClientApp
	newClient  messaging.Factory
	newView    ConversationViewFactory
	screen     Screen
	dispatcher Dispatcher
	setLogging func(bool)
	logger     *logger.Logger

	// ctx is used when messaging callbacks re-enter LoadClient.
	ctx context.Context

	client messaging.Client
	view   ConversationView

	connListener *connectionListener
	authListener *authenticationListener
}

// NewApp returns an App with no messaging client. ctx bounds the background
// work started from messaging callbacks.
func NewApp(ctx context.Context, deps Dependencies) *App {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		cfg:        deps.Config,
		newClient:  deps.NewClient,
		newView:    deps.NewView,
		screen:     deps.Screen,
		dispatcher: deps.Dispatcher,
		setLogging: deps.SetLoggingEnabled,
		logger:     log,
		ctx:        ctx,
	}
}

// OnCreate prepares the listener shims and shows the loading screen until a
// client exists.
func (a *App) OnCreate() {
	if a.client == nil {
		a.screen.ShowLoading()
	}

	if a.connListener == nil {
		a.connListener = &connectionListener{app: a}
	}
	if a.authListener == nil {
		a.authListener = &authenticationListener{app: a}
	}
}

// OnResume runs the load decision and re-attaches the conversation view to
// typing indicators.
func (a *App) OnResume(ctx context.Context) {
	a.LoadClient(ctx)

	if a.client != nil && a.view != nil {
		a.client.RegisterTypingIndicator(a.view)
	}
}

// OnPause detaches the conversation view from typing indicators.
func (a *App) OnPause() {
	if a.client != nil && a.view != nil {
		a.client.UnregisterTypingIndicator(a.view)
	}
}

// LoadClient builds the messaging client if needed and moves it one step
// closer to showing the conversation: connect, then authenticate, then
// present the view.
func (a *App) LoadClient(ctx context.Context) {
	if a.cfg.IsPlaceholderAppID() {
		a.logger.Warn().Str("app_id", a.cfg.AppID).Msg("application ID is not configured")
		a.screen.ShowDialog(app.TitleMisconfigured, app.MsgReplaceAppID)
		return
	}

	if a.client == nil {
		if !a.createClient() {
			return
		}
	}

	switch {
	case !a.client.IsConnected():
		a.logger.Debug().Msg("client not connected, connecting")
		a.client.Connect(ctx)
	case !a.client.IsAuthenticated():
		a.logger.Debug().Msg("client connected, authenticating")
		a.client.Authenticate(ctx)
	default:
		a.OnUserAuthenticated()
	}
}

func (a *App) createClient() bool {
	if a.cfg.SDKLogging && a.setLogging != nil {
		a.setLogging(true)
	}

	opts := messaging.Options{
		PushSenderID:       a.cfg.PushProjectNumber,
		HistoricSyncPolicy: a.cfg.HistoricSyncPolicy,
	}

	c, err := a.newClient(a.cfg.AppID, opts)
	if err != nil {
		a.logger.Err(err).Str("app_id", a.cfg.AppID).Msg("failed to create messaging client")
		a.screen.ShowDialog(app.TitleClientError, err.Error())
		return false
	}

	// OnCreate may not have run when LoadClient is driven directly.
	if a.connListener == nil {
		a.connListener = &connectionListener{app: a}
	}
	if a.authListener == nil {
		a.authListener = &authenticationListener{app: a}
	}

	c.RegisterConnectionListener(a.connListener)
	c.RegisterAuthenticationListener(a.authListener)
	a.client = c

	a.logger.Info().
		Str("app_id", a.cfg.AppID).
		Str("sync_policy", opts.HistoricSyncPolicy.String()).
		Msg("messaging client created")

	return true
}

// OnUserAuthenticated shows the conversation between the fixed participants
// once the user is authenticated. Calling it again is a no-op.
func (a *App) OnUserAuthenticated() {
	if a.view != nil {
		return
	}

	a.logger.Info().Str("user_id", a.client.AuthenticatedUserID()).Msg("showing conversation")

	a.view = a.newView(a.client, identity.Participants())
	a.screen.ShowConversation(a.view)
	a.client.RegisterTypingIndicator(a.view)
}

// Client returns the messaging client, or nil before the first successful
// load.
func (a *App) Client() messaging.Client {
	return a.client
}

// Close releases the messaging client.
func (a *App) Close() error {
	if a.client == nil {
		return nil
	}
	return a.client.Close()
}

// reload posts a LoadClient run to the UI event loop.
func (a *App) reload() {
	a.dispatcher.Dispatch(func() {
		a.LoadClient(a.ctx)
	})
}

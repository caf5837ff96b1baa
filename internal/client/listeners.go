package client

import "github.com/MKhiriev/layer-quickstart/internal/messaging"

// connectionListener re-runs the load decision on every connection change.
type connectionListener struct {
	app *App
}

func (l *connectionListener) OnConnectionConnected(messaging.Client) {
	l.app.logger.Info().Msg("connected")
	l.app.reload()
}

func (l *connectionListener) OnConnectionDisconnected(messaging.Client) {
	l.app.logger.Info().Msg("disconnected")
	l.app.reload()
}

func (l *connectionListener) OnConnectionError(_ messaging.Client, err error) {
	l.app.logger.Err(err).Msg("connection error")
}

// authenticationListener re-runs the load decision on every session change.
type authenticationListener struct {
	app *App
}

func (l *authenticationListener) OnAuthenticated(_ messaging.Client, userID string) {
	l.app.logger.Info().Str("user_id", userID).Msg("authenticated")
	l.app.reload()
}

func (l *authenticationListener) OnDeauthenticated(messaging.Client) {
	l.app.logger.Info().Msg("deauthenticated")
	l.app.reload()
}

func (l *authenticationListener) OnAuthenticationError(_ messaging.Client, err error) {
	l.app.logger.Err(err).Msg("authentication error")
}

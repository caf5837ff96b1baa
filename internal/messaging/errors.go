package messaging

import "errors"

var (
	// ErrUnknownSyncPolicy is returned for an unrecognised policy name.
	ErrUnknownSyncPolicy = errors.New("unknown historic sync policy")
	// ErrNotConnected is returned by operations that need the realtime
	// connection.
	ErrNotConnected = errors.New("messaging client not connected")
	// ErrNotAuthenticated is returned by operations that need a session.
	ErrNotAuthenticated = errors.New("messaging client not authenticated")
	// ErrClientClosed is returned after Close.
	ErrClientClosed = errors.New("messaging client closed")
)

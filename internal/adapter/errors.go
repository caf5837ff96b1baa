package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrEmptyAppID is returned when a client is constructed without an
	// application ID.
	ErrEmptyAppID = errors.New("empty application id")
	// ErrMissingIdentityKey is returned when no identity provider key is
	// configured, so identity tokens cannot be signed.
	ErrMissingIdentityKey = errors.New("identity provider key is not configured")
	// ErrEmptyNonce is returned when the service hands out an empty nonce.
	ErrEmptyNonce = errors.New("empty nonce")
	// ErrEmptySessionToken is returned when the service accepts an identity
	// token but returns no session token.
	ErrEmptySessionToken = errors.New("empty session token")
)

// ConnectionError describes a failed realtime connection attempt.
type ConnectionError struct {
	URL    string
	Reason string
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect to %s: %s", e.URL, e.Reason)
}

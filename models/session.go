// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is an authenticated messaging session persisted in the local cache
// so that restarts skip the nonce challenge.
type Session struct {
	// AppID is the application the session belongs to.
	AppID string
	// UserID is the authenticated principal.
	UserID string
	// Token is the session token attached to every API request.
	Token string
	// CreatedAt is when the session was issued.
	CreatedAt time.Time
}

// IsZero reports whether s holds no session.
func (s Session) IsZero() bool {
	return s.Token == ""
}

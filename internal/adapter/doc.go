// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements [messaging.Client] against a Layer-style client
// API.
//
// Two channels are used:
//   - REST (resty) for the authentication challenge (nonce → identity token →
//     session), conversations, messages and receipts;
//   - a WebSocket (gorilla/websocket) for realtime change events and typing
//     signals.
//
// Connect and Authenticate return immediately and do their work on a
// background goroutine; results are reported to the registered listeners.
// Sessions and synced history are kept in the local store so a restart can
// skip the challenge.
//
// HTTP status codes are mapped to the sentinel errors in errors.go by
// mapHTTPError, wrapping the decoded [APIError], so callers can use
// [errors.Is] and [errors.As].
package adapter

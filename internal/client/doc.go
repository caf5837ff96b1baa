// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the quick-start lifecycle: it decides, each time
// the application is (re)activated or the messaging client reports a state
// change, whether to build the client, connect, authenticate, or show the
// conversation.
//
// The decision holds no state of its own beyond the client handle and the
// conversation view; connection and session state are queried from the
// messaging client every time. All entry points must run on the UI event
// loop; messaging callbacks are re-dispatched there through a [Dispatcher].
package client

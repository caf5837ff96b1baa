// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// PlaceholderAppID is the value shipped in place of a real application
// identifier. The client refuses to talk to the messaging service until it is
// replaced.
const PlaceholderAppID = "LAYER_APP_ID"

// StructuredConfig is the top-level configuration container for the client.
// It is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the messaging application settings: app ID, push sender,
	// sync policy and the identity provider used for authentication.
	App App `envPrefix:"APP_"`

	// Adapter holds the messaging service endpoints and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local cache database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Identity holds overrides for the user-identity heuristic.
	Identity Identity `envPrefix:"IDENTITY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level messaging settings.
type App struct {
	// AppID identifies this application to the messaging service.
	// Env: APP_ID
	AppID string `env:"ID" envDefault:"LAYER_APP_ID"`

	// PushProjectNumber is the push-messaging sender ID passed to the
	// messaging client. An empty or invalid value disables push only.
	// Env: APP_PUSH_PROJECT_NUMBER
	PushProjectNumber string `env:"PUSH_PROJECT_NUMBER"`

	// HistoricSyncPolicy controls how much history is fetched after
	// authentication: all_messages, from_last_message or
	// from_earliest_unread_message.
	// Env: APP_HISTORIC_SYNC_POLICY
	HistoricSyncPolicy string `env:"HISTORIC_SYNC_POLICY" envDefault:"all_messages"`

	// SDKLogging enables verbose messaging client logs. Debug builds only.
	// Env: APP_SDK_LOGGING
	SDKLogging bool `env:"SDK_LOGGING"`

	// IdentityProviderID is the "iss" claim of issued identity tokens.
	// Env: APP_IDENTITY_PROVIDER_ID
	IdentityProviderID string `env:"IDENTITY_PROVIDER_ID"`

	// IdentityKeyID is the "kid" header of issued identity tokens.
	// Env: APP_IDENTITY_KEY_ID
	IdentityKeyID string `env:"IDENTITY_KEY_ID"`

	// IdentityKey is the secret used to sign identity tokens.
	// Env: APP_IDENTITY_KEY
	IdentityKey string `env:"IDENTITY_KEY"`
}

// Adapter holds the messaging service endpoints.
type Adapter struct {
	// HTTPAddress is the base URL of the REST client API
	// (e.g. "https://api.layer.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// WebSocketAddress is the realtime endpoint. Derived from HTTPAddress
	// when empty.
	// Env: ADAPTER_WEBSOCKET_ADDRESS
	WebSocketAddress string `env:"WEBSOCKET_ADDRESS"`

	// RequestTimeout bounds every outbound REST request and the websocket
	// handshake (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local cache settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite file path (e.g. "quickstart.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Identity holds overrides for the user-identity heuristic.
type Identity struct {
	// Fingerprint replaces the detected runtime fingerprint. Values starting
	// with "generic" select the simulator identity.
	// Env: IDENTITY_FINGERPRINT
	Fingerprint string `env:"FINGERPRINT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

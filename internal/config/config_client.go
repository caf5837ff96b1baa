package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/layer-quickstart/internal/messaging"
)

// ClientApp holds the messaging application settings used at runtime.
type ClientApp struct {
	// AppID is the application identifier; may still be the placeholder.
	AppID string
	// PushProjectNumber is the push sender ID handed to the messaging client.
	PushProjectNumber string
	// HistoricSyncPolicy is the parsed history sync policy.
	HistoricSyncPolicy messaging.HistoricSyncPolicy
	// SDKLogging enables verbose messaging client logs.
	SDKLogging bool
	// IdentityProviderID, IdentityKeyID and IdentityKey configure identity
	// token signing.
	IdentityProviderID string
	IdentityKeyID      string
	IdentityKey        string
}

// ClientAdapter holds network settings used by the messaging client.
type ClientAdapter struct {
	// HTTPAddress is the REST API base URL.
	HTTPAddress string
	// WebSocketAddress is the realtime endpoint URL; may be empty.
	WebSocketAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientIdentity holds the identity heuristic override.
type ClientIdentity struct {
	Fingerprint string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App      ClientApp
	Adapter  ClientAdapter
	Storage  ClientStorage
	Identity ClientIdentity
}

// IsPlaceholderAppID reports whether the configured app ID has not been
// replaced yet. Comparison is case-insensitive; an empty ID counts as the
// placeholder too.
func (a ClientApp) IsPlaceholderAppID() bool {
	return IsPlaceholderAppID(a.AppID)
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
//
// The app ID is deliberately not validated here: a placeholder must reach the
// lifecycle guard so that the user sees the setup dialog.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	policy, err := messaging.ParseHistoricSyncPolicy(cfg.App.HistoricSyncPolicy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			AppID:              cfg.App.AppID,
			PushProjectNumber:  cfg.App.PushProjectNumber,
			HistoricSyncPolicy: policy,
			SDKLogging:         cfg.App.SDKLogging,
			IdentityProviderID: cfg.App.IdentityProviderID,
			IdentityKeyID:      cfg.App.IdentityKeyID,
			IdentityKey:        cfg.App.IdentityKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:      cfg.Adapter.HTTPAddress,
			WebSocketAddress: cfg.Adapter.WebSocketAddress,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Identity: ClientIdentity{Fingerprint: cfg.Identity.Fingerprint},
	}

	return clientCfg, clientCfg.validate()
}

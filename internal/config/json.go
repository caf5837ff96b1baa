package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON config files.
type StructuredJSONConfig struct {
	App struct {
		AppID              string `json:"app_id"`
		PushProjectNumber  string `json:"push_project_number"`
		HistoricSyncPolicy string `json:"historic_sync_policy"`
		SDKLogging         bool   `json:"sdk_logging"`
		IdentityProviderID string `json:"identity_provider_id"`
		IdentityKeyID      string `json:"identity_key_id"`
		IdentityKey        string `json:"identity_key"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress      string   `json:"http_address"`
		WebSocketAddress string   `json:"websocket_address"`
		RequestTimeout   Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Identity struct {
		Fingerprint string `json:"fingerprint"`
	} `json:"identity,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AppID:              jsonCfg.App.AppID,
			PushProjectNumber:  jsonCfg.App.PushProjectNumber,
			HistoricSyncPolicy: jsonCfg.App.HistoricSyncPolicy,
			SDKLogging:         jsonCfg.App.SDKLogging,
			IdentityProviderID: jsonCfg.App.IdentityProviderID,
			IdentityKeyID:      jsonCfg.App.IdentityKeyID,
			IdentityKey:        jsonCfg.App.IdentityKey,
		},
		Adapter: Adapter{
			HTTPAddress:      jsonCfg.Adapter.HTTPAddress,
			WebSocketAddress: jsonCfg.Adapter.WebSocketAddress,
			RequestTimeout:   time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Identity: Identity{Fingerprint: jsonCfg.Identity.Fingerprint},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/layer-quickstart/internal/messaging"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ID", "env-app-id")
	t.Setenv("APP_PUSH_PROJECT_NUMBER", "748607264448")
	t.Setenv("APP_HISTORIC_SYNC_POLICY", "")
	t.Setenv("APP_IDENTITY_KEY", "env-secret")
	t.Setenv("ADAPTER_ADDRESS", "https://api.layer.com")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "15s")
	t.Setenv("STORAGE_DB_DSN", "quickstart.db")
	t.Setenv("IDENTITY_FINGERPRINT", "")
	t.Setenv("CONFIG", "")
}

func writeJSONConfig(t *testing.T, v any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestGetClientConfig_FromEnv(t *testing.T) {
	setBaseEnv(t)

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "env-app-id", cfg.App.AppID)
	assert.Equal(t, "748607264448", cfg.App.PushProjectNumber)
	assert.Equal(t, messaging.AllMessages, cfg.App.HistoricSyncPolicy)
	assert.Equal(t, "env-secret", cfg.App.IdentityKey)
	assert.Equal(t, "https://api.layer.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "quickstart.db", cfg.Storage.DB.DSN)
	assert.False(t, cfg.App.IsPlaceholderAppID())
}

func TestGetClientConfig_SyncPolicyDefaultsToAllMessages(t *testing.T) {
	setBaseEnv(t)
	require.NoError(t, os.Unsetenv("APP_HISTORIC_SYNC_POLICY"))

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, messaging.AllMessages, cfg.App.HistoricSyncPolicy)
}

func TestGetClientConfig_SyncPolicyFromEnv(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_HISTORIC_SYNC_POLICY", "from_earliest_unread_message")

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, messaging.FromEarliestUnreadMessage, cfg.App.HistoricSyncPolicy)
}

func TestGetClientConfig_FlagsOverrideEnv(t *testing.T) {
	setBaseEnv(t)

	cfg, err := GetClientConfig([]string{
		"-app-id", "flag-app-id",
		"-sync-policy", "from_earliest_unread_message",
		"-sdk-logging",
		"-a", "http://localhost:9000",
		"-ws", "ws://localhost:9001/websocket",
		"-request-timeout", "3s",
		"-d", "flag.db",
		"-fingerprint", "generic_x86",
	})
	require.NoError(t, err)

	assert.Equal(t, "flag-app-id", cfg.App.AppID)
	assert.Equal(t, messaging.FromEarliestUnreadMessage, cfg.App.HistoricSyncPolicy)
	assert.True(t, cfg.App.SDKLogging)
	assert.Equal(t, "http://localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "ws://localhost:9001/websocket", cfg.Adapter.WebSocketAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "generic_x86", cfg.Identity.Fingerprint)
	// untouched by flags
	assert.Equal(t, "748607264448", cfg.App.PushProjectNumber)
}

func TestGetClientConfig_JSONOverridesFlags(t *testing.T) {
	setBaseEnv(t)

	path := writeJSONConfig(t, map[string]any{
		"app": map[string]any{
			"app_id":               "json-app-id",
			"historic_sync_policy": "from_last_message",
			"identity_provider_id": "layer:///providers/json",
			"identity_key_id":      "layer:///keys/json",
		},
		"adapter": map[string]any{
			"request_timeout": "45s",
		},
	})

	cfg, err := GetClientConfig([]string{"-app-id", "flag-app-id", "-config", path})
	require.NoError(t, err)

	assert.Equal(t, "json-app-id", cfg.App.AppID)
	assert.Equal(t, messaging.FromLastMessage, cfg.App.HistoricSyncPolicy)
	assert.Equal(t, "layer:///providers/json", cfg.App.IdentityProviderID)
	assert.Equal(t, "layer:///keys/json", cfg.App.IdentityKeyID)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "https://api.layer.com", cfg.Adapter.HTTPAddress)
}

func TestGetClientConfig_JSONPathFromEnv(t *testing.T) {
	setBaseEnv(t)
	path := writeJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"dsn": "json.db"}},
	})
	t.Setenv("CONFIG", path)

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
}

func TestGetClientConfig_Errors(t *testing.T) {
	t.Run("missing json file", func(t *testing.T) {
		setBaseEnv(t)
		_, err := GetClientConfig([]string{"-c", filepath.Join(t.TempDir(), "missing.json")})
		require.Error(t, err)
	})

	t.Run("unknown flag", func(t *testing.T) {
		setBaseEnv(t)
		_, err := GetClientConfig([]string{"-unknown"})
		require.Error(t, err)
	})

	t.Run("unknown sync policy", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("APP_HISTORIC_SYNC_POLICY", "everything")
		_, err := GetClientConfig(nil)
		assert.ErrorIs(t, err, ErrInvalidAppConfigs)
		assert.ErrorIs(t, err, messaging.ErrUnknownSyncPolicy)
	})
}

func TestNewClientConfig_Validation(t *testing.T) {
	valid := func() *StructuredConfig {
		return &StructuredConfig{
			App:     App{AppID: PlaceholderAppID},
			Adapter: Adapter{HTTPAddress: "https://api.layer.com", RequestTimeout: time.Second},
			Storage: Storage{DB: DB{DSN: "quickstart.db"}},
		}
	}

	t.Run("placeholder app id is accepted", func(t *testing.T) {
		cfg, err := newClientConfig(valid())
		require.NoError(t, err)
		assert.True(t, cfg.App.IsPlaceholderAppID())
	})

	t.Run("missing dsn", func(t *testing.T) {
		sc := valid()
		sc.Storage.DB.DSN = " "
		_, err := newClientConfig(sc)
		assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	})

	t.Run("missing address", func(t *testing.T) {
		sc := valid()
		sc.Adapter.HTTPAddress = ""
		_, err := newClientConfig(sc)
		assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
	})

	t.Run("missing timeout", func(t *testing.T) {
		sc := valid()
		sc.Adapter.RequestTimeout = 0
		_, err := newClientConfig(sc)
		assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
	})
}

func TestIsPlaceholderAppID(t *testing.T) {
	tests := []struct {
		appID string
		want  bool
	}{
		{appID: "LAYER_APP_ID", want: true},
		{appID: "layer_app_id", want: true},
		{appID: " Layer_App_Id ", want: true},
		{appID: "", want: true},
		{appID: "9ec30af8-5591-11e4-af9e-f7a201004a3b", want: false},
		{appID: "LAYER_APP_ID_2", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.appID, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPlaceholderAppID(tt.appID))
		})
	}
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))

	out, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(out))
}

package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebsocketURL(t *testing.T) {
	tests := []struct {
		name    string
		http    string
		ws      string
		want    string
		wantErr bool
	}{
		{name: "derived from https", http: "https://api.layer.com", want: "wss://api.layer.com/websocket"},
		{name: "derived from http with slash", http: "http://localhost:8080/", want: "ws://localhost:8080/websocket"},
		{name: "explicit wss", http: "https://api.layer.com", ws: "wss://websockets.layer.com", want: "wss://websockets.layer.com"},
		{name: "explicit https mapped", http: "https://api.layer.com", ws: "https://websockets.layer.com/websocket", want: "wss://websockets.layer.com/websocket"},
		{name: "unsupported scheme", http: "https://api.layer.com", ws: "ftp://websockets.layer.com", wantErr: true},
		{name: "missing host", http: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := websocketURL(tt.http, tt.ws)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" api.layer.com/ ")
	require.NoError(t, err)
	assert.Equal(t, "https://api.layer.com", got)

	got, err = normalizeBaseURL("http://127.0.0.1:9000")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000", got)

	_, err = normalizeBaseURL("")
	assert.Error(t, err)
}

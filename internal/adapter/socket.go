package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	socketSubprotocol = "layer-1.0"
	socketPath        = "/websocket"
	socketWriteWait   = 10 * time.Second
)

// socket is the realtime channel to the messaging service.
type socket struct {
	url  string
	conn *websocket.Conn

	mu sync.Mutex // serialises writes

	closeOnce sync.Once
	done      chan struct{}
}

// websocketURL derives the realtime endpoint from the REST base URL when no
// explicit address is configured.
func websocketURL(httpAddress, wsAddress string) (string, error) {
	raw := strings.TrimSpace(wsAddress)
	if raw == "" {
		raw = strings.TrimRight(strings.TrimSpace(httpAddress), "/") + socketPath
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse websocket URL: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported websocket scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", errors.New("websocket URL must include host")
	}

	return u.String(), nil
}

func dialSocket(ctx context.Context, wsURL, appID string, timeout time.Duration) (*socket, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	q := u.Query()
	q.Set("app_id", appID)
	u.RawQuery = q.Encode()

	dialer := websocket.Dialer{
		HandshakeTimeout: timeout,
		Subprotocols:     []string{socketSubprotocol},
	}
	conn, _, err := dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, &ConnectionError{URL: wsURL, Reason: err.Error()}
	}

	return &socket{url: wsURL, conn: conn, done: make(chan struct{})}, nil
}

// writeFrame marshals body into a frame of type typ and sends it.
func (s *socket) writeFrame(typ string, body any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s body: %w", typ, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.conn.SetWriteDeadline(time.Now().Add(socketWriteWait))
	if err = s.conn.WriteJSON(frame{Type: typ, Body: raw}); err != nil {
		return fmt.Errorf("write %s frame: %w", typ, err)
	}
	return nil
}

// readLoop delivers raw inbound packets to onPacket until the connection
// fails or is closed, then calls onClose once. A nil error means a local
// close.
func (s *socket) readLoop(onPacket func([]byte), onClose func(error)) {
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			select {
			case <-s.done:
				onClose(nil)
			default:
				onClose(err)
			}
			return
		}
		onPacket(data)
	}
}

func (s *socket) close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)

		s.mu.Lock()
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		s.mu.Unlock()

		err = s.conn.Close()
	})
	return err
}

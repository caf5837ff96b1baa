package adapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"

	"github.com/MKhiriev/layer-quickstart/internal/config"
	"github.com/MKhiriev/layer-quickstart/internal/messaging"
	"github.com/MKhiriev/layer-quickstart/internal/utils"
	"github.com/MKhiriev/layer-quickstart/models"
)

const (
	testAppID      = "9ec30af8-5591-11e4-af9e-f7a201004a3b"
	testProviderID = "layer:///providers/quickstart"
	testKeyID      = "layer:///keys/quickstart"
	testKey        = "quickstart-provider-secret"
	testNonce      = "nonce-1"
	testSession    = "session-1"
)

// fakeLayer is an in-process stand-in for the Layer client API.
type fakeLayer struct {
	t   *testing.T
	srv *httptest.Server

	mu            sync.Mutex
	validTokens   map[string]bool
	nonceRequests int
	claims        []models.IdentityClaims
	tokenHeaders  []map[string]any
	convs         []messaging.Conversation
	messages      map[string][]messageWire
	pageSizes     []string
	posted        []messageRequest
	receipts      []string
	deleted       []string
	conns         []*websocket.Conn

	frames chan frame
}

func newFakeLayer(t *testing.T) *fakeLayer {
	t.Helper()

	f := &fakeLayer{
		t:           t,
		validTokens: map[string]bool{},
		messages:    map[string][]messageWire{},
		frames:      make(chan frame, 16),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /nonces", f.handleNonce)
	mux.HandleFunc("POST /sessions", f.handleSession)
	mux.HandleFunc("DELETE /sessions/{token}", f.authorized(f.handleDeleteSession))
	mux.HandleFunc("GET /conversations", f.authorized(f.handleListConversations))
	mux.HandleFunc("POST /conversations", f.authorized(f.handleCreateConversation))
	mux.HandleFunc("GET /conversations/{id}/messages", f.authorized(f.handleListMessages))
	mux.HandleFunc("POST /conversations/{id}/messages", f.authorized(f.handlePostMessage))
	mux.HandleFunc("POST /messages/{id}/receipts", f.authorized(f.handleReceipt))
	mux.HandleFunc("GET /websocket", f.handleWebsocket)

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.close)

	return f
}

func (f *fakeLayer) close() {
	f.mu.Lock()
	conns := f.conns
	f.conns = nil
	f.mu.Unlock()

	for _, c := range conns {
		_ = c.Close()
	}
	f.srv.Close()
}

func (f *fakeLayer) adapterConfig() config.ClientAdapter {
	return config.ClientAdapter{
		HTTPAddress:    f.srv.URL,
		RequestTimeout: 5 * time.Second,
	}
}

func (f *fakeLayer) acceptToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.validTokens[token] = true
}

func (f *fakeLayer) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func (f *fakeLayer) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != utils.LayerAcceptHeader {
			f.writeJSON(w, http.StatusNotAcceptable, nil)
			return
		}

		f.mu.Lock()
		ok := false
		for token := range f.validTokens {
			if r.Header.Get("Authorization") == utils.SessionAuthorization(token) {
				ok = true
			}
		}
		f.mu.Unlock()

		if !ok {
			f.writeJSON(w, http.StatusUnauthorized, APIError{ID: "authentication_required", Code: 4, Message: "session token is invalid"})
			return
		}
		next(w, r)
	}
}

func (f *fakeLayer) handleNonce(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	f.nonceRequests++
	f.mu.Unlock()

	f.writeJSON(w, http.StatusCreated, nonceResponse{Nonce: testNonce})
}

func (f *fakeLayer) handleSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	claims := models.IdentityClaims{}
	token, err := jwt.ParseWithClaims(req.IdentityToken, &claims, func(*jwt.Token) (any, error) {
		return []byte(testKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || claims.Nonce != testNonce || req.AppID != testAppID {
		http.Error(w, "invalid identity token", http.StatusUnauthorized)
		return
	}

	f.mu.Lock()
	f.claims = append(f.claims, claims)
	f.tokenHeaders = append(f.tokenHeaders, token.Header)
	f.validTokens[testSession] = true
	f.mu.Unlock()

	f.writeJSON(w, http.StatusCreated, sessionResponse{SessionToken: testSession})
}

func (f *fakeLayer) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.deleted = append(f.deleted, r.PathValue("token"))
	delete(f.validTokens, r.PathValue("token"))
	f.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeLayer) handleListConversations(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	convs := append([]messaging.Conversation{}, f.convs...)
	f.mu.Unlock()

	f.writeJSON(w, http.StatusOK, convs)
}

func (f *fakeLayer) handleCreateConversation(w http.ResponseWriter, r *http.Request) {
	var req conversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conv := messaging.Conversation{
		ID:           "conv-created",
		Participants: req.Participants,
		Distinct:     req.Distinct,
		CreatedAt:    time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}

	f.mu.Lock()
	f.convs = append(f.convs, conv)
	f.mu.Unlock()

	f.writeJSON(w, http.StatusCreated, conv)
}

func (f *fakeLayer) handleListMessages(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.pageSizes = append(f.pageSizes, r.URL.Query().Get("page_size"))
	msgs := append([]messageWire{}, f.messages[r.PathValue("id")]...)
	f.mu.Unlock()

	f.writeJSON(w, http.StatusOK, msgs)
}

func (f *fakeLayer) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.posted = append(f.posted, req)
	f.mu.Unlock()

	f.writeJSON(w, http.StatusCreated, messageWire{
		ID:           req.ID,
		Conversation: objectRef{ID: r.PathValue("id")},
		Parts:        req.Parts,
		SentAt:       time.Date(2026, 10, 1, 12, 5, 0, 0, time.UTC),
		Sender:       senderWire{UserID: "Device"},
	})
}

func (f *fakeLayer) handleReceipt(w http.ResponseWriter, r *http.Request) {
	var req receiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Type != receiptRead {
		http.Error(w, "bad receipt", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.receipts = append(f.receipts, r.PathValue("id"))
	f.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeLayer) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("app_id") != testAppID {
		http.Error(w, "unknown app", http.StatusForbidden)
		return
	}

	upgrader := websocket.Upgrader{Subprotocols: []string{socketSubprotocol}}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	f.mu.Lock()
	f.conns = append(f.conns, conn)
	f.mu.Unlock()

	go func() {
		for {
			var fr frame
			if err := conn.ReadJSON(&fr); err != nil {
				return
			}
			f.frames <- fr
		}
	}()
}

// push sends a raw packet to the most recent websocket connection.
func (f *fakeLayer) push(packet string) {
	f.t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.conns) == 0 {
		f.t.Fatal("no websocket connection")
	}
	if err := f.conns[len(f.conns)-1].WriteMessage(websocket.TextMessage, []byte(packet)); err != nil {
		f.t.Fatalf("push: %v", err)
	}
}

// dropConnections closes every websocket from the server side.
func (f *fakeLayer) dropConnections() {
	f.mu.Lock()
	conns := f.conns
	f.conns = nil
	f.mu.Unlock()

	for _, c := range conns {
		_ = c.Close()
	}
}

func (f *fakeLayer) snapshot(fn func(f *fakeLayer)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *fakeLayer) nextFrame(t *testing.T) frame {
	t.Helper()
	select {
	case fr := <-f.frames:
		return fr
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for a websocket frame")
		return frame{}
	}
}

func (f *fakeLayer) wsURL() string {
	return "ws" + strings.TrimPrefix(f.srv.URL, "http") + socketPath
}

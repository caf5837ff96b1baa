package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/layer-quickstart/internal/config"
	"github.com/MKhiriev/layer-quickstart/internal/logger"
	"github.com/MKhiriev/layer-quickstart/internal/messaging"
	"github.com/MKhiriev/layer-quickstart/internal/store"
	"github.com/MKhiriev/layer-quickstart/internal/utils"
	"github.com/MKhiriev/layer-quickstart/models"
)

const defaultRequestTimeout = 15 * time.Second

// Dependencies are the collaborators shared by every client built by a
// factory.
type Dependencies struct {
	// UserID is the identity this process authenticates as.
	UserID   string
	Sessions store.SessionRepository
	Messages store.MessageRepository
	Logger   *logger.Logger
}

// NewClientFactory returns a [messaging.Factory] producing Layer-style
// clients for the configured endpoints and identity provider.
func NewClientFactory(adapterCfg config.ClientAdapter, appCfg config.ClientApp, deps Dependencies) messaging.Factory {
	return func(appID string, opts messaging.Options) (messaging.Client, error) {
		return NewLayerClient(appID, opts, adapterCfg, appCfg, deps)
	}
}

type layerClient struct {
	appID  string
	userID string
	opts   messaging.Options

	api      *restAPI
	identity *identityProvider
	wsURL    string
	timeout  time.Duration
	sessions store.SessionRepository
	messages store.MessageRepository
	ids      *utils.UUIDGenerator
	logger   *logger.Logger

	mu             sync.Mutex
	sock           *socket
	connected      bool
	connecting     bool
	authenticated  bool
	authenticating bool
	session        models.Session
	closed         bool

	connectionListeners []messaging.ConnectionListener
	authListeners       []messaging.AuthenticationListener
	typingListeners     []messaging.TypingIndicatorListener
	eventListeners      []messaging.EventListener
}

// NewLayerClient constructs a disconnected, unauthenticated client.
//
// Returns an error if appID is empty, the API address cannot be parsed, or
// no identity provider key is configured.
func NewLayerClient(
	appID string,
	opts messaging.Options,
	adapterCfg config.ClientAdapter,
	appCfg config.ClientApp,
	deps Dependencies,
) (messaging.Client, error) {
	if strings.TrimSpace(appID) == "" {
		return nil, ErrEmptyAppID
	}

	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	wsURL, err := websocketURL(baseURL, adapterCfg.WebSocketAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter websocket address: %w", err)
	}

	identity, err := newIdentityProvider(appCfg.IdentityProviderID, appCfg.IdentityKeyID, appCfg.IdentityKey)
	if err != nil {
		return nil, err
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &layerClient{
		appID:    appID,
		userID:   deps.UserID,
		opts:     opts,
		api:      newRestAPI(utils.NewHTTPClient(baseURL, timeout)),
		identity: identity,
		wsURL:    wsURL,
		timeout:  timeout,
		sessions: deps.Sessions,
		messages: deps.Messages,
		ids:      utils.NewUUIDGenerator(),
		logger:   log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *layerClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *layerClient) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticated
}

func (c *layerClient) AuthenticatedUserID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.authenticated {
		return ""
	}
	return c.session.UserID
}

// Connect implements [messaging.Client]. Calls made while connected or while
// a connection attempt is in flight are ignored.
func (c *layerClient) Connect(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.notifyConnectionError(messaging.ErrClientClosed)
		return
	}
	if c.connected || c.connecting {
		c.mu.Unlock()
		return
	}
	c.connecting = true
	c.mu.Unlock()

	go c.connect(ctx)
}

func (c *layerClient) connect(ctx context.Context) {
	c.logger.Debug().Str("url", c.wsURL).Msg("connecting")

	sock, err := dialSocket(ctx, c.wsURL, c.appID, c.timeout)

	c.mu.Lock()
	c.connecting = false
	if err != nil {
		c.mu.Unlock()
		c.logger.Err(err).Str("url", c.wsURL).Msg("connection failed")
		c.notifyConnectionError(err)
		return
	}
	if c.closed {
		c.mu.Unlock()
		_ = sock.close()
		return
	}
	c.sock = sock
	c.connected = true
	authenticated := c.authenticated
	token := c.session.Token
	c.mu.Unlock()

	go sock.readLoop(c.handlePacket, func(err error) {
		c.handleSocketClosed(sock, err)
	})

	if authenticated {
		if err := sock.writeFrame(frameAuthenticate, authenticateBody{SessionToken: token}); err != nil {
			c.logger.Err(err).Msg("failed to resume session on the new connection")
		}
	}

	c.logger.Info().Str("url", c.wsURL).Msg("connected")
	c.notifyConnected()
}

func (c *layerClient) handleSocketClosed(sock *socket, err error) {
	c.mu.Lock()
	if c.sock != sock {
		// replaced or closed by Disconnect
		c.mu.Unlock()
		return
	}
	c.sock = nil
	c.connected = false
	c.mu.Unlock()

	c.logger.Warn().Err(err).Msg("connection lost")
	c.notifyDisconnected()
}

func (c *layerClient) Disconnect() {
	c.mu.Lock()
	sock := c.sock
	c.sock = nil
	c.connected = false
	c.mu.Unlock()

	if sock == nil {
		return
	}
	if err := sock.close(); err != nil {
		c.logger.Debug().Err(err).Msg("closing websocket")
	}
	c.notifyDisconnected()
}

// Authenticate implements [messaging.Client]. It needs an established
// connection; otherwise listeners receive [messaging.ErrNotConnected].
func (c *layerClient) Authenticate(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.notifyAuthenticationError(messaging.ErrClientClosed)
		return
	}
	if c.authenticated || c.authenticating {
		c.mu.Unlock()
		return
	}
	if !c.connected {
		c.mu.Unlock()
		c.notifyAuthenticationError(messaging.ErrNotConnected)
		return
	}
	c.authenticating = true
	c.mu.Unlock()

	go c.authenticate(ctx)
}

func (c *layerClient) authenticate(ctx context.Context) {
	session, reused, err := c.establishSession(ctx)
	if err != nil {
		c.failAuthentication(err)
		return
	}

	c.api.setSessionToken(session.Token)
	err = c.syncHistory(ctx)
	if errors.Is(err, ErrUnauthorized) && reused {
		c.logger.Info().Msg("stored session rejected, requesting a new one")
		if delErr := c.sessions.DeleteSession(ctx, c.appID); delErr != nil {
			c.logger.Warn().Err(delErr).Msg("failed to drop rejected session")
		}

		session, err = c.challenge(ctx)
		if err != nil {
			c.api.setSessionToken("")
			c.failAuthentication(err)
			return
		}
		c.api.setSessionToken(session.Token)
		err = c.syncHistory(ctx)
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("policy", c.opts.HistoricSyncPolicy.String()).Msg("historic sync failed")
	}

	c.mu.Lock()
	c.session = session
	c.authenticated = true
	c.authenticating = false
	sock := c.sock
	c.mu.Unlock()

	if sock != nil {
		if err := sock.writeFrame(frameAuthenticate, authenticateBody{SessionToken: session.Token}); err != nil {
			c.logger.Err(err).Msg("failed to attach session to the connection")
		}
	}

	c.logger.Info().Str("user_id", session.UserID).Bool("resumed", reused).Msg("authenticated")
	c.notifyAuthenticated(session.UserID)
}

func (c *layerClient) failAuthentication(err error) {
	c.mu.Lock()
	c.authenticating = false
	c.mu.Unlock()

	c.logger.Err(err).Str("user_id", c.userID).Msg("authentication failed")
	c.notifyAuthenticationError(err)
}

// establishSession reuses the stored session for this app and user or runs
// the nonce challenge.
func (c *layerClient) establishSession(ctx context.Context) (models.Session, bool, error) {
	stored, err := c.sessions.GetSession(ctx, c.appID)
	switch {
	case err == nil && stored.UserID == c.userID && !stored.IsZero():
		return stored, true, nil
	case err != nil && !errors.Is(err, store.ErrSessionNotFound):
		c.logger.Warn().Err(err).Msg("failed to read stored session")
	}

	session, err := c.challenge(ctx)
	return session, false, err
}

// challenge performs nonce → identity token → session token.
func (c *layerClient) challenge(ctx context.Context) (models.Session, error) {
	nonce, err := c.api.requestNonce(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("request nonce: %w", err)
	}

	token, err := c.identity.issue(c.userID, nonce)
	if err != nil {
		return models.Session{}, fmt.Errorf("issue identity token: %w", err)
	}

	sessionToken, err := c.api.createSession(ctx, c.appID, token.String())
	if err != nil {
		return models.Session{}, fmt.Errorf("create session: %w", err)
	}

	session := models.Session{
		AppID:     c.appID,
		UserID:    c.userID,
		Token:     sessionToken,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.sessions.SaveSession(ctx, session); err != nil {
		c.logger.Warn().Err(err).Msg("failed to persist session")
	}

	return session, nil
}

func (c *layerClient) Deauthenticate(ctx context.Context) error {
	c.mu.Lock()
	if !c.authenticated {
		c.mu.Unlock()
		return nil
	}
	token := c.session.Token
	c.mu.Unlock()

	var errs []error
	if err := c.api.deleteSession(ctx, token); err != nil && !errors.Is(err, ErrUnauthorized) {
		errs = append(errs, err)
	}
	if err := c.sessions.DeleteSession(ctx, c.appID); err != nil {
		errs = append(errs, err)
	}

	c.mu.Lock()
	c.authenticated = false
	c.session = models.Session{}
	c.mu.Unlock()
	c.api.setSessionToken("")

	c.logger.Info().Msg("deauthenticated")
	c.notifyDeauthenticated()

	return errors.Join(errs...)
}

func (c *layerClient) requireSession() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return messaging.ErrClientClosed
	}
	if !c.authenticated {
		return messaging.ErrNotAuthenticated
	}
	return nil
}

func (c *layerClient) FindOrCreateConversation(ctx context.Context, participants []string) (messaging.Conversation, error) {
	if err := c.requireSession(); err != nil {
		return messaging.Conversation{}, err
	}

	convs, err := c.api.listConversations(ctx)
	if err != nil {
		return messaging.Conversation{}, fmt.Errorf("query conversations: %w", err)
	}
	for _, conv := range convs {
		if sameParticipants(conv.Participants, participants) {
			return conv, nil
		}
	}

	conv, err := c.api.createConversation(ctx, participants)
	if err != nil {
		return messaging.Conversation{}, fmt.Errorf("create conversation: %w", err)
	}
	c.logger.Info().Str("conversation_id", conv.ID).Strs("participants", participants).Msg("conversation created")

	return conv, nil
}

func (c *layerClient) Messages(ctx context.Context, conversationID string) ([]messaging.Message, error) {
	return c.messages.GetMessages(ctx, conversationID)
}

func (c *layerClient) SendMessage(ctx context.Context, conversationID, body string) (messaging.Message, error) {
	if err := c.requireSession(); err != nil {
		return messaging.Message{}, err
	}

	wire, err := c.api.postMessage(ctx, conversationID, c.ids.Generate(), body)
	if err != nil {
		return messaging.Message{}, fmt.Errorf("send message: %w", err)
	}

	msg := wire.toMessage()
	if msg.ConversationID == "" {
		msg.ConversationID = conversationID
	}
	if err := c.messages.SaveMessages(ctx, msg); err != nil {
		c.logger.Warn().Err(err).Str("message_id", msg.ID).Msg("failed to cache sent message")
	}

	return msg, nil
}

func (c *layerClient) SendTypingIndicator(_ context.Context, conversationID string, state messaging.TypingState) error {
	if err := c.requireSession(); err != nil {
		return err
	}

	c.mu.Lock()
	sock := c.sock
	c.mu.Unlock()
	if sock == nil {
		return messaging.ErrNotConnected
	}

	return sock.writeFrame(frameSignal, signalBody{
		Type:   signalTypingIndicator,
		Object: objectRef{ID: conversationID, Type: "Conversation"},
		Data:   typingData{Action: state},
	})
}

// MarkAsRead implements [messaging.Client]. Own messages are skipped.
func (c *layerClient) MarkAsRead(ctx context.Context, message messaging.Message) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	if message.Sender == c.userID {
		return nil
	}

	if err := c.api.postReceipt(ctx, message.ID, receiptRead); err != nil {
		return fmt.Errorf("send read receipt: %w", err)
	}
	if err := c.messages.MarkRead(ctx, message.ID); err != nil && !errors.Is(err, store.ErrMessageNotFound) {
		c.logger.Warn().Err(err).Str("message_id", message.ID).Msg("failed to mark cached message read")
	}

	return nil
}

func (c *layerClient) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.connected = false
	sock := c.sock
	c.sock = nil
	c.mu.Unlock()

	if sock != nil {
		return sock.close()
	}
	return nil
}

func sameParticipants(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, p := range a {
		seen[p]++
	}
	for _, p := range b {
		if seen[p] == 0 {
			return false
		}
		seen[p]--
	}
	return true
}

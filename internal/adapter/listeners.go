package adapter

import "github.com/MKhiriev/layer-quickstart/internal/messaging"

// addListener appends l unless it is already present.
func addListener[T comparable](list []T, l T) []T {
	for _, existing := range list {
		if existing == l {
			return list
		}
	}
	return append(list, l)
}

// removeListener returns a copy of list without l.
func removeListener[T comparable](list []T, l T) []T {
	out := make([]T, 0, len(list))
	for _, existing := range list {
		if existing != l {
			out = append(out, existing)
		}
	}
	return out
}

func (c *layerClient) RegisterConnectionListener(l messaging.ConnectionListener) {
	if l == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connectionListeners = addListener(c.connectionListeners, l)
}

func (c *layerClient) RegisterAuthenticationListener(l messaging.AuthenticationListener) {
	if l == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authListeners = addListener(c.authListeners, l)
}

func (c *layerClient) RegisterTypingIndicator(l messaging.TypingIndicatorListener) {
	if l == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.typingListeners = addListener(c.typingListeners, l)
}

func (c *layerClient) UnregisterTypingIndicator(l messaging.TypingIndicatorListener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.typingListeners = removeListener(c.typingListeners, l)
}

func (c *layerClient) RegisterEventListener(l messaging.EventListener) {
	if l == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eventListeners = addListener(c.eventListeners, l)
}

func (c *layerClient) UnregisterEventListener(l messaging.EventListener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eventListeners = removeListener(c.eventListeners, l)
}

// Snapshots are taken under the lock; callbacks run without it so listeners
// may call back into the client.

func (c *layerClient) connectionSnapshot() []messaging.ConnectionListener {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]messaging.ConnectionListener(nil), c.connectionListeners...)
}

func (c *layerClient) authSnapshot() []messaging.AuthenticationListener {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]messaging.AuthenticationListener(nil), c.authListeners...)
}

func (c *layerClient) notifyConnected() {
	for _, l := range c.connectionSnapshot() {
		l.OnConnectionConnected(c)
	}
}

func (c *layerClient) notifyDisconnected() {
	for _, l := range c.connectionSnapshot() {
		l.OnConnectionDisconnected(c)
	}
}

func (c *layerClient) notifyConnectionError(err error) {
	for _, l := range c.connectionSnapshot() {
		l.OnConnectionError(c, err)
	}
}

func (c *layerClient) notifyAuthenticated(userID string) {
	for _, l := range c.authSnapshot() {
		l.OnAuthenticated(c, userID)
	}
}

func (c *layerClient) notifyDeauthenticated() {
	for _, l := range c.authSnapshot() {
		l.OnDeauthenticated(c)
	}
}

func (c *layerClient) notifyAuthenticationError(err error) {
	for _, l := range c.authSnapshot() {
		l.OnAuthenticationError(c, err)
	}
}

func (c *layerClient) notifyTyping(conversationID, userID string, state messaging.TypingState) {
	c.mu.Lock()
	listeners := append([]messaging.TypingIndicatorListener(nil), c.typingListeners...)
	c.mu.Unlock()

	for _, l := range listeners {
		l.OnTypingIndicator(c, conversationID, userID, state)
	}
}

func (c *layerClient) notifyEvent(event messaging.MessageEvent) {
	c.mu.Lock()
	listeners := append([]messaging.EventListener(nil), c.eventListeners...)
	c.mu.Unlock()

	for _, l := range listeners {
		l.OnMessageEvent(c, event)
	}
}

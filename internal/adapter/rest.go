package adapter

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/layer-quickstart/internal/messaging"
	"github.com/MKhiriev/layer-quickstart/internal/utils"
)

const (
	pathNonces       = "/nonces"
	pathSessions     = "/sessions"
	pathSession      = "/sessions/{token}"
	pathConvs        = "/conversations"
	pathConvMessages = "/conversations/{id}/messages"
	pathReceipts     = "/messages/{id}/receipts"
)

// restAPI wraps the client API endpoints.
type restAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string
}

func newRestAPI(client *utils.HTTPClient) *restAPI {
	return &restAPI{client: client}
}

func (a *restAPI) setSessionToken(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = token
}

// request returns a request bound to ctx carrying the session token, if any.
func (a *restAPI) request(ctx context.Context) *resty.Request {
	a.mu.RLock()
	token := a.token
	a.mu.RUnlock()

	req := a.client.R().SetContext(ctx)
	if token != "" {
		req.SetHeader("Authorization", utils.SessionAuthorization(token))
	}
	return req
}

func (a *restAPI) requestNonce(ctx context.Context) (string, error) {
	var out nonceResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&out).
		Post(pathNonces)
	if err != nil {
		return "", fmt.Errorf("nonce request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if out.Nonce == "" {
		return "", ErrEmptyNonce
	}

	return out.Nonce, nil
}

func (a *restAPI) createSession(ctx context.Context, appID, identityToken string) (string, error) {
	var out sessionResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(sessionRequest{IdentityToken: identityToken, AppID: appID}).
		SetResult(&out).
		Post(pathSessions)
	if err != nil {
		return "", fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if out.SessionToken == "" {
		return "", ErrEmptySessionToken
	}

	return out.SessionToken, nil
}

func (a *restAPI) deleteSession(ctx context.Context, token string) error {
	resp, err := a.request(ctx).
		SetPathParam("token", token).
		Delete(pathSession)
	if err != nil {
		return fmt.Errorf("delete session request: %w", err)
	}
	return mapHTTPError(resp)
}

func (a *restAPI) listConversations(ctx context.Context) ([]messaging.Conversation, error) {
	var out []messaging.Conversation
	resp, err := a.request(ctx).
		SetResult(&out).
		Get(pathConvs)
	if err != nil {
		return nil, fmt.Errorf("list conversations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *restAPI) createConversation(ctx context.Context, participants []string) (messaging.Conversation, error) {
	var out messaging.Conversation
	resp, err := a.request(ctx).
		SetBody(conversationRequest{Participants: participants, Distinct: true}).
		SetResult(&out).
		Post(pathConvs)
	if err != nil {
		return messaging.Conversation{}, fmt.Errorf("create conversation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return messaging.Conversation{}, err
	}

	return out, nil
}

// listMessages fetches messages newest first; pageSize <= 0 fetches all.
func (a *restAPI) listMessages(ctx context.Context, conversationID string, pageSize int) ([]messageWire, error) {
	var out []messageWire
	req := a.request(ctx).
		SetPathParam("id", conversationID).
		SetResult(&out)
	if pageSize > 0 {
		req.SetQueryParam("page_size", strconv.Itoa(pageSize))
	}

	resp, err := req.Get(pathConvMessages)
	if err != nil {
		return nil, fmt.Errorf("list messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *restAPI) postMessage(ctx context.Context, conversationID, messageID, body string) (messageWire, error) {
	var out messageWire
	resp, err := a.request(ctx).
		SetPathParam("id", conversationID).
		SetBody(messageRequest{
			ID:    messageID,
			Parts: []partWire{{Body: body, MimeType: messaging.TextMimeType}},
		}).
		SetResult(&out).
		Post(pathConvMessages)
	if err != nil {
		return messageWire{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return messageWire{}, err
	}

	return out, nil
}

func (a *restAPI) postReceipt(ctx context.Context, messageID, receiptType string) error {
	resp, err := a.request(ctx).
		SetPathParam("id", messageID).
		SetBody(receiptRequest{Type: receiptType}).
		Post(pathReceipts)
	if err != nil {
		return fmt.Errorf("receipt request: %w", err)
	}
	return mapHTTPError(resp)
}

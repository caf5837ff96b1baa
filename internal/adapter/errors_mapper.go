package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// APIError is the error document the messaging service returns with non-2xx
// responses, e.g. {"id":"invalid_nonce","code":4,"message":"nonce expired"}.
type APIError struct {
	Status  int    `json:"-"`
	ID      string `json:"id"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	switch {
	case e.ID != "" && e.Message != "":
		return fmt.Sprintf("%s (code %d): %s", e.ID, e.Code, e.Message)
	case e.Message != "":
		return e.Message
	case e.ID != "":
		return e.ID
	default:
		return http.StatusText(e.Status)
	}
}

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessableEntity,
	http.StatusTooManyRequests:     ErrRateLimited,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

func mapHTTPError(resp *resty.Response) error {
	return mapStatusError(resp.StatusCode(), resp.Body())
}

// mapStatusError turns a non-2xx status into a sentinel error wrapping the
// decoded [APIError]. Bodies that are not an error document are kept as the
// message text.
func mapStatusError(status int, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	apiErr := decodeAPIError(status, body)

	sentinel, ok := statusErrors[status]
	if !ok {
		return fmt.Errorf("http %d: %w", status, apiErr)
	}
	return fmt.Errorf("%w: %w", sentinel, apiErr)
}

func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return apiErr
	}
	if err := json.Unmarshal([]byte(text), apiErr); err != nil || (apiErr.ID == "" && apiErr.Message == "") {
		apiErr.ID, apiErr.Code = "", 0
		apiErr.Message = text
	}
	return apiErr
}

package image

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for classifying gateway failures.
var (
	ErrUnauthorized = errors.New("gateway unauthorized")
	ErrRateLimited  = errors.New("gateway rate limited")
	ErrRejected     = errors.New("gateway rejected request")
	ErrUnavailable  = errors.New("gateway unavailable")
)

// GatewayError is a failure reported by, or while reaching, the hosted model.
type GatewayError struct {
	Status  int
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gateway: %s (status=%d)", e.Message, e.Status)
	}
	return fmt.Sprintf("gateway: %s", e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

type gatewayErrorBody struct {
	Error string `json:"error"`
}

func newGatewayError(status int, body []byte) error {
	var parsed gatewayErrorBody
	_ = json.Unmarshal(body, &parsed)

	message := parsed.Error
	if message == "" {
		message = http.StatusText(status)
	}

	return &GatewayError{Status: status, Message: message, Err: sentinelForStatus(status)}
}

func newNetworkError(err error) error {
	return &GatewayError{Message: err.Error(), Err: ErrUnavailable}
}

func sentinelForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status >= 400 && status < 500:
		return ErrRejected
	default:
		return ErrUnavailable
	}
}

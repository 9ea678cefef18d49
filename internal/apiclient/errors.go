package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnauthorized matches any *HTTPError with status 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMalformedResponse is returned when a 2xx body does not have the
	// expected envelope shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// HTTPError is a non-2xx response.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	// Message is the server's message when it sent one.
	Message string
}

func (e *HTTPError) Error() string { return e.Message }

// Is lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *HTTPError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// newHTTPError builds an HTTPError, preferring the message carried in an
// error body such as {"success":false,"message":"..."}.
func newHTTPError(method, path string, status int, body []byte) *HTTPError {
	return &HTTPError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Message:    errorMessage(status, body),
	}
}

func errorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		if m := strings.TrimSpace(payload.Message); m != "" {
			return m
		}
		if m := strings.TrimSpace(payload.Error); m != "" {
			return m
		}
	}
	return fmt.Sprintf("Request failed with status code %d", status)
}

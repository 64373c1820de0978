package completion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// Kind classifies a failed completion call.
type Kind int

const (
	KindNetwork Kind = iota
	KindTimeout
	KindAuthFailure
	KindRateLimited
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindAuthFailure:
		return "auth failure"
	case KindRateLimited:
		return "rate limited"
	case KindMalformed:
		return "malformed response"
	}
	return "network error"
}

// Error is the failure value delivered for every unsuccessful request.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrEmptyResponse is wrapped as KindMalformed when the endpoint answers
// without any usable choice.
var ErrEmptyResponse = errors.New("response contained no message content")

// KindOf returns the kind of err, classifying untyped errors on the way.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return classify(err).Kind
}

// Summary is the one-line text shown in the history for a failed request.
func Summary(err error) string {
	var ce *Error
	if !errors.As(err, &ce) {
		ce = classify(err)
	}
	switch ce.Kind {
	case KindTimeout:
		return "Request timed out. Please try again."
	case KindAuthFailure:
		return fmt.Sprintf("Authentication failed (%s). Check your API token.", detail(ce.Err))
	case KindRateLimited:
		return "Rate limited by the server. Wait a moment and retry."
	case KindMalformed:
		return fmt.Sprintf("Could not read the server response: %s", detail(ce.Err))
	}
	return fmt.Sprintf("Request failed: %s", detail(ce.Err))
}

func detail(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// classify maps transport and API errors onto a Kind.
func classify(err error) *Error {
	if err == nil {
		return &Error{Kind: KindNetwork}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Err: err}
	}

	if code := statusCode(err); code != 0 {
		switch {
		case code == http.StatusUnauthorized || code == http.StatusForbidden:
			return &Error{Kind: KindAuthFailure, Err: err}
		case code == http.StatusTooManyRequests:
			return &Error{Kind: KindRateLimited, Err: err}
		case code == http.StatusRequestTimeout || code == http.StatusGatewayTimeout:
			return &Error{Kind: KindTimeout, Err: err}
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, ErrEmptyResponse) {
		return &Error{Kind: KindMalformed, Err: err}
	}

	return &Error{Kind: KindNetwork, Err: err}
}

func statusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

package customerrors

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failures the registration backend client can report.
type Kind int

const (
	KindInvalidURL Kind = iota + 1
	KindInvalidResponse
	KindNoData
	KindApi
	KindDecoding
	KindUnderlying
)

func (k Kind) String() string {
	switch k {
	case KindInvalidURL:
		return "InvalidUrl"
	case KindInvalidResponse:
		return "InvalidResponse"
	case KindNoData:
		return "NoData"
	case KindApi:
		return "ApiError"
	case KindDecoding:
		return "DecodingError"
	case KindUnderlying:
		return "Underlying"
	default:
		return "Unknown"
	}
}

// APIError is returned by every backend call. Message and Code are only set
// for KindApi; Cause only for KindDecoding and KindUnderlying.
type APIError struct {
	Kind    Kind
	Message string
	Code    int
	Cause   error
}

var (
	ErrInvalidURL      = &APIError{Kind: KindInvalidURL}
	ErrInvalidResponse = &APIError{Kind: KindInvalidResponse}
	ErrNoData          = &APIError{Kind: KindNoData}
)

func NewApiError(message string, code int) *APIError {
	return &APIError{Kind: KindApi, Message: message, Code: code}
}

func NewDecodingError(cause error) *APIError {
	return &APIError{Kind: KindDecoding, Cause: cause}
}

func NewUnderlyingError(cause error) *APIError {
	return &APIError{Kind: KindUnderlying, Cause: cause}
}

// Error is the human readable description shown to the user.
func (e *APIError) Error() string {
	switch e.Kind {
	case KindInvalidURL:
		return "The URL provided was invalid."
	case KindInvalidResponse:
		return "The response from the server was invalid."
	case KindNoData:
		return "No data was received from the server."
	case KindApi:
		return e.Message
	case KindDecoding:
		return fmt.Sprintf("Failed to decode the response: %v", e.Cause)
	case KindUnderlying:
		if e.Cause == nil {
			return "unknown error"
		}
		return e.Cause.Error()
	default:
		return "unknown error"
	}
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// Is matches on kind so the sentinels work with errors.Is.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns 0 for errors that did not come from the backend client.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

// UserMessage is what a screen shows for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}

package customerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Messages(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")

	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidURL, "The URL provided was invalid."},
		{ErrInvalidResponse, "The response from the server was invalid."},
		{ErrNoData, "No data was received from the server."},
		{NewApiError("Email taken", 409), "Email taken"},
		{NewDecodingError(cause), "Failed to decode the response: unexpected end of JSON input"},
		{NewUnderlyingError(errors.New("dial tcp: no such host")), "dial tcp: no such host"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
		assert.Equal(t, tt.want, UserMessage(tt.err))
	}
}

func TestAPIError_IsMatchesKind(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", &APIError{Kind: KindNoData})
	assert.ErrorIs(t, wrapped, ErrNoData)
	assert.NotErrorIs(t, wrapped, ErrInvalidResponse)
	assert.Equal(t, KindNoData, KindOf(wrapped))
}

func TestAPIError_AsExposesCodeAndCause(t *testing.T) {
	var apiErr *APIError
	require.ErrorAs(t, fmt.Errorf("verify: %w", NewApiError("Invalid code", 400)), &apiErr)
	assert.Equal(t, KindApi, apiErr.Kind)
	assert.Equal(t, "Invalid code", apiErr.Message)
	assert.Equal(t, 400, apiErr.Code)

	cause := errors.New("boom")
	assert.ErrorIs(t, NewUnderlyingError(cause), cause)
	assert.ErrorIs(t, NewDecodingError(cause), cause)
}

func TestKindOf_ForeignErrors(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(errors.New("other")))
	assert.Equal(t, "User ID not available for OTP verification.", UserMessage(ErrMissingUserID))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "ApiError", KindApi.String())
}

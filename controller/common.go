package controller

import (
	"errors"
	"net/http"

	"rimashaar/customerrors"
	"rimashaar/model"
)

// NewResponse creates a success response with the given data and message.
func NewResponse(data any, message string) model.Response {
	return model.Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse carries the user-facing message plus whatever state the
// screen needs to redraw.
func NewErrorResponse(err error, data any) model.Response {
	return model.Response{
		Success: false,
		Message: customerrors.UserMessage(err),
		Error:   errorCode(err),
		Data:    data,
	}
}

func statusFor(err error) int {
	var verrs model.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, customerrors.ErrInvalidSlot), errors.Is(err, customerrors.ErrInvalidDigit):
		return http.StatusBadRequest
	case errors.Is(err, customerrors.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, customerrors.ErrSessionBusy), errors.Is(err, customerrors.ErrResendNotReady):
		return http.StatusConflict
	case errors.Is(err, customerrors.ErrSessionClosed):
		return http.StatusGone
	case customerrors.KindOf(err) == customerrors.KindApi:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func errorCode(err error) string {
	var verrs model.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return "validation_failed"
	case errors.Is(err, customerrors.ErrInvalidSlot):
		return "invalid_slot"
	case errors.Is(err, customerrors.ErrInvalidDigit):
		return "invalid_digit"
	case errors.Is(err, customerrors.ErrSessionNotFound):
		return "session_not_found"
	case errors.Is(err, customerrors.ErrSessionBusy):
		return "busy"
	case errors.Is(err, customerrors.ErrResendNotReady):
		return "resend_not_ready"
	case errors.Is(err, customerrors.ErrSessionClosed):
		return "session_closed"
	case errors.Is(err, customerrors.ErrMissingUserData):
		return "missing_user_data"
	}
	if kind := customerrors.KindOf(err); kind != 0 {
		return kind.String()
	}
	return "internal"
}

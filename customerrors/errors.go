package customerrors

import "errors"

var (
	ErrInvalidSlot     = errors.New("slot is out of range")
	ErrInvalidDigit    = errors.New("only a single digit can be entered")
	ErrSessionBusy     = errors.New("a request is already in progress")
	ErrResendNotReady  = errors.New("a new code can't be requested yet")
	ErrSessionClosed   = errors.New("the OTP session is no longer active")
	ErrSessionNotFound = errors.New("OTP session not found or expired")
	ErrMissingUserID   = errors.New("User ID not available for OTP verification.")
	ErrMissingUserData = errors.New("Registration successful, but missing user data.")
)

package model

// Common Response structure for all facade calls
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"OTP sent"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OtpSessionDto is returned when registration opens an OTP session.
type OtpSessionDto struct {
	SessionID string   `json:"sessionId"`
	State     OtpState `json:"state"`
}

type DigitRequest struct {
	Digit string `json:"digit" example:"7"`
}

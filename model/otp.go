package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const OtpLength = 5

// OtpPhase is the verification sub-state of an OTP session
// @Description ENTERING, SUBMITTING, VERIFIED or CLOSED
type OtpPhase string

const (
	PhaseEntering   OtpPhase = "ENTERING"
	PhaseSubmitting OtpPhase = "SUBMITTING"
	PhaseVerified   OtpPhase = "VERIFIED"
	PhaseClosed     OtpPhase = "CLOSED"
)

const (
	ResendCountdownPrefix = "Resend a new code in"
	ResendPrompt          = "Didn't receive code?"
)

// VerifyOtpRequest is the body of POST verify-code.
type VerifyOtpRequest struct {
	UserID int    `json:"user_id"`
	Otp    string `json:"otp"`
}

// VerifyOtpResponse is read leniently: the body must be a JSON object, but a
// missing or wrong-typed key only falls back to its zero value.
type VerifyOtpResponse struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

func (r *VerifyOtpResponse) Succeeded() bool {
	return r.Success && r.Status == 200
}

func (r *VerifyOtpResponse) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errors.New("response is not a JSON object")
	}

	*r = VerifyOtpResponse{}
	r.Success = ParseFlexibleBool(fields["success"]).IsTrue()

	var status int
	if err := json.Unmarshal(fields["status"], &status); err == nil {
		r.Status = status
	}

	var message string
	if err := json.Unmarshal(fields["message"], &message); err == nil {
		r.Message = message
	}
	return nil
}

// OtpState is a snapshot of an OTP session handed to the UI.
type OtpState struct {
	Digits             [OtpLength]string `json:"digits"`
	FocusedSlot        int               `json:"focusedSlot"`
	SecondsUntilResend int               `json:"secondsUntilResend"`
	ReadyToResend      bool              `json:"readyToResend"`
	ResendLabel        string            `json:"resendLabel"`
	Phase              OtpPhase          `json:"phase"`
	IsSubmitting       bool              `json:"isSubmitting"`
	LastError          string            `json:"lastError,omitempty"`
	Notice             string            `json:"notice,omitempty"`
	UserID             *int              `json:"userId,omitempty"`
}

func (s OtpState) Code() string {
	return strings.Join(s.Digits[:], "")
}

func (s OtpState) Complete() bool {
	for _, d := range s.Digits {
		if d == "" {
			return false
		}
	}
	return true
}

// ResendLabel renders the countdown text shown next to the resend button.
func ResendLabel(secondsLeft int) string {
	if secondsLeft > 0 {
		return fmt.Sprintf("%s 00:%02d sec", ResendCountdownPrefix, secondsLeft)
	}
	return ResendPrompt
}

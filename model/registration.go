package model

import (
	"encoding/json"
	"errors"
)

// RegistrationRequest is the body of POST register-new.
// Exactly one of Email and Phone is non-empty.
type RegistrationRequest struct {
	AppVersion           string `json:"app_version"`
	DeviceModel          string `json:"device_model"`
	DeviceToken          string `json:"device_token"`
	DeviceType           string `json:"device_type"`
	Dob                  string `json:"dob"`
	Email                string `json:"email"`
	FirstName            string `json:"first_name"`
	Gender               string `json:"gender"`
	LastName             string `json:"last_name"`
	NewsletterSubscribed int    `json:"newsletter_subscribed"`
	OsVersion            string `json:"os_version"`
	Password             string `json:"password"`
	Phone                string `json:"phone"`
	PhoneCode            string `json:"phone_code"`
}

// Contact returns whichever of email or phone was filled in.
func (r RegistrationRequest) Contact() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Phone
}

type RegistrationResponse struct {
	Success bool      `json:"success"`
	Status  int       `json:"status"`
	Message string    `json:"message,omitempty"`
	Data    *UserData `json:"data,omitempty"`
}

// Succeeded is the only success condition callers may rely on.
func (r *RegistrationResponse) Succeeded() bool {
	return r.Success && r.Status == 200
}

// UnmarshalJSON rejects bodies without success or status.
func (r *RegistrationResponse) UnmarshalJSON(data []byte) error {
	var wire struct {
		Success *bool     `json:"success"`
		Status  *int      `json:"status"`
		Message *string   `json:"message"`
		Data    *UserData `json:"data"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Success == nil {
		return errors.New(`missing required key "success"`)
	}
	if wire.Status == nil {
		return errors.New(`missing required key "status"`)
	}

	*r = RegistrationResponse{
		Success: *wire.Success,
		Status:  *wire.Status,
		Data:    wire.Data,
	}
	if wire.Message != nil {
		r.Message = *wire.Message
	}
	return nil
}

// UserData is the registered user as echoed by the backend. Every key is optional.
type UserData struct {
	ID                   *int         `json:"id,omitempty"`
	FirstName            string       `json:"first_name,omitempty"`
	LastName             string       `json:"last_name,omitempty"`
	Gender               string       `json:"gender,omitempty"`
	Dob                  string       `json:"dob,omitempty"`
	Email                string       `json:"email,omitempty"`
	Image                string       `json:"image,omitempty"`
	PhoneCode            string       `json:"phone_code,omitempty"`
	Phone                string       `json:"phone,omitempty"`
	Code                 string       `json:"code,omitempty"`
	IsPhoneVerified      FlexibleBool `json:"is_phone_verified"`
	IsEmailVerified      FlexibleBool `json:"is_email_verified"`
	IsSocialRegister     *int         `json:"is_social_register,omitempty"`
	SocialRegisterType   string       `json:"social_register_type,omitempty"`
	DeviceToken          string       `json:"device_token,omitempty"`
	DeviceType           string       `json:"device_type,omitempty"`
	DeviceModel          string       `json:"device_model,omitempty"`
	AppVersion           string       `json:"app_version,omitempty"`
	OsVersion            string       `json:"os_version,omitempty"`
	PushEnabled          FlexibleBool `json:"push_enabled"`
	NewsletterSubscribed *int         `json:"newsletter_subscribed,omitempty"`
	CreateDate           string       `json:"create_date,omitempty"`
}

// UserID returns the id and whether the backend sent one.
func (u UserData) UserID() (int, bool) {
	if u.ID == nil {
		return 0, false
	}
	return *u.ID, true
}

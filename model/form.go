package model

import (
	"sort"
	"strings"
)

// RegistrationForm is what the registration screen collects.
// EmailOrPhone is a single combined input; the validators decide which it is.
type RegistrationForm struct {
	FirstName    string `json:"firstName" example:"Jane"`
	LastName     string `json:"lastName" example:"Doe"`
	EmailOrPhone string `json:"emailOrPhone" example:"9876543210"`
	PhoneCode    string `json:"phoneCode" example:"91"`
}

const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldEmailOrPhone = "emailOrPhone"
)

// ValidationErrors maps a form field to its message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, v[k])
	}
	return strings.Join(msgs, " ")
}

// ContactKind tells the UI which keyboard fits the combined contact field.
type ContactKind string

const (
	ContactPhone ContactKind = "PHONE"
	ContactEmail ContactKind = "EMAIL"
)

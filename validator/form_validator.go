package validator

import "rimashaar/model"

const (
	msgFirstNameEmpty   = "First name cannot be empty."
	msgFirstNameLetters = "First name can only contain letters."
	msgLastNameEmpty    = "Last name cannot be empty."
	msgLastNameLetters  = "Last name can only contain letters."
	msgContactInvalid   = "Please enter a valid 10-digit phone number or email address."
)

// ValidateForm checks every field and reports all failures at once.
// It returns nil when the form can be submitted.
func ValidateForm(form model.RegistrationForm) model.ValidationErrors {
	errs := model.ValidationErrors{}

	if msg := nameError(form.FirstName, msgFirstNameEmpty, msgFirstNameLetters); msg != "" {
		errs[model.FieldFirstName] = msg
	}
	if msg := nameError(form.LastName, msgLastNameEmpty, msgLastNameLetters); msg != "" {
		errs[model.FieldLastName] = msg
	}
	if !IsValidEmail(form.EmailOrPhone) && !IsValidPhoneNumber(form.EmailOrPhone) {
		errs[model.FieldEmailOrPhone] = msgContactInvalid
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func nameError(name, emptyMsg, lettersMsg string) string {
	switch {
	case name == "":
		return emptyMsg
	case !IsValidName(name):
		return lettersMsg
	default:
		return ""
	}
}

// ContactKindOf picks the keyboard for the combined contact field.
func ContactKindOf(s string) model.ContactKind {
	if IsNumeric(s) {
		return model.ContactPhone
	}
	return model.ContactEmail
}

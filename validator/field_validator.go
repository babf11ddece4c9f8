package validator

import (
	"regexp"

	"github.com/Oudwins/zog"
)

var (
	namePattern    = regexp.MustCompile(`^[a-zA-Z]+$`)
	numericPattern = regexp.MustCompile(`^[0-9]*$`)
	emailPattern   = regexp.MustCompile(`^[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`)
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
)

var (
	NameSchema    = zog.String().Required().Match(namePattern)
	NumericSchema = zog.String().Match(numericPattern)
	EmailSchema   = zog.String().Required().Match(emailPattern)
	PhoneSchema   = zog.String().Required().Match(phonePattern)
)

// IsValidName: non-empty, ASCII letters only.
func IsValidName(s string) bool {
	return len(NameSchema.Validate(&s)) == 0
}

// IsNumeric: ASCII digits only. The empty string is numeric.
func IsNumeric(s string) bool {
	return len(NumericSchema.Validate(&s)) == 0
}

func IsValidEmail(s string) bool {
	return len(EmailSchema.Validate(&s)) == 0
}

// IsValidPhoneNumber: exactly 10 ASCII digits.
func IsValidPhoneNumber(s string) bool {
	return len(PhoneSchema.Validate(&s)) == 0
}

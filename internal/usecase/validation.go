package usecase

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	domainErrors "github.com/comrade-org/membership/internal/domain/errors"
	"github.com/comrade-org/membership/internal/domain/model"
)

// DateLayout is the accepted wire format for dates of birth.
const DateLayout = "2006-01-02"

// ValidateRegistration checks presence of required fields, email syntax, and
// date parseability. It returns the parsed date of birth. Phone and
// membership type are free-form beyond presence.
func ValidateRegistration(in model.RegistrationInput) (time.Time, error) {
	required := []struct {
		field string
		value string
	}{
		{"fullName", in.FullName},
		{"email", in.Email},
		{"phone", in.Phone},
		{"address", in.Address},
		{"dob", in.DateOfBirth},
		{"membershipType", in.MembershipType},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return time.Time{}, fmt.Errorf("field %q is required: %w", r.field, domainErrors.ErrInvalidInput)
		}
	}

	if _, err := mail.ParseAddress(in.Email); err != nil {
		return time.Time{}, fmt.Errorf("field \"email\" is malformed: %w", domainErrors.ErrInvalidInput)
	}

	dob, err := time.Parse(DateLayout, in.DateOfBirth)
	if err != nil {
		return time.Time{}, fmt.Errorf("field \"dob\" must be formatted as %s: %w", DateLayout, domainErrors.ErrInvalidInput)
	}

	return dob, nil
}

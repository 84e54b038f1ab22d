package usecase

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/casemark/lead-intake/internal/entity"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var linkedInRe = regexp.MustCompile(`^(https?://)?(www\.)?linkedin\.com/in/.*$`)

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"firstName", "is required"})
	} else if len(strings.TrimSpace(input.FirstName)) < 2 {
		errors = append(errors, ValidationError{"firstName", "must have at least 2 characters"})
	}

	if strings.TrimSpace(input.LastName) == "" {
		errors = append(errors, ValidationError{"lastName", "is required"})
	} else if len(strings.TrimSpace(input.LastName)) < 2 {
		errors = append(errors, ValidationError{"lastName", "must have at least 2 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.LinkedIn) == "" {
		errors = append(errors, ValidationError{"linkedIn", "is required"})
	} else if !isValidLinkedIn(input.LinkedIn) {
		errors = append(errors, ValidationError{"linkedIn", "must be a valid LinkedIn profile URL"})
	}

	if len(input.VisaTypes) == 0 {
		errors = append(errors, ValidationError{"visaTypes", "select at least one visa type"})
	} else {
		for _, vt := range input.VisaTypes {
			if !entity.VisaType(vt).Valid() {
				errors = append(errors, ValidationError{"visaTypes", fmt.Sprintf("unknown visa type %q", vt)})
				break
			}
		}
	}

	return errors
}

// Accepts any well-formed absolute URL or a bare linkedin.com/in/ path.
func isValidLinkedIn(raw string) bool {
	if linkedInRe.MatchString(raw) {
		return true
	}
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

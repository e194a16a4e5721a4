package usecase

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/jcarter-pt/traincrm/internal/entity"
)

var nonDigitPattern = regexp.MustCompile(`\D`)

type CreateLeadInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Goals       string `json:"goals"`
	LeadType    string `json:"leadType"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

// ValidateCreateLeadInput checks a manually created lead. Mirrors the import
// rule: some way of identifying the person must exist.
func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errs []ValidationError

	noName := strings.TrimSpace(input.FirstName) == "" && strings.TrimSpace(input.LastName) == ""
	noContact := strings.TrimSpace(input.Email) == "" && strings.TrimSpace(input.PhoneNumber) == ""
	if noName && noContact {
		errs = append(errs, ValidationError{"lead", "at least one of name, email or phone is required"})
	}

	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errs = append(errs, ValidationError{"email", "is invalid"})
		}
	}

	if input.PhoneNumber != "" {
		digits := nonDigitPattern.ReplaceAllString(input.PhoneNumber, "")
		if len(digits) < 8 || len(digits) > 12 {
			errs = append(errs, ValidationError{"phoneNumber", "must be a valid phone number"})
		}
	}

	if input.Status != "" && !entity.IsValidLeadStatus(input.Status) {
		errs = append(errs, ValidationError{"status", "must be PROSPECT, CONVERTED or NOT_INTERESTED"})
	}

	return errs
}

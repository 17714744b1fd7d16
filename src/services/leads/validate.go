package leads

import (
	"strings"

	"Backend-Brightlane-Leadkit/src/utils"
)

// FieldErrors maps a contact field to its message.
type FieldErrors = utils.FieldErrors

// ContactFields are the four inputs of the contact gate.
type ContactFields struct {
	FirstName  string `json:"firstName" form:"firstName" validate:"required,max=100"`
	LastName   string `json:"lastName" form:"lastName" validate:"required,max=100"`
	Email      string `json:"email" form:"email" validate:"required,leademail"`
	WebsiteURL string `json:"websiteUrl" form:"websiteUrl" validate:"required,max=500"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (f ContactFields) Trimmed() ContactFields {
	return ContactFields{
		FirstName:  strings.TrimSpace(f.FirstName),
		LastName:   strings.TrimSpace(f.LastName),
		Email:      strings.TrimSpace(f.Email),
		WebsiteURL: strings.TrimSpace(f.WebsiteURL),
	}
}

// ValidateContact trims the fields and checks them all, so the caller can
// show every problem in one pass. errs is nil when the input is valid.
func ValidateContact(f ContactFields) (ContactFields, FieldErrors) {
	f = f.Trimmed()
	if errs := utils.ValidateStruct(f); len(errs) > 0 {
		return f, errs
	}
	return f, nil
}

package handler

import (
	"strings"

	"github.com/asaskevich/govalidator"

	dErrors "cinelog/pkg/domainerrors"
)

// SignupRequest is the payload for account creation. Email matching is
// case-insensitive on the JSON field name, so "Email" is accepted too.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the signup payload and normalizes the email in place
// (trimmed and lowercased). All invalid fields are reported together.
func (r *SignupRequest) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = "name is required"
	}
	r.Email = normalizeEmail(r.Email)
	if !validEmail(r.Email) {
		fields["email"] = "a valid email address is required"
	}
	if r.Password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return dErrors.NewValidation(fields)
	}
	return nil
}

// SigninRequest is the payload for credential verification.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate normalizes the email and rejects structurally empty payloads.
// Well-formedness of the address is not checked here: an address that
// never signed up fails the credential check the same way a wrong
// password does.
func (r *SigninRequest) Validate() error {
	fields := map[string]string{}
	r.Email = normalizeEmail(r.Email)
	if r.Email == "" {
		fields["email"] = "email is required"
	}
	if r.Password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return dErrors.NewValidation(fields)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	if !govalidator.IsEmail(email) {
		return false
	}
	// Addresses without a dot in the domain pass govalidator but are
	// rejected here, matching the stricter pattern the API documents.
	at := strings.LastIndex(email, "@")
	return at >= 0 && strings.Contains(email[at+1:], ".")
}

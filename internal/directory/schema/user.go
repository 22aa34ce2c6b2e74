// Package schema holds the field validation rules for form-shaped inputs.
// Validation is a pure pass over the input: it never writes, never panics,
// and collects every violation before returning.
package schema

import (
	"regexp"
	"unicode/utf8"

	"github.com/parkhaven/userdir/internal/directory/domain"
)

// emailPattern matches the usual RFC-shaped address: printable local part,
// dot-separated alphanumeric labels with optional hyphens.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// userFields maps internal snake_case identifiers to the camelCase field
// names callers bind errors to. Static on purpose; do not derive.
var userFields = map[string]string{
	"first_name": "firstName",
	"last_name":  "lastName",
	"initials":   "initials",
	"email":      "email",
	"status":     "status",
}

// ValidateUser checks in against the user schema. It returns every field
// violation found in a single pass; at most one message per field. Optional
// fields treat the empty string as absent.
func ValidateUser(in domain.UserInput) []domain.FieldError {
	var errs []domain.FieldError
	add := func(field, message string) {
		errs = append(errs, domain.FieldError{Field: userFields[field], Message: message})
	}

	if utf8.RuneCountInString(in.FirstName) > 60 {
		add("first_name", "First name must be at most 60 characters")
	}

	switch {
	case in.LastName == "":
		add("last_name", "Last name is required")
	case utf8.RuneCountInString(in.LastName) > 100:
		add("last_name", "Last name must be at most 100 characters")
	}

	if utf8.RuneCountInString(in.Initials) > 30 {
		add("initials", "Initials must be at most 30 characters")
	}

	switch {
	case in.Email == "":
		add("email", "Email is required")
	case utf8.RuneCountInString(in.Email) > 100:
		add("email", "Email must be at most 100 characters")
	case !emailPattern.MatchString(in.Email):
		add("email", "Invalid email format")
	}

	if !in.Status.Valid() {
		add("status", "Status must be one of ACTIVE, INACTIVE")
	}

	return errs
}

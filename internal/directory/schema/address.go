package schema

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/parkhaven/userdir/internal/directory/domain"
)

var (
	postCodePattern    = regexp.MustCompile(`^[0-9A-Za-z\-\s]+$`)
	countryCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)
)

// addressFields maps internal snake_case identifiers to the camelCase field
// names callers bind errors to. Static on purpose; do not derive.
var addressFields = map[string]string{
	"user_id":         "userId",
	"address_type":    "addressType",
	"post_code":       "postCode",
	"city":            "city",
	"country_code":    "countryCode",
	"street":          "street",
	"building_number": "buildingNumber",
}

// ValidateAddress checks in against the address schema and returns the
// normalized input (country code uppercased) plus every field violation
// found in a single pass; at most one message per field.
func ValidateAddress(in domain.AddressInput) (domain.AddressInput, []domain.FieldError) {
	var errs []domain.FieldError
	add := func(field, message string) {
		errs = append(errs, domain.FieldError{Field: addressFields[field], Message: message})
	}

	if in.UserID == 0 {
		add("user_id", "User ID is required")
	}

	if !in.AddressType.Valid() {
		add("address_type", "Address type must be one of HOME, WORK, INVOICE, POSTAL")
	}

	switch {
	case in.PostCode == "":
		add("post_code", "Post code is required")
	case utf8.RuneCountInString(in.PostCode) > 6:
		add("post_code", "Post code must be at most 6 characters")
	case !postCodePattern.MatchString(in.PostCode):
		add("post_code", "Post code must contain only letters, numbers, spaces, and hyphens")
	}

	switch {
	case in.City == "":
		add("city", "City is required")
	case utf8.RuneCountInString(in.City) > 60:
		add("city", "City must be at most 60 characters")
	}

	switch {
	case utf8.RuneCountInString(in.CountryCode) != 3:
		add("country_code", "Country code must be exactly 3 characters")
	case !countryCodePattern.MatchString(in.CountryCode):
		add("country_code", "Country code must be 3 uppercase letters (ISO3166-1 alpha-3)")
	default:
		in.CountryCode = strings.ToUpper(in.CountryCode)
	}

	switch {
	case in.Street == "":
		add("street", "Street is required")
	case utf8.RuneCountInString(in.Street) > 100:
		add("street", "Street must be at most 100 characters")
	}

	switch {
	case in.BuildingNumber == "":
		add("building_number", "Building number is required")
	case utf8.RuneCountInString(in.BuildingNumber) > 60:
		add("building_number", "Building number must be at most 60 characters")
	}

	return in, errs
}

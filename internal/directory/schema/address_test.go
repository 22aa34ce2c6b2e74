package schema

import (
	"strings"
	"testing"

	"github.com/parkhaven/userdir/internal/directory/domain"
	"github.com/stretchr/testify/require"
)

func validAddressInput() domain.AddressInput {
	return domain.AddressInput{
		UserID:         1,
		AddressType:    domain.AddressTypeHome,
		PostCode:       "12-34",
		City:           "Springfield",
		CountryCode:    "USA",
		Street:         "Evergreen Terrace",
		BuildingNumber: "742",
	}
}

func TestValidateAddressAcceptsValidInput(t *testing.T) {
	t.Parallel()

	out, errs := ValidateAddress(validAddressInput())
	require.Empty(t, errs)
	require.Equal(t, "USA", out.CountryCode)
}

func TestValidateAddressNormalizesCountryCode(t *testing.T) {
	t.Parallel()

	in := validAddressInput()
	in.CountryCode = "usa"

	out, errs := ValidateAddress(in)
	require.Empty(t, errs)
	require.Equal(t, "USA", out.CountryCode)
}

func TestValidateAddressFieldRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*domain.AddressInput)
		field   string
		message string
	}{
		{
			name:    "user id required",
			mutate:  func(in *domain.AddressInput) { in.UserID = 0 },
			field:   "userId",
			message: "User ID is required",
		},
		{
			name:    "address type unknown",
			mutate:  func(in *domain.AddressInput) { in.AddressType = "CABIN" },
			field:   "addressType",
			message: "Address type must be one of HOME, WORK, INVOICE, POSTAL",
		},
		{
			name:    "post code required",
			mutate:  func(in *domain.AddressInput) { in.PostCode = "" },
			field:   "postCode",
			message: "Post code is required",
		},
		{
			name:    "post code too long",
			mutate:  func(in *domain.AddressInput) { in.PostCode = "1234567" },
			field:   "postCode",
			message: "Post code must be at most 6 characters",
		},
		{
			name:    "post code bad characters",
			mutate:  func(in *domain.AddressInput) { in.PostCode = "!!!" },
			field:   "postCode",
			message: "Post code must contain only letters, numbers, spaces, and hyphens",
		},
		{
			name:    "city required",
			mutate:  func(in *domain.AddressInput) { in.City = "" },
			field:   "city",
			message: "City is required",
		},
		{
			name:    "city too long",
			mutate:  func(in *domain.AddressInput) { in.City = strings.Repeat("a", 61) },
			field:   "city",
			message: "City must be at most 60 characters",
		},
		{
			name:    "country code wrong length",
			mutate:  func(in *domain.AddressInput) { in.CountryCode = "AB" },
			field:   "countryCode",
			message: "Country code must be exactly 3 characters",
		},
		{
			name:    "country code not letters",
			mutate:  func(in *domain.AddressInput) { in.CountryCode = "U5A" },
			field:   "countryCode",
			message: "Country code must be 3 uppercase letters (ISO3166-1 alpha-3)",
		},
		{
			name:    "street required",
			mutate:  func(in *domain.AddressInput) { in.Street = "" },
			field:   "street",
			message: "Street is required",
		},
		{
			name:    "street too long",
			mutate:  func(in *domain.AddressInput) { in.Street = strings.Repeat("a", 101) },
			field:   "street",
			message: "Street must be at most 100 characters",
		},
		{
			name:    "building number required",
			mutate:  func(in *domain.AddressInput) { in.BuildingNumber = "" },
			field:   "buildingNumber",
			message: "Building number is required",
		},
		{
			name:    "building number too long",
			mutate:  func(in *domain.AddressInput) { in.BuildingNumber = strings.Repeat("9", 61) },
			field:   "buildingNumber",
			message: "Building number must be at most 60 characters",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validAddressInput()
			tc.mutate(&in)

			_, errs := ValidateAddress(in)
			require.Len(t, errs, 1)
			require.Equal(t, tc.field, errs[0].Field)
			require.Equal(t, tc.message, errs[0].Message)
		})
	}
}

func TestValidateAddressCollectsAllFieldErrors(t *testing.T) {
	t.Parallel()

	in := validAddressInput()
	in.PostCode = "!!!!!!!" // too long and bad characters; length wins
	in.CountryCode = "AB"

	_, errs := ValidateAddress(in)
	require.Len(t, errs, 2)

	fields := []string{errs[0].Field, errs[1].Field}
	require.ElementsMatch(t, []string{"postCode", "countryCode"}, fields)
}

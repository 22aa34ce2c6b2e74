package domain

import "time"

type AddressType string

const (
	AddressTypeHome    AddressType = "HOME"
	AddressTypeWork    AddressType = "WORK"
	AddressTypeInvoice AddressType = "INVOICE"
	AddressTypePostal  AddressType = "POSTAL"
)

// Valid reports whether t is one of the known address types.
func (t AddressType) Valid() bool {
	switch t {
	case AddressTypeHome, AddressTypeWork, AddressTypeInvoice, AddressTypePostal:
		return true
	default:
		return false
	}
}

// Label returns the human-readable form used by list views.
func (t AddressType) Label() string {
	switch t {
	case AddressTypeHome:
		return "Home"
	case AddressTypeWork:
		return "Work"
	case AddressTypeInvoice:
		return "Invoice"
	case AddressTypePostal:
		return "Postal"
	default:
		return string(t)
	}
}

// UserAddress is one address record owned by a user. Its identity is the
// composite key (UserID, AddressType, ValidFrom); keeping ValidFrom in the
// key allows a history of addresses of the same type over time.
type UserAddress struct {
	UserID         int64
	AddressType    AddressType
	ValidFrom      time.Time
	PostCode       string
	City           string
	CountryCode    string // ISO3166-1 alpha-3 shape, stored uppercase
	Street         string
	BuildingNumber string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AddressKey identifies exactly one address record.
type AddressKey struct {
	UserID      int64
	AddressType AddressType
	ValidFrom   time.Time
}

// AddressInput is the raw form-shaped payload for create/update. A zero
// ValidFrom defaults to the creation time.
type AddressInput struct {
	UserID         int64
	AddressType    AddressType
	ValidFrom      time.Time
	PostCode       string
	City           string
	CountryCode    string
	Street         string
	BuildingNumber string
}

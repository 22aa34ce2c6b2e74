package service

import (
	"context"
	"errors"
	"time"

	"github.com/parkhaven/userdir/internal/directory/domain"
	"github.com/parkhaven/userdir/internal/directory/schema"
	"github.com/parkhaven/userdir/internal/directory/store"
	"github.com/parkhaven/userdir/pkg/pagex"
	"github.com/parkhaven/userdir/pkg/slogx"
)

// ErrDeleteAddressFailed is returned when an address row could not be
// removed.
var ErrDeleteAddressFailed = errors.New("failed to delete address")

// AddressesService implements the address CRUD contract, scoped to an
// owning user. Same error taxonomy as UsersService.
type AddressesService struct {
	Store store.Store
}

// List returns one page of the user's addresses ordered by address type
// ascending, then valid_from descending (most recent of each type first).
func (s *AddressesService) List(ctx context.Context, userID int64, p pagex.Params) (pagex.Page[domain.UserAddress], error) {
	p = p.Normalize()

	addresses, err := s.Store.Addresses().ListUserAddresses(ctx, userID, p.Offset(), p.PageSize)
	if err != nil {
		return pagex.Page[domain.UserAddress]{}, err
	}

	total, err := s.Store.Addresses().CountUserAddresses(ctx, userID)
	if err != nil {
		return pagex.Page[domain.UserAddress]{}, err
	}

	return pagex.New(addresses, total, p), nil
}

// Create validates in and inserts a new address. A zero ValidFrom defaults
// to the current time. Exactly one of the returned values is set.
func (s *AddressesService) Create(ctx context.Context, in domain.AddressInput) (*domain.UserAddress, []domain.FieldError) {
	l := slogx.FromContext(ctx)

	in, errs := schema.ValidateAddress(in)
	if len(errs) > 0 {
		return nil, errs
	}

	if in.ValidFrom.IsZero() {
		in.ValidFrom = time.Now().UTC()
	}

	address, err := s.Store.Addresses().CreateAddress(ctx, in)
	if err != nil {
		// Covers duplicate composite keys and unknown user ids alike: the
		// store constraints are the source of truth.
		l.Error("failed to create address", "error", err, "user_id", in.UserID)
		return nil, []domain.FieldError{{Field: domain.FieldGeneral, Message: "Failed to create address"}}
	}

	l.Info("address created",
		"user_id", address.UserID,
		"address_type", address.AddressType,
		"valid_from", address.ValidFrom,
	)
	return &address, nil
}

// Update validates the payload merged with the identity fields from key,
// then rewrites the address fields of the record matching key. The
// identity, including address_type, is never changed even if the payload
// carries a different type.
func (s *AddressesService) Update(ctx context.Context, key domain.AddressKey, in domain.AddressInput) (*domain.UserAddress, []domain.FieldError) {
	l := slogx.FromContext(ctx)

	in.UserID = key.UserID
	in.ValidFrom = key.ValidFrom

	in, errs := schema.ValidateAddress(in)
	if len(errs) > 0 {
		return nil, errs
	}

	address, err := s.Store.Addresses().UpdateAddress(ctx, key, in)
	if err != nil {
		l.Error("failed to update address", "error", err, "user_id", key.UserID)
		return nil, []domain.FieldError{{Field: domain.FieldGeneral, Message: "Failed to update address"}}
	}

	l.Info("address updated",
		"user_id", address.UserID,
		"address_type", address.AddressType,
		"valid_from", address.ValidFrom,
	)
	return &address, nil
}

// Delete removes exactly the record matching the composite key. Any
// failure, including an unknown key, reports ErrDeleteAddressFailed.
func (s *AddressesService) Delete(ctx context.Context, key domain.AddressKey) error {
	l := slogx.FromContext(ctx)

	if err := s.Store.Addresses().DeleteAddress(ctx, key); err != nil {
		l.Error("failed to delete address", "error", err, "user_id", key.UserID)
		return ErrDeleteAddressFailed
	}

	l.Info("address deleted",
		"user_id", key.UserID,
		"address_type", key.AddressType,
		"valid_from", key.ValidFrom,
	)
	return nil
}

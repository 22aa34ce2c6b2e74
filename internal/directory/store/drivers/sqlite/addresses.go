package sqlite

import (
	"context"
	"time"

	"github.com/parkhaven/userdir/internal/directory/domain"
	"github.com/parkhaven/userdir/internal/directory/store"
)

const addressColumns = `user_id, address_type, valid_from, post_code, city, country_code, street, building_number, created_at, updated_at`

type addressesRepo struct {
	db dbtx
}

func (r *addressesRepo) ListUserAddresses(ctx context.Context, userID int64, offset, limit int) ([]domain.UserAddress, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+addressColumns+` FROM users_addresses
		 WHERE user_id = ?
		 ORDER BY address_type ASC, valid_from DESC
		 LIMIT ? OFFSET ?`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := []domain.UserAddress{}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *addressesRepo) CountUserAddresses(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users_addresses WHERE user_id = ?`, userID,
	).Scan(&count)
	return count, err
}

func (r *addressesRepo) GetAddress(ctx context.Context, key domain.AddressKey) (domain.UserAddress, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+addressColumns+` FROM users_addresses
		 WHERE user_id = ? AND address_type = ? AND valid_from = ?`,
		key.UserID, string(key.AddressType), key.ValidFrom,
	)
	a, err := scanAddress(row)
	if err != nil {
		return domain.UserAddress{}, mapNotFound(err)
	}
	return a, nil
}

func (r *addressesRepo) CreateAddress(ctx context.Context, in domain.AddressInput) (domain.UserAddress, error) {
	now := time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users_addresses
		 (user_id, address_type, valid_from, post_code, city, country_code, street, building_number, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, string(in.AddressType), in.ValidFrom,
		in.PostCode, in.City, in.CountryCode, in.Street, in.BuildingNumber,
		now, now,
	)
	if err != nil {
		return domain.UserAddress{}, mapConstraint(err)
	}

	return domain.UserAddress{
		UserID:         in.UserID,
		AddressType:    in.AddressType,
		ValidFrom:      in.ValidFrom,
		PostCode:       in.PostCode,
		City:           in.City,
		CountryCode:    in.CountryCode,
		Street:         in.Street,
		BuildingNumber: in.BuildingNumber,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func (r *addressesRepo) UpdateAddress(ctx context.Context, key domain.AddressKey, in domain.AddressInput) (domain.UserAddress, error) {
	// Identity columns stay fixed: only the address fields and updated_at
	// are written, never address_type or valid_from.
	res, err := r.db.ExecContext(ctx,
		`UPDATE users_addresses
		 SET post_code = ?, city = ?, country_code = ?, street = ?, building_number = ?, updated_at = ?
		 WHERE user_id = ? AND address_type = ? AND valid_from = ?`,
		in.PostCode, in.City, in.CountryCode, in.Street, in.BuildingNumber, time.Now().UTC(),
		key.UserID, string(key.AddressType), key.ValidFrom,
	)
	if err != nil {
		return domain.UserAddress{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.UserAddress{}, err
	}
	if affected == 0 {
		return domain.UserAddress{}, store.ErrNotFound
	}

	return r.GetAddress(ctx, key)
}

func (r *addressesRepo) DeleteAddress(ctx context.Context, key domain.AddressKey) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM users_addresses
		 WHERE user_id = ? AND address_type = ? AND valid_from = ?`,
		key.UserID, string(key.AddressType), key.ValidFrom,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanAddress(s scanner) (domain.UserAddress, error) {
	var (
		a           domain.UserAddress
		addressType string
	)
	err := s.Scan(
		&a.UserID, &addressType, &a.ValidFrom,
		&a.PostCode, &a.City, &a.CountryCode, &a.Street, &a.BuildingNumber,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.UserAddress{}, err
	}
	a.AddressType = domain.AddressType(addressType)
	return a, nil
}

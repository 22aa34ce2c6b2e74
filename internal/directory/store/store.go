package store

import (
	"context"
	"errors"

	"github.com/parkhaven/userdir/internal/directory/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. Sub-repositories are exposed as methods to keep
// concerns tidy and testable, and so a Tx-scoped Store presents the exact
// same surface as the root one.
type Store interface {
	Users() Users
	Addresses() Addresses

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Prefer this
	// over Tx for multi-step writes (e.g. batch seeding).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying connection. Call it once at shutdown.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// ListUsers returns one page of users ordered by last_name ascending.
	ListUsers(ctx context.Context, offset, limit int) ([]domain.User, error)

	// CountUsers returns the total number of users.
	CountUsers(ctx context.Context) (int, error)

	// GetUserByID returns a user by its store-assigned id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail is used for the email-uniqueness pre-check.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new row and returns it with the assigned id and
	// timestamps. Empty optional fields are stored as NULL.
	CreateUser(ctx context.Context, in domain.UserInput) (domain.User, error)

	// UpdateUser rewrites all mutable fields of the row identified by id
	// and bumps updated_at.
	UpdateUser(ctx context.Context, id int64, in domain.UserInput) (domain.User, error)

	// DeleteUser removes the row; the schema cascades to users_addresses.
	DeleteUser(ctx context.Context, id int64) error
}

type Addresses interface {
	// ListUserAddresses returns one page of a user's addresses ordered by
	// address_type ascending, then valid_from descending.
	ListUserAddresses(ctx context.Context, userID int64, offset, limit int) ([]domain.UserAddress, error)

	// CountUserAddresses returns the number of addresses owned by userID.
	CountUserAddresses(ctx context.Context, userID int64) (int, error)

	// GetAddress returns the record matching the composite key exactly.
	GetAddress(ctx context.Context, key domain.AddressKey) (domain.UserAddress, error)

	// CreateAddress inserts a new record keyed by
	// (user_id, address_type, valid_from).
	CreateAddress(ctx context.Context, in domain.AddressInput) (domain.UserAddress, error)

	// UpdateAddress rewrites the non-identity fields of the record matching
	// key. The identity columns, including address_type, are never written.
	UpdateAddress(ctx context.Context, key domain.AddressKey, in domain.AddressInput) (domain.UserAddress, error)

	// DeleteAddress removes exactly the record matching the composite key.
	DeleteAddress(ctx context.Context, key domain.AddressKey) error
}

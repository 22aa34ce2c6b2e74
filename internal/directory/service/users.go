package service

import (
	"context"
	"errors"

	"github.com/parkhaven/userdir/internal/directory/domain"
	"github.com/parkhaven/userdir/internal/directory/schema"
	"github.com/parkhaven/userdir/internal/directory/store"
	"github.com/parkhaven/userdir/pkg/pagex"
	"github.com/parkhaven/userdir/pkg/slogx"
)

// ErrDeleteUserFailed is returned when a user row could not be removed.
var ErrDeleteUserFailed = errors.New("failed to delete user")

// UsersService implements the user CRUD contract. Field-scoped problems
// come back as []domain.FieldError; infrastructure failures are logged and
// converted to a single "general" error, never surfaced raw.
type UsersService struct {
	Store store.Store
}

// List returns one page of users ordered by last name ascending, with
// totals. Out-of-range pagination values fall back to the defaults.
func (s *UsersService) List(ctx context.Context, p pagex.Params) (pagex.Page[domain.User], error) {
	p = p.Normalize()

	users, err := s.Store.Users().ListUsers(ctx, p.Offset(), p.PageSize)
	if err != nil {
		return pagex.Page[domain.User]{}, err
	}

	total, err := s.Store.Users().CountUsers(ctx)
	if err != nil {
		return pagex.Page[domain.User]{}, err
	}

	return pagex.New(users, total, p), nil
}

// GetByID fetches a single user. Returns store.ErrNotFound when the id is
// unknown.
func (s *UsersService) GetByID(ctx context.Context, id int64) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

// Create validates in, enforces email uniqueness and inserts the user.
// Exactly one of the returned values is set.
func (s *UsersService) Create(ctx context.Context, in domain.UserInput) (*domain.User, []domain.FieldError) {
	l := slogx.FromContext(ctx)

	if errs := schema.ValidateUser(in); len(errs) > 0 {
		return nil, errs
	}

	_, err := s.Store.Users().GetUserByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, []domain.FieldError{{Field: "email", Message: "Email already in use"}}
	case !errors.Is(err, store.ErrNotFound):
		l.Error("failed to create user", "error", err, "email", in.Email)
		return nil, []domain.FieldError{{Field: domain.FieldGeneral, Message: "Failed to create user"}}
	}

	user, err := s.Store.Users().CreateUser(ctx, in)
	if err != nil {
		// Includes a lost uniqueness race: the store constraint is the
		// source of truth and its violation takes the generic path.
		l.Error("failed to create user", "error", err, "email", in.Email)
		return nil, []domain.FieldError{{Field: domain.FieldGeneral, Message: "Failed to create user"}}
	}

	l.Info("user created", "user_id", user.ID)
	return &user, nil
}

// Update validates in and rewrites all mutable fields of the user
// identified by id. The target row is looked up by id first; the new email
// is then checked against every other user.
func (s *UsersService) Update(ctx context.Context, id int64, in domain.UserInput) (*domain.User, []domain.FieldError) {
	l := slogx.FromContext(ctx)

	if errs := schema.ValidateUser(in); len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.Store.Users().GetUserByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, []domain.FieldError{{Field: domain.FieldGeneral, Message: "User not found"}}
		}
		l.Error("failed to update user", "error", err, "user_id", id)
		return nil, []domain.FieldError{{Field: domain.FieldGeneral, Message: "Failed to update user"}}
	}

	other, err := s.Store.Users().GetUserByEmail(ctx, in.Email)
	switch {
	case err == nil && other.ID != id:
		return nil, []domain.FieldError{{Field: "email", Message: "Email already in use"}}
	case err != nil && !errors.Is(err, store.ErrNotFound):
		l.Error("failed to update user", "error", err, "user_id", id)
		return nil, []domain.FieldError{{Field: domain.FieldGeneral, Message: "Failed to update user"}}
	}

	user, err := s.Store.Users().UpdateUser(ctx, id, in)
	if err != nil {
		l.Error("failed to update user", "error", err, "user_id", id)
		return nil, []domain.FieldError{{Field: domain.FieldGeneral, Message: "Failed to update user"}}
	}

	l.Info("user updated", "user_id", user.ID)
	return &user, nil
}

// Delete removes the user row; the store cascades deletion of all owned
// addresses. Any failure, including an unknown id, reports
// ErrDeleteUserFailed.
func (s *UsersService) Delete(ctx context.Context, id int64) error {
	l := slogx.FromContext(ctx)

	if err := s.Store.Users().DeleteUser(ctx, id); err != nil {
		l.Error("failed to delete user", "error", err, "user_id", id)
		return ErrDeleteUserFailed
	}

	l.Info("user deleted", "user_id", id)
	return nil
}

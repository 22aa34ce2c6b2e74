package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/parkhaven/userdir/internal/directory/domain"
	"github.com/parkhaven/userdir/internal/directory/store"
)

const userColumns = `id, first_name, last_name, initials, email, status, created_at, updated_at`

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) ListUsers(ctx context.Context, offset, limit int) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY last_name ASC, id ASC LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id,
	)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email,
	)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, in domain.UserInput) (domain.User, error) {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (first_name, last_name, initials, email, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		mapStringNull(in.FirstName), in.LastName, mapStringNull(in.Initials),
		in.Email, string(in.Status), now, now,
	)
	if err != nil {
		return domain.User{}, mapConstraint(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	return domain.User{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Initials:  in.Initials,
		Email:     in.Email,
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (r *usersRepo) UpdateUser(ctx context.Context, id int64, in domain.UserInput) (domain.User, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET first_name = ?, last_name = ?, initials = ?, email = ?, status = ?, updated_at = ?
		 WHERE id = ?`,
		mapStringNull(in.FirstName), in.LastName, mapStringNull(in.Initials),
		in.Email, string(in.Status), time.Now().UTC(), id,
	)
	if err != nil {
		return domain.User{}, mapConstraint(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.User{}, err
	}
	if affected == 0 {
		return domain.User{}, store.ErrNotFound
	}

	return r.GetUserByID(ctx, id)
}

func (r *usersRepo) DeleteUser(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
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

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (domain.User, error) {
	var (
		u         domain.User
		firstName sql.NullString
		initials  sql.NullString
		status    string
	)
	err := s.Scan(&u.ID, &firstName, &u.LastName, &initials, &u.Email, &status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}
	u.FirstName = mapNullString(firstName)
	u.Initials = mapNullString(initials)
	u.Status = domain.UserStatus(status)
	return u, nil
}

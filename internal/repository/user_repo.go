package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"postboard/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, password_hash) VALUES (?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, password_hash FROM users WHERE username = ?`
	selectUserByIDSQL       = `SELECT id, username, password_hash FROM users WHERE id = ?`
	selectAllUsersSQL       = `SELECT id, username, password_hash FROM users ORDER BY id`
	updateUsernameSQL       = `UPDATE users SET username = ? WHERE id = ?`
	updatePasswordSQL       = `UPDATE users SET password_hash = ? WHERE id = ?`
)

// Create inserts a new user and returns its ID.
func (r *UserSQLite) Create(ctx context.Context, username, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, username, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByIDSQL, id).
		Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user id=%d: %w", id, err)
	}
	return &u, nil
}

// List returns all users ordered by id.
func (r *UserSQLite) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectAllUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 16)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return out, nil
}

// UpdateUsername sets a new username and reports affected rows.
func (r *UserSQLite) UpdateUsername(ctx context.Context, id int, username string) (int64, error) {
	res, err := r.db.ExecContext(ctx, updateUsernameSQL, username, id)
	if err != nil {
		return 0, fmt.Errorf("update username for id=%d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for username update id=%d: %w", id, err)
	}
	return n, nil
}

// UpdatePassword replaces the stored hash and reports affected rows.
func (r *UserSQLite) UpdatePassword(ctx context.Context, id int, passwordHash string) (int64, error) {
	res, err := r.db.ExecContext(ctx, updatePasswordSQL, passwordHash, id)
	if err != nil {
		return 0, fmt.Errorf("update password for id=%d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for password update id=%d: %w", id, err)
	}
	return n, nil
}

package repository

import (
	"context"
	"database/sql"

	"github.com/skillforge/journey-service/internal/models"
)

// CreateUser creates a new user. An empty email is stored as NULL so
// the unique constraint only applies to real addresses.
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	email := sql.NullString{String: user.Email, Valid: user.Email != ""}
	err := r.db.QueryRowContext(ctx, query, user.Username, email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	return translate(err)
}

// FindUserByLogin retrieves a user by username or email
func (r *Repository) FindUserByLogin(ctx context.Context, login string) (*models.User, error) {
	user := &models.User{}
	var email sql.NullString
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE username = $1 OR email = $1`
	err := r.db.QueryRowContext(ctx, query, login).
		Scan(&user.ID, &user.Username, &email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	user.Email = email.String
	return user, nil
}

// ListUsers returns all registered users
func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, username, email, created_at
		FROM users
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		var email sql.NullString
		if err := rows.Scan(&user.ID, &user.Username, &email, &user.CreatedAt); err != nil {
			return nil, translate(err)
		}
		user.Email = email.String
		users = append(users, user)
	}
	return users, translate(rows.Err())
}

// DeleteUser removes a user; journeys and steps go with it via the
// ON DELETE CASCADE constraints, all in one statement.
func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return translate(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

package store

import (
	"context"
	"time"

	"audiobookd/internal/domain"
)

var userColumns = map[string]bool{
	"username": true,
	"name":     true,
	"email":    true,
	"password": true,
}

func (db *DB) CreateUser(ctx context.Context, user *domain.User) error {
	user.CreatedAt = time.Now().UTC()

	query := `INSERT INTO users (username, name, email, password, created_at)
		VALUES (:username, :name, :email, :password, :created_at)`

	result, err := db.NamedExecContext(ctx, query, user)
	if err != nil {
		return classifyWrite(err, "failed to create user")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ErrStorage.WithMessage("failed to read user id").WithCause(err)
	}
	user.UserID = int(id)
	return nil
}

func (db *DB) GetUser(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := db.GetContext(ctx, &user, `SELECT * FROM users WHERE user_id = ?`, id)
	if err != nil {
		return nil, classifyGet(err, "User")
	}
	return &user, nil
}

func (db *DB) ListUsers(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	skip, limit = normalizeRange(skip, limit)

	users := []*domain.User{}
	err := db.SelectContext(ctx, &users, `SELECT * FROM users ORDER BY user_id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to list users").WithCause(err)
	}
	return users, nil
}

func (db *DB) UpdateUser(ctx context.Context, id int, updates map[string]any) (*domain.User, error) {
	if err := db.applyUpdate(ctx, "users", "user_id", id, "User", updates, userColumns); err != nil {
		return nil, err
	}
	return db.GetUser(ctx, id)
}

// DeleteUser removes the user and returns the record as it existed
// before deletion.
func (db *DB) DeleteUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := db.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, id); err != nil {
		return nil, classifyDelete(err, "failed to delete user")
	}
	return user, nil
}

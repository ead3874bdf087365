package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

type UserRepo struct {
	db DBTX
}

func NewUserRepo(db DBTX) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	const query = `
SELECT id, username, email, password_hash, created_at
FROM users
WHERE id = $1
LIMIT 1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.Email,
			&user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `
SELECT id, username, email, password_hash, created_at
FROM users
WHERE email = $1
LIMIT 1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Username, &user.Email,
			&user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users (id, username, email, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := repo.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email,
		user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		if mapped := mapDuplicate(err); errors.Is(mapped, entity.ErrDuplicate) {
			return mapped
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *UserRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	const query = `SELECT COUNT(*) FROM users WHERE created_at >= $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountCreatedSince: %w", err)
	}
	return count, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

type AdminRepo struct {
	db DBTX
}

func NewAdminRepo(db DBTX) repository.AdminRepository {
	return &AdminRepo{db: db}
}

func (repo *AdminRepo) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	const query = `
SELECT id, username, email, password_hash, created_at
FROM admins
WHERE id = $1
LIMIT 1`
	var admin entity.Admin
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&admin.ID, &admin.Username, &admin.Email,
			&admin.PasswordHash, &admin.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return &admin, nil
}

func (repo *AdminRepo) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	const query = `
SELECT id, username, email, password_hash, created_at
FROM admins
WHERE email = $1
LIMIT 1`
	var admin entity.Admin
	err := repo.db.QueryRowContext(ctx, query, email).
		Scan(&admin.ID, &admin.Username, &admin.Email,
			&admin.PasswordHash, &admin.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	return &admin, nil
}

func (repo *AdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	const query = `
INSERT INTO admins (id, username, email, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := repo.db.ExecContext(ctx, query,
		admin.ID, admin.Username, admin.Email,
		admin.PasswordHash, admin.CreatedAt,
	)
	if err != nil {
		if mapped := mapDuplicate(err); errors.Is(mapped, entity.ErrDuplicate) {
			return mapped
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

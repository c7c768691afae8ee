package postgresql

import (
	"context"
	"fmt"

	"github.com/studiopaghe/comporto-backend-go/internal/domain/user"
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash, first_name, last_name, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, email, password_hash, first_name, last_name, created_at, updated_at
	`

	var result user.User
	err := q.QueryRow(ctx, query, u.Email, u.PasswordHash, u.FirstName, u.LastName).Scan(
		&result.ID,
		&result.Email,
		&result.PasswordHash,
		&result.FirstName,
		&result.LastName,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return result, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, first_name, last_name, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var result user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Email,
		&result.PasswordHash,
		&result.FirstName,
		&result.LastName,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return user.User{}, err
	}

	return result, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, first_name, last_name, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var result user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&result.ID,
		&result.Email,
		&result.PasswordHash,
		&result.FirstName,
		&result.LastName,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return user.User{}, err
	}

	return result, nil
}

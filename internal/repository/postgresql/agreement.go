package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/agreement"
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/database"
)

type agreementRepositoryImpl struct {
	db *database.DB
}

func NewAgreementRepository(db *database.DB) agreement.AgreementRepository {
	return &agreementRepositoryImpl{db: db}
}

// Create implements agreement.AgreementRepository.
func (r *agreementRepositoryImpl) Create(ctx context.Context, a agreement.Agreement) (agreement.Agreement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO agreements (id, name, code, total_allowed_days, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, name, code, total_allowed_days, is_active, created_at, updated_at
	`

	var result agreement.Agreement
	err := q.QueryRow(ctx, query, a.Name, a.Code, a.TotalAllowedDays, a.IsActive).Scan(
		&result.ID,
		&result.Name,
		&result.Code,
		&result.TotalAllowedDays,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return agreement.Agreement{}, fmt.Errorf("failed to create agreement: %w", err)
	}

	return result, nil
}

// GetByID implements agreement.AgreementRepository.
func (r *agreementRepositoryImpl) GetByID(ctx context.Context, id string) (agreement.Agreement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, total_allowed_days, is_active, created_at, updated_at
		FROM agreements
		WHERE id = $1
	`

	var result agreement.Agreement
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.Code,
		&result.TotalAllowedDays,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return agreement.Agreement{}, err
	}

	return result, nil
}

// List implements agreement.AgreementRepository. Only active agreements are
// listed, ordered by name.
func (r *agreementRepositoryImpl) List(ctx context.Context) ([]agreement.Agreement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, total_allowed_days, is_active, created_at, updated_at
		FROM agreements
		WHERE is_active = TRUE
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list agreements: %w", err)
	}
	defer rows.Close()

	var agreements []agreement.Agreement
	for rows.Next() {
		var a agreement.Agreement
		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Code,
			&a.TotalAllowedDays,
			&a.IsActive,
			&a.CreatedAt,
			&a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agreement: %w", err)
		}
		agreements = append(agreements, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return agreements, nil
}

// Update implements agreement.AgreementRepository.
func (r *agreementRepositoryImpl) Update(ctx context.Context, req agreement.UpdateAgreementRequest) error {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE agreements SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}

	if req.TotalAllowedDays != nil {
		query += fmt.Sprintf(", total_allowed_days = $%d", argIdx)
		args = append(args, *req.TotalAllowedDays)
		argIdx++
	}

	if req.IsActive != nil {
		query += fmt.Sprintf(", is_active = $%d", argIdx)
		args = append(args, *req.IsActive)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update agreement: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

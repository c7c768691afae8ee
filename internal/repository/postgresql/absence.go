package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/absence"
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/database"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepositoryImpl{db: db}
}

// Create implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absences (id, employee_id, start_date, end_date, absence_type, description, days_counted, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, employee_id, start_date, end_date, absence_type, description, days_counted, created_at, updated_at
	`

	var result absence.Absence
	err := q.QueryRow(ctx, query,
		a.EmployeeID,
		a.StartDate,
		a.EndDate,
		a.AbsenceType,
		a.Description,
		a.DaysCounted,
	).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.StartDate,
		&result.EndDate,
		&result.AbsenceType,
		&result.Description,
		&result.DaysCounted,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return absence.Absence{}, fmt.Errorf("failed to create absence: %w", err)
	}

	return result, nil
}

// GetByID implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) GetByID(ctx context.Context, id string) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, absence_type, description, days_counted, created_at, updated_at
		FROM absences
		WHERE id = $1
	`

	var result absence.Absence
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.StartDate,
		&result.EndDate,
		&result.AbsenceType,
		&result.Description,
		&result.DaysCounted,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return absence.Absence{}, err
	}

	return result, nil
}

// GetByEmployeeID implements absence.AbsenceRepository, newest first.
func (r *absenceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, absence_type, description, days_counted, created_at, updated_at
		FROM absences
		WHERE employee_id = $1
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}
	defer rows.Close()

	var absences []absence.Absence
	for rows.Next() {
		var a absence.Absence
		err := rows.Scan(
			&a.ID,
			&a.EmployeeID,
			&a.StartDate,
			&a.EndDate,
			&a.AbsenceType,
			&a.Description,
			&a.DaysCounted,
			&a.CreatedAt,
			&a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		absences = append(absences, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return absences, nil
}

// Update implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Update(ctx context.Context, req absence.UpdateAbsenceRequest) error {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE absences SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.StartDate != nil {
		query += fmt.Sprintf(", start_date = $%d", argIdx)
		args = append(args, *req.StartDate)
		argIdx++
	}

	if req.EndDate != nil {
		query += fmt.Sprintf(", end_date = $%d", argIdx)
		args = append(args, *req.EndDate)
		argIdx++
	}

	if req.AbsenceType != nil {
		query += fmt.Sprintf(", absence_type = $%d", argIdx)
		args = append(args, *req.AbsenceType)
		argIdx++
	}

	if req.Description != nil {
		query += fmt.Sprintf(", description = $%d", argIdx)
		args = append(args, *req.Description)
		argIdx++
	}

	if req.DaysCounted != nil {
		query += fmt.Sprintf(", days_counted = $%d", argIdx)
		args = append(args, *req.DaysCounted)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update absence: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete implements absence.AbsenceRepository. Absence deletion is hard,
// unlike employee deletion.
func (r *absenceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM absences WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete absence: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

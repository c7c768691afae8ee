package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/absence"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/employee"
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, external_code, first_name, last_name, email, hire_date, agreement_id, owner_id, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, TRUE, NOW(), NOW())
		RETURNING id, external_code, first_name, last_name, email, hire_date, agreement_id, owner_id, is_active, created_at, updated_at
	`

	var result employee.Employee
	err := q.QueryRow(ctx, query,
		e.ExternalCode,
		e.FirstName,
		e.LastName,
		e.Email,
		e.HireDate,
		e.AgreementID,
		e.OwnerID,
	).Scan(
		&result.ID,
		&result.ExternalCode,
		&result.FirstName,
		&result.LastName,
		&result.Email,
		&result.HireDate,
		&result.AgreementID,
		&result.OwnerID,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// GetByID implements employee.EmployeeRepository. Soft-deleted employees are
// treated as absent.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, ownerID string) (employee.WithRelations, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.external_code, e.first_name, e.last_name, e.email, e.hire_date,
		       e.agreement_id, e.owner_id, e.is_active, e.created_at, e.updated_at,
		       a.id, a.name, a.code, a.total_allowed_days, a.is_active
		FROM employees e
		JOIN agreements a ON a.id = e.agreement_id
		WHERE e.id = $1 AND e.owner_id = $2 AND e.is_active = TRUE
	`

	var result employee.WithRelations
	err := q.QueryRow(ctx, query, id, ownerID).Scan(
		&result.ID,
		&result.ExternalCode,
		&result.FirstName,
		&result.LastName,
		&result.Email,
		&result.HireDate,
		&result.AgreementID,
		&result.OwnerID,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
		&result.Agreement.ID,
		&result.Agreement.Name,
		&result.Agreement.Code,
		&result.Agreement.TotalAllowedDays,
		&result.Agreement.IsActive,
	)

	if err != nil {
		return employee.WithRelations{}, err
	}

	absences, err := r.absencesForEmployees(ctx, []string{result.ID})
	if err != nil {
		return employee.WithRelations{}, err
	}
	result.Absences = absences[result.ID]

	return result, nil
}

// GetByOwnerID implements employee.EmployeeRepository. Only active employees
// are returned, ordered by last name then first name.
func (r *employeeRepositoryImpl) GetByOwnerID(ctx context.Context, ownerID string) ([]employee.WithRelations, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.external_code, e.first_name, e.last_name, e.email, e.hire_date,
		       e.agreement_id, e.owner_id, e.is_active, e.created_at, e.updated_at,
		       a.id, a.name, a.code, a.total_allowed_days, a.is_active
		FROM employees e
		JOIN agreements a ON a.id = e.agreement_id
		WHERE e.owner_id = $1 AND e.is_active = TRUE
		ORDER BY e.last_name ASC, e.first_name ASC
	`

	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.WithRelations
	var ids []string
	for rows.Next() {
		var e employee.WithRelations
		err := rows.Scan(
			&e.ID,
			&e.ExternalCode,
			&e.FirstName,
			&e.LastName,
			&e.Email,
			&e.HireDate,
			&e.AgreementID,
			&e.OwnerID,
			&e.IsActive,
			&e.CreatedAt,
			&e.UpdatedAt,
			&e.Agreement.ID,
			&e.Agreement.Name,
			&e.Agreement.Code,
			&e.Agreement.TotalAllowedDays,
			&e.Agreement.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
		ids = append(ids, e.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	if len(employees) == 0 {
		return employees, nil
	}

	absences, err := r.absencesForEmployees(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		employees[i].Absences = absences[employees[i].ID]
	}

	return employees, nil
}

// absencesForEmployees fetches absence histories in one query and groups
// them by employee, newest first.
func (r *employeeRepositoryImpl) absencesForEmployees(ctx context.Context, employeeIDs []string) (map[string][]absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, absence_type, description, days_counted, created_at, updated_at
		FROM absences
		WHERE employee_id = ANY($1)
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]absence.Absence)
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
		result[a.EmployeeID] = append(result[a.EmployeeID], a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest, ownerID string) error {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE employees SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.ExternalCode != nil {
		query += fmt.Sprintf(", external_code = $%d", argIdx)
		args = append(args, *req.ExternalCode)
		argIdx++
	}

	if req.FirstName != nil {
		query += fmt.Sprintf(", first_name = $%d", argIdx)
		args = append(args, *req.FirstName)
		argIdx++
	}

	if req.LastName != nil {
		query += fmt.Sprintf(", last_name = $%d", argIdx)
		args = append(args, *req.LastName)
		argIdx++
	}

	if req.Email != nil {
		query += fmt.Sprintf(", email = $%d", argIdx)
		args = append(args, *req.Email)
		argIdx++
	}

	if req.HireDate != nil {
		query += fmt.Sprintf(", hire_date = $%d", argIdx)
		args = append(args, *req.HireDate)
		argIdx++
	}

	if req.AgreementID != nil {
		query += fmt.Sprintf(", agreement_id = $%d", argIdx)
		args = append(args, *req.AgreementID)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d AND owner_id = $%d AND is_active = TRUE", argIdx, argIdx+1)
	args = append(args, req.ID, ownerID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// SoftDelete implements employee.EmployeeRepository. The row is never
// removed; absences stay in the ledger.
func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string, ownerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2 AND is_active = TRUE
	`

	commandTag, err := q.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to soft-delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

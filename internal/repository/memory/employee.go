package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/employee"
)

type employeeRepo struct {
	store *Store
}

func (r *employeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.employees {
		if existing.ExternalCode == e.ExternalCode {
			return employee.Employee{}, employee.ErrMatricolaExists
		}
	}
	if _, ok := r.store.agreements[e.AgreementID]; !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}

	now := time.Now()
	e.ID = uuid.NewString()
	e.IsActive = true
	e.CreatedAt = now
	e.UpdatedAt = now
	r.store.employees[e.ID] = e
	return e, nil
}

func (r *employeeRepo) GetByID(ctx context.Context, id string, ownerID string) (employee.WithRelations, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.employees[id]
	if !ok || e.OwnerID != ownerID || !e.IsActive {
		return employee.WithRelations{}, pgx.ErrNoRows
	}
	return r.withRelations(e), nil
}

func (r *employeeRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]employee.WithRelations, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var employees []employee.WithRelations
	for _, e := range r.store.employees {
		if e.OwnerID == ownerID && e.IsActive {
			employees = append(employees, r.withRelations(e))
		}
	}
	sort.Slice(employees, func(i, j int) bool {
		if employees[i].LastName != employees[j].LastName {
			return employees[i].LastName < employees[j].LastName
		}
		return employees[i].FirstName < employees[j].FirstName
	})
	return employees, nil
}

// withRelations joins the agreement and the absence history, newest absence
// first. Callers must hold the store lock.
func (r *employeeRepo) withRelations(e employee.Employee) employee.WithRelations {
	result := employee.WithRelations{
		Employee:  e,
		Agreement: r.store.agreements[e.AgreementID],
	}
	for _, a := range r.store.absences {
		if a.EmployeeID == e.ID {
			result.Absences = append(result.Absences, a)
		}
	}
	sort.Slice(result.Absences, func(i, j int) bool {
		return result.Absences[i].StartDate.After(result.Absences[j].StartDate)
	})
	return result
}

func (r *employeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest, ownerID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.employees[req.ID]
	if !ok || e.OwnerID != ownerID || !e.IsActive {
		return pgx.ErrNoRows
	}

	if req.ExternalCode != nil {
		for _, existing := range r.store.employees {
			if existing.ID != e.ID && existing.ExternalCode == *req.ExternalCode {
				return employee.ErrMatricolaExists
			}
		}
		e.ExternalCode = *req.ExternalCode
	}
	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.Email != nil {
		e.Email = req.Email
	}
	if req.HireDate != nil {
		hireDate, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return err
		}
		e.HireDate = hireDate
	}
	if req.AgreementID != nil {
		if _, ok := r.store.agreements[*req.AgreementID]; !ok {
			return pgx.ErrNoRows
		}
		e.AgreementID = *req.AgreementID
	}
	e.UpdatedAt = time.Now()
	r.store.employees[e.ID] = e
	return nil
}

func (r *employeeRepo) SoftDelete(ctx context.Context, id string, ownerID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.employees[id]
	if !ok || e.OwnerID != ownerID || !e.IsActive {
		return pgx.ErrNoRows
	}

	e.IsActive = false
	e.UpdatedAt = time.Now()
	r.store.employees[id] = e
	return nil
}

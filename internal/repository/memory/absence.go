package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/absence"
)

type absenceRepo struct {
	store *Store
}

func (r *absenceRepo) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.employees[a.EmployeeID]; !ok {
		return absence.Absence{}, pgx.ErrNoRows
	}

	now := time.Now()
	a.ID = uuid.NewString()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.store.absences[a.ID] = a
	return a, nil
}

func (r *absenceRepo) GetByID(ctx context.Context, id string) (absence.Absence, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	a, ok := r.store.absences[id]
	if !ok {
		return absence.Absence{}, pgx.ErrNoRows
	}
	return a, nil
}

func (r *absenceRepo) GetByEmployeeID(ctx context.Context, employeeID string) ([]absence.Absence, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var absences []absence.Absence
	for _, a := range r.store.absences {
		if a.EmployeeID == employeeID {
			absences = append(absences, a)
		}
	}
	sort.Slice(absences, func(i, j int) bool {
		return absences[i].StartDate.After(absences[j].StartDate)
	})
	return absences, nil
}

func (r *absenceRepo) Update(ctx context.Context, req absence.UpdateAbsenceRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a, ok := r.store.absences[req.ID]
	if !ok {
		return pgx.ErrNoRows
	}

	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return err
		}
		a.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return err
		}
		a.EndDate = endDate
	}
	if req.AbsenceType != nil {
		a.AbsenceType = *req.AbsenceType
	}
	if req.Description != nil {
		a.Description = req.Description
	}
	if req.DaysCounted != nil {
		a.DaysCounted = *req.DaysCounted
	}
	a.UpdatedAt = time.Now()
	r.store.absences[a.ID] = a
	return nil
}

func (r *absenceRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.absences[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.store.absences, id)
	return nil
}

package absence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/absence"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/agreement"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/employee"
	"github.com/studiopaghe/comporto-backend-go/internal/repository/memory"
)

func newTestService(t *testing.T) (AbsenceService, *memory.Store, employee.Employee) {
	t.Helper()

	store := memory.NewStore()
	ctx := context.Background()

	a, err := store.Agreements().Create(ctx, agreement.Agreement{
		Name:             "Commercio",
		Code:             "COMMERCIO",
		TotalAllowedDays: 180,
		IsActive:         true,
	})
	require.NoError(t, err)

	e, err := store.Employees().Create(ctx, employee.Employee{
		ExternalCode: "EMP001",
		FirstName:    "Mario",
		LastName:     "Rossi",
		AgreementID:  a.ID,
		OwnerID:      "owner-1",
	})
	require.NoError(t, err)

	return NewAbsenceService(store.Absences(), store.Employees()), store, e
}

func TestCreateAndListAbsences(t *testing.T) {
	svc, _, emp := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, absence.CreateAbsenceRequest{
		EmployeeID:  emp.ID,
		StartDate:   "2024-03-11",
		EndDate:     "2024-03-15",
		AbsenceType: "malattia",
		DaysCounted: 5,
	}, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-11", created.StartDate)
	assert.Equal(t, 5, created.DaysCounted)

	absences, err := svc.List(ctx, emp.ID, "owner-1")
	require.NoError(t, err)
	require.Len(t, absences, 1)
	assert.Equal(t, created.ID, absences[0].ID)
}

func TestCreateRejectsReversedDates(t *testing.T) {
	svc, _, emp := newTestService(t)

	_, err := svc.Create(context.Background(), absence.CreateAbsenceRequest{
		EmployeeID:  emp.ID,
		StartDate:   "2024-03-15",
		EndDate:     "2024-03-11",
		AbsenceType: "malattia",
		DaysCounted: 5,
	}, "owner-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end_date")
}

func TestAbsenceOperationsRequireOwnership(t *testing.T) {
	svc, _, emp := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, absence.CreateAbsenceRequest{
		EmployeeID:  emp.ID,
		StartDate:   "2024-03-11",
		EndDate:     "2024-03-11",
		AbsenceType: "malattia",
		DaysCounted: 1,
	}, "owner-1")
	require.NoError(t, err)

	_, err = svc.List(ctx, emp.ID, "intruder")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.Create(ctx, absence.CreateAbsenceRequest{
		EmployeeID:  emp.ID,
		StartDate:   "2024-04-01",
		EndDate:     "2024-04-01",
		AbsenceType: "malattia",
		DaysCounted: 1,
	}, "intruder")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	days := 3
	_, err = svc.Update(ctx, absence.UpdateAbsenceRequest{ID: created.ID, DaysCounted: &days}, "intruder")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	err = svc.Delete(ctx, created.ID, "intruder")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	// the record is untouched after the denied attempts
	absences, err := svc.List(ctx, emp.ID, "owner-1")
	require.NoError(t, err)
	require.Len(t, absences, 1)
	assert.Equal(t, 1, absences[0].DaysCounted)
}

func TestUpdateAbsence(t *testing.T) {
	svc, _, emp := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, absence.CreateAbsenceRequest{
		EmployeeID:  emp.ID,
		StartDate:   "2024-03-11",
		EndDate:     "2024-03-15",
		AbsenceType: "malattia",
		DaysCounted: 5,
	}, "owner-1")
	require.NoError(t, err)

	days := 3
	updated, err := svc.Update(ctx, absence.UpdateAbsenceRequest{ID: created.ID, DaysCounted: &days}, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 3, updated.DaysCounted)
	// untouched fields survive a partial update
	assert.Equal(t, "malattia", updated.AbsenceType)
}

func TestDeleteAbsence(t *testing.T) {
	svc, _, emp := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, absence.CreateAbsenceRequest{
		EmployeeID:  emp.ID,
		StartDate:   "2024-03-11",
		EndDate:     "2024-03-11",
		AbsenceType: "infortunio",
		DaysCounted: 1,
	}, "owner-1")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID, "owner-1"))

	absences, err := svc.List(ctx, emp.ID, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, absences)

	err = svc.Delete(ctx, created.ID, "owner-1")
	assert.ErrorIs(t, err, absence.ErrAbsenceNotFound)
}

package absence

import "context"

type AbsenceRepository interface {
	Create(ctx context.Context, a Absence) (Absence, error)
	GetByID(ctx context.Context, id string) (Absence, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Absence, error)
	Update(ctx context.Context, req UpdateAbsenceRequest) error
	Delete(ctx context.Context, id string) error
}

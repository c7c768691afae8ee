package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string, ownerID string) (WithRelations, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]WithRelations, error)
	Update(ctx context.Context, req UpdateEmployeeRequest, ownerID string) error
	SoftDelete(ctx context.Context, id string, ownerID string) error
}

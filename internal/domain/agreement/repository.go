package agreement

import "context"

type AgreementRepository interface {
	Create(ctx context.Context, a Agreement) (Agreement, error)
	GetByID(ctx context.Context, id string) (Agreement, error)
	List(ctx context.Context) ([]Agreement, error)
	Update(ctx context.Context, req UpdateAgreementRequest) error
}

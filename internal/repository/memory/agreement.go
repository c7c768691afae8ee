package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/agreement"
)

type agreementRepo struct {
	store *Store
}

func (r *agreementRepo) Create(ctx context.Context, a agreement.Agreement) (agreement.Agreement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.agreements {
		if existing.Code == a.Code {
			return agreement.Agreement{}, agreement.ErrAgreementCodeExists
		}
	}

	now := time.Now()
	a.ID = uuid.NewString()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.store.agreements[a.ID] = a
	return a, nil
}

func (r *agreementRepo) GetByID(ctx context.Context, id string) (agreement.Agreement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	a, ok := r.store.agreements[id]
	if !ok {
		return agreement.Agreement{}, pgx.ErrNoRows
	}
	return a, nil
}

func (r *agreementRepo) List(ctx context.Context) ([]agreement.Agreement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var agreements []agreement.Agreement
	for _, a := range r.store.agreements {
		if a.IsActive {
			agreements = append(agreements, a)
		}
	}
	sort.Slice(agreements, func(i, j int) bool {
		return agreements[i].Name < agreements[j].Name
	})
	return agreements, nil
}

func (r *agreementRepo) Update(ctx context.Context, req agreement.UpdateAgreementRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a, ok := r.store.agreements[req.ID]
	if !ok {
		return pgx.ErrNoRows
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.TotalAllowedDays != nil {
		a.TotalAllowedDays = *req.TotalAllowedDays
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
	a.UpdatedAt = time.Now()
	r.store.agreements[a.ID] = a
	return nil
}

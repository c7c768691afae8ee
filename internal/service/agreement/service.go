package agreement

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/agreement"
	"github.com/studiopaghe/comporto-backend-go/internal/fixtures"
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/database"
	"github.com/studiopaghe/comporto-backend-go/internal/repository/postgresql"
)

type AgreementService interface {
	Initialize(ctx context.Context) error
	List(ctx context.Context) ([]agreement.AgreementResponse, error)
	Create(ctx context.Context, req agreement.CreateAgreementRequest) (agreement.AgreementResponse, error)
	Update(ctx context.Context, req agreement.UpdateAgreementRequest) error
}

type agreementServiceImpl struct {
	db            *database.DB
	agreementRepo agreement.AgreementRepository
}

// NewAgreementService builds the agreement service. db is nil under the
// in-memory driver, which has no transactions.
func NewAgreementService(db *database.DB, agreementRepo agreement.AgreementRepository) AgreementService {
	return &agreementServiceImpl{
		db:            db,
		agreementRepo: agreementRepo,
	}
}

// Initialize seeds the default CCNL set when the registry is empty. Calling
// it against a populated registry is a no-op. The seed runs in a single
// transaction so a failed insert never leaves a half-seeded registry.
func (s *agreementServiceImpl) Initialize(ctx context.Context) error {
	if s.db == nil {
		return s.seedDefaults(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return s.seedDefaults(txCtx)
	})
}

func (s *agreementServiceImpl) seedDefaults(ctx context.Context) error {
	existing, err := s.agreementRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing agreements: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, a := range fixtures.DefaultAgreements() {
		if _, err := s.agreementRepo.Create(ctx, a); err != nil {
			return fmt.Errorf("failed to seed agreement %s: %w", a.Code, err)
		}
	}

	return nil
}

func (s *agreementServiceImpl) List(ctx context.Context) ([]agreement.AgreementResponse, error) {
	agreements, err := s.agreementRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// If no agreements found, return empty list instead of error
	if len(agreements) == 0 {
		return []agreement.AgreementResponse{}, nil
	}

	var responses []agreement.AgreementResponse
	for _, a := range agreements {
		responses = append(responses, agreement.AgreementResponse{
			ID:               a.ID,
			Name:             a.Name,
			Code:             a.Code,
			TotalAllowedDays: a.TotalAllowedDays,
			IsActive:         a.IsActive,
		})
	}

	return responses, nil
}

func (s *agreementServiceImpl) Create(ctx context.Context, req agreement.CreateAgreementRequest) (agreement.AgreementResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return agreement.AgreementResponse{}, err
	}

	entity := agreement.Agreement{
		Name:             req.Name,
		Code:             req.Code,
		TotalAllowedDays: req.TotalAllowedDays,
		IsActive:         true,
	}

	created, err := s.agreementRepo.Create(ctx, entity)
	if err != nil {
		// Check for duplicate code (unique constraint violation)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return agreement.AgreementResponse{}, agreement.ErrAgreementCodeExists
		}
		if errors.Is(err, agreement.ErrAgreementCodeExists) {
			return agreement.AgreementResponse{}, agreement.ErrAgreementCodeExists
		}
		return agreement.AgreementResponse{}, fmt.Errorf("failed to create agreement: %w", err)
	}

	return agreement.AgreementResponse{
		ID:               created.ID,
		Name:             created.Name,
		Code:             created.Code,
		TotalAllowedDays: created.TotalAllowedDays,
		IsActive:         created.IsActive,
	}, nil
}

func (s *agreementServiceImpl) Update(ctx context.Context, req agreement.UpdateAgreementRequest) error {
	// Validate request
	if err := req.Validate(); err != nil {
		return err
	}

	err := s.agreementRepo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return agreement.ErrAgreementNotFound
		}
		return err
	}

	return nil
}

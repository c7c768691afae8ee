package absence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/absence"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/employee"
)

type AbsenceService interface {
	List(ctx context.Context, employeeID string, ownerID string) ([]absence.AbsenceResponse, error)
	Create(ctx context.Context, req absence.CreateAbsenceRequest, ownerID string) (absence.AbsenceResponse, error)
	Update(ctx context.Context, req absence.UpdateAbsenceRequest, ownerID string) (absence.AbsenceResponse, error)
	Delete(ctx context.Context, id string, ownerID string) error
}

type absenceServiceImpl struct {
	absenceRepo  absence.AbsenceRepository
	employeeRepo employee.EmployeeRepository
}

func NewAbsenceService(absenceRepo absence.AbsenceRepository, employeeRepo employee.EmployeeRepository) AbsenceService {
	return &absenceServiceImpl{
		absenceRepo:  absenceRepo,
		employeeRepo: employeeRepo,
	}
}

// verifyOwnership confirms the employee exists, is active, and belongs to the
// caller. Every absence operation goes through it so records can never be
// read or written across accounts.
func (s *absenceServiceImpl) verifyOwnership(ctx context.Context, employeeID string, ownerID string) error {
	_, err := s.employeeRepo.GetByID(ctx, employeeID, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

func (s *absenceServiceImpl) List(ctx context.Context, employeeID string, ownerID string) ([]absence.AbsenceResponse, error) {
	if err := s.verifyOwnership(ctx, employeeID, ownerID); err != nil {
		return nil, err
	}

	absences, err := s.absenceRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]absence.AbsenceResponse, 0, len(absences))
	for _, a := range absences {
		responses = append(responses, absence.NewAbsenceResponse(a))
	}
	return responses, nil
}

func (s *absenceServiceImpl) Create(ctx context.Context, req absence.CreateAbsenceRequest, ownerID string) (absence.AbsenceResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	if err := s.verifyOwnership(ctx, req.EmployeeID, ownerID); err != nil {
		return absence.AbsenceResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to parse end_date: %w", err)
	}

	entity := absence.Absence{
		EmployeeID:  req.EmployeeID,
		StartDate:   startDate,
		EndDate:     endDate,
		AbsenceType: req.AbsenceType,
		Description: req.Description,
		DaysCounted: req.DaysCounted,
	}

	created, err := s.absenceRepo.Create(ctx, entity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.AbsenceResponse{}, employee.ErrEmployeeNotFound
		}
		return absence.AbsenceResponse{}, fmt.Errorf("failed to create absence: %w", err)
	}

	return absence.NewAbsenceResponse(created), nil
}

func (s *absenceServiceImpl) Update(ctx context.Context, req absence.UpdateAbsenceRequest, ownerID string) (absence.AbsenceResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	existing, err := s.absenceRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.AbsenceResponse{}, absence.ErrAbsenceNotFound
		}
		return absence.AbsenceResponse{}, err
	}
	if err := s.verifyOwnership(ctx, existing.EmployeeID, ownerID); err != nil {
		return absence.AbsenceResponse{}, err
	}

	if err := s.absenceRepo.Update(ctx, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.AbsenceResponse{}, absence.ErrAbsenceNotFound
		}
		return absence.AbsenceResponse{}, err
	}

	updated, err := s.absenceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}
	return absence.NewAbsenceResponse(updated), nil
}

func (s *absenceServiceImpl) Delete(ctx context.Context, id string, ownerID string) error {
	existing, err := s.absenceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.ErrAbsenceNotFound
		}
		return err
	}
	if err := s.verifyOwnership(ctx, existing.EmployeeID, ownerID); err != nil {
		return err
	}

	if err := s.absenceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.ErrAbsenceNotFound
		}
		return err
	}
	return nil
}

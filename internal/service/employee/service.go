package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/studiopaghe/comporto-backend-go/internal/comporto"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/absence"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/agreement"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/employee"
)

type EmployeeService interface {
	List(ctx context.Context, ownerID string) ([]employee.EmployeeResponse, error)
	Get(ctx context.Context, id string, ownerID string) (employee.EmployeeResponse, error)
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest, ownerID string) (employee.EmployeeResponse, error)
	Delete(ctx context.Context, id string, ownerID string) error
	Stats(ctx context.Context, ownerID string) (employee.Stats, error)
	Import(ctx context.Context, ownerID string, rows []map[string]string) (employee.ImportResult, error)
	Export(ctx context.Context, ownerID string) (ExportTable, error)
}

type employeeServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	agreementRepo agreement.AgreementRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, agreementRepo agreement.AgreementRepository) EmployeeService {
	return &employeeServiceImpl{
		employeeRepo:  employeeRepo,
		agreementRepo: agreementRepo,
	}
}

// toResponse runs the comporto engine over the employee's budget and absence
// history and attaches the computed figures.
func toResponse(e employee.WithRelations) employee.EmployeeResponse {
	used := comporto.UsedDays(e.Absences)
	remaining := comporto.RemainingDays(e.Agreement.TotalAllowedDays, e.Absences)

	resp := employee.EmployeeResponse{
		ID:            e.ID,
		ExternalCode:  e.ExternalCode,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		HireDate:      e.HireDate.Format("2006-01-02"),
		AgreementID:   e.AgreementID,
		AgreementName: e.Agreement.Name,
		TotalDays:     e.Agreement.TotalAllowedDays,
		UsedDays:      used,
		RemainingDays: remaining,
		Status:        comporto.Classify(remaining).String(),
	}
	for _, a := range e.Absences {
		resp.Absences = append(resp.Absences, absence.NewAbsenceResponse(a))
	}
	return resp
}

func (s *employeeServiceImpl) List(ctx context.Context, ownerID string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// If no employees found, return empty list instead of error
	if len(employees) == 0 {
		return []employee.EmployeeResponse{}, nil
	}

	var responses []employee.EmployeeResponse
	for _, e := range employees {
		responses = append(responses, toResponse(e))
	}

	return responses, nil
}

func (s *employeeServiceImpl) Get(ctx context.Context, id string, ownerID string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, err
	}

	return toResponse(e), nil
}

func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hire_date: %w", err)
	}

	entity := employee.Employee{
		ExternalCode: req.ExternalCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		HireDate:     hireDate,
		AgreementID:  req.AgreementID,
		OwnerID:      req.OwnerID,
		IsActive:     true,
	}

	created, err := s.employeeRepo.Create(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation on external_code
				return employee.EmployeeResponse{}, employee.ErrMatricolaExists
			case "23503": // foreign_key_violation on agreement_id
				return employee.EmployeeResponse{}, agreement.ErrAgreementNotFound
			}
		}
		if errors.Is(err, employee.ErrMatricolaExists) {
			return employee.EmployeeResponse{}, employee.ErrMatricolaExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, agreement.ErrAgreementNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.Get(ctx, created.ID, created.OwnerID)
}

func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest, ownerID string) (employee.EmployeeResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	err := s.employeeRepo.Update(ctx, req, ownerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return employee.EmployeeResponse{}, employee.ErrMatricolaExists
			case "23503":
				return employee.EmployeeResponse{}, agreement.ErrAgreementNotFound
			}
		}
		if errors.Is(err, employee.ErrMatricolaExists) {
			return employee.EmployeeResponse{}, employee.ErrMatricolaExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, req.ID, ownerID)
}

func (s *employeeServiceImpl) Delete(ctx context.Context, id string, ownerID string) error {
	err := s.employeeRepo.SoftDelete(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

func (s *employeeServiceImpl) Stats(ctx context.Context, ownerID string) (employee.Stats, error) {
	employees, err := s.employeeRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return employee.Stats{}, err
	}
	return ComputeStats(employees), nil
}

package employee

import (
	"github.com/studiopaghe/comporto-backend-go/internal/domain/absence"
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/validator"
)

// EmployeeResponse represents the response structure for an employee,
// including the computed comporto figures.
type EmployeeResponse struct {
	ID            string                    `json:"id"`
	ExternalCode  string                    `json:"external_code"`
	FirstName     string                    `json:"first_name"`
	LastName      string                    `json:"last_name"`
	Email         *string                   `json:"email,omitempty"`
	HireDate      string                    `json:"hire_date"`
	AgreementID   string                    `json:"agreement_id"`
	AgreementName string                    `json:"agreement_name"`
	TotalDays     int                       `json:"total_allowed_days"`
	UsedDays      int                       `json:"used_days"`
	RemainingDays int                       `json:"remaining_days"`
	Status        string                    `json:"status"`
	Absences      []absence.AbsenceResponse `json:"absences,omitempty"`
}

// Stats is the fleet-wide report over an account's active employees. Warning
// and Compliant fold together into the compliant counter; only Critical
// counts as expiring soon.
type Stats struct {
	Total        int `json:"total"`
	ExpiringSoon int `json:"expiringSoon"`
	Expired      int `json:"expired"`
	Compliant    int `json:"compliant"`
}

// ImportResult reports a bulk import: rows that became employees plus
// verbatim per-row error descriptions for operator review.
type ImportResult struct {
	Created      []EmployeeResponse `json:"created"`
	Errors       []string           `json:"errors"`
	CreatedCount int                `json:"created_count"`
	ErrorCount   int                `json:"error_count"`
}

// CreateEmployeeRequest represents the request structure for registering an
// employee.
type CreateEmployeeRequest struct {
	ExternalCode string  `json:"external_code"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        *string `json:"email,omitempty"`
	HireDate     string  `json:"hire_date"`
	AgreementID  string  `json:"agreement_id"`
	OwnerID      string  `json:"-"` // From JWT
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	// ExternalCode
	if validator.IsEmpty(r.ExternalCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "external_code",
			Message: "external_code is required",
		})
	} else if !validator.IsValidMatricola(r.ExternalCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "external_code",
			Message: "external_code may only contain letters, numbers, dots, underscores, and hyphens",
		})
	}

	// FirstName
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if len(r.FirstName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not exceed 100 characters",
		})
	}

	// LastName
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if len(r.LastName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not exceed 100 characters",
		})
	}

	// Email
	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	// HireDate
	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be a valid date (YYYY-MM-DD)",
		})
	}

	// AgreementID
	if validator.IsEmpty(r.AgreementID) {
		errs = append(errs, validator.ValidationError{
			Field:   "agreement_id",
			Message: "agreement_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest represents the request structure for updating an
// employee.
type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	ExternalCode *string `json:"external_code,omitempty"`
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	HireDate     *string `json:"hire_date,omitempty"`
	AgreementID  *string `json:"agreement_id,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	// ID
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	// ExternalCode
	if r.ExternalCode != nil && !validator.IsValidMatricola(*r.ExternalCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "external_code",
			Message: "external_code may only contain letters, numbers, dots, underscores, and hyphens",
		})
	}

	// FirstName
	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}

	// LastName
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be empty",
		})
	}

	// Email
	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	// HireDate
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	// AgreementID
	if r.AgreementID != nil && validator.IsEmpty(*r.AgreementID) {
		errs = append(errs, validator.ValidationError{
			Field:   "agreement_id",
			Message: "agreement_id must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

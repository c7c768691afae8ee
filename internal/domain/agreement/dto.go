package agreement

import (
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/validator"
)

// AgreementResponse represents the response structure for a CCNL.
type AgreementResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Code             string `json:"code"`
	TotalAllowedDays int    `json:"total_allowed_days"`
	IsActive         bool   `json:"is_active"`
}

// CreateAgreementRequest represents the request structure for creating a CCNL.
type CreateAgreementRequest struct {
	Name             string `json:"name"`
	Code             string `json:"code"`
	TotalAllowedDays int    `json:"total_allowed_days"`
}

func (r *CreateAgreementRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	// Code
	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}
	if len(r.Code) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must not exceed 50 characters",
		})
	}

	// TotalAllowedDays
	if r.TotalAllowedDays <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_allowed_days",
			Message: "total_allowed_days must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAgreementRequest represents the request structure for updating a CCNL.
type UpdateAgreementRequest struct {
	ID               string  `json:"-"`
	Name             *string `json:"name,omitempty"`
	TotalAllowedDays *int    `json:"total_allowed_days,omitempty"`
	IsActive         *bool   `json:"is_active,omitempty"`
}

func (r *UpdateAgreementRequest) Validate() error {
	var errs validator.ValidationErrors

	// ID
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	// Name
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	// TotalAllowedDays
	if r.TotalAllowedDays != nil && *r.TotalAllowedDays <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_allowed_days",
			Message: "total_allowed_days must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

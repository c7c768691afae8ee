package absence

import (
	"time"

	"github.com/studiopaghe/comporto-backend-go/internal/pkg/validator"
)

// AbsenceResponse represents the response structure for an absence record.
type AbsenceResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	AbsenceType string  `json:"absence_type"`
	Description *string `json:"description,omitempty"`
	DaysCounted int     `json:"days_counted"`
}

func NewAbsenceResponse(a Absence) AbsenceResponse {
	return AbsenceResponse{
		ID:          a.ID,
		EmployeeID:  a.EmployeeID,
		StartDate:   a.StartDate.Format("2006-01-02"),
		EndDate:     a.EndDate.Format("2006-01-02"),
		AbsenceType: a.AbsenceType,
		Description: a.Description,
		DaysCounted: a.DaysCounted,
	}
}

// CreateAbsenceRequest represents the request structure for recording an
// absence against an employee.
type CreateAbsenceRequest struct {
	EmployeeID  string  `json:"-"` // From URL
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	AbsenceType string  `json:"absence_type"`
	Description *string `json:"description,omitempty"`
	DaysCounted int     `json:"days_counted"`
}

func (r *CreateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	// StartDate
	var start, end time.Time
	var ok bool
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if start, ok = validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	// EndDate
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if end, ok = validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	// AbsenceType
	if validator.IsEmpty(r.AbsenceType) {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_type",
			Message: "absence_type is required",
		})
	}
	if len(r.AbsenceType) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_type",
			Message: "absence_type must not exceed 50 characters",
		})
	}

	// DaysCounted
	if r.DaysCounted < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days_counted",
			Message: "days_counted must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAbsenceRequest represents the request structure for updating an
// absence record.
type UpdateAbsenceRequest struct {
	ID          string  `json:"-"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	AbsenceType *string `json:"absence_type,omitempty"`
	Description *string `json:"description,omitempty"`
	DaysCounted *int    `json:"days_counted,omitempty"`
}

func (r *UpdateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	// ID
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	// StartDate
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	// EndDate
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	// AbsenceType
	if r.AbsenceType != nil && validator.IsEmpty(*r.AbsenceType) {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_type",
			Message: "absence_type must not be empty",
		})
	}

	// DaysCounted
	if r.DaysCounted != nil && *r.DaysCounted < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days_counted",
			Message: "days_counted must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

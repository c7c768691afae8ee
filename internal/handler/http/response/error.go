package response

import (
	"errors"
	"net/http"

	"github.com/studiopaghe/comporto-backend-go/internal/domain/absence"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/agreement"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/auth"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/employee"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/user"
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Agreement domain errors
	case errors.Is(err, agreement.ErrAgreementNotFound):
		NotFound(w, "Agreement not found")
	case errors.Is(err, agreement.ErrAgreementCodeExists):
		Conflict(w, "Agreement code already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrMatricolaExists):
		Conflict(w, "Matricola already registered")

	// Absence domain errors
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/absence"
	"github.com/studiopaghe/comporto-backend-go/internal/handler/http/response"
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/validator"
	absenceService "github.com/studiopaghe/comporto-backend-go/internal/service/absence"
)

type AbsenceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type absenceHandlerImpl struct {
	absenceService absenceService.AbsenceService
}

func NewAbsenceHandler(service absenceService.AbsenceService) AbsenceHandler {
	return &absenceHandlerImpl{
		absenceService: service,
	}
}

// List implements AbsenceHandler
func (h *absenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "id")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "Employee ID must be a valid UUID", nil)
		return
	}

	absences, err := h.absenceService.List(r.Context(), employeeID, ownerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, absences)
}

// Create implements AbsenceHandler
func (h *absenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "id")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "Employee ID must be a valid UUID", nil)
		return
	}

	var createReq absence.CreateAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.EmployeeID = employeeID

	created, err := h.absenceService.Create(r.Context(), createReq, ownerID)
	if err != nil {
		slog.Error("Create absence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence recorded successfully", created)
}

// Update implements AbsenceHandler
func (h *absenceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Absence ID must be a valid UUID", nil)
		return
	}

	var updateReq absence.UpdateAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	updated, err := h.absenceService.Update(r.Context(), updateReq, ownerID)
	if err != nil {
		slog.Error("Update absence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence updated successfully", updated)
}

// Delete implements AbsenceHandler
func (h *absenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Absence ID must be a valid UUID", nil)
		return
	}

	if err := h.absenceService.Delete(r.Context(), id, ownerID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence deleted successfully", nil)
}

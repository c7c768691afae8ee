package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/agreement"
	"github.com/studiopaghe/comporto-backend-go/internal/handler/http/response"
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/validator"
	agreementService "github.com/studiopaghe/comporto-backend-go/internal/service/agreement"
)

type AgreementHandler interface {
	Initialize(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type agreementHandlerImpl struct {
	agreementService agreementService.AgreementService
}

func NewAgreementHandler(service agreementService.AgreementService) AgreementHandler {
	return &agreementHandlerImpl{
		agreementService: service,
	}
}

// Initialize implements AgreementHandler - seeds the default CCNL set.
func (h *agreementHandlerImpl) Initialize(w http.ResponseWriter, r *http.Request) {
	if err := h.agreementService.Initialize(r.Context()); err != nil {
		slog.Error("Initialize service error", "error", err)
		response.HandleError(w, err)
		return
	}

	agreements, err := h.agreementService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Database initialized", agreements)
}

// List implements AgreementHandler
func (h *agreementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	agreements, err := h.agreementService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, agreements)
}

// Create implements AgreementHandler
func (h *agreementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq agreement.CreateAgreementRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create agreement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.agreementService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create agreement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Agreement created successfully", created)
}

// Update implements AgreementHandler
func (h *agreementHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Agreement ID must be a valid UUID", nil)
		return
	}

	var updateReq agreement.UpdateAgreementRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update agreement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	if err := h.agreementService.Update(r.Context(), updateReq); err != nil {
		slog.Error("Update agreement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Agreement updated successfully", nil)
}

package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/employee"
	"github.com/studiopaghe/comporto-backend-go/internal/handler/http/response"
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/spreadsheet"
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/validator"
	employeeService "github.com/studiopaghe/comporto-backend-go/internal/service/employee"
)

// uploads above this size are rejected before parsing
const maxImportSize = 10 << 20 // 10 MiB

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employeeService.EmployeeService
}

func NewEmployeeHandler(service employeeService.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: service,
	}
}

// List implements EmployeeHandler
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employees, err := h.employeeService.List(r.Context(), ownerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Get implements EmployeeHandler
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Employee ID must be a valid UUID", nil)
		return
	}

	result, err := h.employeeService.Get(r.Context(), id, ownerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements EmployeeHandler
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.OwnerID = ownerID

	created, err := h.employeeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

// Update implements EmployeeHandler
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Employee ID must be a valid UUID", nil)
		return
	}

	var updateReq employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	updated, err := h.employeeService.Update(r.Context(), updateReq, ownerID)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", updated)
}

// Delete implements EmployeeHandler - deactivates, never removes rows.
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Employee ID must be a valid UUID", nil)
		return
	}

	if err := h.employeeService.Delete(r.Context(), id, ownerID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// Stats implements EmployeeHandler
func (h *employeeHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.employeeService.Stats(r.Context(), ownerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Export implements EmployeeHandler - serves the comporto report as an xlsx
// download.
func (h *employeeHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	table, err := h.employeeService.Export(r.Context(), ownerID)
	if err != nil {
		slog.Error("Export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	rows := make([][]string, 0, len(table.Rows)+5)
	rows = append(rows,
		[]string{table.Title},
		[]string{"Generato il: " + table.Date},
		[]string{fmt.Sprintf("Totale: %d | Scaduti: %d | In scadenza: %d | Conformi: %d",
			table.Stats.Total, table.Stats.Expired, table.Stats.ExpiringSoon, table.Stats.Compliant)},
		[]string{},
		table.Headers,
	)
	rows = append(rows, table.Rows...)

	data, err := spreadsheet.EncodeRows("Report Comporto", rows)
	if err != nil {
		slog.Error("Export encode error", "error", err)
		response.InternalServerError(w, "Failed to generate report")
		return
	}

	filename := fmt.Sprintf("report_comporto_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Import implements EmployeeHandler - bulk-creates employees from an
// uploaded xlsx workbook.
func (h *employeeHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		slog.Error("Import parse form error", "error", err)
		response.BadRequest(w, "Invalid multipart upload", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "File is required", nil)
		return
	}
	defer file.Close()

	rows, err := spreadsheet.Decode(file)
	if err != nil {
		slog.Error("Import decode error", "error", err)
		response.BadRequest(w, "Invalid xlsx file", nil)
		return
	}

	result, err := h.employeeService.Import(r.Context(), ownerID, rows)
	if err != nil {
		slog.Error("Import service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Import completed", "created", result.CreatedCount, "errors", result.ErrorCount)
	response.SuccessWithMessage(w, "Import completed", result)
}

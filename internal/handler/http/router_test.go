package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiopaghe/comporto-backend-go/internal/config"
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/jwt"
	"github.com/studiopaghe/comporto-backend-go/internal/repository/memory"
	absenceService "github.com/studiopaghe/comporto-backend-go/internal/service/absence"
	agreementService "github.com/studiopaghe/comporto-backend-go/internal/service/agreement"
	authService "github.com/studiopaghe/comporto-backend-go/internal/service/auth"
	employeeService "github.com/studiopaghe/comporto-backend-go/internal/service/employee"
)

const (
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
	handlerTestSecret     = "test-secret-key-for-jwt"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.FrontendURL = "http://localhost:3000"

	store := memory.NewStore()
	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)

	authSvc := authService.NewAuthService(store.Users(), jwtService)
	agreementSvc := agreementService.NewAgreementService(nil, store.Agreements())
	employeeSvc := employeeService.NewEmployeeService(store.Employees(), store.Agreements())
	absenceSvc := absenceService.NewAbsenceService(store.Absences(), store.Employees())

	return NewRouter(cfg, jwtService,
		NewAuthHandler(jwtService, authSvc),
		NewAgreementHandler(agreementSvc),
		NewEmployeeHandler(employeeSvc),
		NewAbsenceHandler(absenceSvc),
	)
}

func doRequest(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func registerAndLogin(t *testing.T, router http.Handler, email string) string {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"first_name":       "Mario",
		"last_name":        "Rossi",
		"email":            email,
		"password":         "password123",
		"confirm_password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	token, _ := decodeData(t, rec)["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func seededAgreementID(t *testing.T, router http.Handler, token string) string {
	t.Helper()

	rec := doRequest(t, router, http.MethodGet, "/api/v1/init", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/agreements", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data)
	return envelope.Data[0].ID
}

func TestAuthFlow(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "mario.rossi@example.com")

	rec := doRequest(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "mario.rossi@example.com", decodeData(t, rec)["email"])
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/v1/employees", "/api/v1/agreements", "/api/v1/employees/stats"} {
		rec := doRequest(t, router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestInitSeedsDefaultAgreements(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "mario.rossi@example.com")

	rec := doRequest(t, router, http.MethodGet, "/api/v1/init", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// a second call must not duplicate the seed set
	rec = doRequest(t, router, http.MethodGet, "/api/v1/init", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/agreements", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []struct {
			Code             string `json:"code"`
			TotalAllowedDays int    `json:"total_allowed_days"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 3)
	for _, a := range envelope.Data {
		assert.Equal(t, 180, a.TotalAllowedDays)
	}
}

func TestEmployeeLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "mario.rossi@example.com")
	agreementID := seededAgreementID(t, router, token)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/employees", token, map[string]interface{}{
		"external_code": "EMP001",
		"first_name":    "Anna",
		"last_name":     "Bianchi",
		"hire_date":     "2023-05-10",
		"agreement_id":  agreementID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeData(t, rec)
	employeeID, _ := created["id"].(string)
	require.NotEmpty(t, employeeID)
	assert.Equal(t, float64(180), created["remaining_days"])
	assert.Equal(t, "compliant", created["status"])

	// record an absence that drops the employee into the critical band
	rec = doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/v1/employees/%s/absences", employeeID), token, map[string]interface{}{
		"start_date":   "2024-01-01",
		"end_date":     "2024-06-22",
		"absence_type": "malattia",
		"days_counted": 174,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/api/v1/employees/"+employeeID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := decodeData(t, rec)
	assert.Equal(t, float64(6), fetched["remaining_days"])
	assert.Equal(t, "critical", fetched["status"])

	rec = doRequest(t, router, http.MethodGet, "/api/v1/employees/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeData(t, rec)
	assert.Equal(t, float64(1), stats["total"])
	assert.Equal(t, float64(1), stats["expiringSoon"])

	// soft delete removes the employee from list and stats
	rec = doRequest(t, router, http.MethodDelete, "/api/v1/employees/"+employeeID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/employees/"+employeeID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/employees/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decodeData(t, rec)["total"])
}

func TestEmployeesAreScopedToOwner(t *testing.T) {
	router := newTestRouter(t)
	ownerToken := registerAndLogin(t, router, "owner@example.com")
	intruderToken := registerAndLogin(t, router, "intruder@example.com")
	agreementID := seededAgreementID(t, router, ownerToken)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/employees", ownerToken, map[string]interface{}{
		"external_code": "EMP001",
		"first_name":    "Anna",
		"last_name":     "Bianchi",
		"hire_date":     "2023-05-10",
		"agreement_id":  agreementID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	employeeID, _ := decodeData(t, rec)["id"].(string)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/employees/"+employeeID, intruderToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/v1/employees/"+employeeID, intruderToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMalformedIDsAreRejectedBeforeLookup(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "mario.rossi@example.com")

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/employees/not-a-uuid"},
		{http.MethodDelete, "/api/v1/employees/123"},
		{http.MethodGet, "/api/v1/employees/not-a-uuid/absences"},
		{http.MethodDelete, "/api/v1/absences/not-a-uuid"},
		{http.MethodPut, "/api/v1/agreements/not-a-uuid"},
	}
	for _, tc := range cases {
		rec := doRequest(t, router, tc.method, tc.path, token, map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.path)
	}
}

func TestExportServesWorkbookDownload(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "mario.rossi@example.com")

	rec := doRequest(t, router, http.MethodGet, "/api/v1/employees/export", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "report_comporto_")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestDuplicateMatricolaConflicts(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "mario.rossi@example.com")
	agreementID := seededAgreementID(t, router, token)

	body := map[string]interface{}{
		"external_code": "EMP001",
		"first_name":    "Anna",
		"last_name":     "Bianchi",
		"hire_date":     "2023-05-10",
		"agreement_id":  agreementID,
	}
	rec := doRequest(t, router, http.MethodPost, "/api/v1/employees", token, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/employees", token, body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

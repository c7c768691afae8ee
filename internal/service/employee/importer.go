package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/studiopaghe/comporto-backend-go/internal/domain/agreement"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/employee"
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/validator"
)

// columnMapping binds a canonical field to the spreadsheet headers that may
// carry it: the Italian header consultants actually use, then an English
// fallback. The list is resolved once per row instead of scattering key
// lookups.
type columnMapping struct {
	field   string
	aliases []string
}

var importColumns = []columnMapping{
	{"external_code", []string{"Matricola", "Employee ID"}},
	{"first_name", []string{"Nome", "First Name"}},
	{"last_name", []string{"Cognome", "Last Name"}},
	{"email", []string{"Email", "E-mail"}},
	{"hire_date", []string{"Data Assunzione", "Hire Date"}},
	{"agreement", []string{"CCNL", "Agreement"}},
}

// resolveColumns flattens a header-keyed row into canonical fields. The
// first alias with a non-empty value wins.
func resolveColumns(row map[string]string) map[string]string {
	fields := make(map[string]string, len(importColumns))
	for _, m := range importColumns {
		for _, alias := range m.aliases {
			if v, ok := row[alias]; ok && !validator.IsEmpty(v) {
				fields[m.field] = strings.TrimSpace(v)
				break
			}
		}
	}
	return fields
}

// rowNumber converts a zero-based row index into the number shown to the
// operator: one for 1-indexing plus one for the header row.
func rowNumber(idx int) int {
	return idx + 2
}

// hire dates arrive either ISO or in the Italian day-first form, depending
// on how the sheet was produced.
var hireDateFormats = []string{"2006-01-02", "02/01/2006"}

// parseImportRow builds a create request from one spreadsheet row. A missing
// matricola is synthesized from the import timestamp plus the row index so
// it stays unique within the batch; a CCNL column matching an existing
// agreement name case-insensitively overrides the fallback agreement.
func parseImportRow(row map[string]string, idx int, agreements []agreement.Agreement, now time.Time) (employee.CreateEmployeeRequest, error) {
	fields := resolveColumns(row)

	firstName := fields["first_name"]
	lastName := fields["last_name"]
	if firstName == "" || lastName == "" {
		return employee.CreateEmployeeRequest{}, fmt.Errorf("Riga %d: nome o cognome mancante", rowNumber(idx))
	}

	externalCode := fields["external_code"]
	if externalCode == "" {
		externalCode = fmt.Sprintf("IMP%d-%d", now.Unix(), idx)
	}

	hireDate := now.Format("2006-01-02")
	if raw := fields["hire_date"]; raw != "" {
		parsed := false
		for _, format := range hireDateFormats {
			if t, err := time.Parse(format, raw); err == nil {
				hireDate = t.Format("2006-01-02")
				parsed = true
				break
			}
		}
		if !parsed {
			return employee.CreateEmployeeRequest{}, fmt.Errorf("Riga %d: data assunzione non valida: %q", rowNumber(idx), raw)
		}
	}

	agreementID := agreements[0].ID
	if name := fields["agreement"]; name != "" {
		for _, a := range agreements {
			if strings.EqualFold(a.Name, name) {
				agreementID = a.ID
				break
			}
		}
	}

	req := employee.CreateEmployeeRequest{
		ExternalCode: externalCode,
		FirstName:    firstName,
		LastName:     lastName,
		HireDate:     hireDate,
		AgreementID:  agreementID,
	}
	if email := fields["email"]; email != "" {
		req.Email = &email
	}

	return req, nil
}

// Import creates employees from decoded spreadsheet rows. Rows are processed
// in input order and independently: a bad row contributes one error string
// and never aborts the batch.
func (s *employeeServiceImpl) Import(ctx context.Context, ownerID string, rows []map[string]string) (employee.ImportResult, error) {
	agreements, err := s.agreementRepo.List(ctx)
	if err != nil {
		return employee.ImportResult{}, fmt.Errorf("failed to list agreements: %w", err)
	}
	if len(agreements) == 0 {
		return employee.ImportResult{}, agreement.ErrAgreementNotFound
	}

	result := employee.ImportResult{
		Created: []employee.EmployeeResponse{},
		Errors:  []string{},
	}
	now := time.Now()

	for i, row := range rows {
		req, err := parseImportRow(row, i, agreements, now)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		req.OwnerID = ownerID

		created, err := s.Create(ctx, req)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Riga %d: %v", rowNumber(i), err))
			continue
		}
		result.Created = append(result.Created, created)
	}

	result.CreatedCount = len(result.Created)
	result.ErrorCount = len(result.Errors)
	return result, nil
}

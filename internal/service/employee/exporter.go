package employee

import (
	"context"
	"strconv"
	"time"

	"github.com/studiopaghe/comporto-backend-go/internal/comporto"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/employee"
)

// ExportTable is the spreadsheet-ready report: Italian headers, one row per
// active employee, plus the aggregate counters printed above the table.
type ExportTable struct {
	Title   string
	Date    string
	Headers []string
	Rows    [][]string
	Stats   employee.Stats
}

var exportHeaders = []string{
	"Matricola",
	"Dipendente",
	"Email",
	"CCNL",
	"Giorni Comporto",
	"Giorni Utilizzati",
	"Giorni Rimanenti",
	"Stato",
	"Data Assunzione",
}

// BuildExportTable renders employees into report rows. The Stato column uses
// the coarser three-way export label rather than the four-band status shown
// in the API.
func BuildExportTable(employees []employee.WithRelations, now time.Time) ExportTable {
	table := ExportTable{
		Title:   "Report Comporto Dipendenti",
		Date:    now.Format("02/01/2006"),
		Headers: exportHeaders,
		Rows:    make([][]string, 0, len(employees)),
		Stats:   ComputeStats(employees),
	}

	for _, e := range employees {
		used := comporto.UsedDays(e.Absences)
		remaining := comporto.RemainingDays(e.Agreement.TotalAllowedDays, e.Absences)

		email := "-"
		if e.Email != nil && *e.Email != "" {
			email = *e.Email
		}

		table.Rows = append(table.Rows, []string{
			e.ExternalCode,
			e.FullName(),
			email,
			e.Agreement.Name,
			strconv.Itoa(e.Agreement.TotalAllowedDays),
			strconv.Itoa(used),
			strconv.Itoa(remaining),
			comporto.ExportLabel(remaining),
			e.HireDate.Format("02/01/2006"),
		})
	}

	return table
}

func (s *employeeServiceImpl) Export(ctx context.Context, ownerID string) (ExportTable, error) {
	employees, err := s.employeeRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return ExportTable{}, err
	}
	return BuildExportTable(employees, time.Now()), nil
}

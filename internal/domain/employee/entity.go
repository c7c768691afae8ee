package employee

import (
	"time"

	"github.com/studiopaghe/comporto-backend-go/internal/domain/absence"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/agreement"
)

// Employee is a tracked worker owned by exactly one account. Deletion is
// soft: IsActive flips to false and the row stays put.
type Employee struct {
	ID           string
	ExternalCode string // matricola
	FirstName    string
	LastName     string
	Email        *string
	HireDate     time.Time
	AgreementID  string
	OwnerID      string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// WithRelations carries the employee together with its CCNL and full absence
// history, which is everything the comporto engine needs.
type WithRelations struct {
	Employee
	Agreement agreement.Agreement
	Absences  []absence.Absence
}

package absence

import "time"

// Absence is a single recorded absence period. DaysCounted is the number of
// days that count toward the comporto budget; it is supplied by the caller
// and is not derived from the date range.
type Absence struct {
	ID          string
	EmployeeID  string
	StartDate   time.Time
	EndDate     time.Time
	AbsenceType string
	Description *string
	DaysCounted int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package agreement

import "time"

// Agreement is a CCNL (Contratto Collettivo Nazionale di Lavoro) entry. The
// comporto budget is a flat number of days; no per-seniority variants are
// modelled.
type Agreement struct {
	ID               string
	Name             string
	Code             string
	TotalAllowedDays int
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

package fixtures

import "github.com/studiopaghe/comporto-backend-go/internal/domain/agreement"

// DefaultAgreements is the CCNL set seeded when the registry is empty. The
// 180-day comporto is the common baseline across these contracts; consultants
// adjust per-agreement budgets afterwards if their sector differs.
func DefaultAgreements() []agreement.Agreement {
	return []agreement.Agreement{
		{
			Name:             "Cooperative Sociali",
			Code:             "COOP_SOCIALI",
			TotalAllowedDays: 180,
			IsActive:         true,
		},
		{
			Name:             "Commercio",
			Code:             "COMMERCIO",
			TotalAllowedDays: 180,
			IsActive:         true,
		},
		{
			Name:             "Metalmeccanica",
			Code:             "METALMECCANICA",
			TotalAllowedDays: 180,
			IsActive:         true,
		},
	}
}

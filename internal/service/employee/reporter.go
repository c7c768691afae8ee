package employee

import (
	"github.com/studiopaghe/comporto-backend-go/internal/comporto"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/employee"
)

// ComputeStats buckets each employee by classified remaining days. The four
// bands collapse into three counters: only Critical counts as expiring soon,
// while Warning folds into compliant together with Compliant. Callers pass
// active employees only; soft-deleted ones never reach this function.
func ComputeStats(employees []employee.WithRelations) employee.Stats {
	stats := employee.Stats{Total: len(employees)}

	for _, e := range employees {
		remaining := comporto.RemainingDays(e.Agreement.TotalAllowedDays, e.Absences)
		switch comporto.Classify(remaining) {
		case comporto.StatusExpired:
			stats.Expired++
		case comporto.StatusCritical:
			stats.ExpiringSoon++
		default:
			stats.Compliant++
		}
	}

	return stats
}

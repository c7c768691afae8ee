package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/employee"
)

func TestComputeStatsFoldsBands(t *testing.T) {
	employees := []employee.WithRelations{
		withUsedDays("EMP001", 180, 181), // remaining -1: expired
		withUsedDays("EMP002", 180, 180), // remaining 0: expiring soon
		withUsedDays("EMP003", 180, 170), // remaining 10: expiring soon
		withUsedDays("EMP004", 180, 169), // remaining 11: warning, counts compliant
		withUsedDays("EMP005", 180, 150), // remaining 30: warning, counts compliant
		withUsedDays("EMP006", 180, 149), // remaining 31: compliant
	}

	stats := ComputeStats(employees)

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 1, stats.Expired)
	assert.Equal(t, 2, stats.ExpiringSoon)
	assert.Equal(t, 3, stats.Compliant)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, employee.Stats{}, stats)
}

// Package memory holds process-local implementations of the repository
// interfaces. The driver is selected by configuration for local runs and
// tests; it is never used as a runtime fallback when the database is down,
// so volatile state cannot be mistaken for durable state.
package memory

import (
	"sync"

	"github.com/studiopaghe/comporto-backend-go/internal/domain/absence"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/agreement"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/employee"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/user"
)

// Store owns all in-memory state. Individual repositories share it and take
// the same lock, matching the single-connection view the relational driver
// provides.
type Store struct {
	mu         sync.RWMutex
	users      map[string]user.User
	agreements map[string]agreement.Agreement
	employees  map[string]employee.Employee
	absences   map[string]absence.Absence
}

func NewStore() *Store {
	return &Store{
		users:      make(map[string]user.User),
		agreements: make(map[string]agreement.Agreement),
		employees:  make(map[string]employee.Employee),
		absences:   make(map[string]absence.Absence),
	}
}

func (s *Store) Users() user.UserRepository {
	return &userRepo{store: s}
}

func (s *Store) Agreements() agreement.AgreementRepository {
	return &agreementRepo{store: s}
}

func (s *Store) Employees() employee.EmployeeRepository {
	return &employeeRepo{store: s}
}

func (s *Store) Absences() absence.AbsenceRepository {
	return &absenceRepo{store: s}
}

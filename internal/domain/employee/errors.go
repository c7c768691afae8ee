package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrMatricolaExists  = errors.New("employee with this matricola already exists")
)

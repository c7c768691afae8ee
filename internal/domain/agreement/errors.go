package agreement

import "errors"

var (
	ErrAgreementNotFound   = errors.New("agreement not found")
	ErrAgreementCodeExists = errors.New("agreement with this code already exists")
)

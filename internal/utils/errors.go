package utils

import "errors"

// Common application errors used across services.
var (
	ErrMethodNotAllowed   = errors.New("Method not allowed")
	ErrInvalidQuery       = errors.New("Invalid query")
	ErrForbiddenOperation = errors.New("Forbidden operation")
	ErrNotFound           = errors.New("NOT_FOUND")
	ErrInvalidStatus      = errors.New("INVALID_STATUS")
	ErrInvalidPosition    = errors.New("INVALID_POSITION")
	ErrDuplicateSlug      = errors.New("DUPLICATE_SLUG")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrAccountInactive    = errors.New("ACCOUNT_INACTIVE")
	ErrInvalidToken       = errors.New("INVALID_TOKEN")
)

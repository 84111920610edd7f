package shared

import "errors"

// CSRF verification failures. The middleware answers both with 403.
var (
	ErrCSRFTokenMissing  = errors.New("csrf token missing")
	ErrCSRFTokenMismatch = errors.New("csrf token mismatch")
)

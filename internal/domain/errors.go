// internal/domain/errors.go
package domain

import "errors"

// ErrInvalidScript is returned when a script breaks one of the step invariants.
// Callers can check for it using errors.Is regardless of which rule was broken.
var ErrInvalidScript = errors.New("invalid script")

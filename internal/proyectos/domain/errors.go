package domain

import (
	"errors"
	"strings"
)

// ErrNotFound signals that an operation addressed a nonexistent project.
var ErrNotFound = errors.New("proyecto no encontrado")

// ValidationError collects every violated field constraint of a create or
// update call. Callers can enumerate all messages, not just the first.
type ValidationError struct {
	Errores []string
}

func (e *ValidationError) Error() string {
	return "validación fallida: " + strings.Join(e.Errores, "; ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

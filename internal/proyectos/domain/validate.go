package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	nombreMin = 3
	nombreMax = 120
)

// Validate checks every field constraint and returns a ValidationError
// listing one message per violation, or nil when the input is acceptable.
// It also normalizes the input: nombre and estado are trimmed, and an empty
// estado falls back to EstadoDefault before the required check runs against
// the caller-provided value.
func (in *ProyectoInput) Validate() *ValidationError {
	var errores []string

	in.Nombre = strings.TrimSpace(in.Nombre)
	in.Estado = strings.TrimSpace(in.Estado)

	if in.Nombre == "" {
		errores = append(errores, "El nombre es obligatorio")
	} else if n := utf8.RuneCountInString(in.Nombre); n < nombreMin || n > nombreMax {
		errores = append(errores, "El nombre debe tener entre 3 y 120 caracteres")
	}

	if in.Estado == "" {
		in.Estado = EstadoDefault
	}

	if strings.TrimSpace(in.FechaInicio) == "" {
		errores = append(errores, "La fecha de inicio es obligatoria")
	} else if !validDate(in.FechaInicio) {
		errores = append(errores, "La fecha de inicio debe tener un formato válido")
	}

	if in.FechaFin != nil && !validDate(*in.FechaFin) {
		errores = append(errores, "La fecha de fin debe tener un formato válido")
	}

	if in.Presupuesto != nil && in.Presupuesto.IsNegative() {
		errores = append(errores, "El presupuesto no puede ser negativo")
	}

	if len(errores) > 0 {
		return &ValidationError{Errores: errores}
	}
	return nil
}

func validDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

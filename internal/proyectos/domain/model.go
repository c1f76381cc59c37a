package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for fechaInicio and fechaFin. Dates travel as
// plain strings so they round-trip unchanged through the API.
const DateLayout = "2006-01-02"

// Proyecto is the single persisted entity of the system. It is
// storage-agnostic and shared across repository, service and HTTP layers.
type Proyecto struct {
	ID          string           `json:"id"`
	Nombre      string           `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Estado      string           `json:"estado"`
	FechaInicio string           `json:"fechaInicio"`
	FechaFin    *string          `json:"fechaFin"`
	Presupuesto *decimal.Decimal `json:"presupuesto"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ProyectoInput carries the writable fields of a create or full-record
// update call. Fields provided overwrite fields stored; there is no
// partial-patch semantics.
type ProyectoInput struct {
	Nombre      string           `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Estado      string           `json:"estado"`
	FechaInicio string           `json:"fechaInicio"`
	FechaFin    *string          `json:"fechaFin"`
	Presupuesto *decimal.Decimal `json:"presupuesto"`
}

// EstadoDefault seeds estado when the caller leaves it empty, mirroring the
// column default.
const EstadoDefault = "planeado"

// EstadoConteo is one chart bucket: how many projects share an estado label.
type EstadoConteo struct {
	Estado   string `json:"estado"`
	Cantidad int    `json:"cantidad"`
}

// ProyectoAnalizado is a project joined with its AI-generated (or templated)
// note. DescripcionIA is nil when the generator returned no usable note for
// this id. Produced transiently, never stored.
type ProyectoAnalizado struct {
	ID            string  `json:"id"`
	Nombre        string  `json:"nombre"`
	Descripcion   *string `json:"descripcion"`
	Estado        string  `json:"estado"`
	DescripcionIA *string `json:"descripcionIA"`
}

// Analisis is the full portfolio analysis result. Error carries the upstream
// failure text when the result was produced in degraded mode; it is a
// diagnostic field, not an error signal.
type Analisis struct {
	Resumen             string              `json:"resumen"`
	ProyectosAnalizados []ProyectoAnalizado `json:"proyectosAnalizados"`
	Error               string              `json:"error,omitempty"`
}

// ProyectoResumen is the projection the analysis pipeline works with.
type ProyectoResumen struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Estado      string  `json:"estado"`
}

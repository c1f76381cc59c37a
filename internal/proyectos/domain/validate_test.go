package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() ProyectoInput {
	return ProyectoInput{
		Nombre:      "Migración a la nube",
		Estado:      "En progreso",
		FechaInicio: "2024-01-15",
	}
}

func TestValidate_OK(t *testing.T) {
	in := validInput()
	assert.Nil(t, in.Validate())
}

func TestValidate_NombreObligatorio(t *testing.T) {
	in := validInput()
	in.Nombre = "   "

	ve := in.Validate()
	require.NotNil(t, ve)
	assert.Contains(t, ve.Errores, "El nombre es obligatorio")
}

func TestValidate_NombreLongitud(t *testing.T) {
	in := validInput()
	in.Nombre = "ab"

	ve := in.Validate()
	require.NotNil(t, ve)
	assert.Contains(t, ve.Errores, "El nombre debe tener entre 3 y 120 caracteres")

	in = validInput()
	in.Nombre = strings.Repeat("a", 121)
	ve = in.Validate()
	require.NotNil(t, ve)
	assert.Contains(t, ve.Errores, "El nombre debe tener entre 3 y 120 caracteres")

	in = validInput()
	in.Nombre = "abc"
	assert.Nil(t, in.Validate())

	in = validInput()
	in.Nombre = strings.Repeat("a", 120)
	assert.Nil(t, in.Validate())
}

func TestValidate_FechaInicioObligatoria(t *testing.T) {
	in := validInput()
	in.FechaInicio = ""

	ve := in.Validate()
	require.NotNil(t, ve)
	assert.Contains(t, ve.Errores, "La fecha de inicio es obligatoria")
}

func TestValidate_FechaInicioFormato(t *testing.T) {
	in := validInput()
	in.FechaInicio = "15/01/2024"

	ve := in.Validate()
	require.NotNil(t, ve)
	assert.Contains(t, ve.Errores, "La fecha de inicio debe tener un formato válido")
}

func TestValidate_FechaFinOpcional(t *testing.T) {
	in := validInput()
	assert.Nil(t, in.Validate())

	fin := "2024-06-30"
	in.FechaFin = &fin
	assert.Nil(t, in.Validate())

	mala := "no-es-fecha"
	in.FechaFin = &mala
	ve := in.Validate()
	require.NotNil(t, ve)
	assert.Contains(t, ve.Errores, "La fecha de fin debe tener un formato válido")
}

func TestValidate_FechaFinAnteriorNoSeRechaza(t *testing.T) {
	// Ordering against fechaInicio is nudged in the UI only, never enforced here.
	in := validInput()
	fin := "2020-01-01"
	in.FechaFin = &fin
	assert.Nil(t, in.Validate())
}

func TestValidate_PresupuestoNegativo(t *testing.T) {
	in := validInput()
	neg := decimal.NewFromInt(-100)
	in.Presupuesto = &neg

	ve := in.Validate()
	require.NotNil(t, ve)
	assert.Contains(t, ve.Errores, "El presupuesto no puede ser negativo")

	cero := decimal.Zero
	in.Presupuesto = &cero
	assert.Nil(t, in.Validate())
}

func TestValidate_EstadoVacioUsaDefault(t *testing.T) {
	in := validInput()
	in.Estado = ""

	require.Nil(t, in.Validate())
	assert.Equal(t, EstadoDefault, in.Estado)
}

func TestValidate_AcumulaTodosLosErrores(t *testing.T) {
	neg := decimal.NewFromInt(-1)
	in := ProyectoInput{Nombre: "ab", Presupuesto: &neg}

	ve := in.Validate()
	require.NotNil(t, ve)
	assert.Len(t, ve.Errores, 3)
	assert.Contains(t, ve.Error(), "El nombre debe tener entre 3 y 120 caracteres")
}

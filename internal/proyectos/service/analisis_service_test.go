package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion-proyectos/proyectos-backend/internal/proyectos/domain"
	"github.com/gestion-proyectos/proyectos-backend/internal/proyectos/llm"
)

type fakeStore struct {
	resumenes []domain.ProyectoResumen
	err       error
}

func (f *fakeStore) Create(ctx context.Context, in domain.ProyectoInput) (*domain.Proyecto, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStore) List(ctx context.Context) ([]domain.Proyecto, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*domain.Proyecto, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeStore) Update(ctx context.Context, id string, in domain.ProyectoInput) (*domain.Proyecto, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeStore) Delete(ctx context.Context, id string) (bool, error) {
	return false, nil
}

func (f *fakeStore) CountByEstado(ctx context.Context) ([]domain.EstadoConteo, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStore) ListForAnalysis(ctx context.Context) ([]domain.ProyectoResumen, error) {
	return f.resumenes, f.err
}

type fakeResumidor struct {
	res      *llm.Resultado
	err      error
	llamadas int
}

func (f *fakeResumidor) Resumir(ctx context.Context, proyectos []domain.ProyectoResumen) (*llm.Resultado, error) {
	f.llamadas++
	return f.res, f.err
}

func proyectosDePrueba() []domain.ProyectoResumen {
	desc := "digitalizar la facturación"
	return []domain.ProyectoResumen{
		{ID: "id-1", Nombre: "Alpha", Descripcion: &desc, Estado: "En progreso"},
		{ID: "id-2", Nombre: "Beta", Estado: "Pendiente"},
		{ID: "id-3", Nombre: "Gamma", Estado: "Finalizado"},
	}
}

func TestGenerar_PortafolioVacio(t *testing.T) {
	ia := &fakeResumidor{}
	svc := NewAnalisisService(&fakeStore{resumenes: nil}, ia)

	res, err := svc.Generar(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Aún no hay proyectos registrados para analizar.", res.Resumen)
	assert.Empty(t, res.ProyectosAnalizados)
	assert.NotNil(t, res.ProyectosAnalizados, "must serialize as [] and not null")
	assert.Zero(t, ia.llamadas, "the gateway must not be consulted for an empty portfolio")
}

func TestGenerar_JoinPorID(t *testing.T) {
	ia := &fakeResumidor{res: &llm.Resultado{
		Resumen: "Portafolio saludable.",
		Descripciones: map[string]string{
			"id-1": "Alpha avanza según lo previsto.",
			"id-3": "Gamma cerró sus entregables.",
		},
	}}
	svc := NewAnalisisService(&fakeStore{resumenes: proyectosDePrueba()}, ia)

	res, err := svc.Generar(context.Background())
	require.NoError(t, err)
	require.Len(t, res.ProyectosAnalizados, 3)

	assert.Equal(t, "Portafolio saludable.", res.Resumen)
	assert.Empty(t, res.Error)

	require.NotNil(t, res.ProyectosAnalizados[0].DescripcionIA)
	assert.Equal(t, "Alpha avanza según lo previsto.", *res.ProyectosAnalizados[0].DescripcionIA)

	// A project the generator skipped gets a null note, never an error.
	assert.Nil(t, res.ProyectosAnalizados[1].DescripcionIA)

	require.NotNil(t, res.ProyectosAnalizados[2].DescripcionIA)
	assert.Equal(t, "Gamma cerró sus entregables.", *res.ProyectosAnalizados[2].DescripcionIA)
}

func TestGenerar_FallbackConNotasPlantilla(t *testing.T) {
	ia := &fakeResumidor{err: errors.New("la respuesta de la IA no es JSON válido")}
	svc := NewAnalisisService(&fakeStore{resumenes: proyectosDePrueba()}, ia)

	res, err := svc.Generar(context.Background())
	require.NoError(t, err, "gateway failures must not propagate")
	require.Len(t, res.ProyectosAnalizados, 3)

	assert.Equal(t, "No fue posible generar el resumen automático. Verifica la configuración de la IA y vuelve a intentarlo.", res.Resumen)
	assert.Equal(t, "la respuesta de la IA no es JSON válido", res.Error)

	require.NotNil(t, res.ProyectosAnalizados[0].DescripcionIA)
	assert.Equal(t,
		"Alpha se encuentra en progreso y tiene como objetivo digitalizar la facturación.",
		*res.ProyectosAnalizados[0].DescripcionIA)

	require.NotNil(t, res.ProyectosAnalizados[1].DescripcionIA)
	assert.Equal(t,
		"Beta se encuentra pendiente y aún no cuenta con una descripción detallada.",
		*res.ProyectosAnalizados[1].DescripcionIA)
}

func TestGenerar_FallbackSinCredencial(t *testing.T) {
	ia := &fakeResumidor{err: llm.ErrSinCredencial}
	svc := NewAnalisisService(&fakeStore{resumenes: proyectosDePrueba()}, ia)

	res, err := svc.Generar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, llm.ErrSinCredencial.Error(), res.Error)
	assert.Equal(t, 1, ia.llamadas)
}

func TestGenerar_ErrorDeStoreSePropaga(t *testing.T) {
	svc := NewAnalisisService(&fakeStore{err: errors.New("conexión perdida")}, &fakeResumidor{})

	_, err := svc.Generar(context.Background())
	require.Error(t, err)
}

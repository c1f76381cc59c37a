package service

import (
	"context"
	"log"
	"strings"

	"github.com/gestion-proyectos/proyectos-backend/internal/proyectos/domain"
	"github.com/gestion-proyectos/proyectos-backend/internal/proyectos/llm"
)

// Resumidor is the AI gateway contract, implemented by llm.Client.
type Resumidor interface {
	Resumir(ctx context.Context, proyectos []domain.ProyectoResumen) (*llm.Resultado, error)
}

const (
	resumenSinProyectos = "Aún no hay proyectos registrados para analizar."
	resumenFallback     = "No fue posible generar el resumen automático. Verifica la configuración de la IA y vuelve a intentarlo."
)

// AnalisisService orchestrates the portfolio analysis: record store, prompt,
// gateway, and the degraded fallback when the gateway fails.
type AnalisisService struct {
	repo Store
	ia   Resumidor
}

// NewAnalisisService creates a new analysis service
func NewAnalisisService(repo Store, ia Resumidor) *AnalisisService {
	return &AnalisisService{repo: repo, ia: ia}
}

// Generar produces the portfolio analysis. Gateway failures of any kind are
// not propagated: the result degrades to templated notes and still reads as
// a success to the HTTP caller, with the original error kept as a
// diagnostic field.
func (s *AnalisisService) Generar(ctx context.Context) (*domain.Analisis, error) {
	proyectos, err := s.repo.ListForAnalysis(ctx)
	if err != nil {
		return nil, err
	}

	if len(proyectos) == 0 {
		return &domain.Analisis{
			Resumen:             resumenSinProyectos,
			ProyectosAnalizados: []domain.ProyectoAnalizado{},
		}, nil
	}

	res, err := s.ia.Resumir(ctx, proyectos)
	if err != nil {
		log.Printf("análisis IA no disponible, usando fallback: %v", err)
		return fallbackAnalisis(proyectos, err), nil
	}

	analizados := make([]domain.ProyectoAnalizado, 0, len(proyectos))
	for _, p := range proyectos {
		pa := domain.ProyectoAnalizado{
			ID:          p.ID,
			Nombre:      p.Nombre,
			Descripcion: p.Descripcion,
			Estado:      p.Estado,
		}
		if nota, ok := res.Descripciones[p.ID]; ok {
			pa.DescripcionIA = &nota
		}
		analizados = append(analizados, pa)
	}

	return &domain.Analisis{
		Resumen:             res.Resumen,
		ProyectosAnalizados: analizados,
	}, nil
}

func fallbackAnalisis(proyectos []domain.ProyectoResumen, cause error) *domain.Analisis {
	analizados := make([]domain.ProyectoAnalizado, 0, len(proyectos))
	for _, p := range proyectos {
		nota := notaFallback(p)
		analizados = append(analizados, domain.ProyectoAnalizado{
			ID:            p.ID,
			Nombre:        p.Nombre,
			Descripcion:   p.Descripcion,
			Estado:        p.Estado,
			DescripcionIA: &nota,
		})
	}
	return &domain.Analisis{
		Resumen:             resumenFallback,
		ProyectosAnalizados: analizados,
		Error:               cause.Error(),
	}
}

func notaFallback(p domain.ProyectoResumen) string {
	estado := strings.ToLower(p.Estado)
	if p.Descripcion != nil && strings.TrimSpace(*p.Descripcion) != "" {
		return p.Nombre + " se encuentra " + estado + " y tiene como objetivo " + *p.Descripcion + "."
	}
	return p.Nombre + " se encuentra " + estado + " y aún no cuenta con una descripción detallada."
}

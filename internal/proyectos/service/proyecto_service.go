package service

import (
	"context"

	"github.com/gestion-proyectos/proyectos-backend/internal/proyectos/domain"
)

// Store is the persistence contract the service depends on, implemented by
// repository.ProyectoRepository.
type Store interface {
	Create(ctx context.Context, in domain.ProyectoInput) (*domain.Proyecto, error)
	List(ctx context.Context) ([]domain.Proyecto, error)
	GetByID(ctx context.Context, id string) (*domain.Proyecto, error)
	Update(ctx context.Context, id string, in domain.ProyectoInput) (*domain.Proyecto, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountByEstado(ctx context.Context) ([]domain.EstadoConteo, error)
	ListForAnalysis(ctx context.Context) ([]domain.ProyectoResumen, error)
}

// ProyectoService handles project-related business logic
type ProyectoService struct {
	repo Store
}

// NewProyectoService creates a new project service
func NewProyectoService(repo Store) *ProyectoService {
	return &ProyectoService{repo: repo}
}

// Create creates a new project
func (s *ProyectoService) Create(ctx context.Context, in domain.ProyectoInput) (*domain.Proyecto, error) {
	return s.repo.Create(ctx, in)
}

// List returns all projects, newest first
func (s *ProyectoService) List(ctx context.Context) ([]domain.Proyecto, error) {
	return s.repo.List(ctx)
}

// GetByID returns one project or domain.ErrNotFound
func (s *ProyectoService) GetByID(ctx context.Context, id string) (*domain.Proyecto, error) {
	return s.repo.GetByID(ctx, id)
}

// Update overwrites a project's fields
func (s *ProyectoService) Update(ctx context.Context, id string, in domain.ProyectoInput) (*domain.Proyecto, error) {
	return s.repo.Update(ctx, id, in)
}

// Delete removes a project
func (s *ProyectoService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// DatosGraficos returns the count-by-estado buckets unmodified.
func (s *ProyectoService) DatosGraficos(ctx context.Context) ([]domain.EstadoConteo, error) {
	return s.repo.CountByEstado(ctx)
}

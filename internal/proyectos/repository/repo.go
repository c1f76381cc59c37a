package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gestion-proyectos/proyectos-backend/internal/proyectos/domain"
)

// ProyectoRepository provides persistence operations for projects. It is the
// only reader/writer of the proyectos table; every call is a direct
// round-trip, there is no caching layer.
type ProyectoRepository struct {
	db *pgxpool.Pool
}

// NewProyectoRepository creates a new project repository
func NewProyectoRepository(db *pgxpool.Pool) *ProyectoRepository {
	return &ProyectoRepository{db: db}
}

// proyectoColumns renders dates and presupuesto as text so values round-trip
// unchanged through the API.
const proyectoColumns = `
id, nombre, descripcion, estado,
to_char(fecha_inicio, 'YYYY-MM-DD'),
to_char(fecha_fin, 'YYYY-MM-DD'),
presupuesto::text,
created_at, updated_at`

// Create validates the input and inserts a new project with a fresh UUID.
func (r *ProyectoRepository) Create(ctx context.Context, in domain.ProyectoInput) (*domain.Proyecto, error) {
	if ve := in.Validate(); ve != nil {
		return nil, ve
	}

	const q = `
INSERT INTO proyectos (id, nombre, descripcion, estado, fecha_inicio, fecha_fin, presupuesto)
VALUES ($1, $2, $3, $4, $5::date, $6::date, $7::numeric)
RETURNING ` + proyectoColumns + `;`

	row := r.db.QueryRow(ctx, q,
		uuid.NewString(), in.Nombre, in.Descripcion, in.Estado,
		in.FechaInicio, in.FechaFin, presupuestoParam(in.Presupuesto))
	return scanProyecto(row)
}

// List returns all projects, newest created first.
func (r *ProyectoRepository) List(ctx context.Context) ([]domain.Proyecto, error) {
	const q = `
SELECT ` + proyectoColumns + `
FROM proyectos
ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Proyecto, 0, 16)
	for rows.Next() {
		p, err := scanProyecto(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// GetByID returns the project with the given id, or domain.ErrNotFound.
func (r *ProyectoRepository) GetByID(ctx context.Context, id string) (*domain.Proyecto, error) {
	const q = `
SELECT ` + proyectoColumns + `
FROM proyectos
WHERE id::text = $1;`

	p, err := scanProyecto(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update overwrites every writable field of the project. Unknown ids yield
// domain.ErrNotFound and never create a record. Not-found takes precedence
// over validation: the row is looked up first, so an unknown id never
// reports field errors.
func (r *ProyectoRepository) Update(ctx context.Context, id string, in domain.ProyectoInput) (*domain.Proyecto, error) {
	const qExists = `SELECT EXISTS (SELECT 1 FROM proyectos WHERE id::text = $1);`

	var exists bool
	if err := r.db.QueryRow(ctx, qExists, id).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if ve := in.Validate(); ve != nil {
		return nil, ve
	}

	const q = `
UPDATE proyectos
SET nombre = $2, descripcion = $3, estado = $4,
    fecha_inicio = $5::date, fecha_fin = $6::date, presupuesto = $7::numeric,
    updated_at = now()
WHERE id::text = $1
RETURNING ` + proyectoColumns + `;`

	row := r.db.QueryRow(ctx, q,
		id, in.Nombre, in.Descripcion, in.Estado,
		in.FechaInicio, in.FechaFin, presupuestoParam(in.Presupuesto))
	p, err := scanProyecto(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Delete removes the project permanently. Returns false when no row matched.
func (r *ProyectoRepository) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM proyectos WHERE id::text = $1;`

	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

// CountByEstado groups projects by estado, ordered by label ascending.
func (r *ProyectoRepository) CountByEstado(ctx context.Context) ([]domain.EstadoConteo, error) {
	const q = `
SELECT estado, COUNT(id)
FROM proyectos
GROUP BY estado
ORDER BY estado ASC;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.EstadoConteo, 0, 8)
	for rows.Next() {
		var b domain.EstadoConteo
		if err := rows.Scan(&b.Estado, &b.Cantidad); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ListForAnalysis returns the projection the analysis pipeline needs,
// newest first.
func (r *ProyectoRepository) ListForAnalysis(ctx context.Context) ([]domain.ProyectoResumen, error) {
	const q = `
SELECT id, nombre, descripcion, estado
FROM proyectos
ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ProyectoResumen, 0, 16)
	for rows.Next() {
		var p domain.ProyectoResumen
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Estado); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func presupuestoParam(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}

func scanProyecto(row pgx.Row) (*domain.Proyecto, error) {
	var (
		p    domain.Proyecto
		pres *string
	)
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Estado,
		&p.FechaInicio, &p.FechaFin, &pres,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if pres != nil {
		d, err := decimal.NewFromString(*pres)
		if err != nil {
			return nil, fmt.Errorf("parse presupuesto: %w", err)
		}
		p.Presupuesto = &d
	}
	return &p, nil
}

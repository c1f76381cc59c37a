package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gestion-proyectos/proyectos-backend/internal/proyectos/domain"
	"github.com/gestion-proyectos/proyectos-backend/internal/proyectos/service"
)

// Handler exposes the project services as REST endpoints. Validation errors
// and not-found are the only failures distinguished individually; anything
// else maps to the generic 500 mensaje with the detail logged server-side.
type Handler struct {
	svc      *service.ProyectoService
	analisis *service.AnalisisService
}

// NewHandler creates a new project handler
func NewHandler(svc *service.ProyectoService, analisis *service.AnalisisService) *Handler {
	return &Handler{svc: svc, analisis: analisis}
}

func (h *Handler) create(c *gin.Context) {
	var in domain.ProyectoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, erroresResponse{Errores: bindErrores(err)})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getByID(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) update(c *gin.Context) {
	var in domain.ProyectoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, erroresResponse{Errores: bindErrores(err)})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	ok, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, mensajeResponse{Mensaje: mensajeNoEncontrado})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) graficos(c *gin.Context) {
	buckets, err := h.svc.DatosGraficos(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proyectosPorEstado": buckets})
}

// analisisHandler always answers 200: gateway failures were already
// converted to the degraded result by the service.
func (h *Handler) analisisHandler(c *gin.Context) {
	res, err := h.analisis.Generar(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// bindErrores maps a body-binding failure to field messages. A presupuesto
// that is not a number fails inside the decimal unmarshaler, not in the
// validator, so the field message is recovered here.
func bindErrores(err error) []string {
	if strings.Contains(err.Error(), "decimal") {
		return []string{"El presupuesto debe ser un número válido"}
	}
	return []string{mensajeCuerpoInvalido}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if ve, ok := domain.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, erroresResponse{Errores: ve.Errores})
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, mensajeResponse{Mensaje: mensajeNoEncontrado})
		return
	}
	log.Printf("error no clasificado en %s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, mensajeResponse{Mensaje: mensajeErrorInesperado})
}

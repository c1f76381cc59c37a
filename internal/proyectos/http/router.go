package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group. Static routes
// are registered before the :id parameter so /graficos and /analisis never
// resolve as ids.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.GET("/graficos", h.graficos)
	rg.GET("/analisis", h.analisisHandler)
	rg.GET("/:id", h.getByID)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

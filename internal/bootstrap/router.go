package bootstrap

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestion-proyectos/proyectos-backend/config"
	httpapi "github.com/gestion-proyectos/proyectos-backend/internal/api/http"
	proyectoshttp "github.com/gestion-proyectos/proyectos-backend/internal/proyectos/http"
	"github.com/gestion-proyectos/proyectos-backend/internal/proyectos/llm"
	"github.com/gestion-proyectos/proyectos-backend/internal/proyectos/repository"
	"github.com/gestion-proyectos/proyectos-backend/internal/proyectos/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	AI          config.AIConfig
	DB          *pgxpool.Pool
}

// BuildRouter assembles the gin engine: middleware, health, banner and the
// proyectos module wired repository → service → handler.
func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"mensaje": "Ha ocurrido un error inesperado"})
	}))
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"mensaje": "Backend funcionando 🚀"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"mensaje": "Recurso no encontrado"})
	})

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	repo := repository.NewProyectoRepository(dep.DB)
	svc := service.NewProyectoService(repo)
	analisis := service.NewAnalisisService(repo, llm.NewClient(dep.AI))

	h := proyectoshttp.NewHandler(svc, analisis)
	h.Register(r.Group("/proyectos"))

	return r
}

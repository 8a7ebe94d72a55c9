package router

import (
	"time"

	"github.com/JordiGD/Parcial2-Soft1/internal/config"
	"github.com/JordiGD/Parcial2-Soft1/internal/handler"
	"github.com/JordiGD/Parcial2-Soft1/internal/middleware"
	"github.com/JordiGD/Parcial2-Soft1/internal/repository"
	"github.com/JordiGD/Parcial2-Soft1/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// New wires the bebidas API and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOriginList()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	bebidaRepo := repository.NewBebidaRepository(db)
	bebidaSvc := service.NewBebidaService(bebidaRepo)
	menuH := handler.NewMenuHandler(bebidaSvc)

	r.GET("/", menuH.Root)
	r.GET("/health", handler.Health(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	menu := r.Group("/menu")
	{
		menu.GET("", menuH.Listar)
		menu.POST("", menuH.Crear)
		menu.POST("/seed", menuH.Seed)
		menu.GET("/:name", menuH.ObtenerPorNombre)
		menu.DELETE("/:id", menuH.Eliminar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

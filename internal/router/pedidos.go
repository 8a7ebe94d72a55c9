package router

import (
	"time"

	"github.com/JordiGD/Parcial2-Soft1/internal/config"
	"github.com/JordiGD/Parcial2-Soft1/internal/handler"
	"github.com/JordiGD/Parcial2-Soft1/internal/middleware"
	"github.com/JordiGD/Parcial2-Soft1/internal/repository"
	"github.com/JordiGD/Parcial2-Soft1/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewPedidos wires the pedidos API: orders live in Mongo, beverages are
// validated against the bebidas API through the injected menu client.
func NewPedidos(cfg *config.Config, client *mongo.Client, repo repository.PedidoRepository, menu service.DrinkMenu) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOriginList()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	pedidoSvc := service.NewPedidoService(repo, menu)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)

	r.GET("/health", handler.HealthMongo(client))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	orders := r.Group("/orders")
	{
		orders.POST("", pedidosH.Crear)
		orders.GET("", pedidosH.Listar)
	}

	return r
}

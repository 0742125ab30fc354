package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/skinsage/skinsage-backend/internal/http/handlers"
	httpMW "github.com/skinsage/skinsage-backend/internal/http/middleware"
	"github.com/skinsage/skinsage-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AllowedOrigins string

	HealthHandler  *httpH.HealthHandler
	RoutineHandler *httpH.RoutineHandler
	ProductHandler *httpH.ProductHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.RoutineHandler != nil {
			api.POST("/routine/select", cfg.RoutineHandler.SelectRoutine)
		}

		if cfg.ProductHandler != nil {
			api.GET("/products", cfg.ProductHandler.ListProducts)
			api.GET("/products/:id", cfg.ProductHandler.GetProduct)
			api.POST("/products", cfg.ProductHandler.CreateProduct)
			api.PUT("/products/:id", cfg.ProductHandler.UpdateProduct)
			api.DELETE("/products/:id", cfg.ProductHandler.DeleteProduct)
		}
	}

	return r
}

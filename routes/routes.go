package routes

import (
	"madad-backend/config"
	"madad-backend/controllers"
	"madad-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Catalog is the data side of every route.
type Catalog interface {
	controllers.ServiceLister
	controllers.Pinger
}

// Deps is what the router needs from the rest of the process.
type Deps struct {
	Catalog     Catalog
	Logger      *zap.Logger
	RateLimiter *utils.RateLimiter
}

func SetupRouter(deps Deps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", config.RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", config.RequestIDHeader},
	}))

	r.Use(config.PerformanceLogger(deps.Logger))
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Middleware(deps.Logger))
	}

	health := &controllers.HealthController{DB: deps.Catalog}
	r.GET("/healthz", health.GetHealth)

	api := r.Group("/api")
	{
		serviceController := &controllers.ServiceController{Catalog: deps.Catalog}
		api.GET("/services", serviceController.GetServices)
	}

	return r
}

package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tiresomefanatic/FindPRO-Backend/config"
	"github.com/tiresomefanatic/FindPRO-Backend/controllers"
	"github.com/tiresomefanatic/FindPRO-Backend/metrics"
	"github.com/tiresomefanatic/FindPRO-Backend/middleware"
	"go.uber.org/zap"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps is everything the router needs. Gatherer defaults to the global prometheus registry.
type Deps struct {
	Config       *config.Config
	Gigs         *controllers.GigController
	MediaEnabled bool
	DB           Pinger
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
	Log          *zap.Logger
}

// SetupRoutes builds the gin engine with middleware, health, metrics and API routes.
func SetupRoutes(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestID(d.Log),
		middleware.Recovery(d.Log),
		middleware.AccessLog(d.Log),
		middleware.Metrics(d.Metrics),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	SetupHealthRoutes(r, d.DB, d.Gatherer)
	SetupGigRoutes(r, d.Gigs, middleware.AuthMiddleware(d.Config.Auth.JWTSecret), d.MediaEnabled)
	SetupOrderRoutes(r)

	return r
}

// SetupHealthRoutes registers /livez, /healthz and /metrics.
func SetupHealthRoutes(r *gin.Engine, db Pinger, gatherer prometheus.Gatherer) {
	r.GET("/livez", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.GET("/healthz", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database unavailable"})
			return
		}
		c.String(http.StatusOK, "ok")
	})

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

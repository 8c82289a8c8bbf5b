// Package http assembles the MechParse API server: routing, middleware and
// the net/http lifecycle wrapper.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/turtacn/MechParse/internal/application/kinetics"
	"github.com/turtacn/MechParse/internal/config"
	"github.com/turtacn/MechParse/internal/infrastructure/monitoring/logging"
	monprom "github.com/turtacn/MechParse/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/MechParse/internal/interfaces/http/handlers"
	"github.com/turtacn/MechParse/internal/interfaces/http/middleware"
)

// RouterDeps carries everything NewRouter needs.
type RouterDeps struct {
	Service kinetics.Service
	Logger  logging.Logger
	Metrics monprom.ParserMetrics

	// Gatherer backs the /metrics endpoint when metrics are enabled. Nil
	// selects the default Prometheus gatherer.
	Gatherer prometheus.Gatherer

	Config  *config.Config
	Version string
}

// NewRouter builds the gin engine with all routes and middleware installed.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = logging.NewNopLogger()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.AccessLog(deps.Logger, deps.Metrics),
		middleware.Recovery(deps.Logger),
	)

	health := handlers.NewHealthHandler(deps.Version)
	engine.GET("/healthz", health.Healthz)

	if deps.Config != nil && deps.Config.Metrics.Enabled {
		g := deps.Gatherer
		if g == nil {
			g = prometheus.DefaultGatherer
		}
		engine.GET(deps.Config.Metrics.Path, gin.WrapH(
			promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
	}

	var maxBody int64
	if deps.Config != nil {
		maxBody = deps.Config.Server.MaxBodyBytes
	}
	parse := handlers.NewParseHandler(deps.Service, maxBody)

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/mechanism/parse", parse.ParseMechanism)
		v1.POST("/block/parse", parse.ParseBlock)
		v1.POST("/block/keyed", parse.KeyedEntries)
	}

	return engine
}

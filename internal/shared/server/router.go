package server

import (
	"github.com/gin-gonic/gin"

	"resume-reviser/internal/analyses"
	"resume-reviser/internal/documents"
	"resume-reviser/internal/scrape"
	"resume-reviser/internal/services/health"
	"resume-reviser/internal/shared/config"
	"resume-reviser/internal/shared/metrics"
	"resume-reviser/internal/shared/server/middleware"
)

// RouterDeps are the handlers mounted under /api. Nil handlers are skipped.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
	DocumentHandler *documents.Handler
	ScrapeHandler   *scrape.Handler
	Health          *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOriginPatterns),
	)

	api := r.Group("/api")
	if deps.Health != nil {
		deps.Health.RegisterRoutes(api)
	}
	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterRoutes(api)
	}
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}
	if deps.ScrapeHandler != nil {
		deps.ScrapeHandler.RegisterRoutes(api)
	}
	api.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":3001"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

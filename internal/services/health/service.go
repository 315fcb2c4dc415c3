package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-reviser/internal/shared/server/respond"
)

const (
	KeyConfigured = "configured"
	KeyMissing    = "missing"
)

// Status is the /api/health body.
type Status struct {
	Status string `json:"status"`
	APIKey string `json:"apiKey"`
}

// Service reports liveness and whether the provider key is set.
type Service struct {
	keyConfigured bool
}

// NewService constructs a new health service.
func NewService(apiKey string) *Service {
	return &Service{keyConfigured: apiKey != ""}
}

// Status returns the health payload. It never reveals the key itself.
func (s *Service) Status() Status {
	key := KeyMissing
	if s != nil && s.keyConfigured {
		key = KeyConfigured
	}
	return Status{Status: "ok", APIKey: key}
}

// RegisterRoutes attaches GET /health.
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, s.Status())
	})
}

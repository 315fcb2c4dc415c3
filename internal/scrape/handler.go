package scrape

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-reviser/internal/shared/server/respond"
)

// maxHTMLBytes caps the posted page snapshot.
const maxHTMLBytes = 5 << 20

// Handler exposes the scraper over HTTP for clients that can post a page snapshot.
type Handler struct {
	Scraper *Scraper
}

// NewHandler constructs a Handler.
func NewHandler(s *Scraper) *Handler {
	return &Handler{Scraper: s}
}

// RegisterRoutes attaches scrape routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/scrape", h.scrape)
}

type scrapeRequest struct {
	HTML string `json:"html"`
	URL  string `json:"url"`
}

type scrapeResponse struct {
	Success bool    `json:"success"`
	Data    JobData `json:"data"`
}

func (h *Handler) scrape(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxHTMLBytes)

	var req scrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.HTML) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "html is required", nil)
		return
	}

	respond.OK(c, scrapeResponse{Success: true, Data: h.Scraper.FromHTML(req.HTML, req.URL)})
}

package documents

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-reviser/internal/extract"
	"resume-reviser/internal/shared/server/respond"
)

// multipart framing allowance on top of MaxFileSize
const formOverhead = 1 << 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/parse-file", h.parseFile)
}

func (h *Handler) parseFile(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxFileSize+formOverhead)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "File exceeds the 10 MB limit", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "No file uploaded", nil)
		return
	}
	if fileHeader.Size > MaxFileSize {
		respond.Error(c, http.StatusBadRequest, "validation_error", "File exceeds the 10 MB limit", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !extract.IsAllowed(mimeType) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Only PDF and DOCX files are supported", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	parsed, err := h.Svc.Parse(c.Request.Context(), fileHeader.Filename, mimeType, file)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedMime):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Only PDF and DOCX files are supported", nil)
		case errors.Is(err, ErrFileTooLarge):
			respond.Error(c, http.StatusBadRequest, "validation_error", "File exceeds the 10 MB limit", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "extraction_error", "Failed to parse file", err.Error())
		}
		return
	}

	respond.OK(c, toResponse(parsed))
}

package analyses

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-reviser/internal/shared/server/middleware"
	"resume-reviser/internal/shared/server/respond"
)

// MaxBodyBytes caps the JSON request body.
const MaxBodyBytes = 10 << 20 // 10MiB

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
}

type analyzeResponse struct {
	Success bool `json:"success"`
	Result
	Usage Usage `json:"usage"`
}

func (h *Handler) analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	var req Request
	// An empty body is treated as an empty request so validation reports the missing fields.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Set("analysisOutcome", string(KindValidation))
			respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodeValidation, "Request body exceeds the 10 MB limit", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "Request body must be a JSON object", nil)
		return
	}

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	out, err := h.Svc.Analyze(ctx, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Set("analysisOutcome", "completed")
	respond.OK(c, analyzeResponse{
		Success: true,
		Result:  out.Result,
		Usage:   out.Usage,
	})
}

func writeError(c *gin.Context, err error) {
	var aerr *Error
	if !errors.As(err, &aerr) {
		c.Set("analysisOutcome", "internal")
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "Failed to analyze resume", err.Error())
		return
	}

	c.Set("analysisOutcome", string(aerr.Kind))
	switch aerr.Kind {
	case KindValidation:
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, aerr.Message, nil)
	case KindAuth:
		// Credentials problems stay server-side.
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "Analysis service is not configured correctly", nil)
	case KindRateLimit:
		respond.Error(c, http.StatusTooManyRequests, ErrorCodeRateLimited, "Rate limit reached. Please wait a moment and try again.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, ErrorCodeLLM, "Failed to analyze resume", errorDetails(aerr))
	}
}

func errorDetails(aerr *Error) string {
	if aerr.Err != nil {
		return aerr.Err.Error()
	}
	return aerr.Message
}

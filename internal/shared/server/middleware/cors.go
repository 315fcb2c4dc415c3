package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-reviser/internal/shared/telemetry"
)

// CORS sets CORS headers for origins matching any of the given patterns and
// answers preflight requests.
func CORS(originPatterns []string) gin.HandlerFunc {
	var patterns []*regexp.Regexp
	for _, raw := range originPatterns {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		re, err := regexp.Compile(trimmed)
		if err != nil {
			telemetry.Error("cors.pattern.invalid", map[string]any{"pattern": trimmed, "err": err})
			continue
		}
		patterns = append(patterns, re)
	}

	allowed := func(origin string) bool {
		for _, re := range patterns {
			if re.MatchString(origin) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && allowed(origin) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-Id")
			h.Set("Access-Control-Expose-Headers", "X-Request-Id")
			h.Set("Access-Control-Max-Age", "600")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthReportsKeyPresence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "configured", key: "sk-test", want: KeyConfigured},
		{name: "missing", key: "", want: KeyMissing},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			NewService(tt.key).RegisterRoutes(r.Group("/api"))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}

			var got Status
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Status != "ok" || got.APIKey != tt.want {
				t.Fatalf("unexpected body %+v", got)
			}
			if tt.key != "" && strings.Contains(w.Body.String(), tt.key) {
				t.Fatalf("health body leaked the key: %s", w.Body.String())
			}
		})
	}
}

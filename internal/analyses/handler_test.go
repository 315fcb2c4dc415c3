package analyses

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-reviser/internal/llm"
	"resume-reviser/internal/shared/server/middleware"
)

func setupAnalyzeRouter(t *testing.T, fake *fakeCompleter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.RequestID())
	api := router.Group("/api")
	NewHandler(NewService(fake, "anthropic", "claude-sonnet-4-6", 4096)).RegisterRoutes(api)
	return router
}

func postAnalyze(t *testing.T, router *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAnalyzeEmptyCoverLetterScenario(t *testing.T) {
	fake := &fakeCompleter{reply: llm.Completion{
		Text:         "<bullet_points>\n- Added Go keyword: matches posting\n</bullet_points>\n<revised_resume>\nRevised\n</revised_resume>",
		InputTokens:  10,
		OutputTokens: 20,
	}}
	router := setupAnalyzeRouter(t, fake)

	resp := postAnalyze(t, router, map[string]string{
		"jobDescription":  "About the job\nWe need a backend engineer with 5 years of experience building APIs.",
		"resumeText":      strings.Repeat("Go developer with production experience. ", 4),
		"coverLetterText": "",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["success"] != true {
		t.Fatalf("expected success true, got %v", body["success"])
	}
	if cover, ok := body["revisedCoverLetter"]; !ok || cover != "" {
		t.Fatalf("expected empty revisedCoverLetter, got %v (present=%v)", cover, ok)
	}
	bullets, ok := body["bulletPoints"].([]any)
	if !ok || len(bullets) != 1 {
		t.Fatalf("unexpected bulletPoints %v", body["bulletPoints"])
	}
	usage, ok := body["usage"].(map[string]any)
	if !ok || usage["inputTokens"] != float64(10) || usage["outputTokens"] != float64(20) {
		t.Fatalf("unexpected usage %v", body["usage"])
	}
	if strings.Contains(fake.calls[0].System, "<revised_cover_letter>") {
		t.Fatalf("cover letter section must not be requested")
	}
}

func TestAnalyzeValidationBoundary(t *testing.T) {
	tests := []struct {
		name       string
		jobLen     int
		resumeLen  int
		wantStatus int
	}{
		{name: "job 50 resume 100", jobLen: 50, resumeLen: 100, wantStatus: http.StatusOK},
		{name: "job 49", jobLen: 49, resumeLen: 100, wantStatus: http.StatusBadRequest},
		{name: "resume 99", jobLen: 50, resumeLen: 99, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCompleter{reply: llm.Completion{Text: "<revised_resume>ok</revised_resume>"}}
			router := setupAnalyzeRouter(t, fake)

			resp := postAnalyze(t, router, map[string]string{
				"jobDescription": "  " + strings.Repeat("j", tt.jobLen) + "\n",
				"resumeText":     "\t" + strings.Repeat("r", tt.resumeLen) + "  ",
			})
			if resp.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, resp.Code, resp.Body.String())
			}
			if tt.wantStatus == http.StatusBadRequest && len(fake.calls) != 0 {
				t.Fatalf("provider must not be called on validation failure")
			}
		})
	}
}

func TestAnalyzeErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantDetails bool
		leak        string
	}{
		{name: "auth hidden", err: llm.NewProviderError("anthropic", 401, "invalid x-api-key", nil), wantStatus: http.StatusInternalServerError, leak: "x-api-key"},
		{name: "rate limited", err: llm.NewProviderError("anthropic", 429, "rate_limit_error", nil), wantStatus: http.StatusTooManyRequests},
		{name: "other with details", err: llm.NewProviderError("anthropic", 529, "overloaded_error", nil), wantStatus: http.StatusInternalServerError, wantDetails: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			router := setupAnalyzeRouter(t, &fakeCompleter{err: tt.err})
			resp := postAnalyze(t, router, map[string]string{
				"jobDescription": strings.Repeat("j", 60),
				"resumeText":     strings.Repeat("r", 120),
			})
			if resp.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, resp.Code)
			}
			var body struct {
				Error   string `json:"error"`
				Code    string `json:"code"`
				Details any    `json:"details"`
			}
			raw := resp.Body.String()
			if err := json.Unmarshal([]byte(raw), &body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body.Error == "" || body.Code == "" {
				t.Fatalf("expected error envelope, got %s", raw)
			}
			if tt.wantDetails && body.Details == nil {
				t.Fatalf("expected details, got %s", raw)
			}
			if tt.leak != "" && strings.Contains(raw, tt.leak) {
				t.Fatalf("response leaked provider detail: %s", raw)
			}
		})
	}
}

func TestAnalyzeRejectsNonObjectBody(t *testing.T) {
	router := setupAnalyzeRouter(t, &fakeCompleter{})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`["not","an","object"]`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestAnalyzeEmptyBodyIsValidationError(t *testing.T) {
	router := setupAnalyzeRouter(t, &fakeCompleter{})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", nil)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Job description is required") {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestAnalyzeRejectsOversizedBody(t *testing.T) {
	fake := &fakeCompleter{}
	router := setupAnalyzeRouter(t, fake)

	resp := postAnalyze(t, router, map[string]string{
		"jobDescription": strings.Repeat("j", 60),
		"resumeText":     strings.Repeat("r", MaxBodyBytes),
	})
	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status 413, got %d: %s", resp.Code, resp.Body.String())
	}
	if len(fake.calls) != 0 {
		t.Fatalf("expected no completion call, got %d", len(fake.calls))
	}
}

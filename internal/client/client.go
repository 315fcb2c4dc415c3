// Package client talks to the reviser backend over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"resume-reviser/internal/analyses"
	"resume-reviser/internal/scrape"
)

const (
	DefaultBaseURL = "http://localhost:3001"
	DefaultTimeout = 3 * time.Minute
)

// Client issues one request per call; it never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New constructs a Client. Empty baseURL uses DefaultBaseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx backend reply.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *APIError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s (status %d): %v", e.Message, e.Status, e.Details)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Health is the /api/health body.
type Health struct {
	Status string `json:"status"`
	APIKey string `json:"apiKey"`
}

// ParsedFile is the /api/parse-file body.
type ParsedFile struct {
	Text      string `json:"text"`
	CharCount int    `json:"charCount"`
}

// AnalyzeResponse is the /api/analyze body.
type AnalyzeResponse struct {
	Success bool `json:"success"`
	analyses.Result
	Usage analyses.Usage `json:"usage"`
}

// Health checks backend liveness and key configuration.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var out Health
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return out, err
	}
	return out, c.do(req, &out)
}

// ParseFile uploads a document for text extraction.
func (c *Client) ParseFile(ctx context.Context, fileName, mimeType string, r io.Reader) (ParsedFile, error) {
	var out ParsedFile

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName))
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return out, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return out, fmt.Errorf("read %s: %w", fileName, err)
	}
	if err := writer.Close(); err != nil {
		return out, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/parse-file", body)
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return out, c.do(req, &out)
}

// Analyze submits the job description, resume and optional cover letter.
func (c *Client) Analyze(ctx context.Context, in analyses.Request) (AnalyzeResponse, error) {
	var out AnalyzeResponse
	req, err := c.jsonRequest(ctx, "/api/analyze", in)
	if err != nil {
		return out, err
	}
	return out, c.do(req, &out)
}

// Scrape sends a page snapshot to the backend scraper.
func (c *Client) Scrape(ctx context.Context, html, pageURL string) (scrape.JobData, error) {
	var out struct {
		Success bool           `json:"success"`
		Data    scrape.JobData `json:"data"`
	}
	req, err := c.jsonRequest(ctx, "/api/scrape", map[string]string{"html": html, "url": pageURL})
	if err != nil {
		return scrape.JobData{}, err
	}
	if err := c.do(req, &out); err != nil {
		return scrape.JobData{}, err
	}
	return out.Data, nil
}

func (c *Client) jsonRequest(ctx context.Context, path string, payload any) (*http.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var envelope struct {
			Error   string `json:"error"`
			Code    string `json:"code"`
			Details any    `json:"details"`
		}
		if json.Unmarshal(raw, &envelope) == nil && envelope.Error != "" {
			apiErr.Message = envelope.Error
			apiErr.Code = envelope.Code
			apiErr.Details = envelope.Details
		}
		return apiErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-reviser/internal/analyses"
	"resume-reviser/internal/documents"
	"resume-reviser/internal/llm"
	"resume-reviser/internal/llm/anthropic"
	"resume-reviser/internal/llm/gemini"
	"resume-reviser/internal/llm/openai"
	"resume-reviser/internal/scrape"
	"resume-reviser/internal/services/health"
	"resume-reviser/internal/shared/config"
	"resume-reviser/internal/shared/server"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	LLM              llm.Completer
	AnalysesService  *analyses.Service
	DocumentsService *documents.Service
	Scraper          *scrape.Scraper
	Health           *health.Service
	AnalysisHandler  *analyses.Handler
	DocumentsHandler *documents.Handler
	ScrapeHandler    *scrape.Handler
}

// Option customizes Build.
type Option func(*App)

// WithCompleter replaces the provider client built from config.
func WithCompleter(c llm.Completer) Option {
	return func(a *App) { a.LLM = c }
}

// Build constructs every dependency and the router.
func Build(ctx context.Context, cfg config.Config, opts ...Option) (*App, error) {
	app := &App{Config: cfg}
	for _, opt := range opts {
		opt(app)
	}

	if app.LLM == nil {
		client, err := buildCompleter(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.LLM = client
	}

	app.AnalysesService = analyses.NewService(app.LLM, cfg.LLMProvider, cfg.LLMModel, cfg.LLMMaxTokens)
	app.DocumentsService = documents.NewService()
	app.Scraper = scrape.New()
	app.Health = health.NewService(cfg.APIKey())

	app.AnalysisHandler = analyses.NewHandler(app.AnalysesService)
	app.DocumentsHandler = documents.NewHandler(app.DocumentsService)
	app.ScrapeHandler = scrape.NewHandler(app.Scraper)
	if app.AnalysisHandler == nil || app.DocumentsHandler == nil || app.ScrapeHandler == nil {
		return nil, errors.New("failed to initialize handlers")
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: app.AnalysisHandler,
		DocumentHandler: app.DocumentsHandler,
		ScrapeHandler:   app.ScrapeHandler,
		Health:          app.Health,
	})

	return app, nil
}

func buildCompleter(ctx context.Context, cfg config.Config) (llm.Completer, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, "")
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		return client, nil
	case config.ProviderOpenAI:
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
		if err != nil {
			return nil, fmt.Errorf("openai client: %w", err)
		}
		return client, nil
	default:
		client, err := anthropic.NewClient(cfg.AnthropicAPIKey)
		if err != nil {
			return nil, fmt.Errorf("anthropic client: %w", err)
		}
		return client, nil
	}
}

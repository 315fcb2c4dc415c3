package analyses

import (
	"context"
	"time"

	"resume-reviser/internal/llm"
	"resume-reviser/internal/shared/metrics"
	"resume-reviser/internal/shared/telemetry"
)

const DefaultMaxTokens = 4096

// Service runs one analysis per call: validate, build the prompt, complete once, parse.
type Service struct {
	LLM       llm.Completer
	Provider  string
	Model     string
	MaxTokens int
}

// NewService constructs a Service around an already configured completion client.
func NewService(client llm.Completer, provider, model string, maxTokens int) *Service {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Service{LLM: client, Provider: provider, Model: model, MaxTokens: maxTokens}
}

// Analyze returns the parsed sections and token usage. Every failure is an *Error.
func (s *Service) Analyze(ctx context.Context, req Request) (Outcome, error) {
	if err := Validate(req); err != nil {
		metrics.IncAnalysisFailed(string(KindValidation))
		return Outcome{}, err
	}

	requestID := requestIDFromContext(ctx)
	metrics.IncAnalysisStarted()
	start := time.Now()

	prompt := BuildPrompt(req)
	telemetry.Info("analysis.started", map[string]any{
		"request_id":       requestID,
		"provider":         s.Provider,
		"model":            s.Model,
		"has_cover_letter": req.HasCoverLetter(),
		"prompt_chars":     len(prompt.System) + len(prompt.User),
	})

	completion, err := s.LLM.Complete(ctx, llm.Request{
		Model:     s.Model,
		MaxTokens: s.MaxTokens,
		System:    prompt.System,
		User:      prompt.User,
	})
	durationMs := float64(time.Since(start).Milliseconds())
	metrics.ObserveAnalysisDurationMs(durationMs)
	if err != nil {
		aerr := classifyProviderError(err)
		metrics.IncAnalysisFailed(string(aerr.Kind))
		telemetry.Error("analysis.failed", map[string]any{
			"request_id":  requestID,
			"provider":    s.Provider,
			"model":       s.Model,
			"kind":        string(aerr.Kind),
			"duration_ms": durationMs,
			"err":         err,
		})
		return Outcome{}, aerr
	}

	result := ParseResponse(completion.Text)
	metrics.IncAnalysisCompleted()
	metrics.AddTokens(completion.InputTokens, completion.OutputTokens)
	telemetry.Info("analysis.completed", map[string]any{
		"request_id":       requestID,
		"provider":         s.Provider,
		"model":            s.Model,
		"bullets":          len(result.BulletPoints),
		"resume_chars":     len(result.RevisedResume),
		"has_cover_letter": result.RevisedCoverLetter != "",
		"input_tokens":     completion.InputTokens,
		"output_tokens":    completion.OutputTokens,
		"duration_ms":      durationMs,
	})

	return Outcome{
		Result: result,
		Usage: Usage{
			InputTokens:  completion.InputTokens,
			OutputTokens: completion.OutputTokens,
		},
	}, nil
}

package metrics

import (
	"strings"
	"testing"
)

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("expected count 3, got %d", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("unexpected per-bucket counts %v", snap.counts)
	}
}

func TestRenderIncludesLabeledFailures(t *testing.T) {
	IncAnalysisFailed("rate_limit")
	IncAnalysisFailed("rate_limit")
	AddTokens(10, 20)

	out := Render()
	if !strings.Contains(out, `analysis_failed_total{kind="rate_limit"}`) {
		t.Fatalf("expected labeled failure counter, got:\n%s", out)
	}
	if !strings.Contains(out, "# TYPE analysis_duration_ms histogram") {
		t.Fatalf("expected histogram, got:\n%s", out)
	}
	if !strings.Contains(out, "llm_output_tokens_total") {
		t.Fatalf("expected token counter, got:\n%s", out)
	}
}

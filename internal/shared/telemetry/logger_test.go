package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestInfoWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })

	Info("analysis.completed", map[string]any{
		"request_id": "req-1",
		"bullets":    3,
		"err":        errors.New("boom"),
	})

	line := strings.TrimSpace(buf.String())
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("decode log json: %v (%s)", err, line)
	}
	for _, key := range []string{"ts", "level", "msg", "request_id", "bullets", "err"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing log field %s in %s", key, line)
		}
	}
	if payload["msg"] != "analysis.completed" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["level"] != "INFO" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
	if payload["err"] != "boom" {
		t.Fatalf("expected error rendered as string, got %v", payload["err"])
	}
}

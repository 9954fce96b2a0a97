package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/dmorgan81/mandala/internal/log"
)

func TestNew_RedactsCredential(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, slog.LevelInfo)
	logger.Info("submitting", "api_key", "sk-secret", "topic", "ocean")

	if strings.Contains(buf.String(), "sk-secret") {
		t.Fatalf("log line leaked the key: %s", buf.String())
	}

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if line["api_key"] != "[REDACTED]" {
		t.Fatalf("api_key = %v, want [REDACTED]", line["api_key"])
	}
	if line["topic"] != "ocean" {
		t.Fatalf("topic = %v, want ocean", line["topic"])
	}
	if _, ok := line[slog.TimeKey]; ok {
		t.Fatal("time attribute should be dropped")
	}
}

func TestParseLevel(t *testing.T) {
	if got := log.ParseLevel("debug"); got != slog.LevelDebug {
		t.Fatalf("ParseLevel(debug) = %v, want %v", got, slog.LevelDebug)
	}
	if got := log.ParseLevel("nonsense"); got != slog.LevelInfo {
		t.Fatalf("ParseLevel(nonsense) = %v, want %v", got, slog.LevelInfo)
	}
}

func TestFromContextOrDiscard(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, slog.LevelInfo)
	ctx := log.NewContext(context.Background(), logger)

	if got := log.FromContextOrDiscard(ctx); got != logger {
		t.Fatal("FromContextOrDiscard did not return the stored logger")
	}
	if got := log.FromContextOrDiscard(context.Background()); got == nil {
		t.Fatal("FromContextOrDiscard returned nil for an empty context")
	}
}

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestCtxAddsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Output: &buf})
	t.Cleanup(func() { Init(Config{}) })

	ctx := WithCorrelationID(context.Background(), "abc12345")
	Ctx(ctx).Debug().Str("op", "search").Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one json line, got %q: %v", buf.String(), err)
	}
	if entry["correlation_id"] != "abc12345" {
		t.Errorf("correlation_id = %v", entry["correlation_id"])
	}
	if entry["op"] != "search" || entry["message"] != "hello" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Output: &buf})
	t.Cleanup(func() { Init(Config{}) })

	Ctx(context.Background()).Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
}

func TestNewCorrelationID(t *testing.T) {
	a, b := NewCorrelationID(), NewCorrelationID()
	if len(a) != 8 || a == b {
		t.Fatalf("unexpected ids %q %q", a, b)
	}
	if CorrelationID(context.Background()) != "" {
		t.Fatal("expected empty id for bare context")
	}
}

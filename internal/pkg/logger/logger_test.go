package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDIsAttached(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	defer Set(zap.NewNop())

	ctx := WithRequestID(context.Background(), "req-1")
	Info(ctx, "resolved", "area", "ward")
	Infof(context.Background(), "plain %d", 1)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 log entries, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-1" {
		t.Errorf("Expected request_id 'req-1', got %v", fields["request_id"])
	}
	if fields["area"] != "ward" {
		t.Errorf("Expected area 'ward', got %v", fields["area"])
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Errorf("Expected no request_id without one in context")
	}
	if entries[1].Message != "plain 1" {
		t.Errorf("Expected message 'plain 1', got %q", entries[1].Message)
	}
}

func TestRequestIDEmpty(t *testing.T) {
	if got := RequestID(context.Background()); got != "" {
		t.Errorf("Expected empty request id, got %q", got)
	}
}

func TestInitFallsBackToInfo(t *testing.T) {
	if err := Init("not-a-level", false); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	Set(zap.NewNop())
}

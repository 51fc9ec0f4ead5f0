package observability

import (
	"errors"
	"testing"

	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
)

func TestIsHealthCheckLog(t *testing.T) {
	t.Parallel()

	if !isHealthCheckLog("http request", []any{"path", "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if isHealthCheckLog("http request", []any{"path", "/api/matches"}) {
		t.Fatalf("did not expect non-health log to be skipped")
	}
	if isHealthCheckLog("fetch match detail failed", []any{"path", "/healthz"}) {
		t.Fatalf("did not expect non-access log to be skipped")
	}
}

func TestBuildOTelLogAttributes(t *testing.T) {
	t.Parallel()

	attrs := buildOTelLogAttributes([]any{"competition", "PL", "season", 2025, "error", errors.New("boom"), "dangling"})
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "competition" || attrs[0].Value.AsString() != "PL" {
		t.Fatalf("unexpected competition attribute")
	}
	if attrs[1].Key != "season" || attrs[1].Value.AsInt64() != 2025 {
		t.Fatalf("unexpected season attribute")
	}
	if attrs[2].Value.AsString() != "boom" {
		t.Fatalf("expected error rendered as string, got %v", attrs[2].Value)
	}
	if attrs[3].Key != "dangling" || attrs[3].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected dangling attribute")
	}
}

func TestToOTelLogValue(t *testing.T) {
	t.Parallel()

	codes := toOTelLogValue([]string{"PL", "CL"})
	if codes.Kind() != otellog.KindSlice || len(codes.AsSlice()) != 2 {
		t.Fatalf("expected 2-item slice, got %v", codes)
	}
	if v := toOTelLogValue(int64(537785)); v.AsInt64() != 537785 {
		t.Fatalf("unexpected int64 value: %v", v)
	}
	if v := toOTelLogValue(nil); v.Kind() != otellog.KindEmpty {
		t.Fatalf("expected empty value for nil, got %s", v.Kind())
	}
	if v := toOTelLogValue(struct{ ID int }{ID: 7}); v.AsString() != "{7}" {
		t.Fatalf("unexpected fallback rendering: %v", v)
	}
}

func TestToOTelSeverity(t *testing.T) {
	t.Parallel()

	if got := toOTelSeverity(zapcore.WarnLevel); got != otellog.SeverityWarn {
		t.Fatalf("unexpected warn severity: %v", got)
	}
	if got := toOTelSeverity(zapcore.ErrorLevel); got != otellog.SeverityError {
		t.Fatalf("unexpected error severity: %v", got)
	}
}

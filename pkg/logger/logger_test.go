package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func toAnyAttrs(attrs []slog.Attr) []any {
	out := make([]any, len(attrs))
	for i, a := range attrs {
		out[i] = a
	}
	return out
}

func TestInit_DevStd_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{
		Service:   "demo",
		Version:   "v0.0.1",
		Env:       EnvDev,
		Backend:   BackendStd,
		Level:     slog.LevelDebug,
		AddSource: true,
		Output:    &buf,
	})
	slog.Info("Hello world")

	out := buf.String()
	if strings.Contains(out, "{") && strings.Contains(out, "}") {
		t.Fatalf("expected text output in dev/std, got JSON: %s", out)
	}
	if !strings.Contains(out, "Hello world") {
		t.Fatalf("message missing: %s", out)
	}
	if !strings.Contains(out, "service=demo") || !strings.Contains(out, "env=dev") {
		t.Fatalf("common attrs missing: %s", out)
	}
}

func TestInit_StageStd_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Service: "demo", Env: EnvStage, Backend: BackendStd, Output: &buf})
	slog.Info("json please")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected JSON line, got %s, err=%v", buf.String(), err)
	}
	if m["env"] != "stage" {
		t.Fatalf("env mismatch: %v", m["env"])
	}
}

func TestInit_ProdZap_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{
		Service:          "demo",
		Version:          "1.2.3",
		Env:              EnvProd,
		Backend:          BackendZap,
		Level:            slog.LevelInfo,
		SampleInitial:    100000,
		SampleThereafter: 100000,
		Output:           &buf,
	})
	slog.Info("booted", slog.String("k", "v"))
	slog.Debug("hidden")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected single JSON line, got %s, err=%v", buf.String(), err)
	}
	if m["msg"] != "booted" {
		t.Fatalf("msg mismatch: %v", m["msg"])
	}
	if m["service"] != "demo" || m["env"] != "prod" || m["version"] != "1.2.3" {
		t.Fatalf("attrs missing: service=%v env=%v version=%v", m["service"], m["env"], m["version"])
	}
	if m["level"] != "INFO" {
		t.Fatalf("level mismatch: %v", m["level"])
	}
	if m["k"] != "v" {
		t.Fatalf("custom field missing: %v", m["k"])
	}
}

func TestAttrsFromCtx_PropagatesTraceIDs(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()
	otel.SetTracerProvider(tp)

	if attrs := AttrsFromCtx(context.Background()); attrs != nil {
		t.Fatalf("no span: expected nil attrs, got %v", attrs)
	}

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	var buf bytes.Buffer
	Init(Config{
		Service:          "demo",
		Env:              EnvProd,
		Backend:          BackendZap,
		SampleInitial:    100000,
		SampleThereafter: 100000,
		Output:           &buf,
	})
	slog.InfoContext(ctx, "with trace", toAnyAttrs(AttrsFromCtx(ctx))...)

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected JSON, got: %s, err=%v", buf.String(), err)
	}
	if m["trace_id"] != span.SpanContext().TraceID().String() || m["span_id"] == nil {
		t.Fatalf("trace_id/span_id missing in log: %v", m)
	}
}

func TestDetectEnv(t *testing.T) {
	cases := map[string]Env{
		"":           EnvDev,
		"dev":        EnvDev,
		"stage":      EnvStage,
		"preprod":    EnvStage,
		"PRODUCTION": EnvProd,
		"prod":       EnvProd,
		"qa-42":      EnvDev,
	}
	t.Setenv("GEOROOM_ENV", "")
	for raw, want := range cases {
		t.Setenv("APP_ENV", raw)
		if got := DetectEnv(); got != want {
			t.Fatalf("APP_ENV=%q: got %q, want %q", raw, got, want)
		}
	}

	t.Setenv("APP_ENV", "dev")
	t.Setenv("GEOROOM_ENV", "staging")
	if got := DetectEnv(); got != EnvStage {
		t.Fatalf("GEOROOM_ENV must win over APP_ENV, got %q", got)
	}
}

func TestParseEnv(t *testing.T) {
	if env, err := ParseEnv(" Production "); err != nil || env != EnvProd {
		t.Fatalf("ParseEnv(production) = %q, %v", env, err)
	}
	if env, err := ParseEnv(""); err != nil || env != "" {
		t.Fatalf("ParseEnv(\"\") = %q, %v", env, err)
	}
	if _, err := ParseEnv("moon"); err == nil {
		t.Fatal("unknown env must fail")
	}
	if EnvDev.Structured() || !EnvStage.Structured() || !EnvProd.Structured() {
		t.Fatal("only stage and prod are structured")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("unknown level must fail")
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Env: EnvDev, Backend: BackendStd, Output: &buf})

	if FromContext(context.Background()) != L() {
		t.Fatal("empty ctx must fall back to the global logger")
	}
	scoped := L().With(slog.String("req_id", "r-1"))
	ctx := WithContext(context.Background(), scoped)
	FromContext(ctx).Info("scoped")
	if !strings.Contains(buf.String(), "req_id=r-1") {
		t.Fatalf("scoped attrs missing: %s", buf.String())
	}
}

func TestCtx_AddsTraceAttrs(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	var buf bytes.Buffer
	Init(Config{Env: EnvStage, Backend: BackendStd, Output: &buf})

	if Ctx(context.Background()) != L() {
		t.Fatal("no span and no scoped logger: expected the global logger")
	}

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	ctx = WithContext(ctx, L().With(slog.String("req_id", "r-2")))

	Ctx(ctx).Info("traced")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected JSON in stage, got: %s, err=%v", buf.String(), err)
	}
	if m["req_id"] != "r-2" || m["trace_id"] != span.SpanContext().TraceID().String() || m["trace_sampled"] != true {
		t.Fatalf("attrs missing: %v", m)
	}
	if m["pid"] == nil || m["instance_id"] == nil {
		t.Fatalf("common attrs missing: %v", m)
	}
}

func TestToZapLevel(t *testing.T) {
	cases := []struct {
		in   slog.Level
		want string
	}{
		{slog.LevelDebug - 4, "debug"},
		{slog.LevelDebug, "debug"},
		{slog.LevelInfo, "info"},
		{slog.LevelInfo + 2, "info"},
		{slog.LevelWarn, "warn"},
		{slog.LevelError, "error"},
		{slog.LevelError + 4, "error"},
	}
	for _, tc := range cases {
		if got := toZapLevel(tc.in).String(); got != tc.want {
			t.Fatalf("toZapLevel(%v) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

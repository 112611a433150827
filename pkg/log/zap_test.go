package log_test

import (
	"context"
	"testing"

	"smart-task-manager/pkg/log"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := log.SetRequestID(context.Background(), "req-1")
	if got := log.GetRequestID(ctx); got != "req-1" {
		t.Errorf("GetRequestID() = %q, want req-1", got)
	}
	if got := log.GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID() on empty ctx = %q, want empty", got)
	}
}

func TestInit(t *testing.T) {
	tests := []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level", Mode: log.ModeDebug, Encoding: log.EncodingConsole},
	}

	for _, cfg := range tests {
		t.Run(cfg.Mode+"/"+cfg.Encoding, func(t *testing.T) {
			l := log.Init(cfg)
			if l == nil {
				t.Fatal("Init returned nil logger")
			}
			ctx := log.SetRequestID(context.Background(), "req-2")
			l.Infof(ctx, "hello %s", "world")
			l.Debug(context.Background(), "debug line")
		})
	}
}

package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Ping() != DefaultPing {
		t.Errorf("Ping() = %v, want %v", Ping(), DefaultPing)
	}
	if Load() != DefaultLoad {
		t.Errorf("Load() = %v, want %v", Load(), DefaultLoad)
	}
	if Shutdown() != DefaultShutdown {
		t.Errorf("Shutdown() = %v, want %v", Shutdown(), DefaultShutdown)
	}
}

func TestConfigure_IgnoresZero(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Configure(Config{Ping: 500 * time.Millisecond})

	got := Current()
	if got.Ping != 500*time.Millisecond {
		t.Errorf("Ping = %v, want 500ms", got.Ping)
	}
	if got.Load != DefaultLoad {
		t.Errorf("Load = %v, want default %v", got.Load, DefaultLoad)
	}
	if got.Shutdown != DefaultShutdown {
		t.Errorf("Shutdown = %v, want default %v", got.Shutdown, DefaultShutdown)
	}
}

func TestWithTimeout_LogsOnDeadline(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core)

	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, logger, "load members")
	<-ctx.Done()
	cancel()

	if logs.Len() != 1 {
		t.Fatalf("expected 1 warning, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.ContextMap()["operation"] != "load members" {
		t.Errorf("operation field = %v", entry.ContextMap()["operation"])
	}
}

func TestWithTimeout_QuietOnCancel(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core)

	_, cancel := WithTimeout(context.Background(), time.Minute, logger, "ping")
	cancel()

	if logs.Len() != 0 {
		t.Errorf("expected no warnings, got %d", logs.Len())
	}
}

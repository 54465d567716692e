package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{Short: 7 * time.Second})
	if Short() != 7*time.Second {
		t.Errorf("Short() = %v, want 7s", Short())
	}
	if Ping() != DefaultPing {
		t.Errorf("Ping() = %v, want default %v", Ping(), DefaultPing)
	}

	Reset()
	if Short() != DefaultShort {
		t.Errorf("after Reset Short() = %v, want %v", Short(), DefaultShort)
	}
}

func TestConfigureFromEnv(t *testing.T) {
	t.Cleanup(Reset)
	t.Setenv("STRATATOUR_TIMEOUT_LONG", "45s")
	t.Setenv("STRATATOUR_TIMEOUT_UPLOAD", "2m")
	t.Setenv("STRATATOUR_TIMEOUT_PING", "not-a-duration")

	if n := ConfigureFromEnv("STRATATOUR"); n != 2 {
		t.Errorf("ConfigureFromEnv() = %d, want 2", n)
	}
	if Long() != 45*time.Second {
		t.Errorf("Long() = %v, want 45s", Long())
	}
	if Upload() != 2*time.Minute {
		t.Errorf("Upload() = %v, want 2m", Upload())
	}
	if Ping() != DefaultPing {
		t.Errorf("Ping() = %v, want default", Ping())
	}
}

func TestWithTimeout_LogsExpiry(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, zap.New(core), "load content")
	<-ctx.Done()
	cancel()

	if logs.FilterMessage("operation timed out").Len() != 1 {
		t.Errorf("expected one timeout warning, got %d", logs.Len())
	}
}

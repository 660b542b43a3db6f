package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/empowerhub/empowerhub-api/internal/config"
)

func TestSetup(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel string
	}{
		{name: "debug level", logLevel: "debug"},
		{name: "info level", logLevel: "info"},
		{name: "warn level", logLevel: "warn"},
		{name: "error level", logLevel: "error"},
		{name: "mixed case level", logLevel: "INFO"},
		{name: "invalid level falls back to info", logLevel: "verbose"},
		{name: "empty level falls back to info", logLevel: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.ServerConfig{LogLevel: tc.logLevel}

			log, err := Setup(cfg)
			if err != nil {
				t.Fatalf("Setup returned unexpected error: %v", err)
			}
			if log == nil {
				t.Fatal("Setup returned nil logger")
			}
			if slog.Default() != log {
				t.Error("Setup did not install the logger as the default")
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	base := slog.New(slog.NewTextHandler(os.Stderr, nil))

	t.Run("returns attached logger", func(t *testing.T) {
		ctx := WithLogger(context.Background(), base)
		if got := FromContext(ctx); got != base {
			t.Error("FromContext did not return the attached logger")
		}
	})

	t.Run("falls back to default when absent", func(t *testing.T) {
		if got := FromContext(context.Background()); got != slog.Default() {
			t.Error("FromContext did not fall back to the default logger")
		}
	})

	t.Run("FromContextOrDefault prefers attached logger", func(t *testing.T) {
		other := slog.New(slog.NewTextHandler(os.Stderr, nil))
		ctx := WithLogger(context.Background(), base)
		if got := FromContextOrDefault(ctx, other); got != base {
			t.Error("FromContextOrDefault ignored the attached logger")
		}
	})

	t.Run("FromContextOrDefault uses provided default", func(t *testing.T) {
		other := slog.New(slog.NewTextHandler(os.Stderr, nil))
		if got := FromContextOrDefault(context.Background(), other); got != other {
			t.Error("FromContextOrDefault did not use the provided default")
		}
	})
}

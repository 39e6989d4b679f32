package main

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/mailbox-postage/internal/application"
	"github.com/eugenenazirov/mailbox-postage/internal/config"
)

func TestParseFlags(t *testing.T) {
	t.Run("no flags", func(t *testing.T) {
		overrides, err := parseFlags(nil)
		if err != nil {
			t.Fatalf("parseFlags returned error: %v", err)
		}
		if overrides.ConfigFile != "" || overrides.LogLevel != nil || overrides.LogEncoding != nil {
			t.Fatalf("expected empty overrides, got %+v", overrides)
		}
	})

	t.Run("all flags", func(t *testing.T) {
		overrides, err := parseFlags([]string{"--config", "box.yaml", "--log-level", "debug", "--log-encoding", "console"})
		if err != nil {
			t.Fatalf("parseFlags returned error: %v", err)
		}
		if overrides.ConfigFile != "box.yaml" {
			t.Fatalf("expected config file box.yaml, got %s", overrides.ConfigFile)
		}
		if overrides.LogLevel == nil || *overrides.LogLevel != "debug" {
			t.Fatalf("expected log level override")
		}
		if overrides.LogEncoding == nil || *overrides.LogEncoding != "console" {
			t.Fatalf("expected log encoding override")
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		if _, err := parseFlags([]string{"--port", "8080"}); err == nil {
			t.Fatalf("expected error for unknown flag")
		}
	})
}

func TestDefaultManifestReport(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_ENCODING", "")

	cfg, err := config.Load(&config.CLIOverrides{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	app, err := application.New(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := app.Run(&buf); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Destination: Toronto, 1009 Pully\nPrice: $7.4\n",
		"Destination: Muskoka, 1913 Saillon\nPrice: $15\n",
		"Destination: Vancouver, 1950 Sion\nPrice: $52.5\n",
		"Destination: Montreal, 2800 Delemont\nPrice: $56\n",
		"The box contains 0 invalid mails\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected report to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Count(out, "Destination:") != 4 {
		t.Fatalf("expected refused items to be absent from report:\n%s", out)
	}
}

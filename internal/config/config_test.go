package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != "https://lego.isscatering.dk" {
		t.Fatalf("unexpected default base URL %q", cfg.Upstream.BaseURL)
	}
	if got := cfg.FetchTimeout(); got != 15*time.Second {
		t.Fatalf("expected fetch timeout 15s, got %v", got)
	}
}

func TestLoadWithFileOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	configYAML := `
server:
  port: 9090
  cors_enabled: true
upstream:
  base_url: http://localhost:9999
  timeout_seconds: 5
  user_agent: lunchbot-test
logging:
  development: false
`
	if err := os.WriteFile(path, []byte(configYAML), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 || !cfg.Server.CORSEnabled {
		t.Fatalf("expected server overrides to apply: %+v", cfg.Server)
	}
	if cfg.Upstream.BaseURL != "http://localhost:9999" {
		t.Fatalf("expected upstream base URL override, got %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.UserAgent != "lunchbot-test" {
		t.Fatalf("expected user agent override, got %q", cfg.Upstream.UserAgent)
	}
	if cfg.Logging.Development {
		t.Fatal("expected logging.development to be overridden to false")
	}
	if got := cfg.FetchTimeout(); got != 5*time.Second {
		t.Fatalf("expected fetch timeout 5s, got %v", got)
	}
}

func TestConfigValidateErrors(t *testing.T) {
	t.Parallel()

	base := Config{
		Server:   ServerConfig{Port: 8080},
		Upstream: UpstreamConfig{BaseURL: "https://lego.isscatering.dk", TimeoutSeconds: 15},
	}

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "invalid port",
			cfg: func() Config {
				c := base
				c.Server.Port = 0
				return c
			}(),
			want: "server.port",
		},
		{
			name: "missing base url",
			cfg: func() Config {
				c := base
				c.Upstream.BaseURL = ""
				return c
			}(),
			want: "upstream.base_url",
		},
		{
			name: "invalid timeout",
			cfg: func() Config {
				c := base
				c.Upstream.TimeoutSeconds = 0
				return c
			}(),
			want: "upstream.timeout_seconds",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

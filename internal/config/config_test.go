package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 8080
database:
  host: "localhost"
  port: 5432
  name: "hybridcoach"
  user: "hybridcoach"
  password: "secret"
  sslmode: "disable"
auth:
  api_key: "test-key-123"
log:
  level: "debug"
  file: "/var/log/hybridcoach.log"
coach:
  provider: "openai"
  api_key: "sk-test"
  model: "gpt-4o"
scheduler:
  enabled: true
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoad verifies the YAML file is read and HYBRIDCOACH_ variables win over it.
func TestLoad(t *testing.T) {
	t.Setenv("HYBRIDCOACH_DB_HOST", "override-host")
	t.Setenv("HYBRIDCOACH_DB_PORT", "9999")
	t.Setenv("HYBRIDCOACH_AUTH_API_KEY", "env-key")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"server.host", cfg.Server.Host, "0.0.0.0"},
		{"server.port", cfg.Server.Port, 8080},
		{"database.host (env)", cfg.Database.Host, "override-host"},
		{"database.port (env)", cfg.Database.Port, 9999},
		{"database.name", cfg.Database.Name, "hybridcoach"},
		{"auth.api_key (env)", cfg.Auth.APIKey, "env-key"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

// TestLoadErrors covers configs that must not start a server.
func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(*testing.T) string { return "/nonexistent/config.yaml" }},
		{"missing port", func(t *testing.T) string {
			return writeTemp(t, "database:\n  host: localhost\n  port: 5432\n  name: hc\n  user: hc\nauth:\n  api_key: key\n")
		}},
		{"missing api key off tailnet", func(t *testing.T) string {
			return writeTemp(t, "server:\n  port: 8080\ndatabase:\n  host: localhost\n  port: 5432\n  name: hc\n  user: hc\n")
		}},
		{"malformed yaml", func(t *testing.T) string { return writeTemp(t, "server: [") }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(tc.path(t)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

// TestDSN checks the pgx connection string, including the sslmode default.
func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		d    DatabaseConfig
		want string
	}{
		{
			"explicit sslmode",
			DatabaseConfig{Host: "db.internal", Port: 5433, Name: "coach", User: "svc", Password: "pw", SSLMode: "require"},
			"postgres://svc:pw@db.internal:5433/coach?sslmode=require",
		},
		{
			"default sslmode",
			DatabaseConfig{Host: "localhost", Port: 5432, Name: "coach", User: "u", Password: "p"},
			"postgres://u:p@localhost:5432/coach?sslmode=disable",
		},
	}
	for _, tc := range tests {
		if got := tc.d.DSN(); got != tc.want {
			t.Errorf("%s: DSN() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

// TestLoadValidOptionalSections checks the log, coach and scheduler sections.
func TestLoadValidOptionalSections(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/var/log/hybridcoach.log" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Coach.Provider != CoachProviderOpenAI || cfg.Coach.Model != "gpt-4o" {
		t.Errorf("coach = %+v", cfg.Coach)
	}
	if !cfg.Scheduler.Enabled {
		t.Error("scheduler.enabled = false, want true")
	}
}

// TestDefaults verifies zero values are filled and explicit values are kept.
func TestDefaults(t *testing.T) {
	cfg := &Config{Coach: CoachConfig{Model: "custom"}}
	cfg.Defaults()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"tailscale.hostname", cfg.Tailscale.Hostname, "hybridcoach"},
		{"log.level", cfg.Log.Level, "info"},
		{"log.max_size_mb", cfg.Log.MaxSizeMB, 50},
		{"coach.provider", cfg.Coach.Provider, CoachProviderNone},
		{"coach.model", cfg.Coach.Model, "custom"},
		{"coach.timeout", cfg.Coach.Timeout(), 30 * time.Second},
		{"coach.requests_per_minute", cfg.Coach.RequestsPerMinute, 20},
		{"scheduler.decay_spec", cfg.Scheduler.DecaySpec, "@hourly"},
		{"scheduler.tasks_spec", cfg.Scheduler.TasksSpec, "0 5 * * *"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

// TestValidationTailscaleWithoutAPIKey verifies tailnet deployments may omit
// the API key and port since identity comes from the tailnet.
func TestValidationTailscaleWithoutAPIKey(t *testing.T) {
	yaml := `
database:
  host: "localhost"
  port: 5432
  name: "hybridcoach"
  user: "hybridcoach"
tailscale:
  enabled: true
`
	if _, err := Load(writeTemp(t, yaml)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestValidationRejectsBadValues covers enumerated fields.
func TestValidationRejectsBadValues(t *testing.T) {
	base := `
server:
  port: 8080
database:
  host: "localhost"
  port: 5432
  name: "hybridcoach"
  user: "hybridcoach"
auth:
  api_key: "key"
`
	tests := []struct {
		name  string
		extra string
	}{
		{"unknown log level", "log:\n  level: loud\n"},
		{"unknown provider", "coach:\n  provider: gemini\n"},
		{"openai without credentials", "coach:\n  provider: openai\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeTemp(t, base+tc.extra)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

// TestEnvOverrideCoach verifies coach credentials can come from the environment.
func TestEnvOverrideCoach(t *testing.T) {
	t.Setenv("HYBRIDCOACH_COACH_API_KEY", "sk-env")
	t.Setenv("HYBRIDCOACH_SCHEDULER_ENABLED", "false")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Coach.APIKey != "sk-env" {
		t.Errorf("coach.api_key = %q, want sk-env", cfg.Coach.APIKey)
	}
	if cfg.Scheduler.Enabled {
		t.Error("scheduler.enabled = true, want env override false")
	}
}

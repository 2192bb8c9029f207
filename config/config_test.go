package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TOKEN_SECRET", "secret")
	t.Setenv("LINKEDIN_CLIENT_ID", "client-id")
	t.Setenv("LINKEDIN_CLIENT_SECRET", "client-secret")
	t.Setenv("LINKEDIN_REDIRECT_URI", "http://localhost:5000/auth/linkedin/callback")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 5000 {
		t.Errorf("Expected default port 5000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("Expected default database type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "file:linkvote.db" {
		t.Errorf("Expected default database URL, got %q", cfg.DatabaseURL)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("Expected default TTL 24h, got %v", cfg.TokenTTL)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/linkvote")
	t.Setenv("TOKEN_TTL", "1h")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 8080 || cfg.DatabaseType != "postgres" || cfg.TokenTTL != time.Hour {
		t.Errorf("Environment not applied: %+v", cfg)
	}
}

func TestLoadFlagOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8080")

	cfg, err := Load([]string{"-p", "9999", "-t", "postgres", "-d", "postgres://flag"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 9999 {
		t.Errorf("Expected flag to override env, got port %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" || cfg.DatabaseURL != "postgres://flag" {
		t.Errorf("Flag overrides not applied: %+v", cfg)
	}
}

func TestLoadRequiredSecrets(t *testing.T) {
	tests := []struct {
		missing string
	}{
		{"TOKEN_SECRET"},
		{"LINKEDIN_CLIENT_ID"},
		{"LINKEDIN_CLIENT_SECRET"},
		{"LINKEDIN_REDIRECT_URI"},
	}

	for _, tt := range tests {
		t.Run(tt.missing, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.missing, "")

			_, err := Load(nil)
			if err == nil {
				t.Fatalf("Expected error with %s missing", tt.missing)
			}
			if !strings.Contains(err.Error(), tt.missing) {
				t.Errorf("Error should name %s, got: %v", tt.missing, err)
			}
		})
	}
}

func TestLoadRejectsUnknownDatabaseType(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_TYPE", "mongodb")

	if _, err := Load(nil); err == nil {
		t.Fatal("Expected error for unknown database type")
	}
}

package config

import (
	"strings"
	"testing"
	"time"
)

func validBaseConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Driver:    "surreal",
			Host:      "localhost",
			Port:      "8000",
			Namespace: "emberwell",
			Database:  "assess",
		},
		Quiz: QuizConfig{
			DefinitionPath: "./questionnaire.json",
			SessionTTL:     720 * time.Hour,
			SweepInterval:  time.Hour,
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	if err := validBaseConfig().Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidServerEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "invalid"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid SERVER_ENV")
	}
	if !strings.Contains(err.Error(), "SERVER_ENV") {
		t.Errorf("expected error to mention SERVER_ENV, got: %v", err)
	}
}

func TestConfig_Validate_UnknownStoreDriver(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Database.Driver = "postgres"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown STORE_DRIVER")
	}
	if !strings.Contains(err.Error(), "STORE_DRIVER") {
		t.Errorf("expected error to mention STORE_DRIVER, got: %v", err)
	}
}

func TestConfig_Validate_MemoryDriverNeedsNoConnection(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Database = DatabaseConfig{Driver: "memory"}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected memory driver to need no connection settings, got: %v", err)
	}
}

func TestConfig_Validate_MissingDatabaseSettings(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Database.Host = ""
	cfg.Database.Namespace = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database settings")
	}
	for _, want := range []string{"DB_HOST", "DB_NAMESPACE"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %s, got: %v", want, err)
		}
	}
}

func TestConfig_Validate_CollectsAllErrors(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""
	cfg.Quiz.DefinitionPath = ""
	cfg.Quiz.SessionTTL = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, want := range []string{"SERVER_PORT", "QUIZ_DEFINITION_PATH", "SESSION_TTL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %s, got: %v", want, err)
		}
	}
}

func TestConfig_Validate_NonPositiveSweepInterval(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Quiz.SweepInterval = -time.Minute

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for non-positive SWEEP_INTERVAL")
	}
	if !strings.Contains(err.Error(), "SWEEP_INTERVAL") {
		t.Errorf("expected error to mention SWEEP_INTERVAL, got: %v", err)
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := validBaseConfig()
	if !cfg.IsDevelopment() {
		t.Error("expected development mode for env 'development'")
	}

	cfg.Server.Env = "production"
	if cfg.IsDevelopment() {
		t.Error("expected non-development mode for env 'production'")
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port == "" {
		t.Error("expected a default server port")
	}
	if cfg.Database.Driver != "surreal" {
		t.Errorf("expected default driver surreal, got %q", cfg.Database.Driver)
	}
	if cfg.Quiz.SessionTTL != 720*time.Hour {
		t.Errorf("expected default session TTL 720h, got %v", cfg.Quiz.SessionTTL)
	}
}

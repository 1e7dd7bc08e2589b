// Package config provides application configuration management.
//
// Configuration is read from environment variables with sensible
// defaults for local development. Load never fails; Validate reports
// every problem at once via errors.Join so operators see the full list
// on startup rather than one complaint at a time.
//
// # Usage
//
//	cfg, _ := config.Load()
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
// Server:
//
//   - SERVER_PORT: HTTP listen port (default 8080)
//   - SERVER_ENV: development, production, or test
//   - SERVER_READ_TIMEOUT / SERVER_WRITE_TIMEOUT: durations
//   - CORS_ALLOWED_ORIGINS: comma-separated origin list
//
// Store:
//
//   - STORE_DRIVER: surreal or memory (default surreal)
//   - DB_HOST, DB_PORT, DB_NAMESPACE, DB_DATABASE, DB_USER, DB_PASSWORD
//
// Quiz:
//
//   - QUIZ_DEFINITION_PATH: questionnaire definition file (JSON or YAML)
//   - SESSION_TTL: retention window for abandoned sessions (default 720h)
//   - SWEEP_INTERVAL: how often stale sessions are pruned (default 1h)
package config

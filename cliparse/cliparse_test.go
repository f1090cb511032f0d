package cliparse

import (
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_TYPE", "")
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 5001 {
		t.Errorf("Expected default port 5001, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("Expected default database type sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "file:feedback.db" {
		t.Errorf("Expected default database URL file:feedback.db, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_EnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/feedback")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected port 8080 from env, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("Expected database type postgres from env, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "postgres://localhost/feedback" {
		t.Errorf("Expected database URL from env, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/feedback")

	cfg, err := ParseFlags([]string{"-p", "9000", "-t", "sqlite", "-d", "file:other.db"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("Expected flag port 9000 to win over env, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("Expected flag database type sqlite to win over env, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "file:other.db" {
		t.Errorf("Expected flag database URL to win over env, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_InvalidPortEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-number")

	if _, err := ParseFlags(nil); err == nil {
		t.Error("Expected an error for a non-numeric PORT")
	}
}

func TestParseFlags_UnknownDatabaseType(t *testing.T) {
	clearEnv(t)

	if _, err := ParseFlags([]string{"-t", "mongodb"}); err == nil {
		t.Error("Expected an error for an unsupported database type")
	}
}

func TestParseFlags_PostgresRequiresURL(t *testing.T) {
	clearEnv(t)

	if _, err := ParseFlags([]string{"-t", "postgres"}); err == nil {
		t.Error("Expected an error when postgres is selected without a URL")
	}
}

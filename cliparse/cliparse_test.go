// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "/tmp/test-league.db")
	os.Setenv("DATABASE_TYPE", "bolt")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "bolt" {
		t.Errorf("expected bolt, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "/tmp/test-league.db" {
		t.Errorf("expected database URL from env, got %s", cfg.DatabaseURL)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected json log format, got %s", cfg.LogFormat)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_TYPE", "bolt")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-t", "sqlite"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("CLI should override env: expected sqlite, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" || cfg.DatabaseURL != "league.db" {
		t.Errorf("expected sqlite league.db, got %s %s", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %s", cfg.LogLevel)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	path := filepath.Join(t.TempDir(), "league.env")
	content := "PORT=7000\nDATABASE_TYPE=bolt\nDATABASE_URL=/var/lib/league.bolt\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	// Real environment wins over the file
	os.Setenv("PORT", "7100")

	cfg, err := ParseFlags([]string{"-env", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 7100 {
		t.Errorf("expected env to win over .env file: 7100, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "bolt" || cfg.DatabaseURL != "/var/lib/league.bolt" {
		t.Errorf("expected values from .env file, got %s %s", cfg.DatabaseType, cfg.DatabaseURL)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	missingEnv := filepath.Join(t.TempDir(), "missing.env")

	testCases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"invalid PORT env", map[string]string{"PORT": "abc"}, nil},
		{"port out of range", nil, []string{"-p", "70000"}},
		{"unsupported database type", nil, []string{"-t", "mongo"}},
		{"postgres without URL", nil, []string{"-t", "postgres"}},
		{"unsupported log format", nil, []string{"-log-format", "xml"}},
		{"missing explicit env file", nil, []string{"-env", missingEnv}},
		{"unknown flag", nil, []string{"-x"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			os.Clearenv()
			defer os.Clearenv()
			for k, v := range tc.env {
				os.Setenv(k, v)
			}

			if _, err := ParseFlags(tc.args); err == nil {
				t.Errorf("expected error for %s", tc.name)
			}
		})
	}
}

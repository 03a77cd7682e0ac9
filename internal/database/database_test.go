package database

import (
	"path/filepath"
	"strings"
	"testing"

	"dream/internal/logger"
)

func TestConfigURLs(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		cfg := &Config{Driver: DriverSQLite, SQLitePath: "/tmp/dream.db"}
		if cfg.DSN() != "/tmp/dream.db" {
			t.Errorf("unexpected dsn %s", cfg.DSN())
		}
		if cfg.MigrateURL() != "sqlite3:///tmp/dream.db" {
			t.Errorf("unexpected migrate url %s", cfg.MigrateURL())
		}
	})

	t.Run("postgres", func(t *testing.T) {
		cfg := &Config{Driver: DriverPostgres, Host: "db", Port: "5432", User: "dream", Password: "p@ss", DBName: "dream", SSLMode: "disable"}
		if !strings.Contains(cfg.DSN(), "host=db port=5432") {
			t.Errorf("unexpected dsn %s", cfg.DSN())
		}
		if got := cfg.MigrateURL(); got != "postgres://dream:p%40ss@db:5432/dream?sslmode=disable" {
			t.Errorf("unexpected migrate url %s", got)
		}
	})
}

func TestNewManagerUnsupportedDriver(t *testing.T) {
	if _, err := NewManager(&Config{Driver: "oracle"}); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestSQLiteMigrations(t *testing.T) {
	logger.Init("test")
	cfg := &Config{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "dream.db")}

	mgr, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer mgr.Close()

	if err := mgr.RunMigrations(); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}
	if err := mgr.RunMigrations(); err != nil {
		t.Fatalf("second run should be a no-op: %v", err)
	}
	if !mgr.DB().Migrator().HasTable("kv_entries") {
		t.Error("expected kv_entries table")
	}
}

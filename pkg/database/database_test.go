package database

import (
	"language_quiz_backend/internal/config"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInitDBSQLiteMigrates(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{
			Driver:          "sqlite",
			Path:            filepath.Join(t.TempDir(), "nested", "quiz.db"),
			ConnMaxLifetime: time.Hour,
		},
	}

	db, err := InitDB(cfg)
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	for _, table := range []string{"quiz", "question", "answer"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("table %q was not created", table)
		}
	}
}

func TestDialectorRejectsUnknownDriver(t *testing.T) {
	if _, err := Dialector(&config.DatabaseConfig{Driver: "oracle"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestDSNs(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host: "db", Port: 3306, User: "quiz", Password: "pw", DBName: "language_quiz",
		Charset: "utf8mb4", ParseTime: true, SSLMode: "disable",
	}

	my := mysqlDSN(cfg)
	if !strings.HasPrefix(my, "quiz:pw@tcp(db:3306)/language_quiz?") || !strings.Contains(my, "parseTime=true") {
		t.Fatalf("mysql dsn = %q", my)
	}

	pg := postgresDSN(cfg)
	if !strings.Contains(pg, "host=db") || !strings.Contains(pg, "sslmode=disable") {
		t.Fatalf("postgres dsn = %q", pg)
	}

	cfg.URL = "postgres://u:p@h/db"
	if postgresDSN(cfg) != cfg.URL {
		t.Fatalf("URL should win over discrete fields")
	}
}

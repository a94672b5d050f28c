package repository

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	EngineSQLite   = "sqlite"
	EnginePostgres = "postgres"
)

type Config struct {
	Type        string `env:"DB_TYPE" envDefault:"sqlite"`
	PostgresURL string `env:"POSTGRES_URL" envDefault:""`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"./data/summoners.db"`
}

// Engine normalizes DB_TYPE, falling back to sqlite for unknown values.
func (c *Config) Engine() string {
	if strings.ToLower(c.Type) == EnginePostgres {
		return EnginePostgres
	}
	return EngineSQLite
}

// NewDB opens the configured storage engine and verifies the connection.
func NewDB(cfg *Config) (*sql.DB, error) {
	if cfg.Engine() == EnginePostgres {
		return newPostgresDB(cfg)
	}
	return newSQLiteDB(cfg)
}

func newPostgresDB(cfg *Config) (*sql.DB, error) {
	if cfg.PostgresURL == "" {
		return nil, fmt.Errorf("POSTGRES_URL is required when DB_TYPE=postgres")
	}

	db, err := sql.Open("postgres", cfg.PostgresURL)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

func newSQLiteDB(cfg *Config) (*sql.DB, error) {
	dir := filepath.Dir(cfg.SQLitePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"meetbook/internal/infra/db"
	"meetbook/internal/pkg/config"

	"github.com/joho/godotenv"
)

// Applies every migrations/*.sql file in name order. Statements are written
// idempotent (IF NOT EXISTS), so re-running is safe.
func main() {
	dir := flag.String("dir", "migrations", "directory with .sql migration files")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	files, err := filepath.Glob(filepath.Join(*dir, "*.sql"))
	if err != nil {
		slog.Error("failed to list migrations", "error", err)
		os.Exit(1)
	}
	sort.Strings(files)

	ctx := context.Background()
	for _, file := range files {
		sql, err := os.ReadFile(file)
		if err != nil {
			slog.Error("failed to read migration", "file", file, "error", err)
			os.Exit(1)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			slog.Error("failed to apply migration", "file", file, "error", err)
			os.Exit(1)
		}
		slog.Info("migration applied", "file", file)
	}
}

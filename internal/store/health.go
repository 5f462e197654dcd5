package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

var expectedTables = []string{"runs", "episodes", "lines", "speaker_stats", "schema_migrations"}

// CheckHealth returns diagnostic information about the transcript database.
func (s *Store) CheckHealth(ctx context.Context) (DatabaseHealth, error) {
	health := DatabaseHealth{DBPath: s.path}

	if s.path == "" {
		return health, errors.New("database path is unknown")
	}

	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return health, nil
		}
		return health, fmt.Errorf("stat database: %w", err)
	}
	if info.IsDir() {
		return health, fmt.Errorf("database path %q is a directory", s.path)
	}
	health.DatabaseExists = true

	if s.db == nil {
		return health, errors.New("database connection unavailable")
	}

	connCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(connCtx); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("ping database: %w", err)
	}
	health.DatabaseReadable = true

	if err := s.db.QueryRowContext(connCtx, "SELECT version FROM schema_version LIMIT 1").Scan(&health.SchemaVersion); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("read schema version: %w", err)
	}

	for _, table := range expectedTables {
		var count int
		if err := s.db.QueryRowContext(connCtx,
			"SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&count); err != nil {
			health.Error = err.Error()
			return health, fmt.Errorf("query table %s: %w", table, err)
		}
		if count == 0 {
			health.MissingTables = append(health.MissingTables, table)
		}
	}
	if len(health.MissingTables) > 0 {
		return health, nil
	}

	if health.Migrations, err = s.AppliedMigrations(connCtx); err != nil {
		health.Error = err.Error()
		return health, err
	}
	if err := s.db.QueryRowContext(connCtx, "SELECT COUNT(*) FROM episodes").Scan(&health.TotalEpisodes); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("count episodes: %w", err)
	}
	if err := s.db.QueryRowContext(connCtx, "SELECT COUNT(*) FROM runs").Scan(&health.TotalRuns); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("count runs: %w", err)
	}

	var integrityResult string
	if err := s.db.QueryRowContext(connCtx, "PRAGMA integrity_check").Scan(&integrityResult); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("integrity check: %w", err)
	}
	health.IntegrityCheck = strings.EqualFold(integrityResult, "ok")

	return health, nil
}

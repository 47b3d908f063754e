package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_activity",
		SQL: `CREATE TABLE IF NOT EXISTS activity (
  id              UUID        PRIMARY KEY,
  kind            TEXT        NOT NULL CHECK (kind IN ('upload', 'ask')),
  media_type      TEXT        NOT NULL DEFAULT '',
  size_bytes      BIGINT      NOT NULL DEFAULT 0 CHECK (size_bytes >= 0),
  content_length  INTEGER     NOT NULL DEFAULT 0,
  question_length INTEGER     NOT NULL DEFAULT 0,
  answer_length   INTEGER     NOT NULL DEFAULT 0,
  outcome         TEXT        NOT NULL,
  duration_ms     BIGINT      NOT NULL DEFAULT 0,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_activity_kind_outcome",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_activity_kind_outcome ON activity (kind, outcome);`,
	},
	{
		Name: "create_index_activity_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_activity_created_at ON activity (created_at);`,
	},
}

// EnsureMigrated checks if the 'activity' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass('public.activity') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("reason", "schema already exists"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}

package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so
// the full list re-runs safely on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS wbs_nodes (
		id            TEXT PRIMARY KEY,
		parent_id     TEXT REFERENCES wbs_nodes(id) ON DELETE CASCADE,
		name          TEXT NOT NULL,
		level         INTEGER NOT NULL CHECK(level >= 0),
		duration_days INTEGER NOT NULL DEFAULT 0 CHECK(duration_days >= 0),
		start_date    TEXT NOT NULL,
		end_date      TEXT NOT NULL,
		assignee      TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL DEFAULT 'not_started'
		              CHECK(status IN ('not_started','in_progress','completed','on_hold')),
		progress      REAL NOT NULL DEFAULT 0 CHECK(progress >= 0 AND progress <= 100),
		budget        REAL NOT NULL DEFAULT 0 CHECK(budget >= 0),
		actual_cost   REAL NOT NULL DEFAULT 0 CHECK(actual_cost >= 0),
		kind          TEXT NOT NULL
		              CHECK(kind IN ('project','phase','task')),
		is_milestone  INTEGER NOT NULL DEFAULT 0,
		is_critical   INTEGER NOT NULL DEFAULT 0,
		order_index   INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_wbs_nodes_parent ON wbs_nodes(parent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_wbs_nodes_critical ON wbs_nodes(is_critical)`,

	`CREATE TABLE IF NOT EXISTS wbs_dependencies (
		node_id    TEXT NOT NULL REFERENCES wbs_nodes(id) ON DELETE CASCADE,
		depends_on TEXT NOT NULL REFERENCES wbs_nodes(id) ON DELETE CASCADE,
		PRIMARY KEY (node_id, depends_on)
	)`,

	`CREATE TABLE IF NOT EXISTS baselines (
		id          TEXT PRIMARY KEY,
		label       TEXT NOT NULL UNIQUE,
		captured_at TEXT NOT NULL,
		created_by  TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS baseline_entries (
		baseline_id   TEXT NOT NULL REFERENCES baselines(id) ON DELETE CASCADE,
		node_id       TEXT NOT NULL,
		budget        REAL NOT NULL DEFAULT 0,
		duration_days INTEGER NOT NULL DEFAULT 0,
		start_date    TEXT NOT NULL,
		end_date      TEXT NOT NULL,
		PRIMARY KEY (baseline_id, node_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_baseline_entries_baseline ON baseline_entries(baseline_id)`,
}

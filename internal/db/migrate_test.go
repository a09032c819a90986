package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"wbs_nodes", "wbs_dependencies", "baselines", "baseline_entries"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	assert.NoError(t, Migrate(database))
	assert.NoError(t, Migrate(database))
}

func TestMigrate_EnumChecksEnforced(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO wbs_nodes
		(id, name, level, start_date, end_date, kind, status, created_at, updated_at)
		VALUES ('1', 'Root', 0, '2026-01-01', '2026-06-30', 'epic', 'not_started', '', '')`)
	assert.Error(t, err, "unknown kind must violate CHECK constraint")
}

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehmann314159/vocablearn/internal/config"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "postgres", DSN: "postgres://localhost"})
	assert.Error(t, err)
}

func TestOpen_InvalidMySQLDSN(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: DriverMySQL, DSN: "not a dsn"})
	assert.Error(t, err)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: DriverSQLite3, DSN: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	// Re-running is a no-op.
	require.NoError(t, Migrate(db))

	var columns []string
	rows, err := db.Query(`SELECT name FROM pragma_table_info('words') ORDER BY cid`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		columns = append(columns, name)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []string{"id", "word", "meaning", "sentence"}, columns)
}

func TestMigrations_WordColumnUnbounded(t *testing.T) {
	for _, driver := range []string{DriverSQLite3, DriverMySQL} {
		t.Run(driver, func(t *testing.T) {
			up, err := migrationsFS.ReadFile("migrations/" + driver + "/000001_create_words.up.sql")
			require.NoError(t, err)
			assert.Contains(t, string(up), "word TEXT NOT NULL")
			assert.NotContains(t, string(up), "VARCHAR")
		})
	}
}

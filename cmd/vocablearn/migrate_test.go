package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehmann314159/vocablearn/internal/config"
)

func TestRunMigrate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.DatabaseConfig
		wantLog string
		wantErr bool
	}{
		{
			name:    "memory store has nothing to migrate",
			cfg:     config.DatabaseConfig{Driver: "memory"},
			wantLog: "nothing to migrate",
		},
		{
			name:    "sqlite file",
			cfg:     config.DatabaseConfig{Driver: "sqlite3", DSN: filepath.Join(t.TempDir(), "words.db")},
			wantLog: "migrations applied",
		},
		{
			name:    "unsupported driver",
			cfg:     config.DatabaseConfig{Driver: "postgres", DSN: "x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			err := runMigrate(tt.cfg, logger)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.wantLog)
		})
	}
}

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehmann314159/vocablearn/internal/completion/anthropic"
	"github.com/lehmann314159/vocablearn/internal/completion/openai"
	"github.com/lehmann314159/vocablearn/internal/config"
	"github.com/lehmann314159/vocablearn/internal/models"
)

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{
			Addr:            "127.0.0.1:0",
			ShutdownTimeout: time.Second,
		},
		Database: config.DatabaseConfig{Driver: "sqlite3", DSN: ":memory:"},
		Completion: config.CompletionConfig{
			Provider:  "openai",
			APIKey:    "test-key",
			Model:     config.DefaultOpenAIModel,
			BaseURL:   baseURL,
			Timeout:   5 * time.Second,
			MaxTokens: 64,
		},
		Log: config.LogConfig{Level: "error"},
	}
}

func TestNewCompleter(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		wantType any
		wantErr  bool
	}{
		{name: "openai", provider: "openai", wantType: &openai.Client{}},
		{name: "anthropic", provider: "anthropic", wantType: &anthropic.Client{}},
		{name: "unknown", provider: "gemini", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer, closeFn, err := NewCompleter(config.CompletionConfig{
				Provider:  tt.provider,
				APIKey:    "key",
				Model:     "model",
				Timeout:   time.Second,
				MaxTokens: 16,
			})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.provider)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, completer)
			assert.NoError(t, closeFn())
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true, wantWarn: true},
		{level: "", wantInfo: true, wantWarn: true},
		{level: "INFO", wantInfo: true, wantWarn: true},
		{level: "warn", wantWarn: true},
		{level: "error"},
		{level: "verbose", wantInfo: true, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := newLogger(&bytes.Buffer{}, config.LogConfig{Level: tt.level})
			ctx := context.Background()
			assert.Equal(t, tt.wantDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.wantInfo, logger.Enabled(ctx, slog.LevelInfo))
			assert.Equal(t, tt.wantWarn, logger.Enabled(ctx, slog.LevelWarn))
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "info", Format: "json"})

	logger.Info("word added", slog.String("word", "Jubilant"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "word added", entry["msg"])
	assert.Equal(t, "Jubilant", entry["word"])
	assert.NotContains(t, entry, "source")
}

func TestApp_Handler(t *testing.T) {
	completions := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Very happy."}}]}`))
	}))
	defer completions.Close()

	logger := newLogger(&bytes.Buffer{}, config.LogConfig{Level: "error"})
	a, err := New(testConfig(t, completions.URL), logger)
	require.NoError(t, err)
	defer func() { assert.NoError(t, a.Close()) }()

	handler, err := a.Handler()
	require.NoError(t, err)

	form := url.Values{"word": {"Jubilant"}}
	req := httptest.NewRequest(http.MethodPost, "/add-word", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var words []models.Word
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&words))
	require.Len(t, words, 1)
	assert.Equal(t, "Very happy.", words[0].Meaning)
	assert.Equal(t, "Very happy.", words[0].Sentence)
}

func TestApp_ServeStopsOnCancel(t *testing.T) {
	logger := newLogger(&bytes.Buffer{}, config.LogConfig{Level: "error"})
	a, err := New(testConfig(t, ""), logger)
	require.NoError(t, err)
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestNewRepository_Memory(t *testing.T) {
	repo, closeFn, err := NewRepository(config.DatabaseConfig{Driver: "memory"})
	require.NoError(t, err)
	defer func() { assert.NoError(t, closeFn()) }()

	created, err := repo.Create(context.Background(), models.WordEntity{Word: "Jubilant"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestNew_InvalidDatabase(t *testing.T) {
	cfg := testConfig(t, "")
	cfg.Database = config.DatabaseConfig{Driver: "postgres", DSN: "x"}

	_, err := New(cfg, slog.Default())
	require.Error(t, err)
}

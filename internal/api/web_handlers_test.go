package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehmann314159/vocablearn/internal/models"
	"github.com/lehmann314159/vocablearn/internal/repository"
	"github.com/lehmann314159/vocablearn/internal/services"
)

func newTestWebHandler(t *testing.T) (*WebHandler, *services.WordService) {
	t.Helper()
	wordSvc := services.NewWordService(repository.NewMemoryRepository())
	wh, err := NewWebHandler(wordSvc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return wh, wordSvc
}

func TestWebHandler_Pages(t *testing.T) {
	wh, wordSvc := newTestWebHandler(t)
	_, err := wordSvc.CreateWord(context.Background(), models.Word{
		Word:     "Ephemeral",
		Meaning:  "Lasting a very short time",
		Sentence: "Fame is ephemeral.",
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    []string
	}{
		{
			name:    "home",
			handler: wh.Home,
			want:    []string{"<title>Vocabulary</title>", `href="/add-word"`, `href="/get-data"`},
		},
		{
			name:    "listing",
			handler: wh.GetData,
			want:    []string{"Ephemeral", "Lasting a very short time", "Fame is ephemeral.", "<td>1</td>"},
		},
		{
			name:    "add form with sample word",
			handler: wh.AddWordForm,
			want:    []string{`value="Jubilant"`, "Expressing great happiness", "The jubilant crowd cheered loudly."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			for _, s := range tt.want {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestWebHandler_GetData_Empty(t *testing.T) {
	wh, _ := newTestWebHandler(t)

	rec := httptest.NewRecorder()
	wh.GetData(rec, httptest.NewRequest(http.MethodGet, "/get-data", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No words yet")
}

func TestWebHandler_GetData_EscapesContent(t *testing.T) {
	wh, wordSvc := newTestWebHandler(t)
	_, err := wordSvc.CreateWord(context.Background(), models.Word{Word: "<script>alert(1)</script>"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	wh.GetData(rec, httptest.NewRequest(http.MethodGet, "/get-data", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<script>alert(1)</script>")
	assert.Contains(t, rec.Body.String(), "&lt;script&gt;")
}

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/lehmann314159/vocablearn/internal/models"
	"github.com/lehmann314159/vocablearn/internal/services"
)

// Handler contains the JSON HTTP handlers
type Handler struct {
	wordService       *services.WordService
	definitionService *services.DefinitionService
	logger            *slog.Logger
}

// NewHandler creates a new handler
func NewHandler(wordService *services.WordService, definitionService *services.DefinitionService, logger *slog.Logger) *Handler {
	return &Handler{
		wordService:       wordService,
		definitionService: definitionService,
		logger:            logger,
	}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// storageError logs a store fault and answers 500
func (h *Handler) storageError(w http.ResponseWriter, r *http.Request, message string, err error) {
	h.logger.Error(message,
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	writeError(w, http.StatusInternalServerError, message)
}

const maxFormMemory = 10 << 20 // 10 MB

// parseForm parses URL-encoded and multipart bodies together with the query string
func parseForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxFormMemory)
	}
	return r.ParseForm()
}

// wordParam returns the required "word" parameter from the query or form body
func wordParam(r *http.Request) (string, bool, error) {
	if err := parseForm(r); err != nil {
		return "", false, err
	}
	if !r.Form.Has("word") {
		return "", false, nil
	}
	return r.Form.Get("word"), true, nil
}

// GetWordList handles GET /get-word-list
func (h *Handler) GetWordList(w http.ResponseWriter, r *http.Request) {
	words, err := h.wordService.ReadWords(r.Context())
	if err != nil {
		h.storageError(w, r, "failed to list words", err)
		return
	}

	writeJSON(w, http.StatusOK, words)
}

// AddWord handles POST /add-word. Blank meaning or sentence fields are
// generated before the word is stored; the response is the full word list.
func (h *Handler) AddWord(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	word := models.Word{
		Word:     r.FormValue("word"),
		Meaning:  r.FormValue("meaning"),
		Sentence: r.FormValue("sentence"),
	}

	if strings.TrimSpace(word.Meaning) == "" || strings.TrimSpace(word.Sentence) == "" {
		generated := h.definitionService.Generate(r.Context(), word.Word)
		if strings.TrimSpace(word.Meaning) == "" {
			word.Meaning = generated.Meaning
		}
		if strings.TrimSpace(word.Sentence) == "" {
			word.Sentence = generated.Sentence
		}
	}

	if _, err := h.wordService.CreateWord(r.Context(), word); err != nil {
		h.storageError(w, r, "failed to add word", err)
		return
	}

	h.logger.Info("word added",
		slog.String("word", word.Word),
		slog.String("meaning", word.Meaning),
		slog.String("sentence", word.Sentence),
	)

	words, err := h.wordService.ReadWords(r.Context())
	if err != nil {
		h.storageError(w, r, "failed to list words", err)
		return
	}

	writeJSON(w, http.StatusOK, words)
}

// DeleteWord handles POST /delete-word
func (h *Handler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	word, ok, err := wordParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	if !ok {
		writeError(w, http.StatusBadRequest, "word parameter is required")
		return
	}

	deleted, err := h.wordService.DeleteWord(r.Context(), word)
	if err != nil {
		h.storageError(w, r, "failed to delete word", err)
		return
	}

	writeJSON(w, http.StatusOK, deleted)
}

// GenerateWordDetails handles POST /generate-word-details. Nothing is stored.
func (h *Handler) GenerateWordDetails(w http.ResponseWriter, r *http.Request) {
	word, ok, err := wordParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	if !ok {
		writeError(w, http.StatusBadRequest, "word parameter is required")
		return
	}

	writeJSON(w, http.StatusOK, h.definitionService.Generate(r.Context(), word))
}

// ExportWords handles GET /export-words
func (h *Handler) ExportWords(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=words.csv")

	err := h.wordService.ExportCSV(r.Context(), w)
	if err != nil {
		// Reset headers since we already set them
		w.Header().Set("Content-Type", "application/json")
		w.Header().Del("Content-Disposition")
		h.storageError(w, r, "failed to export words", err)
		return
	}
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

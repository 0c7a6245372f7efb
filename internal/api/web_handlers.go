package api

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/lehmann314159/vocablearn/internal/models"
	"github.com/lehmann314159/vocablearn/internal/services"
)

//go:embed templates/*.html
var templatesFS embed.FS

// WebHandler handles HTML template rendering
type WebHandler struct {
	wordSvc   *services.WordService
	templates map[string]*template.Template
	logger    *slog.Logger
}

// NewWebHandler creates a new WebHandler with parsed templates
func NewWebHandler(wordSvc *services.WordService, logger *slog.Logger) (*WebHandler, error) {
	funcMap := template.FuncMap{
		"id": func(id *int64) string {
			if id == nil {
				return ""
			}
			return strconv.FormatInt(*id, 10)
		},
	}

	// Parse layout template first
	layoutTmpl, err := template.New("layout.html").Funcs(funcMap).ParseFS(templatesFS, "templates/layout.html")
	if err != nil {
		return nil, err
	}

	// Define page templates that use the layout
	pageTemplates := []string{
		"home.html",
		"get_data.html",
		"add_word.html",
	}

	templates := make(map[string]*template.Template)

	for _, page := range pageTemplates {
		// Clone the layout template for each page
		tmpl, err := layoutTmpl.Clone()
		if err != nil {
			return nil, err
		}
		// Parse the page template into the cloned layout
		tmpl, err = tmpl.ParseFS(templatesFS, "templates/"+page)
		if err != nil {
			return nil, err
		}
		templates[page] = tmpl
	}

	return &WebHandler{
		wordSvc:   wordSvc,
		templates: templates,
		logger:    logger,
	}, nil
}

// PageData contains data for pages without content of their own
type PageData struct {
	Title string
}

// Home handles the entry page
func (h *WebHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, "home.html", PageData{Title: "Vocabulary"})
}

// ListData contains data for the listing page
type ListData struct {
	Title string
	Words []models.Word
}

// GetData handles the listing page
func (h *WebHandler) GetData(w http.ResponseWriter, r *http.Request) {
	words, err := h.wordSvc.ReadWords(r.Context())
	if err != nil {
		h.logger.Error("failed to load words", slog.Any("error", err))
		h.renderError(w, "Failed to load words", http.StatusInternalServerError)
		return
	}

	h.render(w, "get_data.html", ListData{
		Title: "My Words",
		Words: words,
	})
}

// WordFormData contains data for the word form
type WordFormData struct {
	Title string
	Word  models.Word
}

// AddWordForm shows the add-word form filled with a sample entry
func (h *WebHandler) AddWordForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "add_word.html", WordFormData{
		Title: "Add Word",
		Word:  models.SampleWord(),
	})
}

// render renders a full page with layout
func (h *WebHandler) render(w http.ResponseWriter, content string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	tmpl, ok := h.templates[content]
	if !ok {
		http.Error(w, "Template not found: "+content, http.StatusInternalServerError)
		return
	}

	// Execute the layout template (which includes the content)
	err := tmpl.ExecuteTemplate(w, "layout.html", data)
	if err != nil {
		h.logger.Error("template execution failed", slog.String("template", content), slog.Any("error", err))
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// renderError renders an error page
func (h *WebHandler) renderError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte("<html><body><h1>Error</h1><p>" + template.HTMLEscapeString(message) + "</p><a href='/'>Back to home</a></body></html>"))
}

package httpserver

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// parseTemplates parses every embedded .tmpl file into one set. Each page
// file defines a named template and shares the "head"/"foot" partials.
func parseTemplates() (*template.Template, error) {
	t, err := template.New("_root").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// render executes the named page template with the given payload. A template
// failure after headers are written cannot be recovered, so execution errors
// are logged and surfaced as a 500 only when nothing was flushed yet.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("render template",
			zap.String("template", name),
			zap.Error(err),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

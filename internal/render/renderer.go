package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer using the embedded templates
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates once
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("notifications").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render executes the named template ("layout" for a full page, "panel" for the fragment)
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

const (
	PageEvent       = "event"
	PageNotFound    = "not-found"
	PageUnavailable = "unavailable"
	PageError       = "error"
	FragmentBooking = "book-event"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Static holds the stylesheet and the detail icons, rooted at "static".
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	return sub
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	const op = "view.NewRenderer"

	tmpl, err := template.New("_root").ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}

	return r
}

// Render executes the named template into w. A template failing midway may
// leave partial output in w; response.HTML buffers before writing.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	const op = "view.Renderer.Render"

	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("%s: %s: %w", op, name, err)
	}

	return nil
}

package response

import (
	"bytes"
	"io"
	"net/http"
)

type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// HTML renders the named template and writes it with status. On a render
// error nothing is written and the error is returned.
func HTML(w http.ResponseWriter, status int, renderer Renderer, name string, data any) error {
	var buf bytes.Buffer

	if err := renderer.Render(&buf, name, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)

	return err
}

package response

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	out string
	err error
}

func (s stubRenderer) Render(w io.Writer, _ string, _ any) error {
	if _, err := io.WriteString(w, s.out); err != nil {
		return err
	}

	return s.err
}

func TestHTML(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()

	err := HTML(rr, http.StatusNotFound, stubRenderer{out: "<p>missing</p>"}, "not-found", nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "<p>missing</p>", rr.Body.String())
}

func TestHTMLPartialRenderWritesNothing(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()

	err := HTML(rr, http.StatusOK, stubRenderer{out: "<section>half", err: errors.New("template failed")}, "event", nil)
	require.Error(t, err)

	assert.False(t, rr.Flushed)
	assert.Zero(t, rr.Body.Len())
	assert.Empty(t, rr.Header().Get("Content-Type"))

	// the caller can still choose the status
	http.Error(rr, "Internal Server Error", http.StatusInternalServerError)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

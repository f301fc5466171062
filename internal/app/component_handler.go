package app

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

type ComponentResponse struct {
	Error       error
	Message     string
	Code        int
	ContentType string
	Component   templ.Component
	// Redirect, when set, sends a 303 to the path instead of rendering.
	Redirect string
}

type ComponentHandler func(http.ResponseWriter, *http.Request) *ComponentResponse

func (ch ComponentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := ch(w, r)

	if resp.Error != nil {
		slog.Error(fmt.Sprintf(`Error occured: %s`, resp.Error.Error()), "path", r.URL.Path, "message", resp.Message)
	}

	if resp.Redirect != "" {
		http.Redirect(w, r, resp.Redirect, http.StatusSeeOther)
		return
	}

	var buf bytes.Buffer
	err := resp.Component.Render(r.Context(), &buf)

	if err != nil {
		slog.Error(fmt.Sprintf(`Error occured: %s`, err.Error()), "path", r.URL.Path)
		http.Error(w, "templ: failed to render template", http.StatusInternalServerError)
		return
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "text/html; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)

	if resp.Code != 0 {
		w.WriteHeader(resp.Code)
	}

	_, err = buf.WriteTo(w)
	if err != nil {
		slog.Error(fmt.Sprintf(`Error occured: %s`, err.Error()), "path", r.URL.Path)
	}
}

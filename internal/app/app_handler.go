package app

import (
	"fmt"
	"log/slog"
	"net/http"
)

// AppError is returned by handlers that write their own response body and
// only need a plain-text fallback on failure.
type AppError struct {
	Error   error
	Message string
	Code    int
}

type AppHandler func(http.ResponseWriter, *http.Request) *AppError

func (fn AppHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if e := fn(w, r); e != nil {
		if e.Error != nil {
			slog.Error(fmt.Sprintf(`Error occured: %s`, e.Error.Error()), "path", r.URL.Path)
		}
		http.Error(w, e.Message, e.Code)
	}
}

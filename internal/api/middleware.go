package api

import (
	"context"
	"fmt"
	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"log/slog"
	"net/http"
)

const requestIDHeader = "X-Request-ID"

type ctxKey int

const loggerKey ctxKey = iota

// logRequests tags every request with an id, echoes it back and logs the
// outcome once the handler is done.
func (s *APIServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		log := s.logger.With(slog.String("request_id", id))
		r = r.WithContext(context.WithValue(r.Context(), loggerKey, log))

		m := httpsnoop.CaptureMetrics(next, w, r)

		log.Info("Request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", m.Code),
			slog.Duration("duration", m.Duration),
		)
	})
}

// log returns the request-scoped logger, falling back to the server's.
func (s *APIServer) log(r *http.Request) *slog.Logger {
	if log, ok := r.Context().Value(loggerKey).(*slog.Logger); ok {
		return log
	}
	return s.logger
}

// printlnLogger feeds Println-style error reports from promhttp and
// gorilla/handlers into slog.
type printlnLogger struct {
	logger *slog.Logger
}

func (l printlnLogger) Println(v ...interface{}) {
	l.logger.Error(fmt.Sprint(v...))
}

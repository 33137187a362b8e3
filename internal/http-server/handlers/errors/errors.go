package errors

import (
	"AssistHub/internal/lib/api/response"
	"AssistHub/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func NotFound(log *slog.Logger) http.HandlerFunc {
	return reject(log, http.StatusNotFound, "Requested resource not found")
}

func NotAllowed(log *slog.Logger) http.HandlerFunc {
	return reject(log, http.StatusMethodNotAllowed, "Method not allowed")
}

func reject(log *slog.Logger, status int, message string) http.HandlerFunc {
	mod := sl.Module("http.handlers.errors")
	return func(w http.ResponseWriter, r *http.Request) {
		log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		).Debug(message)

		render.Status(r, status)
		render.JSON(w, r, response.Error(message))
	}
}

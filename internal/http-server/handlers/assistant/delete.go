package assistant

import (
	"AssistHub/internal/lib/api/response"
	"AssistHub/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func Delete(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.assistant")

		name := chi.URLParam(r, "name")
		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("name", name),
		)

		if handler == nil {
			logger.Error("assistant service not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Assistant service not available"))
			return
		}

		deleted, err := handler.DeleteAssistant(r.Context(), name)
		if err != nil {
			logger.Error("delete assistant", sl.Err(err))
			renderError(w, r, "Delete", err)
			return
		}
		logger.With(slog.String("id", deleted.ID)).Debug("assistant deleted")

		render.JSON(w, r, response.Ok(deleted))
	}
}

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

func Get(log *slog.Logger, handler Core) http.HandlerFunc {
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

		useCache := r.URL.Query().Get("cache") != "false"

		remote, err := handler.GetAssistant(r.Context(), name, useCache)
		if err != nil {
			logger.Error("get assistant", sl.Err(err))
			renderError(w, r, "Get", err)
			return
		}
		logger.Debug("get assistant")

		render.JSON(w, r, response.Ok(remote))
	}
}

func GetAll(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.assistant")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("assistant service not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Assistant service not available"))
			return
		}

		assistants, err := handler.GetAllAssistants(r.Context())
		if err != nil {
			logger.With(sl.Err(err)).Error("get all assistants")
			renderError(w, r, "List", err)
			return
		}
		logger.With(slog.Int("count", len(assistants))).Debug("get all assistants")

		render.JSON(w, r, response.Ok(assistants))
	}
}

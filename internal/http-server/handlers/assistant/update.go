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

func Update(log *slog.Logger, handler Core) http.HandlerFunc {
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

		req, err := decodeConfig(r)
		if err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}
		req.Name = name
		if err = validate.Struct(req); err != nil {
			logger.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		result, err := handler.UpdateAssistant(r.Context(), name, req)
		if err != nil {
			logger.Error("update assistant", sl.Err(err))
			renderError(w, r, "Update", err)
			return
		}

		logger.With(
			slog.Any("id", result["id"]),
		).Debug("assistant updated successfully")

		render.JSON(w, r, response.Ok(result))
	}
}

package assistant

import (
	"AssistHub/internal/lib/api/response"
	"AssistHub/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func Create(log *slog.Logger, handler Core) http.HandlerFunc {
	return createOrEnsure(log, handler, false)
}

// Ensure returns the stored assistant with that name, creating it when unknown.
func Ensure(log *slog.Logger, handler Core) http.HandlerFunc {
	return createOrEnsure(log, handler, true)
}

func createOrEnsure(log *slog.Logger, handler Core, ensure bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.assistant")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Bool("ensure", ensure),
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
		if err = validate.Struct(req); err != nil {
			logger.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		logger = logger.With(slog.String("name", req.Name))

		if ensure {
			remote, err := handler.EnsureAssistant(r.Context(), req)
			if err != nil {
				logger.Error("ensure assistant", sl.Err(err))
				renderError(w, r, "Ensure", err)
				return
			}
			logger.With(slog.String("id", remote.ID)).Debug("assistant ensured")
			render.JSON(w, r, response.Ok(remote))
			return
		}

		result, err := handler.CreateAssistant(r.Context(), req)
		if err != nil {
			logger.Error("create assistant", sl.Err(err))
			renderError(w, r, "Create", err)
			return
		}

		logger.With(
			slog.Any("id", result["id"]),
		).Debug("assistant created")

		render.JSON(w, r, response.Ok(result))
	}
}

package helpcenter

import (
	"AssistHub/impl/core"
	"AssistHub/internal/lib/api/response"
	"AssistHub/internal/lib/sl"
	"AssistHub/internal/service/zendesk"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Command executes a function tool call; the body is the raw call arguments.
func Command(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.helpcenter")

		name := chi.URLParam(r, "name")
		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("command", name),
		)

		if handler == nil {
			logger.Error("help center not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Help center not available"))
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil || !json.Valid(body) {
			logger.Error("invalid arguments", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid arguments"))
			return
		}

		output, err := handler.HandleCommand(r.Context(), name, body)
		if err != nil {
			logger.Error("handle command", sl.Err(err))
			render.Status(r, commandStatus(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("Error handling command %s: %v", name, err)))
			return
		}
		logger.Debug("handle command")

		var data interface{} = output
		if json.Valid([]byte(output)) {
			data = json.RawMessage(output)
		}
		render.JSON(w, r, response.Ok(data))
	}
}

func commandStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, zendesk.ErrUnknownCommand):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

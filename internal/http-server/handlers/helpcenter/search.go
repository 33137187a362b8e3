package helpcenter

import (
	"AssistHub/impl/core"
	"AssistHub/internal/lib/api/response"
	"AssistHub/internal/lib/sl"
	"AssistHub/internal/service/zendesk"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func Search(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.helpcenter")

		query := r.URL.Query().Get("query")
		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("query", query),
		)

		if handler == nil {
			logger.Error("help center not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Help center not available"))
			return
		}

		if query == "" {
			logger.Error("no query provided")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("No query provided"))
			return
		}

		articles, err := handler.SearchHelpCenter(r.Context(), query)
		if err != nil {
			logger.Error("search help center", sl.Err(err))
			status := http.StatusInternalServerError
			switch {
			case errors.Is(err, zendesk.ErrConnection):
				status = http.StatusBadGateway
			case errors.Is(err, core.ErrNotConfigured):
				status = http.StatusServiceUnavailable
			}
			render.Status(r, status)
			render.JSON(w, r, response.Error("Search failed"))
			return
		}
		logger.With(slog.Int("found", len(articles))).Debug("search help center")

		render.JSON(w, r, response.Ok(articles))
	}
}

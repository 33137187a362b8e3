package assistant

import (
	ai "AssistHub/ai/assistant"
	"AssistHub/entity"
	"AssistHub/internal/lib/api/response"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/sashabaranov/go-openai"
)

var validate = validator.New()

func renderError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status := http.StatusInternalServerError
	var apiErr *openai.APIError
	switch {
	case errors.Is(err, ai.ErrIdNotSet):
		status = http.StatusNotFound
	case errors.Is(err, ai.ErrInvalid), errors.Is(err, ai.ErrInvalidTool):
		status = http.StatusBadRequest
	case errors.As(err, &apiErr):
		status = http.StatusBadGateway
		if apiErr.HTTPStatusCode >= 400 && apiErr.HTTPStatusCode < 500 {
			status = apiErr.HTTPStatusCode
		}
	}
	render.Status(r, status)
	render.JSON(w, r, response.Error(fmt.Sprintf("%s failed: %v", action, err)))
}

func decodeConfig(r *http.Request) (*entity.AssistantConfig, error) {
	var req entity.AssistantConfig
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

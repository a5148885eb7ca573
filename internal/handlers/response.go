package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/educraft-backend/internal/ai"
	pkgerrors "github.com/yungbote/educraft-backend/internal/pkg/errors"
	"github.com/yungbote/educraft-backend/internal/services"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// RespondServiceError maps the service error taxonomy onto HTTP statuses so
// every handler surfaces the same codes for the same failures.
func RespondServiceError(c *gin.Context, err error) {
	var malformed *services.MalformedResponseError
	var unsupported *ai.UnsupportedModelTypeError
	var backendErr *ai.BackendError

	switch {
	case errors.Is(err, pkgerrors.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, services.ErrCategoryNotFound):
		RespondError(c, http.StatusNotFound, "category_not_found", err)
	case errors.Is(err, pkgerrors.ErrInvalidArgument), errors.Is(err, ai.ErrEmptyMessages):
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
	case errors.Is(err, pkgerrors.ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
	case errors.Is(err, services.ErrGenerationTimeout):
		RespondError(c, http.StatusGatewayTimeout, "generation_timeout", err)
	case errors.Is(err, context.Canceled):
		RespondError(c, 499, "request_cancelled", err)
	case errors.As(err, &unsupported):
		RespondError(c, http.StatusBadRequest, "unsupported_model_type", err)
	case errors.As(err, &malformed):
		RespondError(c, http.StatusBadGateway, "malformed_generation_response", err)
	case errors.As(err, &backendErr):
		RespondError(c, http.StatusBadGateway, "backend_failure", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}

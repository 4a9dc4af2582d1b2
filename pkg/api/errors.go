package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agentloop/pkg/services"
)

// respondServiceError maps service-layer errors onto HTTP status codes.
// Validation problems are client errors, unknown failures stay opaque.
func respondServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrAlreadyExists):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrConcurrentModification):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnavailable):
		respondError(c, http.StatusServiceUnavailable, err.Error())
	default:
		slog.Error("Unexpected service error", "error", err)
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}

// respondError writes the uniform error envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

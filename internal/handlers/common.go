// Package handlers provides the HTTP handlers for the catalog API.
package handlers

import (
	"net/http"

	"streaming-backend/internal/repository"
	"streaming-backend/pkg/api"
	appErrors "streaming-backend/pkg/errors"

	"go.uber.org/zap"
)

// handleServiceError converts service errors to appropriate HTTP responses.
// Client-facing messages come from the service layer and are already
// generic; everything unexpected is logged in full and answered with a
// generic 500 body so no internals cross the boundary.
func handleServiceError(logger *zap.Logger, w http.ResponseWriter, err error) {
	var appErr *appErrors.AppError
	if e, ok := err.(*appErrors.AppError); ok {
		appErr = e
	}

	switch {
	case appErrors.IsValidation(err):
		api.Error(w, http.StatusBadRequest, appErr.Message)
	case appErrors.IsNotFound(err):
		api.Error(w, http.StatusNotFound, appErr.Message)
	case appErrors.IsConflict(err) || repository.IsConflict(err):
		message := "conflito com um recurso existente"
		if appErr != nil {
			message = appErr.Message
		}
		api.Error(w, http.StatusConflict, message)
	case appErrors.IsUnauthorized(err):
		api.Error(w, http.StatusUnauthorized, appErr.Message)
	default:
		logger.Error("request failed", zap.Error(err))
		api.Error(w, http.StatusInternalServerError, "erro interno do servidor")
	}
}

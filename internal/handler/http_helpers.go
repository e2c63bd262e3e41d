package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"print-order-server/internal/domain"
	apperrors "print-order-server/pkg/errors"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error body
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// respondError maps an error onto the taxonomy and writes it. Internal errors
// are logged with context; the client only sees the generic message.
func respondError(w http.ResponseWriter, logger domain.Logger, err error, context string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Type == apperrors.ErrorTypeInternal {
			logger.Error(context, err)
		}
		writeError(w, appErr.StatusCode, appErr.Message)
		return
	}
	logger.Error(context, err)
	writeError(w, http.StatusInternalServerError, context)
}

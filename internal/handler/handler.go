package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ZawHtut01/ProductCatalog/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Encoding failed after the status line was sent; nothing to recover.
		return
	}
}

// writeError writes a uniform error response.
func writeError(w http.ResponseWriter, status int, message, errorCode string, logger zerolog.Logger) {
	logger.Error().
		Str("error", message).
		Str("error_code", errorCode).
		Int("status", status).
		Msg("handler error")
	writeJSON(w, status, model.NewErrorResponse(status, message, errorCode))
}

// writeFailure renders a failed result as the uniform error response.
// Validation violations keep their order under the "product" key.
func writeFailure(w http.ResponseWriter, status int, message string, violations []string, logger zerolog.Logger) {
	resp := model.NewErrorResponse(status, message, errorCodeForStatus(status, violations))
	if len(violations) > 0 {
		resp.ValidationErrors = map[string][]string{"product": violations}
	}

	logger.Warn().
		Str("error", message).
		Str("error_code", resp.ErrorCode).
		Int("status", status).
		Msg("request failed")
	writeJSON(w, status, resp)
}

// errorCodeForStatus derives the stable error code for a failed result. The
// outcome type carries only a status, so the code follows from it.
func errorCodeForStatus(status int, violations []string) string {
	switch {
	case status == http.StatusNotFound:
		return model.ErrCodeProductNotFound
	case len(violations) > 0:
		return model.ErrCodeValidationError
	case status == http.StatusBadRequest:
		return model.ErrCodeValidationError
	case status == http.StatusUnauthorized:
		return model.ErrCodeUnauthorised
	case status == http.StatusInternalServerError:
		return model.ErrCodeDatabaseError
	default:
		return model.ErrCodeInternalError
	}
}

package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/ZawHtut01/ProductCatalog/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type requestIDKey struct{}

// RequestID attaches a request ID to the context and echoes it in the
// X-Request-ID response header. An ID supplied by the caller is kept.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request ID attached by RequestID, or an
// empty string.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// CORS adds CORS headers to the response.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key, X-Request-ID")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// APIKeyAuth validates the API key from the X-API-Key header. Failures are
// rendered in the uniform error-response shape.
func APIKeyAuth(apiKey string, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Health checks stay unauthenticated.
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get("X-API-Key")
			if providedKey == "" {
				logger.Warn().Str("path", r.URL.Path).Msg("missing API key")
				writeErrorResponse(w, model.NewErrorResponse(
					http.StatusUnauthorized, "Missing API key", model.ErrCodeUnauthorised))
				return
			}

			if providedKey != apiKey {
				logger.Warn().Str("path", r.URL.Path).Msg("invalid API key")
				writeErrorResponse(w, model.NewErrorResponse(
					http.StatusUnauthorized, "Invalid API key", model.ErrCodeUnauthorised))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Logging logs HTTP requests with timing information.
func Logging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("request_id", RequestIDFromContext(r.Context())).
				Int("status", rw.statusCode).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg("http request")
		})
	}
}

// ErrorTranslator is the single boundary where a panicking request becomes a
// uniform error response. Typed application errors keep their status, message
// and code; anything else renders as an internal server error. The translator
// never re-panics, and isProduction decides whether diagnostic detail (stack
// traces, raw panic text) is exposed.
func ErrorTranslator(isProduction bool, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					stack := string(debug.Stack())
					logger.Error().
						Interface("panic", rec).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Str("request_id", RequestIDFromContext(r.Context())).
						Str("stack", stack).
						Msg("panic recovered")

					writeErrorResponse(w, translate(rec, stack, isProduction))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// translate maps a recovered panic value to the wire error shape. The match
// is ordered: the specific typed variants first, then any other typed error,
// then the catch-all.
func translate(rec interface{}, stack string, isProduction bool) *model.ErrorResponse {
	appErr, ok := rec.(*model.AppError)
	if !ok {
		if err, isErr := rec.(error); isErr {
			errors.As(err, &appErr)
		}
	}

	var resp *model.ErrorResponse
	switch {
	case appErr != nil && appErr.Kind == model.KindValidation:
		resp = model.NewErrorResponse(appErr.StatusCode, appErr.Message, appErr.Code)
		resp.ValidationErrors = appErr.Fields

	case appErr != nil && appErr.Kind == model.KindNotFound && appErr.Code == model.ErrCodeProductNotFound:
		resp = model.NewErrorResponse(appErr.StatusCode, appErr.Message, appErr.Code)

	case appErr != nil && appErr.Kind == model.KindBusinessRule:
		resp = model.NewErrorResponse(appErr.StatusCode, appErr.Message, appErr.Code)

	case appErr != nil:
		resp = model.NewErrorResponse(appErr.StatusCode, appErr.Message, appErr.Code)

	default:
		message := "An internal server error occurred"
		if !isProduction {
			message = fmt.Sprintf("%v", rec)
		}
		resp = model.NewErrorResponse(http.StatusInternalServerError, message, model.ErrCodeInternalError)
	}

	if !isProduction {
		resp.Details = &stack
	}

	return resp
}

// writeErrorResponse serialises an error response with its own status code.
func writeErrorResponse(w http.ResponseWriter, resp *model.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code.
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

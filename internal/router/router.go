package router

import (
	"net/http"

	"github.com/ZawHtut01/ProductCatalog/internal/handler"
	"github.com/ZawHtut01/ProductCatalog/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// isProduction is handed to the error translator and decides whether
// diagnostic detail appears in error responses.
func New(
	productHandler *handler.ProductHandler,
	apiKey string,
	isProduction bool,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Collection routes
		if r.URL.Path == "/api/products" || r.URL.Path == "/api/products/" {
			switch r.Method {
			case http.MethodGet:
				productHandler.GetAll(w, r)
			case http.MethodPost:
				productHandler.Create(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Item routes: /api/products/{id}
		switch r.Method {
		case http.MethodGet:
			productHandler.GetByID(w, r)
		case http.MethodPut:
			productHandler.Update(w, r)
		case http.MethodDelete:
			productHandler.Delete(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Apply middleware in order: ErrorTranslator -> RequestID -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.ErrorTranslator(isProduction, logger)(h)

	return h
}

package router

import (
	"net/http"
	"strings"

	"befach-store/internal/handler"
	"befach-store/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	slideHandler *handler.SlideHandler,
	authHandler *handler.AuthHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Auth routes
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/check", authHandler.Check)
	mux.HandleFunc("/api/auth/logout", authHandler.Logout)

	// Fixed product routes take priority over the id route
	mux.HandleFunc("/api/products/upload", productHandler.Upload)
	mux.HandleFunc("/api/products/sync", productHandler.Sync)

	// Product routes: collection operations and by-id operations
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Request for a specific product ID
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			switch r.Method {
			case http.MethodGet:
				productHandler.GetByID(w, r)
			case http.MethodDelete:
				productHandler.DeleteByID(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		switch r.Method {
		case http.MethodGet:
			productHandler.GetAll(w, r)
		case http.MethodDelete:
			productHandler.DeleteMany(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Slider routes
	mux.HandleFunc("/api/slider/upload", slideHandler.Create)

	sliderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Request for a specific slide ID
		if strings.HasPrefix(r.URL.Path, "/api/slider/") && r.URL.Path != "/api/slider/" {
			switch r.Method {
			case http.MethodPut:
				slideHandler.Update(w, r)
			case http.MethodDelete:
				slideHandler.Delete(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		slideHandler.GetAll(w, r)
	}

	// Register slider routes (both with and without trailing slash)
	mux.HandleFunc("/api/slider", sliderRouteHandler)
	mux.HandleFunc("/api/slider/", sliderRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS -> SessionAuth
	var h http.Handler = mux
	h = middleware.SessionAuth(handler.SessionCookieName, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}

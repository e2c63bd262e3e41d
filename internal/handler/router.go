package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"print-order-server/internal/config"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	cfg := container.Config
	router := mux.NewRouter()

	// Initialize handlers
	orderHandler := NewOrderHandler(container.OrderService, container.Logger)
	fileHandler := NewFileHandler(container.UploadService, cfg.GetMaxUploadSize(), container.Logger)
	adminHandler := NewAdminHandler(container.AuthService, container.Logger)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(RequestLogger(container.Logger))

	api.HandleFunc("/health", HealthHandler).Methods("GET")

	// Order routes
	api.HandleFunc("/orders", orderHandler.ListOrders).Methods("GET")
	api.HandleFunc("/orders", orderHandler.CreateOrder).Methods("POST")
	api.HandleFunc("/orders", orderHandler.ClearOrders).Methods("DELETE")
	api.HandleFunc("/orders/{orderId}", orderHandler.GetOrder).Methods("GET")
	api.HandleFunc("/orders/{orderId}", orderHandler.UpdateOrderStatus).Methods("PUT")

	// Upload and file routes
	api.HandleFunc("/upload", fileHandler.Upload).Methods("POST")
	api.HandleFunc("/files", fileHandler.ListFiles).Methods("GET")
	api.HandleFunc("/files", fileHandler.ClearFiles).Methods("DELETE")

	// Admin login
	api.HandleFunc("/admin/login", adminHandler.Login).Methods("POST")

	// Uploaded blobs are publicly served in every environment.
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.GetUploadPath()))),
	)

	// In production the built client assets are served with an index.html
	// fallback for client-side routes.
	if cfg.GetEnvironment() == "production" {
		router.PathPrefix("/").Handler(spaHandler{
			staticPath: cfg.GetStaticPath(),
			indexPath:  "index.html",
		})
	}

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173", // Vite dev server
			"http://localhost:4173", // Vite preview
			"http://localhost:3000", // Alternative dev port
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300,
	})

	return c.Handler(router)
}

// HealthHandler reports liveness.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// spaHandler serves static assets and falls back to index.html for paths
// that do not match a file, so client-side routing keeps working on reload.
type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.staticPath, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}
	http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
}

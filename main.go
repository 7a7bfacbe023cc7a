package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/abdarwish23/navigation-route-api/config"
	"github.com/abdarwish23/navigation-route-api/handlers"
	"github.com/abdarwish23/navigation-route-api/middleware"
)

type HealthResponse struct {
	Status     string `json:"status"`
	RoadSource string `json:"road_source"`
	DBStatus   string `json:"db_status,omitempty"`
	ExportDir  string `json:"export_dir"`
	Error      string `json:"error,omitempty"`
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:     "ok",
		RoadSource: config.RoadSource(),
		ExportDir:  config.ExportDir(),
	}

	if config.RoadSource() == "postgres" {
		if err := config.CheckPostgresHealth(); err != nil {
			response.Status = "error"
			response.DBStatus = "connection_error"
			response.Error = err.Error()
		} else {
			response.DBStatus = "connected"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func main() {
	startTime := time.Now()
	log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	port := config.Port()

	config.InitCache()
	log.Println("Road network cache initialized")

	if config.RoadSource() == "postgres" {
		log.Println("Initializing PostgreSQL road network database...")
		if err := config.InitDBWithRetry(5); err != nil {
			log.Fatalf("Failed to initialize PostgreSQL: %v", err)
		}
		log.Println("PostgreSQL road network database initialized successfully")
		defer config.CloseDB()
	}

	r := mux.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			"GET", "POST", "OPTIONS",
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Requested-With",
			"Origin",
		},
		MaxAge: 86400,
	})

	r.Use(corsHandler.Handler)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)

	api := r.PathPrefix("/api/v1").Subrouter()
	registerRoutes(api)
	log.Println("Routes registered successfully")

	api.HandleFunc("/health/detailed", healthCheck).Methods("GET")

	srv := &http.Server{
		Handler:           r,
		Addr:              ":" + port,
		WriteTimeout:      120 * time.Second, // synthesis can wait on Overpass and graph search
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting server on port %s...", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			serverErrors <- err
		}
	}()

	log.Printf("Server is running at http://localhost:%s", port)
	log.Printf("Health check endpoint: http://localhost:%s/api/v1/health", port)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("Shutdown signal received")
	case err := <-serverErrors:
		log.Printf("Server error received: %v", err)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	} else {
		log.Println("Server shutdown completed successfully")
	}
}

func registerRoutes(api *mux.Router) {
	// Route synthesis
	api.HandleFunc("/route/geojson", handlers.GenerateRouteGeoJSON).Methods("POST")
	api.HandleFunc("/route", handlers.GenerateRoute).Methods("POST")
	api.HandleFunc("/route/plot", handlers.GenerateRouteWithPlot).Methods("POST")
	api.HandleFunc("/route/kml", handlers.GenerateRouteWithPlotAndKML).Methods("POST")

	// Persisted artifacts
	api.HandleFunc("/files/{filename}", handlers.DownloadFile).Methods("GET")

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")
}

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

	"github.com/Abhaysingla637/krishi-setu-vigyan/config"
	"github.com/Abhaysingla637/krishi-setu-vigyan/data"
	"github.com/Abhaysingla637/krishi-setu-vigyan/handlers"
	"github.com/Abhaysingla637/krishi-setu-vigyan/location"
	"github.com/Abhaysingla637/krishi-setu-vigyan/middleware"
	"github.com/Abhaysingla637/krishi-setu-vigyan/models"
	"github.com/Abhaysingla637/krishi-setu-vigyan/store"
)

type HealthResponse struct {
	Status       string `json:"status"`
	StoreBackend string `json:"store_backend"`
	StoreStatus  string `json:"store_status"`
	Geolocation  string `json:"geolocation"`
	Languages    int    `json:"languages"`
	States       int    `json:"states"`
	Error        string `json:"error,omitempty"`
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status: "ok",
	}

	if handlers.Store == nil {
		response.Status = "error"
		response.StoreStatus = "not_initialized"
		response.Error = "Session store not initialized"
	} else {
		response.StoreBackend = handlers.Store.Backend()
		if err := handlers.Store.Ping(); err != nil {
			response.Status = "error"
			response.StoreStatus = "connection_error"
			response.Error = err.Error()
		} else {
			response.StoreStatus = "connected"
		}
	}

	if handlers.GeoProvider != nil {
		response.Geolocation = "configured"
	} else {
		response.Geolocation = "unsupported"
	}

	response.Languages = len(models.Languages)
	response.States = len(models.IndianStates)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func main() {
	startTime := time.Now()
	log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

	// Load environment variables first
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	port := config.EnvWithDefault("PORT", "8080")

	// In-memory caches back the default session store and the built
	// dashboard cards
	config.InitCache()

	// Session store: Postgres when DB_HOST is configured, in-memory
	// otherwise
	if os.Getenv("DB_HOST") != "" {
		log.Println("Initializing PostgreSQL session store...")
		pg, err := store.InitPostgresWithRetry(5)
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL: %v", err)
		}
		defer pg.Close()
		handlers.Store = pg
		log.Println("PostgreSQL session store initialized successfully")
	} else {
		handlers.Store = store.NewMemory(config.SessionCache)
		log.Println("Using in-memory session store (set DB_HOST for a durable store)")
	}

	// Geolocation provider: Google Maps when a key is configured, a
	// pinned position when FARM_LAT/FARM_LNG are set, unsupported
	// otherwise
	if apiKey := os.Getenv("MAPS_API_KEY"); apiKey != "" {
		provider, err := location.NewGoogleProvider(apiKey)
		if err != nil {
			log.Fatalf("Failed to initialize Google geolocation provider: %v", err)
		}
		handlers.GeoProvider = provider
		log.Println("Geolocation provider: Google Maps")
	} else if os.Getenv("FARM_LAT") != "" && os.Getenv("FARM_LNG") != "" {
		handlers.GeoProvider = location.NewStaticProvider(
			config.EnvAsFloat("FARM_LAT", 0),
			config.EnvAsFloat("FARM_LNG", 0),
		)
		log.Println("Geolocation provider: static position")
	} else {
		log.Println("No geolocation provider configured; detection will report unsupported")
	}

	// Sample dashboard dataset; malformed data fails startup
	dataset, err := data.Load()
	if err != nil {
		log.Fatalf("Failed to load dashboard dataset: %v", err)
	}
	handlers.Dashboard = dataset
	log.Println("Dashboard dataset loaded successfully")

	r := mux.NewRouter()

	// CORS configuration
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8080",
			"http://127.0.0.1:3000",
			"https://krishisetu.in",
			"http://krishisetu.in",
			"https://www.krishisetu.in",
			"http://www.krishisetu.in",
		},
		AllowedMethods: []string{
			"GET", "POST", "OPTIONS",
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Requested-With",
			"X-Session-Id",
			"Origin",
		},
		ExposedHeaders: []string{
			"Content-Length",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           86400,
	})

	// Apply middlewares in order
	r.Use(middleware.CORSDebugMiddleware)
	r.Use(corsHandler.Handler)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CompressHandler)

	// API routes
	api := r.PathPrefix("/api/v1").Subrouter()
	registerRoutes(api)
	log.Println("Routes registered successfully")

	// Health check endpoint
	api.HandleFunc("/health/detailed", healthCheck).Methods("GET")

	srv := &http.Server{
		Handler:           r,
		Addr:              ":" + port,
		WriteTimeout:      15 * time.Second,
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

	// Handle graceful shutdown
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
	// Language routes (landing screen)
	api.HandleFunc("/languages", handlers.GetLanguages).Methods("GET", "OPTIONS")
	api.HandleFunc("/session/language", handlers.SetLanguage).Methods("POST", "OPTIONS")

	// Location routes (location setup screen)
	api.HandleFunc("/location/states", handlers.GetStates).Methods("GET", "OPTIONS")
	api.HandleFunc("/location/detect", handlers.DetectLocation).Methods("POST", "OPTIONS")
	api.HandleFunc("/session/location", handlers.SubmitLocation).Methods("POST", "OPTIONS")

	// Session read-back
	api.HandleFunc("/session", handlers.GetSession).Methods("GET", "OPTIONS")

	// Dashboard routes
	api.HandleFunc("/dashboard", handlers.GetDashboard).Methods("GET", "OPTIONS")
	api.HandleFunc("/dashboard/refresh", handlers.RefreshDashboard).Methods("POST", "OPTIONS")

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")
}

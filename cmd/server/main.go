package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "movie-rental-backend/internal/api/http"
	"movie-rental-backend/internal/config"
	"movie-rental-backend/internal/logger"
	"movie-rental-backend/internal/repository/postgres"
	"movie-rental-backend/internal/security"
	"movie-rental-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Movie Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// Initialize Services
	svcs := httpapi.Services{
		Genres:    service.NewGenreService(store.GenreRepository),
		Movies:    service.NewMovieService(store.MovieRepository, store.GenreRepository, store.RentalRepository),
		Customers: service.NewCustomerService(store.CustomerRepository),
		Rentals: service.NewRentalService(
			store.RentalRepository,
			store.MovieRepository,
			store.CustomerRepository,
			store.TxManager,
		),
		Users: service.NewUserService(store.UserRepository, tokenManager),
		Auth:  service.NewAuthService(store.UserRepository, tokenManager),
	}

	router := httpapi.NewRouter(svcs, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}

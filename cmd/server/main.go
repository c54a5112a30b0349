package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zim/gym-app/internal/api"
	"zim/gym-app/internal/config"
	"zim/gym-app/internal/metrics"
	"zim/gym-app/internal/repository/memory"
	"zim/gym-app/internal/repository/sqlite"
	"zim/gym-app/internal/seed"
	"zim/gym-app/internal/service"
	"zim/gym-app/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	log.Println("Starting Gym App Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Session Record Database ---
	sessionDB, err := sqlite.Open(cfg.Session.DBPath)
	if err != nil {
		log.Fatalf("FATAL: Could not open session database: %v", err)
	}
	defer func() {
		if err := sessionDB.Close(); err != nil {
			log.Printf("ERROR: Failed to close session database: %v", err)
		}
	}()
	log.Println("Session database ready.")

	// --- Initialize Repositories ---
	// The working collections are in-memory and start empty on every boot;
	// only the session record lives in SQLite.
	log.Println("Initializing repositories...")
	sessionRepo := sqlite.NewSessionRepository(sessionDB)
	memberRepo := memory.NewMemberRepository()
	trainerRepo := memory.NewTrainerRepository()
	membershipRepo := memory.NewMembershipRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	ownerRepo := memory.NewGymOwnerRepository()

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(sessionRepo, cfg.JWT.Secret, cfg.JWT.Expiration, cfg.Auth.LoginDelay)
	rosterService := service.NewRosterService(memberRepo, trainerRepo, membershipRepo, attendanceRepo)
	attendanceService := service.NewAttendanceService(memberRepo, attendanceRepo)
	adminService := service.NewAdminService(ownerRepo)

	// --- Restore Session ---
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStartup()

	identity, err := authService.Restore(startupCtx)
	switch {
	case err != nil:
		log.Printf("ERROR: Could not restore session: %v", err)
	case identity != nil:
		log.Printf("Session restored for %s (%s)", identity.Email, identity.Role)
	default:
		log.Println("No stored session to restore.")
	}

	// --- Seed Demo Data ---
	if cfg.Seed.Demo {
		log.Println("Seeding demo fixtures...")
		if err := seed.Demo(startupCtx, memberRepo, trainerRepo, membershipRepo, attendanceRepo, ownerRepo); err != nil {
			log.Fatalf("FATAL: Could not seed demo data: %v", err)
		}
	}

	// --- Initialize Storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled() {
		log.Println("Initializing file storage service...")
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
	} else {
		log.Println("No S3 bucket configured, avatar endpoints disabled.")
	}

	// --- Metrics & Rate Limiting ---
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	authLimiter := api.NewRateLimiter(cfg.RateLimit.AuthPerMinute, cfg.RateLimit.AuthBurst)
	defer authLimiter.Stop()

	// --- Initialize Gin Engine ---
	router := gin.Default()

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(
		router,
		cfg.JWT.Secret,
		authService,
		rosterService,
		attendanceService,
		adminService,
		fileStorage,
		collector,
		registry,
		authLimiter,
	)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

// ==============================================================================
// COMPLIANCE SERVICE MAIN - cmd/compliance/main.go
// ==============================================================================
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"fixly/internal/compliance"
	"fixly/internal/handler"
	"fixly/internal/middleware"
	"fixly/internal/repository/postgres"
	"fixly/pkg/config"
	"fixly/pkg/logger"
	"fixly/pkg/validator"
)

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New("compliance-service")

	if err := cfg.ValidateCore(); err != nil {
		log.Fatal("Invalid configuration", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Starting Compliance Service", map[string]interface{}{
		"port": cfg.Server.Port,
	})

	// Database connection
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatal("Failed to connect to database", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	log.Info("Database connected", nil)

	// Redis connection
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.URL,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis", map[string]interface{}{
			"error": err.Error(),
		})
	}

	log.Info("Redis connected", nil)

	// Initialize repositories
	itemRepo := postgres.NewComplianceItemRepository(db)
	policyRepo := postgres.NewInsurancePolicyRepository(db)
	technicianRepo := postgres.NewTechnicianRepository(db)
	providerRepo := postgres.NewProviderRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	// Initialize services
	val := validator.New()
	complianceService := compliance.NewService(itemRepo, policyRepo, technicianRepo, providerRepo, val, cfg, log)

	// Initialize handlers
	complianceHandler := handler.NewComplianceHandler(complianceService, log)
	technicianHandler := handler.NewTechnicianHandler(complianceService, log)
	adminHandler := handler.NewAdminHandler(complianceService, log)

	// Setup router
	r := mux.NewRouter()

	// Middleware
	r.Use(middleware.CORS)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Recovery)
	r.Use(middleware.CorrelationID)
	r.Use(middleware.NewLoggingMiddleware(log).Log)
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB global cap
	r.Use(middleware.NewRateLimiter(redisClient, "global", 120, time.Minute).Limit)

	authMW := middleware.NewAuthMiddleware(cfg.JWT.Secret)
	idemMW := middleware.NewIdempotencyMiddleware(redisClient, 24*time.Hour)
	auditMW := middleware.NewAuditMiddleware(auditRepo, log)

	// Routes
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/ready", readyCheck(db)).Methods("GET")

	// Protected routes
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(authMW.Authenticate)
	api.Use(middleware.NewRateLimiter(redisClient, "api", 80, time.Minute).Limit)

	api.HandleFunc("/providers/{providerId}/compliance", complianceHandler.GetSummary).Methods("GET")
	api.HandleFunc("/providers/{providerId}/eligibility/{serviceType}", complianceHandler.CheckEligibility).Methods("GET")

	// Mutating provider routes carry idempotency protection
	write := api.NewRoute().Subrouter()
	write.Use(idemMW.Require)
	write.HandleFunc("/providers/{providerId}/compliance/items", complianceHandler.UpsertItem).Methods("PUT")
	write.HandleFunc("/providers/{providerId}/compliance/items/auto-create", complianceHandler.AutoCreateItems).Methods("POST")
	write.HandleFunc("/providers/{providerId}/compliance/insurance", complianceHandler.UpsertPolicy).Methods("PUT")
	write.HandleFunc("/providers/{providerId}/technicians", technicianHandler.Upsert).Methods("POST")
	write.HandleFunc("/providers/{providerId}/technicians/{technicianId}", technicianHandler.Deactivate).Methods("DELETE")

	// Admin review routes
	admin := api.PathPrefix("/admin/compliance").Subrouter()
	admin.Use(authMW.RequireAdmin)
	admin.Use(auditMW.Audit)
	admin.HandleFunc("/pending", adminHandler.ListPendingReview).Methods("GET")
	admin.HandleFunc("/items/{id}/verify", adminHandler.VerifyItem).Methods("POST")
	admin.HandleFunc("/items/{id}/reject", adminHandler.RejectItem).Methods("POST")
	admin.HandleFunc("/insurance/{id}/verify", adminHandler.VerifyPolicy).Methods("POST")
	admin.HandleFunc("/insurance/{id}/reject", adminHandler.RejectPolicy).Methods("POST")

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		log.Info("Compliance service started", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down compliance service...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Compliance service forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	log.Info("Compliance service stopped gracefully", nil)
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	_ = r
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"compliance"}`))
}

func readyCheck(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = r
		if err := db.Ping(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"not ready","reason":"database unavailable"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ready","service":"compliance"}`))
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/andressep95/session-service/internal/config"
	"github.com/andressep95/session-service/internal/handler"
	"github.com/andressep95/session-service/internal/handler/middleware"
	"github.com/andressep95/session-service/internal/repository"
	"github.com/andressep95/session-service/internal/repository/memory"
	"github.com/andressep95/session-service/internal/repository/postgres"
	"github.com/andressep95/session-service/internal/repository/redisstore"
	"github.com/andressep95/session-service/internal/service"
	"github.com/andressep95/session-service/pkg/email"
	"github.com/andressep95/session-service/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Pick the stores for the configured backend. The services only see
	// the repository interfaces; backends are interchangeable.
	var (
		userRepo    repository.UserRepository
		sessionRepo repository.SessionRepository
		db          *sqlx.DB
	)

	switch cfg.Session.Backend {
	case "postgres":
		db, err = initDB(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Printf("Error closing database connection: %v", err)
			}
		}()
		userRepo = postgres.NewUserRepository(db)
		sessionRepo = postgres.NewSessionRepository(db)
		log.Println("✓ Database connection established")

	case "redis":
		redisClient, err := initRedis(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Redis: %v", err)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()
		// Redis carries the sessions; users still live in postgres.
		db, err = initDB(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Printf("Error closing database connection: %v", err)
			}
		}()
		userRepo = postgres.NewUserRepository(db)
		sessionRepo = redisstore.NewSessionRepository(redisClient)
		log.Println("✓ Redis connection established")

	default:
		userRepo = memory.NewUserRepository()
		sessionRepo = memory.NewSessionRepository()
		log.Println("ℹ Using in-memory stores (state is lost on restart)")
	}

	if cfg.Session.Duration > 0 {
		log.Printf("✓ Sessions expire after %v", cfg.Session.Duration)
	} else {
		log.Println("ℹ Session expiration disabled")
	}

	// Initialize validator
	validate := validator.NewValidator()

	// Initialize email service
	var emailService email.Service
	if cfg.Email.Enabled {
		emailService, err = email.NewResendService(&email.Config{
			APIKey:    cfg.Email.APIKey,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			ResetURL:  cfg.Email.ResetURL,
		})
		if err != nil {
			log.Fatalf("Failed to initialize email service: %v", err)
		}
		log.Println("✓ Email service initialized (Resend)")
	} else {
		emailService = email.NewNoopService()
		log.Println("ℹ Email service disabled (set EMAIL_ENABLED=true to enable)")
	}

	// Initialize services
	credentialService := service.NewCredentialService(userRepo)
	sessionService := service.NewSessionService(sessionRepo, cfg.Session.Duration)
	resetService := service.NewResetService(userRepo)
	authService := service.NewAuthService(userRepo, credentialService, sessionService, resetService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, validate, cfg.Session.CookieName)
	passwordHandler := handler.NewPasswordHandler(authService, emailService, validate, cfg.Email.Enabled)
	healthHandler := handler.NewHealthHandler(db)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Session Service v1.0",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	// Setup global middlewares
	app.Use(middleware.RecoveryMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins))

	sessionMiddleware := middleware.SessionMiddleware(authService, cfg.Session.CookieName, cfg.Auth.ExcludedPaths)

	// Setup routes
	handler.SetupRoutes(app, authHandler, passwordHandler, healthHandler, sessionMiddleware)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		log.Printf("🚀 Server starting on http://localhost%s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		if err := app.Listen(addr); err != nil {
			log.Printf("❌ Server failed to start: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("⏳ Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✓ Server stopped")
}

// initDB initializes the PostgreSQL connection with retry logic
func initDB(cfg *config.Config) (*sqlx.DB, error) {
	dsn := cfg.Database.DSN()

	var db *sqlx.DB
	var err error

	maxRetries := 5
	retryInterval := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			break
		}

		log.Printf("Failed to connect to database (attempt %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("database unreachable after %d attempts: %w", maxRetries, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// initRedis initializes the Redis client and verifies connectivity
func initRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis unreachable: %w", err)
	}

	return client, nil
}

// main.go - urecite HTTP/WebSocket server
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"urecite/config"
	"urecite/corpus"
	"urecite/database"
	"urecite/handlers"
	"urecite/logging"
	"urecite/middleware"
	"urecite/recite"
	"urecite/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logCloser := logging.Setup(logging.Options{
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
	defer logCloser.Close()

	if cfg.IsProduction() && (cfg.CORSOrigins == "" || cfg.CORSOrigins == "http://localhost:3000") {
		log.Println("WARNING: CORS_ORIGINS not properly configured for production")
	}

	var db *gorm.DB
	if cfg.PersistAttempts || cfg.CorpusSource == config.SourceDatabase {
		db, err = database.Open(cfg)
		if err != nil {
			return err
		}
		defer database.Close(db)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	books, lookup, err := loadVerses(ctx, cfg, db)
	if err != nil {
		return err
	}
	matcher := recite.NewMatcher(books, lookup, recite.WithThreshold(cfg.MatchThreshold))

	var attempts *services.AttemptService
	if cfg.PersistAttempts {
		attempts = services.NewAttemptService(db)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler(cfg),
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: cfg.CORSOrigins != "*",
	}))

	limiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	app.Use(middleware.RateLimit(limiter))

	handlers.New(matcher, lookup, attempts, cfg.JWTSecret).Register(app)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("🚀 HTTP server starting on port %s", cfg.Port)
		log.Printf("📊 Environment: %s", cfg.AppEnv)
		log.Printf("📖 %d books loaded from %s (threshold %.0f%%)", len(books), cfg.CorpusSource, cfg.MatchThreshold)
		log.Printf("🔐 JWT Secret configured: %v", cfg.JWTSecret != "")
		log.Printf("🌐 WebSocket available at ws://localhost:%s/ws/recite", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("🛑 Shutting down...")
		return app.ShutdownWithTimeout(10 * time.Second)
	})
	g.Go(func() error {
		return limiter.Run(ctx)
	})
	if store, ok := lookup.(*services.VerseStore); ok {
		reload := make(chan os.Signal, 1)
		signal.Notify(reload, syscall.SIGHUP)
		defer signal.Stop(reload)
		log.Println("🔄 Send SIGHUP after `recite import` to refresh cached verses")
		g.Go(func() error {
			return store.PurgeOn(ctx, reload)
		})
	}
	if attempts != nil {
		cleanup := services.NewCleanupService(db, cfg.AttemptRetention, cfg.CleanupInterval)
		g.Go(func() error {
			return cleanup.Run(ctx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// loadVerses returns the book order and lookup for the configured source.
func loadVerses(ctx context.Context, cfg *config.Config, db *gorm.DB) ([]string, recite.Lookup, error) {
	if cfg.CorpusSource == config.SourceDatabase {
		store := services.NewVerseStore(db, cfg.Translation, cfg.LookupCacheSize, cfg.LookupCacheTTL)
		books, err := store.Books(ctx)
		if err != nil {
			return nil, nil, err
		}
		if len(books) == 0 {
			return nil, nil, fmt.Errorf("no %s verses in the database, run `recite import` first", cfg.Translation)
		}
		return books, store, nil
	}

	log.Printf("Loading verses from %s...", cfg.CorpusPath)
	c, err := corpus.Open(cfg.CorpusPath)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("✅ Loaded %d verses (%s)", c.Len(), c.Checksum()[:12])
	return c.Books(), c, nil
}

func customErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		}

		// Don't expose internal errors in production
		if cfg.IsProduction() && code == 500 {
			message = "An error occurred. Please try again later."
		}

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   message,
		})
	}
}

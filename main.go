package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/limelight-tw/loyalty/backend/handlers"
	"github.com/limelight-tw/loyalty/backend/middleware"
	"github.com/limelight-tw/loyalty/loyalty"
	"github.com/limelight-tw/loyalty/loyalty/database"
	"github.com/limelight-tw/loyalty/loyalty/logger"
	"github.com/limelight-tw/loyalty/loyalty/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler("Limelight-Loyalty")
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting Limelight loyalty API",
		slog.String("version", version),
		slog.String("commit", commit))

	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := loyalty.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	customHandler.SetLevel(logger.ParseLevel(cfg.Log.Level))
	slog.Info("Configuration loaded successfully")

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	slog.Info("Database connected successfully",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("error", err.Error()))
		os.Exit(-1)
	}

	app := loyalty.New(*cfg, version, commit)

	if cfg.Spaces.Enabled {
		spacesService, err := services.NewSpacesService(
			cfg.Spaces.Key,
			cfg.Spaces.Secret,
			cfg.Spaces.Region,
			cfg.Spaces.Bucket,
			cfg.Spaces.CoverRoot,
		)
		if err != nil {
			slog.Error("Failed to initialize Spaces service", slog.Any("error", err))
			os.Exit(-1)
		}
		app.SpacesService = spacesService
		slog.Info("Spaces cover service initialized",
			slog.String("bucket", cfg.Spaces.Bucket),
			slog.String("region", cfg.Spaces.Region))
	}

	// Spaces must be set before wiring so the history projector can resolve
	// stored cover images.
	app.SetupServices(db)

	webApp := &handlers.WebApp{App: app}

	srv := fiber.New(fiber.Config{
		AppName:      "Limelight Loyalty API",
		ServerHeader: "Limelight-Loyalty",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	srv.Use(recover.New())
	srv.Use(middleware.SecurityHeaders())
	srv.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	srv.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,PUT,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Member-Id,X-Display-Name,X-Avatar-Url",
	}))
	srv.Use(middleware.LoggingMiddleware())

	srv.Get("/health", handlers.HealthCheck(webApp))

	api := srv.Group("/api", middleware.PlatformAuth())
	api.Post("/entry", handlers.Entry(webApp))
	api.Get("/me/history", handlers.History(webApp))
	api.Get("/me/coupons", handlers.Coupons(webApp))
	api.Put("/me/profile", handlers.ProfileUpdate(webApp))

	go func() {
		if err := srv.Listen(cfg.Server.Addr()); err != nil {
			slog.Error("Server stopped", slog.Any("error", err))
			os.Exit(-1)
		}
	}()

	slog.Info("Limelight loyalty API is now running",
		slog.String("addr", cfg.Server.Addr()),
		slog.String("version", version))

	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s

	slog.Info("Shutting down...")
	if err := srv.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("Graceful shutdown failed", slog.Any("error", err))
	}
}

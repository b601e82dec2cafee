package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	portsrepo "github.com/splitbooks/splitbooks_app/internal/core/ports/repositories"
	"github.com/splitbooks/splitbooks_app/internal/core/services"
	"github.com/splitbooks/splitbooks_app/internal/handlers"
	"github.com/splitbooks/splitbooks_app/internal/middleware"
	"github.com/splitbooks/splitbooks_app/internal/repositories/database/pgsql"
	"github.com/splitbooks/splitbooks_app/internal/repositories/filestore"
	"github.com/splitbooks/splitbooks_app/pkg/config"
	"github.com/splitbooks/splitbooks_app/pkg/database"
)

// @title Splitbooks Backend API
// @version 1.0
// @description Shared two-party ledger backend.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repo, cleanup, err := buildDocumentRepository(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize document storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = !cfg.IsProduction
	if cfg.IsProduction {
		corsConfig.AllowOrigins = []string{"https://splitbooks.app"}
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	container := services.NewServiceContainer(cfg, repo)
	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("storage", cfg.StorageBackend),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildDocumentRepository selects the storage adapter from configuration.
// The returned cleanup releases whatever the adapter holds open.
func buildDocumentRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.DocumentRepository, func(), error) {
	switch cfg.StorageBackend {
	case "postgres":
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, nil, err
		}
		if err := runMigrations(cfg, logger); err != nil {
			database.ClosePgxPool(pool)
			return nil, nil, err
		}
		repo := pgsql.NewPgxDocumentRepository(pool, cfg.PartyAName, cfg.PartyBName)
		return repo, func() { database.ClosePgxPool(pool) }, nil

	default:
		repo, err := filestore.NewFileDocumentRepository(cfg.DocumentPath, cfg.PartyAName, cfg.PartyBName)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using file storage", slog.String("path", cfg.DocumentPath))
		return repo, func() {}, nil
	}
}

// runMigrations applies pending schema migrations over a short-lived
// database/sql connection compatible with the pgx pool.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	if sourceErr, dbErr := m.Close(); sourceErr != nil {
		return sourceErr
	} else if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

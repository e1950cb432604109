package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/core/services"
	"github.com/SscSPs/sales_crm_backend/internal/handlers"
	"github.com/SscSPs/sales_crm_backend/internal/middleware"
	"github.com/SscSPs/sales_crm_backend/internal/platform/config"
	"github.com/SscSPs/sales_crm_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/sales_crm_backend/internal/utils"
	"github.com/SscSPs/sales_crm_backend/pkg/database"
	"github.com/SscSPs/sales_crm_backend/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const shutdownTimeout = 15 * time.Second

// @title Sales CRM Backend API
// @version 1.0
// @description Sales funnel, service contracts, expenses, salaries, stock, dashboard and notifications.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}

	env := "production"
	if !cfg.IsProduction {
		env = "development"
	}
	log := logger.New(logger.Config{Env: env, Level: cfg.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database pool")
	}
	defer database.ClosePgxPool(dbPool)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, &log)
	defer posthogClient.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	container := services.NewServiceContainer(cfg, repos, posthogClient)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(log),
		gin.Recovery(),
		cors.New(corsConfig(cfg)),
		middleware.PosthogMiddleware(posthogClient),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies")
	}

	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		log.Fatal().Err(err).Msg("Failed to register routes")
	}

	bgCtx := log.WithContext(ctx)
	container.Push.Init(bgCtx)
	container.Push.SchedulePeriodicSync(bgCtx)
	defer container.Push.Teardown()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Server failed to run")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown did not complete cleanly")
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowOrigins = cfg.CORSAllowedOrigins
	c.AllowCredentials = true
	c.AddAllowHeaders("Authorization")
	c.AddAllowMethods("PATCH")
	return c
}

// runMigrations applies every pending "up" migration over a short-lived database/sql connection.
func runMigrations(cfg *config.Config, log zerolog.Logger) error {
	log.Info().Msg("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("Error closing migration DB connection")
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		log.Info().Msg("No new migrations to apply.")
	} else {
		log.Info().Msg("Database migrations applied successfully.")
	}
	return nil
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"lcaapi/docs"
	"lcaapi/internal/config"
	"lcaapi/internal/database"
	"lcaapi/internal/database/migration"
	handlers "lcaapi/internal/http/handler"
	"lcaapi/internal/http/middleware"
	"lcaapi/internal/logging"
	lcaotel "lcaapi/internal/otel"
	"lcaapi/internal/repository"
	"lcaapi/internal/repository/dynamodb"
	"lcaapi/internal/repository/postgres"
	"lcaapi/internal/service"
	"lcaapi/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title LCA API
// @version 1.0
// @description Cradle-to-grave CO2 assessment of biofuel from waste cooking oil, FU = 1 MJ.
// @BasePath /
func main() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd binds --address and --port over the env-derived config, so
// flags win over SERVER_ADDRESS/SERVER_PORT, which win over the defaults.
func newRootCmd(cfg *config.AppConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lca-api",
		Short:         "HTTP API for life-cycle assessment of WCO biofuel",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Server.Address, "address", cfg.Server.Address, "interface to bind (SERVER_ADDRESS)")
	cmd.Flags().StringVar(&cfg.Server.Port, "port", cfg.Server.Port, "port to listen on (SERVER_PORT)")
	return cmd
}

func run(ctx context.Context, cfg *config.AppConfig) error {
	logger := logging.Stdout(cfg.Location)
	if err := cfg.Validate(); err != nil {
		logger.Error("config_invalid", err, nil)
		return err
	}

	shutdownTracing, err := lcaotel.Init(ctx, logger)
	if err != nil {
		logger.Error("tracing_init_failed", err, nil)
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// PostgreSQL always holds reports; scenarios live there unless SCENARIO_STORE says otherwise.
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logger.Error("database_connect_failed", err, map[string]any{"db_host": cfg.Database.Host})
		return err
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
		return err
	}

	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		logger.Error("storage_init_failed", err, map[string]any{"endpoint": cfg.MinIO.Endpoint})
		return err
	}

	scenarioRepo, err := newScenarioRepository(ctx, cfg, db)
	if err != nil {
		logger.Error("scenario_store_init_failed", err, map[string]any{"scenario_store": cfg.ScenarioStore})
		return err
	}

	calc, err := service.NewCalculator(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	scenarioSvc := service.NewScenarioService(scenarioRepo, calc)
	reportSvc := service.NewReportService(objStore, postgres.NewReportPostgres(db), scenarioRepo, calc, cfg.ReportURLExpiry)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.LoggerWith(logger))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:         db,
		Store:      objStore,
		Calculator: calc,
		Scenarios:  scenarioSvc,
		Reports:    reportSvc,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	errCh := make(chan error, 1)
	go func() {
		addr := cfg.Server.ListenAddr()
		logger.Info("server_started", map[string]any{"addr": addr, "scenario_store": cfg.ScenarioStore})
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server_failed", err, nil)
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("server_stopping", nil)
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("server_shutdown_failed", err, nil)
		return err
	}
	return nil
}

func newScenarioRepository(ctx context.Context, cfg *config.AppConfig, db *sql.DB) (repository.ScenarioRepository, error) {
	switch cfg.ScenarioStore {
	case config.ScenarioStorePostgres, "":
		return postgres.NewScenarioPostgres(db), nil
	case config.ScenarioStoreDynamoDB:
		client, err := dynamodb.NewClient(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		return dynamodb.NewScenarioDynamoDB(client, cfg.DynamoDB.Table), nil
	default:
		return nil, fmt.Errorf("unknown scenario store %q", cfg.ScenarioStore)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wastepickup/cmd"
	pickuphttp "wastepickup/internal/adapters/in/http"
	"wastepickup/internal/adapters/out/postgres"
	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/jobs"
	"wastepickup/internal/pkg/logger"
	"wastepickup/internal/pkg/metrics"

	gommonlog "github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const serviceName = "wastepickup"

func main() {
	bootLog := logger.New(logger.Options{ServiceName: serviceName})

	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		bootLog.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(configs.LogLevel),
		Format:      configs.LogFormat,
	})

	if err = run(configs, log); err != nil {
		log.Error(context.Background(), "service stopped with error", err)
		os.Exit(1)
	}
}

func run(configs cmd.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(configs)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("access sql db: %w", err)
	}
	defer func() {
		if closeErr := sqlDB.Close(); closeErr != nil {
			log.Error(context.Background(), "error closing database", closeErr)
		}
	}()

	if err = postgres.Migrate(ctx, gormDB); err != nil {
		return err
	}
	version, err := postgres.SchemaVersion(ctx, gormDB)
	if err != nil {
		return err
	}
	log.Info(log.WithField(ctx, "schema_version", version), "database migrated")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	pickupMetrics := metrics.NewPickupMetrics(registry)

	app := cmd.NewCompositionRoot(configs, gormDB, log)

	jobManager := jobs.NewJobManager(
		app.CreateCountPickupsByStatusQueryHandler(),
		pickupMetrics,
		configs.StatusSnapshotSchedule,
		log,
	)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs, pickupMetrics, registry, log)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(configs.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(configs.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(configs.DBConnMaxLifetime)
	return gormDB, nil
}

func startWebServer(
	ctx context.Context,
	app cmd.CompositionRoot,
	configs cmd.Config,
	pickupMetrics *metrics.PickupMetrics,
	registry *prometheus.Registry,
	log *logger.Logger,
) error {
	server := pickuphttp.NewServer(pickuphttp.Handlers{
		CreatePickup:         app.CreateCreatePickupCommandHandler(),
		CancelPickup:         app.CreateCancelPickupCommandHandler(),
		AcceptPickup:         app.CreateAcceptPickupCommandHandler(),
		DeletePickup:         app.CreateDeletePickupCommandHandler(),
		ListUserPickups:      app.CreateListUserPickupsQueryHandler(),
		ListAllPickups:       app.CreateListAllPickupsQueryHandler(),
		ListVolunteerPickups: app.CreateListVolunteerPickupsQueryHandler(),
		GetPickup:            app.CreateGetPickupQueryHandler(),
	}, pickupMetrics, log.Component("http"))

	doc, err := pickuphttp.LoadOpenAPI(ctx)
	if err != nil {
		return err
	}

	e, err := pickuphttp.NewRouter(pickuphttp.RouterOptions{
		Server:           server,
		Logger:           log.Component("http"),
		JWT:              pickuphttp.JWTConfig{Secret: configs.JWTSecret, Issuer: configs.JWTIssuer},
		AdminRole:        kernel.Role(configs.AdminRole),
		Gatherer:         registry,
		Document:         doc,
		ValidateRequests: configs.ValidateRequests,
	})
	if err != nil {
		return err
	}
	e.Logger.SetLevel(gommonlog.ERROR)

	serveErr := make(chan error, 1)
	go func() {
		log.Info(log.WithField(ctx, "port", configs.HTTPPort), "starting http server")
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			serveErr <- startErr
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

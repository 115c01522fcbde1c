package main

import (
	"net/http"
	"os"
	"time"

	"github.com/procureflow/procurement-service/internal/db"
	"github.com/procureflow/procurement-service/internal/handlers"
	"github.com/procureflow/procurement-service/internal/repository"
	"github.com/procureflow/procurement-service/internal/router"
	"github.com/procureflow/procurement-service/internal/router/config"
	"github.com/procureflow/procurement-service/internal/services"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.WithError(err).Fatal("cannot load config")
	}

	runDBMigration(logger, cfg.MigrationURL, cfg.PostgresConn)

	dbPool, err := db.InitDb(cfg)
	if err != nil {
		logger.WithError(err).Fatal("error initializing database")
	}
	defer dbPool.Close()

	directoryRepo := repository.NewPostgresDirectoryRepository(dbPool)
	tenderRepo := repository.NewPostgresTenderRepository(dbPool)
	bidRepo := repository.NewPostgresBidRepository(dbPool)

	tenderService := services.NewTenderService(tenderRepo, directoryRepo)
	bidService := services.NewBidService(bidRepo, tenderRepo, directoryRepo)
	decisionAggregator := services.NewDecisionAggregator(bidRepo, tenderRepo, directoryRepo)

	tenderHandler := handlers.NewTenderHandler(tenderService, logger, 5*time.Second)
	bidHandler := handlers.NewBidHandler(bidService, decisionAggregator, logger, 5*time.Second)

	routes := router.InitRoutes(tenderHandler, bidHandler)

	logger.WithField("address", cfg.ServerAddress).Info("server is listening")
	if err := http.ListenAndServe(cfg.ServerAddress, routes); err != nil {
		logger.WithError(err).Fatal("server failed")
	}
}

func runDBMigration(logger *logrus.Logger, migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		logger.WithError(err).Fatal("cannot create a new migrate instance")
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		logger.WithError(err).Fatal("failed to run migrate up")
	}
	logger.Info("db migrated successfully")
}

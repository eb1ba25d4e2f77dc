package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/garagedesk/garagedesk-api/internal/constants"
	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/logger"
	"github.com/garagedesk/garagedesk-api/internal/processor"
	"github.com/garagedesk/garagedesk-api/internal/services"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// The sweeper is a one-shot job meant to be run from cron. It scans
// pending invoices past their due date and flips them to overdue.
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v. Proceeding with environment variables.", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = constants.LocalEnvironment
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	switch stage {
	case constants.ProdEnvironment, constants.DevEnvironment, constants.LocalEnvironment:
	default:
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, constants.ProdEnvironment, constants.DevEnvironment, constants.LocalEnvironment)
	}

	logger.InitLogger(stage)
	logger.Info("Starting overdue sweeper", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 15
	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	defer connPool.Close()

	dbQueries := db.New(connPool)
	runTx := services.PoolTxRunner(connPool)
	payments := services.NewPaymentService(dbQueries, runTx, logger.Log)
	sweeper := processor.NewOverdueProcessor(dbQueries, payments, 100, logger.Log)

	result, err := sweeper.Sweep(ctx, time.Now().UTC())
	if err != nil {
		logger.Fatal("Overdue sweep failed", zap.Error(err))
	}

	logger.Info("Overdue sweep results",
		zap.Int("checked", result.Checked),
		zap.Int("marked_overdue", result.MarkedOverdue),
		zap.Int("failed", result.Failed),
	)
}

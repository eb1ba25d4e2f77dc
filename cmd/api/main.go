package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/garagedesk/garagedesk-api/internal/constants"
	"github.com/garagedesk/garagedesk-api/internal/logger"
	"github.com/garagedesk/garagedesk-api/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: .env file not found: %v\n", err)
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
	defer func() {
		_ = logger.Sync()
	}()

	if stage == constants.ProdEnvironment {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server.InitializeHandlers()
	server.InitializeRoutes(router)
	defer server.Shutdown()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	srv := server.NewHTTPServer(router, port)

	go func() {
		logger.Info("Server starting", zap.String("port", port), zap.String("stage", stage))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}

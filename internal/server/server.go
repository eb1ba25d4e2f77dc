package server

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/handlers"
	"github.com/garagedesk/garagedesk-api/internal/logger"
	"github.com/garagedesk/garagedesk-api/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Handler definitions
var (
	customerHandler *handlers.CustomerHandler
	vehicleHandler  *handlers.VehicleHandler
	catalogHandler  *handlers.CatalogHandler
	invoiceHandler  *handlers.InvoiceHandler
	paymentHandler  *handlers.PaymentHandler
	healthHandler   *handlers.HealthHandler

	// Database
	dbQueries *db.Queries
	connPool  *pgxpool.Pool
)

// InitializeHandlers connects to the database and wires every handler
func InitializeHandlers() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	connPool, err = pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	dbQueries = db.New(connPool)

	commonServices := handlers.NewCommonServices(handlers.CommonServicesConfig{
		DB:     dbQueries,
		DBPool: connPool,
		Logger: logger.Log,
	})

	customerHandler = handlers.NewCustomerHandler(commonServices)
	vehicleHandler = handlers.NewVehicleHandler(commonServices)
	catalogHandler = handlers.NewCatalogHandler(commonServices)
	invoiceHandler = handlers.NewInvoiceHandler(commonServices)
	paymentHandler = handlers.NewPaymentHandler(commonServices)
	healthHandler = handlers.NewHealthHandler(commonServices)
}

// InitializeRoutes registers middleware and every API route on the router
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())
	router.Use(middleware.NewRateLimiter(100, 200).Middleware())

	// Health check
	router.GET("/health", healthHandler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Customer management
		v1.POST("/customers", customerHandler.CreateCustomer)
		v1.GET("/customers", customerHandler.ListCustomers)
		v1.GET("/customers/:customer_id", customerHandler.GetCustomer)
		v1.PUT("/customers/:customer_id", customerHandler.UpdateCustomer)
		v1.DELETE("/customers/:customer_id", customerHandler.DeleteCustomer)

		// Vehicles
		v1.POST("/vehicles", vehicleHandler.CreateVehicle)
		v1.GET("/customers/:customer_id/vehicles", vehicleHandler.ListCustomerVehicles)
		v1.GET("/vehicles/:vehicle_id", vehicleHandler.GetVehicle)
		v1.PUT("/vehicles/:vehicle_id", vehicleHandler.UpdateVehicle)
		v1.DELETE("/vehicles/:vehicle_id", vehicleHandler.DeleteVehicle)

		// Service and part catalog
		v1.POST("/catalog/services", catalogHandler.CreateService)
		v1.GET("/catalog/services", catalogHandler.ListServices)
		v1.PUT("/catalog/services/:service_id", catalogHandler.UpdateService)
		v1.POST("/catalog/parts", catalogHandler.CreatePart)
		v1.GET("/catalog/parts", catalogHandler.ListParts)
		v1.PUT("/catalog/parts/:part_id", catalogHandler.UpdatePart)

		// Draft editing (pure computation, nothing persisted)
		v1.POST("/invoices/draft/lines", invoiceHandler.AddDraftLine)
		v1.POST("/invoices/draft/quantity", invoiceHandler.SetDraftQuantity)
		v1.POST("/invoices/draft/discount", invoiceHandler.SetDraftDiscount)
		v1.POST("/invoices/draft/remove-line", invoiceHandler.RemoveDraftLine)
		v1.POST("/invoices/draft/totals", invoiceHandler.ComputeDraftTotals)

		// Invoice lifecycle
		v1.POST("/invoices", invoiceHandler.CreateInvoice)
		v1.GET("/invoices", invoiceHandler.ListInvoices)
		v1.GET("/invoices/:invoice_id", invoiceHandler.GetInvoice)
		v1.POST("/invoices/:invoice_id/submit", invoiceHandler.SubmitInvoice)
		v1.POST("/invoices/:invoice_id/cancel", invoiceHandler.CancelInvoice)
		v1.DELETE("/invoices/:invoice_id", invoiceHandler.DeleteInvoice)
		v1.POST("/invoices/sweep-overdue", invoiceHandler.SweepOverdue)

		// Payments and refunds
		v1.POST("/invoices/:invoice_id/payments", paymentHandler.RecordPayment)
		v1.POST("/invoices/:invoice_id/refunds", paymentHandler.RecordRefund)
		v1.GET("/invoices/:invoice_id/coverage", paymentHandler.GetCoverage)
	}
}

// Shutdown closes the database pool
func Shutdown() {
	if connPool != nil {
		connPool.Close()
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.CorrelationIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.CorrelationIDHeader}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}

// NewHTTPServer builds the configured http.Server for the API
func NewHTTPServer(router *gin.Engine, port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second, // Prevent Slowloris attacks
	}
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/logger"
	"github.com/garagedesk/garagedesk-api/internal/processor"
	"github.com/garagedesk/garagedesk-api/internal/services"
	"github.com/garagedesk/garagedesk-api/internal/types/business"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// CommonServices holds the shared dependencies used across handlers
type CommonServices struct {
	db               db.Querier
	dbPool           *pgxpool.Pool
	logger           *zap.Logger
	TaxCodeService   *services.TaxCodeService
	DraftCalculator  *services.DraftCalculator
	InvoiceService   *services.InvoiceService
	PaymentService   *services.PaymentService
	OverdueProcessor *processor.OverdueProcessor
}

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	DB     db.Querier
	DBPool *pgxpool.Pool
	Logger *zap.Logger
}

// NewCommonServices wires the engine services over the given store
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}

	var runTx services.TxRunner
	if config.DBPool != nil {
		runTx = services.PoolTxRunner(config.DBPool)
	} else {
		// Without a pool (unit tests) fall back to running against the bare
		// querier.
		runTx = func(ctx context.Context, fn func(db.Querier) error) error {
			return fn(config.DB)
		}
	}

	taxCodes := services.NewTaxCodeService(config.DB, config.Logger)
	numbers := services.NewInvoiceNumberService(config.DB, config.Logger)
	invoiceService := services.NewInvoiceService(config.DB, runTx, numbers, config.Logger)
	paymentService := services.NewPaymentService(config.DB, runTx, config.Logger)

	return &CommonServices{
		db:               config.DB,
		dbPool:           config.DBPool,
		logger:           config.Logger,
		TaxCodeService:   taxCodes,
		DraftCalculator:  services.NewDraftCalculator(taxCodes, config.Logger),
		InvoiceService:   invoiceService,
		PaymentService:   paymentService,
		OverdueProcessor: processor.NewOverdueProcessor(config.DB, paymentService, 100, config.Logger),
	}
}

// GetDB returns the database querier
func (s *CommonServices) GetDB() db.Querier {
	return s.db
}

// GetLogger returns the logger
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// sendError logs the error and sends a JSON error response, carrying the
// request's correlation ID for debugging.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := ""
	if id, exists := c.Get("correlationID"); exists {
		correlationID, _ = id.(string)
	}

	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	response := struct {
		Error         string `json:"error"`
		CorrelationID string `json:"correlation_id,omitempty"`
	}{
		Error:         message,
		CorrelationID: correlationID,
	}

	c.JSON(statusCode, response)
}

// handleServiceError maps engine errors onto HTTP statuses: validation 400,
// missing references 404, illegal transitions 409, everything else 500.
func handleServiceError(c *gin.Context, err error) {
	var ve *business.ValidationError
	switch {
	case errors.As(err, &ve):
		sendError(c, http.StatusBadRequest, ve.Error(), err)
	case errors.Is(err, business.ErrNotFound):
		sendError(c, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, business.ErrInvalidTransition):
		sendError(c, http.StatusConflict, err.Error(), err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// handleDBError maps raw store errors onto HTTP statuses
func handleDBError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage sends a bare success message
func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, SuccessResponse{Message: message})
}

// sendList sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}

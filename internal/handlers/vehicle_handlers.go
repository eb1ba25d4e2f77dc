package handlers

import (
	"errors"
	"net/http"

	"github.com/garagedesk/garagedesk-api/internal/db"
	"github.com/garagedesk/garagedesk-api/internal/types/requests"
	"github.com/garagedesk/garagedesk-api/internal/types/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// VehicleHandler handles vehicle-related operations
type VehicleHandler struct {
	common *CommonServices
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(common *CommonServices) *VehicleHandler {
	return &VehicleHandler{common: common}
}

// CreateVehicle registers a vehicle under a customer
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req requests.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid customer ID format", err)
		return
	}
	vehicleType, ok := parseVehicleType(req.VehicleType)
	if !ok {
		sendError(c, http.StatusBadRequest, "Invalid vehicle type", nil)
		return
	}

	// The customer must exist before a vehicle can hang off it
	if _, err := h.common.GetDB().GetCustomer(c.Request.Context(), customerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			sendError(c, http.StatusNotFound, "Customer not found", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to look up customer", err)
		return
	}

	vehicle, err := h.common.GetDB().CreateVehicle(c.Request.Context(), db.CreateVehicleParams{
		CustomerID:         customerID,
		Make:               req.Make,
		Model:              req.Model,
		Year:               req.Year,
		RegistrationNumber: req.RegistrationNumber,
		VehicleType:        vehicleType,
		EngineNumber:       optionalDBText(req.EngineNumber),
		ChassisNumber:      optionalDBText(req.ChassisNumber),
		Color:              optionalDBText(req.Color),
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create vehicle", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toVehicleResponse(vehicle))
}

// GetVehicle returns a vehicle by ID
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("vehicle_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid vehicle ID format", err)
		return
	}

	vehicle, err := h.common.GetDB().GetVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		handleDBError(c, err, "Vehicle not found")
		return
	}

	sendSuccess(c, http.StatusOK, toVehicleResponse(vehicle))
}

// ListCustomerVehicles returns all vehicles registered to a customer
func (h *VehicleHandler) ListCustomerVehicles(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid customer ID format", err)
		return
	}

	vehicles, err := h.common.GetDB().ListVehiclesByCustomer(c.Request.Context(), customerID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list vehicles", err)
		return
	}

	out := make([]responses.VehicleResponse, len(vehicles))
	for i, vehicle := range vehicles {
		out[i] = toVehicleResponse(vehicle)
	}
	sendList(c, out)
}

// UpdateVehicle replaces a vehicle's details
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("vehicle_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid vehicle ID format", err)
		return
	}

	var req requests.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	vehicleType, ok := parseVehicleType(req.VehicleType)
	if !ok {
		sendError(c, http.StatusBadRequest, "Invalid vehicle type", nil)
		return
	}

	vehicle, err := h.common.GetDB().UpdateVehicle(c.Request.Context(), db.UpdateVehicleParams{
		ID:                 vehicleID,
		Make:               req.Make,
		Model:              req.Model,
		Year:               req.Year,
		RegistrationNumber: req.RegistrationNumber,
		VehicleType:        vehicleType,
		EngineNumber:       optionalDBText(req.EngineNumber),
		ChassisNumber:      optionalDBText(req.ChassisNumber),
		Color:              optionalDBText(req.Color),
	})
	if err != nil {
		handleDBError(c, err, "Vehicle not found")
		return
	}

	sendSuccess(c, http.StatusOK, toVehicleResponse(vehicle))
}

// DeleteVehicle removes a vehicle
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("vehicle_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid vehicle ID format", err)
		return
	}

	if err := h.common.GetDB().DeleteVehicle(c.Request.Context(), vehicleID); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete vehicle", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Vehicle deleted")
}

func parseVehicleType(s string) (db.VehicleType, bool) {
	switch db.VehicleType(s) {
	case db.VehicleTypeCar, db.VehicleTypeBike, db.VehicleTypeScooter:
		return db.VehicleType(s), true
	default:
		return "", false
	}
}

func toVehicleResponse(vehicle db.Vehicle) responses.VehicleResponse {
	return responses.VehicleResponse{
		ID:                 vehicle.ID,
		CustomerID:         vehicle.CustomerID,
		Make:               vehicle.Make,
		Model:              vehicle.Model,
		Year:               vehicle.Year,
		RegistrationNumber: vehicle.RegistrationNumber,
		VehicleType:        string(vehicle.VehicleType),
		EngineNumber:       vehicle.EngineNumber.String,
		ChassisNumber:      vehicle.ChassisNumber.String,
		Color:              vehicle.Color.String,
		CreatedAt:          vehicle.CreatedAt,
	}
}

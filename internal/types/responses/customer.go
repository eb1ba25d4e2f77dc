package responses

import (
	"time"

	"github.com/google/uuid"
)

// CustomerResponse is the wire shape of a customer record
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	TaxID     string    `json:"taxId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// VehicleResponse is the wire shape of a registered vehicle
type VehicleResponse struct {
	ID                 uuid.UUID `json:"id"`
	CustomerID         uuid.UUID `json:"customerId"`
	Make               string    `json:"make"`
	Model              string    `json:"model"`
	Year               int32     `json:"year"`
	RegistrationNumber string    `json:"registrationNumber"`
	VehicleType        string    `json:"vehicleType"`
	EngineNumber       string    `json:"engineNumber,omitempty"`
	ChassisNumber      string    `json:"chassisNumber,omitempty"`
	Color              string    `json:"color,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

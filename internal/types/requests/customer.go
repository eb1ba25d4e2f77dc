package requests

// CreateCustomerRequest contains the request body for creating a customer
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
	TaxID   string `json:"taxId"`
}

// UpdateCustomerRequest contains the request body for updating a customer
type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
	TaxID   string `json:"taxId"`
}

// CreateVehicleRequest contains the request body for registering a vehicle
type CreateVehicleRequest struct {
	CustomerID         string `json:"customerId" binding:"required"`
	Make               string `json:"make" binding:"required"`
	Model              string `json:"model" binding:"required"`
	Year               int32  `json:"year" binding:"required"`
	RegistrationNumber string `json:"registrationNumber" binding:"required"`
	VehicleType        string `json:"vehicleType" binding:"required"`
	EngineNumber       string `json:"engineNumber"`
	ChassisNumber      string `json:"chassisNumber"`
	Color              string `json:"color"`
}

// UpdateVehicleRequest contains the request body for updating a vehicle
type UpdateVehicleRequest struct {
	Make               string `json:"make" binding:"required"`
	Model              string `json:"model" binding:"required"`
	Year               int32  `json:"year" binding:"required"`
	RegistrationNumber string `json:"registrationNumber" binding:"required"`
	VehicleType        string `json:"vehicleType" binding:"required"`
	EngineNumber       string `json:"engineNumber"`
	ChassisNumber      string `json:"chassisNumber"`
	Color              string `json:"color"`
}

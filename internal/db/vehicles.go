package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createVehicle = `
INSERT INTO vehicles (customer_id, make, model, year, registration_number, vehicle_type, engine_number, chassis_number, color)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, customer_id, make, model, year, registration_number, vehicle_type, engine_number, chassis_number, color, created_at
`

type CreateVehicleParams struct {
	CustomerID         uuid.UUID
	Make               string
	Model              string
	Year               int32
	RegistrationNumber string
	VehicleType        VehicleType
	EngineNumber       pgtype.Text
	ChassisNumber      pgtype.Text
	Color              pgtype.Text
}

func (q *Queries) CreateVehicle(ctx context.Context, arg CreateVehicleParams) (Vehicle, error) {
	row := q.db.QueryRow(ctx, createVehicle,
		arg.CustomerID,
		arg.Make,
		arg.Model,
		arg.Year,
		arg.RegistrationNumber,
		arg.VehicleType,
		arg.EngineNumber,
		arg.ChassisNumber,
		arg.Color,
	)
	var i Vehicle
	err := row.Scan(&i.ID, &i.CustomerID, &i.Make, &i.Model, &i.Year, &i.RegistrationNumber,
		&i.VehicleType, &i.EngineNumber, &i.ChassisNumber, &i.Color, &i.CreatedAt)
	return i, err
}

const getVehicle = `
SELECT id, customer_id, make, model, year, registration_number, vehicle_type, engine_number, chassis_number, color, created_at
FROM vehicles
WHERE id = $1
`

func (q *Queries) GetVehicle(ctx context.Context, id uuid.UUID) (Vehicle, error) {
	row := q.db.QueryRow(ctx, getVehicle, id)
	var i Vehicle
	err := row.Scan(&i.ID, &i.CustomerID, &i.Make, &i.Model, &i.Year, &i.RegistrationNumber,
		&i.VehicleType, &i.EngineNumber, &i.ChassisNumber, &i.Color, &i.CreatedAt)
	return i, err
}

const listVehiclesByCustomer = `
SELECT id, customer_id, make, model, year, registration_number, vehicle_type, engine_number, chassis_number, color, created_at
FROM vehicles
WHERE customer_id = $1
ORDER BY created_at DESC
`

func (q *Queries) ListVehiclesByCustomer(ctx context.Context, customerID uuid.UUID) ([]Vehicle, error) {
	rows, err := q.db.Query(ctx, listVehiclesByCustomer, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Vehicle
	for rows.Next() {
		var i Vehicle
		if err := rows.Scan(&i.ID, &i.CustomerID, &i.Make, &i.Model, &i.Year, &i.RegistrationNumber,
			&i.VehicleType, &i.EngineNumber, &i.ChassisNumber, &i.Color, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateVehicle = `
UPDATE vehicles
SET make = $2, model = $3, year = $4, registration_number = $5, vehicle_type = $6,
    engine_number = $7, chassis_number = $8, color = $9
WHERE id = $1
RETURNING id, customer_id, make, model, year, registration_number, vehicle_type, engine_number, chassis_number, color, created_at
`

type UpdateVehicleParams struct {
	ID                 uuid.UUID
	Make               string
	Model              string
	Year               int32
	RegistrationNumber string
	VehicleType        VehicleType
	EngineNumber       pgtype.Text
	ChassisNumber      pgtype.Text
	Color              pgtype.Text
}

func (q *Queries) UpdateVehicle(ctx context.Context, arg UpdateVehicleParams) (Vehicle, error) {
	row := q.db.QueryRow(ctx, updateVehicle,
		arg.ID,
		arg.Make,
		arg.Model,
		arg.Year,
		arg.RegistrationNumber,
		arg.VehicleType,
		arg.EngineNumber,
		arg.ChassisNumber,
		arg.Color,
	)
	var i Vehicle
	err := row.Scan(&i.ID, &i.CustomerID, &i.Make, &i.Model, &i.Year, &i.RegistrationNumber,
		&i.VehicleType, &i.EngineNumber, &i.ChassisNumber, &i.Color, &i.CreatedAt)
	return i, err
}

const deleteVehicle = `
DELETE FROM vehicles
WHERE id = $1
`

func (q *Queries) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteVehicle, id)
	return err
}

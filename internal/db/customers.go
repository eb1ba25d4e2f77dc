package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createCustomer = `
INSERT INTO customers (name, phone, email, address, tax_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, phone, email, address, tax_id, created_at
`

type CreateCustomerParams struct {
	Name    string
	Phone   string
	Email   pgtype.Text
	Address pgtype.Text
	TaxID   pgtype.Text
}

func (q *Queries) CreateCustomer(ctx context.Context, arg CreateCustomerParams) (Customer, error) {
	row := q.db.QueryRow(ctx, createCustomer,
		arg.Name,
		arg.Phone,
		arg.Email,
		arg.Address,
		arg.TaxID,
	)
	var i Customer
	err := row.Scan(&i.ID, &i.Name, &i.Phone, &i.Email, &i.Address, &i.TaxID, &i.CreatedAt)
	return i, err
}

const getCustomer = `
SELECT id, name, phone, email, address, tax_id, created_at
FROM customers
WHERE id = $1
`

func (q *Queries) GetCustomer(ctx context.Context, id uuid.UUID) (Customer, error) {
	row := q.db.QueryRow(ctx, getCustomer, id)
	var i Customer
	err := row.Scan(&i.ID, &i.Name, &i.Phone, &i.Email, &i.Address, &i.TaxID, &i.CreatedAt)
	return i, err
}

const listCustomers = `
SELECT id, name, phone, email, address, tax_id, created_at
FROM customers
WHERE ($1::text = '' OR name ILIKE '%' || $1 || '%' OR phone LIKE '%' || $1 || '%')
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type ListCustomersParams struct {
	Search string
	Limit  int32
	Offset int32
}

func (q *Queries) ListCustomers(ctx context.Context, arg ListCustomersParams) ([]Customer, error) {
	rows, err := q.db.Query(ctx, listCustomers, arg.Search, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Customer
	for rows.Next() {
		var i Customer
		if err := rows.Scan(&i.ID, &i.Name, &i.Phone, &i.Email, &i.Address, &i.TaxID, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateCustomer = `
UPDATE customers
SET name = $2, phone = $3, email = $4, address = $5, tax_id = $6
WHERE id = $1
RETURNING id, name, phone, email, address, tax_id, created_at
`

type UpdateCustomerParams struct {
	ID      uuid.UUID
	Name    string
	Phone   string
	Email   pgtype.Text
	Address pgtype.Text
	TaxID   pgtype.Text
}

func (q *Queries) UpdateCustomer(ctx context.Context, arg UpdateCustomerParams) (Customer, error) {
	row := q.db.QueryRow(ctx, updateCustomer,
		arg.ID,
		arg.Name,
		arg.Phone,
		arg.Email,
		arg.Address,
		arg.TaxID,
	)
	var i Customer
	err := row.Scan(&i.ID, &i.Name, &i.Phone, &i.Email, &i.Address, &i.TaxID, &i.CreatedAt)
	return i, err
}

const deleteCustomer = `
DELETE FROM customers
WHERE id = $1
`

func (q *Queries) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteCustomer, id)
	return err
}

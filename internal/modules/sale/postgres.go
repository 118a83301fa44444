package sale

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/northavenue/dealership-backend/internal/apperr"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL sale repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateSale(ctx context.Context, s *SaleTransaction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sale_transactions (vin, customer_id, username, sale_price, sold_on)
		VALUES ($1,$2,$3,$4,$5)`,
		s.VIN, s.CustomerID, s.Username, s.SalePrice, s.SoldOn)
	return apperr.FromDB(err, fmt.Sprintf("vehicle %s could not be sold", s.VIN))
}

func (r *postgresRepo) GetPurchaseDetails(ctx context.Context, vin string) (*TransactionDetails, error) {
	return r.details(ctx, vin, `
		SELECT
			COALESCE(c.email, ''),
			c.phone_number,
			c.address_street || ', ' || c.address_city || ', ' || c.address_state || ' ' || c.address_postal_code,
			u.first_name,
			u.last_name,
			u.username
		FROM purchase_transactions pt
		JOIN customers c ON c.id = pt.customer_id
		JOIN users u ON u.username = pt.username
		WHERE pt.vin = $1`)
}

func (r *postgresRepo) GetSaleDetails(ctx context.Context, vin string) (*TransactionDetails, error) {
	return r.details(ctx, vin, `
		SELECT
			COALESCE(c.email, ''),
			c.phone_number,
			c.address_street || ', ' || c.address_city || ', ' || c.address_state || ' ' || c.address_postal_code,
			u.first_name,
			u.last_name,
			u.username
		FROM sale_transactions st
		JOIN customers c ON c.id = st.customer_id
		JOIN users u ON u.username = st.username
		WHERE st.vin = $1`)
}

func (r *postgresRepo) details(ctx context.Context, vin, query string) (*TransactionDetails, error) {
	d := &TransactionDetails{}
	err := r.db.QueryRowContext(ctx, query, vin).Scan(
		&d.CustomerEmail, &d.CustomerPhone, &d.CustomerAddress,
		&d.EmployeeFirstName, &d.EmployeeLastName, &d.EmployeeUsername)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("no transaction recorded for vehicle %s", vin)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

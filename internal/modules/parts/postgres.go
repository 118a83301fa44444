package parts

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/northavenue/dealership-backend/internal/apperr"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL parts repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CountOrdersForVehicle(ctx context.Context, vin string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM parts_orders WHERE vin = $1`, vin).Scan(&n)
	return n, err
}

func (r *postgresRepo) CreateOrder(ctx context.Context, order *PartsOrder) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO parts_orders (order_number, vin, vendor_name, total_cost)
		VALUES ($1,$2,$3,$4)`,
		order.OrderNumber, order.VIN, order.VendorName, order.TotalCost)
	if err != nil {
		return apperr.FromDB(err, fmt.Sprintf("order %s could not be placed", order.OrderNumber))
	}

	for _, part := range order.Parts {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO parts (order_number, vendor_part_number, description, quantity, unit_price, status)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			order.OrderNumber, part.VendorPartNumber, part.Description,
			part.Quantity, part.UnitPrice, part.Status)
		if err != nil {
			return apperr.FromDB(err, fmt.Sprintf("part %s appears twice on order %s", part.VendorPartNumber, order.OrderNumber))
		}
	}

	return tx.Commit()
}

func (r *postgresRepo) GetPartStatus(ctx context.Context, orderNumber, vendorPartNumber string) (PartStatus, error) {
	var status PartStatus
	err := r.db.QueryRowContext(ctx, `
		SELECT status FROM parts
		WHERE order_number = $1 AND vendor_part_number = $2`,
		orderNumber, vendorPartNumber).Scan(&status)
	if err == sql.ErrNoRows {
		return "", apperr.NotFound("part %s on order %s not found", vendorPartNumber, orderNumber)
	}
	if err != nil {
		return "", err
	}
	return status, nil
}

func (r *postgresRepo) UpdatePartStatus(ctx context.Context, orderNumber, vendorPartNumber string, status PartStatus) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE parts SET status = $1
		WHERE order_number = $2 AND vendor_part_number = $3`,
		status, orderNumber, vendorPartNumber)
	return err
}

func (r *postgresRepo) ListByVehicle(ctx context.Context, vin string) ([]*OrderLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT po.order_number, po.vendor_name, p.vendor_part_number,
		       p.description, p.quantity, p.unit_price, p.status
		FROM parts_orders po
		JOIN parts p ON p.order_number = po.order_number
		WHERE po.vin = $1
		ORDER BY po.order_number, p.vendor_part_number`, vin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var lines []*OrderLine
	for rows.Next() {
		line := &OrderLine{}
		if err := rows.Scan(&line.OrderNumber, &line.VendorName, &line.VendorPartNumber,
			&line.Description, &line.Quantity, &line.UnitPrice, &line.Status); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

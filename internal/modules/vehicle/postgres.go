package vehicle

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/northavenue/dealership-backend/internal/apperr"
	"github.com/northavenue/dealership-backend/internal/modules/user"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL vehicle repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Search(ctx context.Context, f SearchFilter, role user.Role) ([]*SearchRow, error) {
	query, args := buildSearchQuery(f, role)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search vehicles: %w", err)
	}
	defer rows.Close()

	var results []*SearchRow
	for rows.Next() {
		row, _, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (r *postgresRepo) GetDetails(ctx context.Context, vin string, role user.Role) (*DetailsRow, error) {
	query, args := buildSearchQuery(SearchFilter{VIN: vin}, role)
	row, soldOn, err := scanListing(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("vehicle %s not found", vin)
	}
	if err != nil {
		return nil, err
	}
	d := &DetailsRow{SearchRow: *row}
	if soldOn.Valid {
		d.SaleDate = &soldOn.Time
	}
	return d, nil
}

func (r *postgresRepo) GetSaleCandidate(ctx context.Context, vin string) (*SaleCandidate, error) {
	c := &SaleCandidate{}
	var colors sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT
			v.vin, v.vehicle_type, v.manufacturer_name, v.model_name, v.year,
			v.fuel_type,
			string_agg(DISTINCT vc.color_name, ', ') AS colors,
			v.horsepower, v.condition, v.description,
			pt.purchase_price, pt.purchased_on,
			ROUND(COALESCE(po.total_parts_cost, 0), 2) AS total_parts_cost
		FROM vehicles v
		LEFT JOIN vehicle_colors vc ON vc.vin = v.vin
		JOIN purchase_transactions pt ON pt.vin = v.vin
		LEFT JOIN (
			SELECT vin, SUM(total_cost) AS total_parts_cost
			FROM parts_orders
			GROUP BY vin
		) po ON po.vin = v.vin
		WHERE v.vin = $1
		  AND NOT EXISTS (SELECT 1 FROM sale_transactions st WHERE st.vin = v.vin)
		GROUP BY v.vin, v.vehicle_type, v.manufacturer_name, v.model_name, v.year,
			v.fuel_type, v.horsepower, v.condition, v.description,
			pt.purchase_price, pt.purchased_on, po.total_parts_cost`, vin).Scan(
		&c.VIN, &c.VehicleType, &c.Manufacturer, &c.Model, &c.Year,
		&c.FuelType, &colors, &c.Horsepower, &c.Condition, &c.Description,
		&c.PurchasePrice, &c.PurchaseDate, &c.TotalPartsCost)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("vehicle %s is not eligible for sale", vin)
	}
	if err != nil {
		return nil, err
	}
	c.Colors = colors.String
	return c, nil
}

// CreateWithPurchase keeps the intake atomic: vehicle, colors and the
// purchase transaction either all land or none do.
func (r *postgresRepo) CreateWithPurchase(ctx context.Context, v *Vehicle, p *PurchaseInfo) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO vehicles
		  (vin, vehicle_type, manufacturer_name, model_name, year, fuel_type, horsepower, condition, description)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		v.VIN, v.VehicleType, v.Manufacturer, v.Model, v.Year, v.FuelType, v.Horsepower, v.Condition, v.Description)
	if err != nil {
		return apperr.FromDB(err, fmt.Sprintf("vehicle %s could not be added", v.VIN))
	}

	for _, color := range v.Colors {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO vehicle_colors (vin, color_name) VALUES ($1,$2)`,
			v.VIN, color)
		if err != nil {
			return apperr.FromDB(err, fmt.Sprintf("color %s could not be recorded", color))
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO purchase_transactions (vin, customer_id, username, purchase_price, purchased_on)
		VALUES ($1,$2,$3,$4,$5)`,
		v.VIN, p.CustomerID, p.Username, p.PurchasePrice, p.PurchasedOn)
	if err != nil {
		return apperr.FromDB(err, fmt.Sprintf("purchase of %s could not be recorded", v.VIN))
	}

	return tx.Commit()
}

func (r *postgresRepo) CountAvailable(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT v.vin)
		FROM vehicles v
		WHERE `+predNoPendingParts+`
		  AND NOT EXISTS (SELECT 1 FROM sale_transactions st WHERE st.vin = v.vin)`).Scan(&n)
	return n, err
}

func (r *postgresRepo) CountPendingParts(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT po.vin)
		FROM parts_orders po
		JOIN parts p ON p.order_number = po.order_number
		WHERE p.status <> 'Installed'
		  AND NOT EXISTS (SELECT 1 FROM sale_transactions st WHERE st.vin = po.vin)`).Scan(&n)
	return n, err
}

func (r *postgresRepo) ListFilterOptions(ctx context.Context) (*FilterOptions, error) {
	opts := &FilterOptions{FuelTypes: FuelTypes}
	var err error
	if opts.VehicleTypes, err = r.distinctStrings(ctx, `SELECT vehicle_type FROM vehicle_types ORDER BY vehicle_type`); err != nil {
		return nil, err
	}
	if opts.Manufacturers, err = r.distinctStrings(ctx, `SELECT manufacturer_name FROM vehicle_manufacturers ORDER BY manufacturer_name`); err != nil {
		return nil, err
	}
	if opts.Colors, err = r.distinctStrings(ctx, `SELECT color_name FROM colors ORDER BY color_name`); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT year FROM vehicles ORDER BY year DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, err
		}
		opts.Years = append(opts.Years, year)
	}
	return opts, rows.Err()
}

func (r *postgresRepo) distinctStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// ── scanner ───────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanListing(row rowScanner) (*SearchRow, *sql.NullTime, error) {
	r := &SearchRow{}
	var colors sql.NullString
	var salePrice, purchasePrice, partsCost sql.NullFloat64
	var purchasedOn, soldOn sql.NullTime
	var description sql.NullString
	err := row.Scan(
		&r.VIN, &r.VehicleType, &r.Manufacturer, &r.Model, &r.Year, &r.FuelType,
		&colors, &r.Horsepower, &salePrice, &purchasePrice, &purchasedOn,
		&partsCost, &description, &soldOn)
	if err != nil {
		return nil, nil, err
	}
	r.Colors = colors.String
	if salePrice.Valid {
		r.SalePrice = &salePrice.Float64
	}
	if purchasePrice.Valid {
		r.PurchasePrice = &purchasePrice.Float64
	}
	if purchasedOn.Valid {
		r.PurchaseDate = &purchasedOn.Time
	}
	if partsCost.Valid {
		r.TotalPartsCost = &partsCost.Float64
	}
	if description.Valid {
		r.Description = &description.String
	}
	return r, &soldOn, nil
}

package report

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL report repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) SellerHistory(ctx context.Context) ([]*SellerHistoryRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			CASE
				WHEN bc.business_name IS NOT NULL THEN bc.business_name
				ELSE ic.first_name || ' ' || ic.last_name
			END AS seller_name,
			COUNT(pt.vin) AS total_vehicles_sold,
			ROUND(AVG(pt.purchase_price), 2) AS avg_purchase_price,
			AVG((
				SELECT COALESCE(SUM(p.quantity), 0)
				FROM parts p
				JOIN parts_orders po ON po.order_number = p.order_number
				WHERE po.vin = pt.vin
			)) AS avg_parts_quantity,
			AVG((
				SELECT COALESCE(SUM(p.quantity * p.unit_price), 0)
				FROM parts p
				JOIN parts_orders po ON po.order_number = p.order_number
				WHERE po.vin = pt.vin
			)) AS avg_parts_cost
		FROM purchase_transactions pt
		LEFT JOIN business_customers bc ON bc.customer_id = pt.customer_id
		LEFT JOIN individual_customers ic ON ic.customer_id = pt.customer_id
		GROUP BY pt.customer_id, bc.business_name, ic.first_name, ic.last_name
		ORDER BY total_vehicles_sold DESC, avg_purchase_price ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []*SellerHistoryRow
	for rows.Next() {
		row := &SellerHistoryRow{}
		if err := rows.Scan(&row.SellerName, &row.TotalVehiclesSold,
			&row.AvgPurchasePrice, &row.AvgPartsQuantity, &row.AvgPartsCost); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *postgresRepo) AverageInventoryTime(ctx context.Context) ([]*InventoryTimeRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			vt.vehicle_type,
			CASE
				WHEN COUNT(st.sold_on) = 0 THEN NULL
				ELSE ROUND(AVG((st.sold_on - pt.purchased_on) + 1), 2)
			END AS avg_inventory_time
		FROM vehicle_types vt
		LEFT JOIN vehicles v ON v.vehicle_type = vt.vehicle_type
		LEFT JOIN purchase_transactions pt ON pt.vin = v.vin
		LEFT JOIN sale_transactions st ON st.vin = v.vin
		GROUP BY vt.vehicle_type
		ORDER BY vt.vehicle_type ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []*InventoryTimeRow
	for rows.Next() {
		row := &InventoryTimeRow{}
		var avg sql.NullFloat64
		if err := rows.Scan(&row.VehicleType, &avg); err != nil {
			return nil, err
		}
		if avg.Valid {
			row.AvgInventoryTime = &avg.Float64
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *postgresRepo) PricePerCondition(ctx context.Context) ([]*PricePerConditionRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			v.vehicle_type,
			COALESCE(AVG(CASE WHEN v.condition = 'Excellent' THEN pt.purchase_price END), 0) AS excellent,
			COALESCE(AVG(CASE WHEN v.condition = 'Very Good' THEN pt.purchase_price END), 0) AS very_good,
			COALESCE(AVG(CASE WHEN v.condition = 'Good' THEN pt.purchase_price END), 0) AS good,
			COALESCE(AVG(CASE WHEN v.condition = 'Fair' THEN pt.purchase_price END), 0) AS fair
		FROM vehicles v
		LEFT JOIN purchase_transactions pt ON pt.vin = v.vin
		GROUP BY v.vehicle_type
		ORDER BY v.vehicle_type ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []*PricePerConditionRow
	for rows.Next() {
		row := &PricePerConditionRow{}
		if err := rows.Scan(&row.VehicleType, &row.Excellent, &row.VeryGood, &row.Good, &row.Fair); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *postgresRepo) PartsStatistics(ctx context.Context) ([]*PartsStatisticsRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			v.name,
			SUM(p.quantity) AS total_quantity,
			SUM(p.unit_price * p.quantity) AS total_spent
		FROM vendors v
		JOIN parts_orders po ON po.vendor_name = v.name
		JOIN parts p ON p.order_number = po.order_number
		GROUP BY v.name
		ORDER BY total_spent DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []*PartsStatisticsRow
	for rows.Next() {
		row := &PartsStatisticsRow{}
		if err := rows.Scan(&row.VendorName, &row.TotalQuantity, &row.TotalAmountSpent); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *postgresRepo) MonthlySales(ctx context.Context) ([]*MonthlySalesRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			EXTRACT(YEAR FROM st.sold_on)::int AS year,
			EXTRACT(MONTH FROM st.sold_on)::int AS month,
			COUNT(st.vin) AS vehicles_sold,
			SUM(st.sale_price) AS gross_sales_income,
			SUM(st.sale_price - pt.purchase_price - COALESCE(po.total_cost, 0)) AS net_income
		FROM sale_transactions st
		JOIN purchase_transactions pt ON pt.vin = st.vin
		LEFT JOIN (
			SELECT vin, SUM(total_cost) AS total_cost
			FROM parts_orders
			GROUP BY vin
		) po ON po.vin = st.vin
		GROUP BY 1, 2
		HAVING COUNT(st.vin) > 0
		ORDER BY year DESC, month DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []*MonthlySalesRow
	for rows.Next() {
		row := &MonthlySalesRow{}
		if err := rows.Scan(&row.Year, &row.Month, &row.VehiclesSold,
			&row.GrossSalesIncome, &row.NetIncome); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *postgresRepo) MonthlySalesDrilldown(ctx context.Context, year, month int) ([]*DrilldownRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			u.first_name,
			u.last_name,
			COUNT(st.vin) AS vehicles_sold,
			SUM(st.sale_price) AS total_sales
		FROM sale_transactions st
		JOIN users u ON u.username = st.username
		WHERE EXTRACT(YEAR FROM st.sold_on) = $1
		  AND EXTRACT(MONTH FROM st.sold_on) = $2
		GROUP BY u.username, u.first_name, u.last_name
		ORDER BY vehicles_sold DESC, total_sales DESC`, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []*DrilldownRow
	for rows.Next() {
		row := &DrilldownRow{}
		if err := rows.Scan(&row.FirstName, &row.LastName, &row.VehiclesSold, &row.TotalSales); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

package report

// SellerHistoryRow summarizes one seller's supply record. Flagged marks
// sellers whose average parts usage warrants review; it advises the
// presentation layer and never filters rows.
type SellerHistoryRow struct {
	SellerName        string  `json:"seller_name"`
	TotalVehiclesSold int     `json:"total_vehicles_sold"`
	AvgPurchasePrice  float64 `json:"avg_purchase_price"`
	AvgPartsQuantity  float64 `json:"avg_parts_quantity_per_vehicle"`
	AvgPartsCost      float64 `json:"avg_parts_cost_per_vehicle"`
	Flagged           bool    `json:"flagged"`
}

// InventoryTimeRow reports mean days on the lot per vehicle type.
// AvgInventoryTime is nil for types with no sales ("N/A").
type InventoryTimeRow struct {
	VehicleType      string   `json:"vehicle_type"`
	AvgInventoryTime *float64 `json:"avg_inventory_time"`
}

// PricePerConditionRow buckets a type's average purchase price by condition;
// empty buckets report zero.
type PricePerConditionRow struct {
	VehicleType string  `json:"vehicle_type"`
	Excellent   float64 `json:"excellent"`
	VeryGood    float64 `json:"very_good"`
	Good        float64 `json:"good"`
	Fair        float64 `json:"fair"`
}

// PartsStatisticsRow totals a vendor's supplied part quantity and spend.
type PartsStatisticsRow struct {
	VendorName       string  `json:"vendor_name"`
	TotalQuantity    int     `json:"total_parts_quantity"`
	TotalAmountSpent float64 `json:"total_amount_spent"`
}

// MonthlySalesRow summarizes one month with at least one sale.
type MonthlySalesRow struct {
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	VehiclesSold     int     `json:"vehicles_sold"`
	GrossSalesIncome float64 `json:"gross_sales_income"`
	NetIncome        float64 `json:"net_income"`
}

// DrilldownRow ranks one salesperson within a selected month.
type DrilldownRow struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	VehiclesSold int     `json:"vehicles_sold"`
	TotalSales   float64 `json:"total_sales"`
}

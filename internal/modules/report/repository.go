package report

import "context"

// Repository defines the interface for the fixed report aggregations.
type Repository interface {
	SellerHistory(ctx context.Context) ([]*SellerHistoryRow, error)
	AverageInventoryTime(ctx context.Context) ([]*InventoryTimeRow, error)
	PricePerCondition(ctx context.Context) ([]*PricePerConditionRow, error)
	PartsStatistics(ctx context.Context) ([]*PartsStatisticsRow, error)
	MonthlySales(ctx context.Context) ([]*MonthlySalesRow, error)
	MonthlySalesDrilldown(ctx context.Context, year, month int) ([]*DrilldownRow, error)
}

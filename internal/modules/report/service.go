package report

import "context"

// Thresholds above which a seller's average parts usage is flagged for
// review on the seller history report.
const (
	FlagPartsQuantity = 5
	FlagPartsCost     = 500
)

// Service defines the reporting business logic.
type Service interface {
	SellerHistory(ctx context.Context) ([]*SellerHistoryRow, error)
	AverageInventoryTime(ctx context.Context) ([]*InventoryTimeRow, error)
	PricePerCondition(ctx context.Context) ([]*PricePerConditionRow, error)
	PartsStatistics(ctx context.Context) ([]*PartsStatisticsRow, error)
	MonthlySales(ctx context.Context) ([]*MonthlySalesRow, error)
	MonthlySalesDrilldown(ctx context.Context, year, month int) ([]*DrilldownRow, error)
}

type service struct {
	repo Repository
}

// NewService creates a new report service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SellerHistory(ctx context.Context) ([]*SellerHistoryRow, error) {
	rows, err := s.repo.SellerHistory(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		row.Flagged = row.AvgPartsQuantity >= FlagPartsQuantity || row.AvgPartsCost >= FlagPartsCost
	}
	return rows, nil
}

func (s *service) AverageInventoryTime(ctx context.Context) ([]*InventoryTimeRow, error) {
	return s.repo.AverageInventoryTime(ctx)
}

func (s *service) PricePerCondition(ctx context.Context) ([]*PricePerConditionRow, error) {
	return s.repo.PricePerCondition(ctx)
}

func (s *service) PartsStatistics(ctx context.Context) ([]*PartsStatisticsRow, error) {
	return s.repo.PartsStatistics(ctx)
}

func (s *service) MonthlySales(ctx context.Context) ([]*MonthlySalesRow, error) {
	return s.repo.MonthlySales(ctx)
}

func (s *service) MonthlySalesDrilldown(ctx context.Context, year, month int) ([]*DrilldownRow, error) {
	return s.repo.MonthlySalesDrilldown(ctx, year, month)
}

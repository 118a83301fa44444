package parts

import (
	"context"
	"fmt"
	"math"

	"github.com/northavenue/dealership-backend/internal/apperr"
)

// Service defines the parts-order business logic.
type Service interface {
	// AddOrder places a parts order for a vehicle, assigning the next
	// sequential order number and the summed total cost.
	AddOrder(ctx context.Context, vin string, req AddOrderRequest) (*PartsOrder, error)

	// UpdatePartStatus advances a part through its lifecycle; illegal
	// transitions are rejected and leave the status unchanged.
	UpdatePartStatus(ctx context.Context, orderNumber, vendorPartNumber string, req UpdateStatusRequest) error

	// ListByVehicle returns the part lines ordered for a VIN.
	ListByVehicle(ctx context.Context, vin string) ([]*OrderLine, error)
}

type service struct {
	repo Repository
}

// NewService creates a new parts service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// FormatOrderNumber derives an order number from the VIN and a 1-based
// sequence, zero-padded to three digits.
func FormatOrderNumber(vin string, seq int) string {
	return fmt.Sprintf("%s-%03d", vin, seq)
}

func (s *service) AddOrder(ctx context.Context, vin string, req AddOrderRequest) (*PartsOrder, error) {
	// Sequence derivation reads the current order count; concurrent intake
	// for the same VIN can collide on the order number and is rejected by
	// the primary key.
	count, err := s.repo.CountOrdersForVehicle(ctx, vin)
	if err != nil {
		return nil, err
	}
	orderNumber := FormatOrderNumber(vin, count+1)

	order := &PartsOrder{
		OrderNumber: orderNumber,
		VIN:         vin,
		VendorName:  req.VendorName,
	}
	var total float64
	for _, pr := range req.Parts {
		status := StatusOrdered
		if pr.Status != "" {
			status = PartStatus(pr.Status)
		}
		total += pr.UnitPrice * float64(pr.Quantity)
		order.Parts = append(order.Parts, &Part{
			OrderNumber:      orderNumber,
			VendorPartNumber: pr.VendorPartNumber,
			Description:      pr.Description,
			Quantity:         pr.Quantity,
			UnitPrice:        pr.UnitPrice,
			Status:           status,
		})
	}
	order.TotalCost = math.Round(total*100) / 100

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *service) UpdatePartStatus(ctx context.Context, orderNumber, vendorPartNumber string, req UpdateStatusRequest) error {
	next, err := ParseStatus(req.Status)
	if err != nil {
		return apperr.Rejected("%v", err)
	}

	current, err := s.repo.GetPartStatus(ctx, orderNumber, vendorPartNumber)
	if err != nil {
		return err
	}
	if !current.CanTransitionTo(next) {
		return apperr.Rejected("part cannot move from %s to %s", current, next)
	}

	return s.repo.UpdatePartStatus(ctx, orderNumber, vendorPartNumber, next)
}

func (s *service) ListByVehicle(ctx context.Context, vin string) ([]*OrderLine, error) {
	return s.repo.ListByVehicle(ctx, vin)
}

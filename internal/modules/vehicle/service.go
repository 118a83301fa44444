package vehicle

import (
	"context"
	"fmt"
	"time"

	"github.com/northavenue/dealership-backend/internal/apperr"
	"github.com/northavenue/dealership-backend/internal/modules/customer"
	"github.com/northavenue/dealership-backend/internal/modules/user"
)

// Service defines the inventory business logic.
type Service interface {
	// Search lists vehicles visible to the role, with the role's column
	// projection applied. An empty result is not an error.
	Search(ctx context.Context, f SearchFilter, role user.Role) ([]*SearchRow, error)

	// Details returns the single-vehicle view for the role.
	Details(ctx context.Context, vin string, role user.Role) (*DetailsRow, error)

	// SaleCandidate returns sale-form data with the asking price computed,
	// or a not-found error when the vehicle is sold or unknown.
	SaleCandidate(ctx context.Context, vin string) (*SaleCandidate, error)

	// Intake buys a vehicle into inventory: vehicle, colors and purchase
	// transaction land atomically, attributed to the acting clerk.
	Intake(ctx context.Context, req IntakeRequest, clerkUsername string) error

	// Counts summarizes available and pending-parts vehicles.
	Counts(ctx context.Context) (*Counts, error)

	// FilterOptions lists the dropdown values for the search form.
	FilterOptions(ctx context.Context) (*FilterOptions, error)
}

type service struct {
	repo      Repository
	customers customer.Repository
}

// NewService creates a new vehicle service.
func NewService(repo Repository, customers customer.Repository) Service {
	return &service{repo: repo, customers: customers}
}

func (s *service) Search(ctx context.Context, f SearchFilter, role user.Role) ([]*SearchRow, error) {
	rows, err := s.repo.Search(ctx, f, role)
	if err != nil {
		return nil, err
	}
	policy := policyFor(role)
	for _, row := range rows {
		policy.project(row)
	}
	return rows, nil
}

func (s *service) Details(ctx context.Context, vin string, role user.Role) (*DetailsRow, error) {
	d, err := s.repo.GetDetails(ctx, vin, role)
	if err != nil {
		return nil, err
	}
	policyFor(role).projectDetails(d)
	return d, nil
}

func (s *service) SaleCandidate(ctx context.Context, vin string) (*SaleCandidate, error) {
	c, err := s.repo.GetSaleCandidate(ctx, vin)
	if err != nil {
		return nil, err
	}
	c.AskingPrice = AskingPrice(c.PurchasePrice, c.TotalPartsCost)
	return c, nil
}

func (s *service) Intake(ctx context.Context, req IntakeRequest, clerkUsername string) error {
	sellerID, err := s.customers.ResolveID(ctx, req.SellerIdentifier)
	if err != nil {
		if apperr.IsNotFound(err) {
			return apperr.Rejected("seller %s is not a registered customer", req.SellerIdentifier)
		}
		return err
	}

	purchasedOn, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return fmt.Errorf("invalid purchase_date: %w", err)
	}

	v := &Vehicle{
		VIN:          req.VIN,
		VehicleType:  req.VehicleType,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		Year:         req.Year,
		FuelType:     req.FuelType,
		Horsepower:   req.Horsepower,
		Condition:    req.Condition,
		Description:  req.Description,
		Colors:       req.Colors,
	}
	return s.repo.CreateWithPurchase(ctx, v, &PurchaseInfo{
		CustomerID:    sellerID,
		Username:      clerkUsername,
		PurchasePrice: req.PurchasePrice,
		PurchasedOn:   purchasedOn,
	})
}

func (s *service) Counts(ctx context.Context) (*Counts, error) {
	available, err := s.repo.CountAvailable(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.CountPendingParts(ctx)
	if err != nil {
		return nil, err
	}
	return &Counts{AvailableForSale: available, PendingParts: pending}, nil
}

func (s *service) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	return s.repo.ListFilterOptions(ctx)
}

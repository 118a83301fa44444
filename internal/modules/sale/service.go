package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/northavenue/dealership-backend/internal/apperr"
	"github.com/northavenue/dealership-backend/internal/modules/customer"
)

// Service defines the sale-recording business logic.
type Service interface {
	// RecordSale sells a vehicle to the customer identified by SSN or tax
	// id, attributed to the acting salesperson. An already-sold vehicle is
	// rejected.
	RecordSale(ctx context.Context, req RecordSaleRequest, salesUsername string) (*SaleTransaction, error)

	// PurchaseDetails returns seller contact and clerk identity for a VIN.
	PurchaseDetails(ctx context.Context, vin string) (*TransactionDetails, error)

	// SaleDetails returns buyer contact and salesperson identity for a VIN.
	SaleDetails(ctx context.Context, vin string) (*TransactionDetails, error)
}

type service struct {
	repo      Repository
	customers customer.Repository
}

// NewService creates a new sale service.
func NewService(repo Repository, customers customer.Repository) Service {
	return &service{repo: repo, customers: customers}
}

func (s *service) RecordSale(ctx context.Context, req RecordSaleRequest, salesUsername string) (*SaleTransaction, error) {
	buyerID, err := s.customers.ResolveID(ctx, req.BuyerIdentifier)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Rejected("buyer %s is not a registered customer", req.BuyerIdentifier)
		}
		return nil, err
	}

	soldOn, err := time.Parse("2006-01-02", req.SaleDate)
	if err != nil {
		return nil, fmt.Errorf("invalid sale_date: %w", err)
	}

	tx := &SaleTransaction{
		VIN:        req.VIN,
		CustomerID: buyerID,
		Username:   salesUsername,
		SalePrice:  req.SalePrice,
		SoldOn:     soldOn,
	}
	if err := s.repo.CreateSale(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *service) PurchaseDetails(ctx context.Context, vin string) (*TransactionDetails, error) {
	return s.repo.GetPurchaseDetails(ctx, vin)
}

func (s *service) SaleDetails(ctx context.Context, vin string) (*TransactionDetails, error) {
	return s.repo.GetSaleDetails(ctx, vin)
}

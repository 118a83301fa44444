package sale

import "context"

// Repository defines the interface for sale and purchase transaction storage.
type Repository interface {
	// CreateSale inserts the sale transaction; a second sale for the same
	// VIN violates the primary key and is rejected.
	CreateSale(ctx context.Context, s *SaleTransaction) error

	// GetPurchaseDetails returns the seller contact and the clerk who
	// bought the vehicle in, or not-found if it was never purchased.
	GetPurchaseDetails(ctx context.Context, vin string) (*TransactionDetails, error)

	// GetSaleDetails returns the buyer contact and the salesperson who
	// sold the vehicle, or not-found if it is unsold.
	GetSaleDetails(ctx context.Context, vin string) (*TransactionDetails, error)
}

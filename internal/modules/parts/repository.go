package parts

import "context"

// Repository defines the interface for parts-order storage.
type Repository interface {
	// CountOrdersForVehicle returns how many orders already exist for the
	// VIN; the next order number continues that sequence.
	CountOrdersForVehicle(ctx context.Context, vin string) (int, error)

	// CreateOrder inserts the order and all its parts inside one transaction.
	CreateOrder(ctx context.Context, order *PartsOrder) error

	// GetPartStatus returns the current status of a part, or not-found.
	GetPartStatus(ctx context.Context, orderNumber, vendorPartNumber string) (PartStatus, error)

	// UpdatePartStatus sets the status of an existing part.
	UpdatePartStatus(ctx context.Context, orderNumber, vendorPartNumber string, status PartStatus) error

	// ListByVehicle returns every part line ordered for the VIN.
	ListByVehicle(ctx context.Context, vin string) ([]*OrderLine, error)
}

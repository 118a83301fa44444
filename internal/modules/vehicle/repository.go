package vehicle

import (
	"context"

	"github.com/northavenue/dealership-backend/internal/modules/user"
)

// Repository defines the interface for vehicle data storage.
type Repository interface {
	// Search runs the role-scoped listing query. Rows carry every column;
	// the service applies the role projection.
	Search(ctx context.Context, f SearchFilter, role user.Role) ([]*SearchRow, error)

	// GetDetails returns the single-vehicle view within the role's
	// visibility, or a not-found error.
	GetDetails(ctx context.Context, vin string, role user.Role) (*DetailsRow, error)

	// GetSaleCandidate returns sale-form data for an unsold vehicle, or a
	// not-found error when the VIN is unknown or already sold.
	GetSaleCandidate(ctx context.Context, vin string) (*SaleCandidate, error)

	// CreateWithPurchase inserts the vehicle, its colors, and the
	// originating purchase transaction inside one transaction.
	CreateWithPurchase(ctx context.Context, v *Vehicle, p *PurchaseInfo) error

	CountAvailable(ctx context.Context) (int, error)
	CountPendingParts(ctx context.Context) (int, error)

	ListFilterOptions(ctx context.Context) (*FilterOptions, error)
}

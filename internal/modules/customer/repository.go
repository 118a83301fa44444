package customer

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for customer data storage.
type Repository interface {
	// CreateIndividual inserts the shared row and the person specialization
	// inside one transaction.
	CreateIndividual(ctx context.Context, c *Customer, d *IndividualDetails) error

	// CreateBusiness inserts the shared row and the business specialization
	// inside one transaction.
	CreateBusiness(ctx context.Context, c *Customer, d *BusinessDetails) error

	// ListIdentifiers returns every known SSN and tax id.
	ListIdentifiers(ctx context.Context) ([]string, error)

	// ResolveID looks up a customer id by SSN or tax id.
	ResolveID(ctx context.Context, identifier string) (uuid.UUID, error)
}

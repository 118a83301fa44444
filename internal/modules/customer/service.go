package customer

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the customer management business logic.
type Service interface {
	// AddCustomer registers a customer of either kind and returns its
	// generated id.
	AddCustomer(ctx context.Context, req AddCustomerRequest) (uuid.UUID, error)

	// ListIdentifiers returns every SSN and tax id, for seller/buyer pickers.
	ListIdentifiers(ctx context.Context) ([]string, error)

	// ResolveID looks up a customer id by SSN or tax id.
	ResolveID(ctx context.Context, identifier string) (uuid.UUID, error)
}

type service struct {
	repo Repository
}

// NewService creates a new customer service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) AddCustomer(ctx context.Context, req AddCustomerRequest) (uuid.UUID, error) {
	c := &Customer{
		ID:                uuid.New(),
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		AddressStreet:     req.AddressStreet,
		AddressCity:       req.AddressCity,
		AddressState:      req.AddressState,
		AddressPostalCode: req.AddressPostalCode,
	}

	var err error
	if req.CustomerType == "Business" {
		err = s.repo.CreateBusiness(ctx, c, &BusinessDetails{
			BusinessName:            req.BusinessName,
			TaxIdentificationNumber: req.TaxIdentificationNumber,
			PrimaryContactFirstName: req.PrimaryContactFirstName,
			PrimaryContactLastName:  req.PrimaryContactLastName,
			PrimaryContactTitle:     req.PrimaryContactTitle,
		})
	} else {
		err = s.repo.CreateIndividual(ctx, c, &IndividualDetails{
			FirstName:            req.FirstName,
			LastName:             req.LastName,
			SocialSecurityNumber: req.SocialSecurityNumber,
		})
	}
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID, nil
}

func (s *service) ListIdentifiers(ctx context.Context) ([]string, error) {
	return s.repo.ListIdentifiers(ctx)
}

func (s *service) ResolveID(ctx context.Context, identifier string) (uuid.UUID, error) {
	return s.repo.ResolveID(ctx, identifier)
}

package customer

import "github.com/google/uuid"

// Customer carries the contact fields shared by both customer kinds. Every
// customer row has exactly one matching specialization row.
type Customer struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email,omitempty"`
	PhoneNumber       string    `json:"phone_number"`
	AddressStreet     string    `json:"address_street"`
	AddressCity       string    `json:"address_city"`
	AddressState      string    `json:"address_state"`
	AddressPostalCode string    `json:"address_postal_code"`
}

// IndividualDetails is the person specialization; the SSN is its natural key.
type IndividualDetails struct {
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	SocialSecurityNumber string `json:"social_security_number"`
}

// BusinessDetails is the business specialization; the tax id is its natural key.
type BusinessDetails struct {
	BusinessName            string `json:"business_name"`
	TaxIdentificationNumber string `json:"tax_identification_number"`
	PrimaryContactFirstName string `json:"primary_contact_first_name"`
	PrimaryContactLastName  string `json:"primary_contact_last_name"`
	PrimaryContactTitle     string `json:"primary_contact_title"`
}

// AddCustomerRequest is the payload for registering a customer of either kind.
type AddCustomerRequest struct {
	CustomerType string `json:"customer_type" validate:"required,oneof=Individual Business"`

	Email             string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber       string `json:"phone_number" validate:"required"`
	AddressStreet     string `json:"address_street" validate:"required"`
	AddressCity       string `json:"address_city" validate:"required"`
	AddressState      string `json:"address_state" validate:"required"`
	AddressPostalCode string `json:"address_postal_code" validate:"required"`

	FirstName            string `json:"first_name,omitempty" validate:"required_if=CustomerType Individual"`
	LastName             string `json:"last_name,omitempty" validate:"required_if=CustomerType Individual"`
	SocialSecurityNumber string `json:"social_security_number,omitempty" validate:"required_if=CustomerType Individual"`

	BusinessName            string `json:"business_name,omitempty" validate:"required_if=CustomerType Business"`
	TaxIdentificationNumber string `json:"tax_identification_number,omitempty" validate:"required_if=CustomerType Business"`
	PrimaryContactFirstName string `json:"primary_contact_first_name,omitempty" validate:"required_if=CustomerType Business"`
	PrimaryContactLastName  string `json:"primary_contact_last_name,omitempty" validate:"required_if=CustomerType Business"`
	PrimaryContactTitle     string `json:"primary_contact_title,omitempty"`
}

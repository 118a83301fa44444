package sale

import (
	"time"

	"github.com/google/uuid"
)

// SaleTransaction is the terminal sale of a vehicle; its existence is the
// sole marker that the vehicle is sold.
type SaleTransaction struct {
	VIN        string    `json:"vin"`
	CustomerID uuid.UUID `json:"customer_id"`
	Username   string    `json:"username"`
	SalePrice  float64   `json:"sale_price"`
	SoldOn     time.Time `json:"sold_on"`
}

// RecordSaleRequest is the payload for selling a vehicle to a customer,
// identified by SSN or tax id.
type RecordSaleRequest struct {
	VIN             string  `json:"vin" validate:"required"`
	BuyerIdentifier string  `json:"buyer_identifier" validate:"required"`
	SalePrice       float64 `json:"sale_price" validate:"required,gt=0"`
	SaleDate        string  `json:"sale_date" validate:"required,datetime=2006-01-02"`
}

// TransactionDetails pairs the external customer's contact information with
// the employee who handled the transaction, for the provenance views.
type TransactionDetails struct {
	CustomerEmail     string `json:"customer_email,omitempty"`
	CustomerPhone     string `json:"customer_phone"`
	CustomerAddress   string `json:"customer_address"`
	EmployeeFirstName string `json:"employee_first_name"`
	EmployeeLastName  string `json:"employee_last_name"`
	EmployeeUsername  string `json:"employee_username"`
}

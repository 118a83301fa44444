package parts

import "fmt"

// PartStatus is the lifecycle state of a part line item. It only ever
// advances: Ordered to Received or Installed, Received to Installed,
// and Installed is terminal.
type PartStatus string

const (
	StatusOrdered   PartStatus = "Ordered"
	StatusReceived  PartStatus = "Received"
	StatusInstalled PartStatus = "Installed"
)

var validTransitions = map[PartStatus][]PartStatus{
	StatusOrdered:   {StatusReceived, StatusInstalled},
	StatusReceived:  {StatusInstalled},
	StatusInstalled: {},
}

// ParseStatus maps a stored or transmitted status string onto a PartStatus.
func ParseStatus(s string) (PartStatus, error) {
	switch PartStatus(s) {
	case StatusOrdered, StatusReceived, StatusInstalled:
		return PartStatus(s), nil
	}
	return "", fmt.Errorf("unknown part status %q", s)
}

// CanTransitionTo reports whether next is a legal advance from s.
func (s PartStatus) CanTransitionTo(next PartStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PartsOrder is a vendor purchase order for one vehicle.
type PartsOrder struct {
	OrderNumber string  `json:"order_number"`
	VIN         string  `json:"vin"`
	VendorName  string  `json:"vendor_name"`
	TotalCost   float64 `json:"total_cost"`
	Parts       []*Part `json:"parts,omitempty"`
}

// Part is a single line item within a parts order.
type Part struct {
	OrderNumber      string     `json:"order_number"`
	VendorPartNumber string     `json:"vendor_part_number"`
	Description      string     `json:"description"`
	Quantity         int        `json:"quantity"`
	UnitPrice        float64    `json:"unit_price"`
	Status           PartStatus `json:"status"`
}

// OrderLine is a part joined with its order and vendor, as shown on the
// vehicle details page.
type OrderLine struct {
	OrderNumber      string     `json:"order_number"`
	VendorName       string     `json:"vendor_name"`
	VendorPartNumber string     `json:"vendor_part_number"`
	Description      string     `json:"description"`
	Quantity         int        `json:"quantity"`
	UnitPrice        float64    `json:"unit_price"`
	Status           PartStatus `json:"status"`
}

// PartRequest is one line of an AddOrderRequest.
type PartRequest struct {
	VendorPartNumber string  `json:"vendor_part_number" validate:"required"`
	Description      string  `json:"description,omitempty"`
	Quantity         int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice        float64 `json:"unit_price" validate:"required,gt=0"`
	Status           string  `json:"status,omitempty" validate:"omitempty,oneof=Ordered Received Installed"`
}

// AddOrderRequest is the payload for placing a parts order against a vehicle.
type AddOrderRequest struct {
	VendorName string        `json:"vendor_name" validate:"required"`
	Parts      []PartRequest `json:"parts" validate:"required,min=1,dive"`
}

// UpdateStatusRequest is the payload for advancing a part's status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Ordered Received Installed"`
}

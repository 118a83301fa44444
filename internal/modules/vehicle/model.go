package vehicle

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Conditions a vehicle can be graded at intake.
const (
	ConditionExcellent = "Excellent"
	ConditionVeryGood  = "Very Good"
	ConditionGood      = "Good"
	ConditionFair      = "Fair"
)

// FuelTypes offered in the intake and search forms.
var FuelTypes = []string{"Gas", "Diesel", "Natural Gas", "Hybrid", "Plugin Hybrid", "Fuel Cell"}

// Vehicle is a unit of dealership inventory, keyed by VIN.
type Vehicle struct {
	VIN          string   `json:"vin"`
	VehicleType  string   `json:"vehicle_type"`
	Manufacturer string   `json:"manufacturer"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	FuelType     string   `json:"fuel_type"`
	Horsepower   int      `json:"horsepower"`
	Condition    string   `json:"condition"`
	Description  string   `json:"description"`
	Colors       []string `json:"colors"`
}

// PurchaseInfo is the originating acquisition recorded together with the
// vehicle; a vehicle never exists without one.
type PurchaseInfo struct {
	CustomerID    uuid.UUID
	Username      string
	PurchasePrice float64
	PurchasedOn   time.Time
}

// IntakeRequest is the payload for buying a vehicle into inventory.
type IntakeRequest struct {
	VIN              string   `json:"vin" validate:"required"`
	VehicleType      string   `json:"vehicle_type" validate:"required"`
	Manufacturer     string   `json:"manufacturer" validate:"required"`
	Model            string   `json:"model" validate:"required"`
	Year             int      `json:"year" validate:"required,gte=1900"`
	FuelType         string   `json:"fuel_type" validate:"required"`
	Horsepower       int      `json:"horsepower" validate:"required,gt=0"`
	Condition        string   `json:"condition" validate:"required,oneof=Excellent 'Very Good' Good Fair"`
	Description      string   `json:"description,omitempty"`
	Colors           []string `json:"colors" validate:"required,min=1,dive,required"`
	SellerIdentifier string   `json:"seller_identifier" validate:"required"`
	PurchasePrice    float64  `json:"purchase_price" validate:"required,gt=0"`
	PurchaseDate     string   `json:"purchase_date" validate:"required,datetime=2006-01-02"`
}

// SearchRow is one vehicle listing with every column the widest role can
// see. Projection nils out what a narrower role may not.
type SearchRow struct {
	VIN            string     `json:"vin"`
	VehicleType    string     `json:"vehicle_type"`
	Manufacturer   string     `json:"manufacturer"`
	Model          string     `json:"model"`
	Year           int        `json:"year"`
	FuelType       string     `json:"fuel_type"`
	Colors         string     `json:"colors"`
	Horsepower     int        `json:"horsepower"`
	SalePrice      *float64   `json:"sale_price,omitempty"`
	PurchasePrice  *float64   `json:"purchase_price,omitempty"`
	PurchaseDate   *time.Time `json:"purchase_date,omitempty"`
	TotalPartsCost *float64   `json:"total_parts_cost,omitempty"`
	Description    *string    `json:"description,omitempty"`
}

// DetailsRow is the single-vehicle view, which adds the sale date.
type DetailsRow struct {
	SearchRow
	SaleDate *time.Time `json:"sale_date,omitempty"`
}

// SaleCandidate describes an unsold vehicle being offered to a buyer.
type SaleCandidate struct {
	VIN            string    `json:"vin"`
	VehicleType    string    `json:"vehicle_type"`
	Manufacturer   string    `json:"manufacturer"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	FuelType       string    `json:"fuel_type"`
	Colors         string    `json:"colors"`
	Horsepower     int       `json:"horsepower"`
	Condition      string    `json:"condition"`
	Description    string    `json:"description"`
	PurchasePrice  float64   `json:"purchase_price"`
	PurchaseDate   time.Time `json:"purchase_date"`
	TotalPartsCost float64   `json:"total_parts_cost"`
	AskingPrice    float64   `json:"asking_price"`
}

// Counts summarizes the lot for the landing page.
type Counts struct {
	AvailableForSale int `json:"available_for_sale"`
	PendingParts     int `json:"pending_parts"`
}

// FilterOptions feeds the search form dropdowns.
type FilterOptions struct {
	VehicleTypes  []string `json:"vehicle_types"`
	Manufacturers []string `json:"manufacturers"`
	Colors        []string `json:"colors"`
	Years         []int    `json:"years"`
	FuelTypes     []string `json:"fuel_types"`
}

// AskingPrice is the cost-plus price quoted for an unsold vehicle.
func AskingPrice(purchasePrice, totalPartsCost float64) float64 {
	return math.Round((1.25*purchasePrice+1.1*totalPartsCost)*100) / 100
}

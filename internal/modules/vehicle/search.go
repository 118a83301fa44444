package vehicle

import (
	"fmt"
	"strings"

	"github.com/northavenue/dealership-backend/internal/modules/user"
)

// FilterAny is the dropdown sentinel meaning "no filter".
const FilterAny = "Any"

// SearchFilter is the declarative search input; zero or sentinel values mean
// the corresponding predicate is omitted entirely.
type SearchFilter struct {
	VehicleType   string
	Manufacturer  string
	Year          int
	FuelType      string
	Color         string
	Keyword       string
	VIN           string
	VehicleStatus string // "Sold" or "Unsold"; honored for Manager/Owner only
}

const (
	predUnsold = `st.sale_price IS NULL`
	predSold   = `st.sale_price IS NOT NULL`
	predAll    = `1=1`

	predNoPendingParts = `NOT EXISTS (
		SELECT 1 FROM parts p
		JOIN parts_orders po_sub ON po_sub.order_number = p.order_number
		WHERE po_sub.vin = v.vin AND p.status <> 'Installed'
	)`
)

// searchPolicy fixes, per role, which rows are visible and which columns
// are projected. It is consulted by the one search path; roles never get
// their own query functions.
type searchPolicy struct {
	visibility   string
	statusFilter bool // may narrow to Sold/Unsold
	salePrice    bool // computed/recorded sale price column
	costs        bool // purchase price and parts cost columns
	provenance   bool // purchase date and description columns
}

var searchPolicies = map[user.Role]searchPolicy{
	user.RolePublic:         {visibility: predUnsold + " AND " + predNoPendingParts, salePrice: true},
	user.RoleSalesperson:    {visibility: predUnsold + " AND " + predNoPendingParts, salePrice: true},
	user.RoleInventoryClerk: {visibility: predUnsold, costs: true},
	user.RoleManager:        {visibility: predAll, statusFilter: true, salePrice: true, costs: true, provenance: true},
	user.RoleOwner:          {visibility: predAll, statusFilter: true, salePrice: true, costs: true, provenance: true},
}

// policyFor falls back to the Public policy for any role it does not know.
func policyFor(role user.Role) searchPolicy {
	if p, ok := searchPolicies[role]; ok {
		return p
	}
	return searchPolicies[user.RolePublic]
}

const searchSelect = `
	SELECT
		v.vin,
		v.vehicle_type,
		v.manufacturer_name,
		v.model_name,
		v.year,
		v.fuel_type,
		string_agg(DISTINCT vc.color_name, ', ') AS colors,
		v.horsepower,
		CASE
			WHEN st.sale_price IS NOT NULL THEN st.sale_price
			ELSE ROUND((1.25 * pt.purchase_price) + (1.1 * COALESCE(po.total_parts_cost, 0)), 2)
		END AS sale_price,
		pt.purchase_price,
		pt.purchased_on,
		ROUND(COALESCE(po.total_parts_cost, 0), 2) AS total_parts_cost,
		v.description,
		st.sold_on
	FROM vehicles v
	LEFT JOIN vehicle_colors vc ON vc.vin = v.vin
	LEFT JOIN sale_transactions st ON st.vin = v.vin
	LEFT JOIN purchase_transactions pt ON pt.vin = v.vin
	LEFT JOIN (
		SELECT vin, SUM(total_cost) AS total_parts_cost
		FROM parts_orders
		GROUP BY vin
	) po ON po.vin = v.vin
`

const searchGroupOrder = `
	GROUP BY v.vin, v.vehicle_type, v.manufacturer_name, v.model_name, v.year,
		v.fuel_type, v.horsepower, st.sale_price, pt.purchase_price, pt.purchased_on,
		po.total_parts_cost, v.description, st.sold_on
	ORDER BY v.vin ASC
`

// buildSearchQuery renders the filter and role policy into one parameterized
// statement. Caller-supplied values travel exclusively through args.
func buildSearchQuery(f SearchFilter, role user.Role) (string, []interface{}) {
	p := policyFor(role)

	seed := p.visibility
	if p.statusFilter {
		switch f.VehicleStatus {
		case "Sold":
			seed = predSold
		case "Unsold":
			seed = predUnsold
		}
	}

	where := []string{seed}
	var args []interface{}
	add := func(cond string, val interface{}) {
		args = append(args, val)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.VehicleType != "" && f.VehicleType != FilterAny {
		add("v.vehicle_type = $%d", f.VehicleType)
	}
	if f.Manufacturer != "" && f.Manufacturer != FilterAny {
		add("v.manufacturer_name = $%d", f.Manufacturer)
	}
	if f.Year != 0 {
		add("v.year = $%d", f.Year)
	}
	if f.FuelType != "" && f.FuelType != FilterAny {
		add("v.fuel_type = $%d", f.FuelType)
	}
	if f.Color != "" && f.Color != FilterAny {
		add(`EXISTS (
			SELECT 1 FROM vehicle_colors fc
			WHERE fc.vin = v.vin AND fc.color_name = $%d
		)`, f.Color)
	}
	if f.Keyword != "" {
		args = append(args, "%"+f.Keyword+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(`(
			v.manufacturer_name ILIKE $%d OR
			v.model_name ILIKE $%d OR
			CAST(v.year AS TEXT) LIKE $%d OR
			v.description ILIKE $%d
		)`, n, n, n, n))
	}
	if f.VIN != "" {
		add("v.vin = $%d", f.VIN)
	}

	query := searchSelect + "\tWHERE " + strings.Join(where, "\n\t\tAND ") + searchGroupOrder
	return query, args
}

// project strips the columns the role's policy does not grant. The sale
// date only ever reaches roles with provenance access.
func (p searchPolicy) project(r *SearchRow) {
	if !p.salePrice {
		r.SalePrice = nil
	}
	if !p.costs {
		r.PurchasePrice = nil
		r.TotalPartsCost = nil
	}
	if !p.provenance {
		r.PurchaseDate = nil
		r.Description = nil
	}
}

// projectDetails is looser than the listing projection: the single-vehicle
// view shows the description and the (computed or recorded) sale price to
// every role, gating only the cost breakdown and transaction dates.
func (p searchPolicy) projectDetails(d *DetailsRow) {
	if !p.costs {
		d.PurchasePrice = nil
		d.TotalPartsCost = nil
		d.PurchaseDate = nil
		d.SaleDate = nil
	}
}

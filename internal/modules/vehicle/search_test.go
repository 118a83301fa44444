package vehicle

import (
	"strings"
	"testing"
	"time"

	"github.com/northavenue/dealership-backend/internal/modules/user"
)

func TestBuildSearchQueryVisibilityByRole(t *testing.T) {
	cases := []struct {
		name        string
		role        user.Role
		wantClause  string
		wantPending bool
	}{
		{"public sees ready unsold only", user.RolePublic, "st.sale_price IS NULL", true},
		{"salesperson sees ready unsold only", user.RoleSalesperson, "st.sale_price IS NULL", true},
		{"clerk sees all unsold", user.RoleInventoryClerk, "st.sale_price IS NULL", false},
		{"manager sees everything", user.RoleManager, "1=1", false},
		{"owner sees everything", user.RoleOwner, "1=1", false},
		{"unknown role degrades to public", user.Role("Intern"), "st.sale_price IS NULL", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			query, args := buildSearchQuery(SearchFilter{}, tc.role)
			if len(args) != 0 {
				t.Fatalf("empty filter produced args %v", args)
			}
			if !strings.Contains(query, tc.wantClause) {
				t.Fatalf("query missing visibility clause %q:\n%s", tc.wantClause, query)
			}
			hasPending := strings.Contains(query, "p.status <> 'Installed'")
			if hasPending != tc.wantPending {
				t.Fatalf("pending-parts exclusion = %v, want %v", hasPending, tc.wantPending)
			}
		})
	}
}

// whereClause isolates everything from WHERE onward so assertions cannot
// accidentally match the CASE expression in the SELECT list, which mentions
// st.sale_price in every query.
func whereClause(t *testing.T, query string) string {
	t.Helper()
	i := strings.Index(query, "WHERE")
	if i < 0 {
		t.Fatalf("query has no WHERE clause:\n%s", query)
	}
	return query[i:]
}

func TestBuildSearchQueryStatusNarrowing(t *testing.T) {
	query, _ := buildSearchQuery(SearchFilter{VehicleStatus: "Sold"}, user.RoleOwner)
	if !strings.Contains(whereClause(t, query), "st.sale_price IS NOT NULL") {
		t.Fatalf("owner sold narrowing missing:\n%s", query)
	}

	query, _ = buildSearchQuery(SearchFilter{VehicleStatus: "Unsold"}, user.RoleManager)
	if !strings.Contains(whereClause(t, query), "st.sale_price IS NULL") {
		t.Fatalf("manager unsold narrowing missing:\n%s", query)
	}

	// The narrowing is a manager and owner capability only.
	query, _ = buildSearchQuery(SearchFilter{VehicleStatus: "Sold"}, user.RoleInventoryClerk)
	where := whereClause(t, query)
	if strings.Contains(where, "st.sale_price IS NOT NULL") {
		t.Fatalf("clerk must not narrow by status:\n%s", where)
	}
	if !strings.Contains(where, "st.sale_price IS NULL") {
		t.Fatalf("clerk visibility predicate missing:\n%s", where)
	}
}

func TestBuildSearchQuerySkipsAnySentinel(t *testing.T) {
	f := SearchFilter{
		VehicleType:  FilterAny,
		Manufacturer: FilterAny,
		FuelType:     FilterAny,
		Color:        FilterAny,
	}
	query, args := buildSearchQuery(f, user.RolePublic)
	if len(args) != 0 {
		t.Fatalf("Any sentinels produced args %v", args)
	}
	if strings.Contains(query, "$1") {
		t.Fatalf("Any sentinels produced placeholders:\n%s", query)
	}
}

func TestBuildSearchQueryPlaceholdersMatchArgs(t *testing.T) {
	f := SearchFilter{
		VehicleType:  "SUV",
		Manufacturer: "Honda",
		Year:         2019,
		FuelType:     "Hybrid",
		Color:        "Blue",
	}
	query, args := buildSearchQuery(f, user.RoleManager)

	want := []interface{}{"SUV", "Honda", 2019, "Hybrid", "Blue"}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("args[%d] = %v, want %v", i, args[i], want[i])
		}
	}
	for _, placeholder := range []string{"$1", "$2", "$3", "$4", "$5"} {
		if !strings.Contains(query, placeholder) {
			t.Fatalf("query missing %s:\n%s", placeholder, query)
		}
	}
	if strings.Contains(query, "$6") {
		t.Fatalf("query has stray placeholder:\n%s", query)
	}
}

func TestBuildSearchQueryKeywordUsesOneArg(t *testing.T) {
	query, args := buildSearchQuery(SearchFilter{Keyword: "civic"}, user.RolePublic)
	if len(args) != 1 {
		t.Fatalf("keyword should bind one arg, got %v", args)
	}
	if args[0] != "%civic%" {
		t.Fatalf("keyword arg = %v, want %%civic%%", args[0])
	}
	if n := strings.Count(query, "$1"); n != 4 {
		t.Fatalf("keyword placeholder reused %d times, want 4", n)
	}
}

func TestBuildSearchQueryVINExactMatch(t *testing.T) {
	query, args := buildSearchQuery(SearchFilter{VIN: "1HGCM82633A004352"}, user.RoleSalesperson)
	if len(args) != 1 || args[0] != "1HGCM82633A004352" {
		t.Fatalf("args = %v", args)
	}
	if !strings.Contains(query, "v.vin = $1") {
		t.Fatalf("VIN predicate missing:\n%s", query)
	}
}

func sampleRow() *SearchRow {
	sale := 13050.00
	purchase := 10000.00
	partsCost := 500.00
	purchased := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	desc := "one owner, clean title"
	return &SearchRow{
		VIN:            "1HGCM82633A004352",
		VehicleType:    "Sedan",
		Manufacturer:   "Honda",
		Model:          "Accord",
		Year:           2019,
		FuelType:       "Gas",
		Colors:         "Blue, Silver",
		Horsepower:     190,
		SalePrice:      &sale,
		PurchasePrice:  &purchase,
		PurchaseDate:   &purchased,
		TotalPartsCost: &partsCost,
		Description:    &desc,
	}
}

func TestProjectByRole(t *testing.T) {
	cases := []struct {
		role       user.Role
		salePrice  bool
		costs      bool
		provenance bool
	}{
		{user.RolePublic, true, false, false},
		{user.RoleSalesperson, true, false, false},
		{user.RoleInventoryClerk, false, true, false},
		{user.RoleManager, true, true, true},
		{user.RoleOwner, true, true, true},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			row := sampleRow()
			policyFor(tc.role).project(row)

			if (row.SalePrice != nil) != tc.salePrice {
				t.Errorf("SalePrice visible = %v, want %v", row.SalePrice != nil, tc.salePrice)
			}
			if (row.PurchasePrice != nil) != tc.costs {
				t.Errorf("PurchasePrice visible = %v, want %v", row.PurchasePrice != nil, tc.costs)
			}
			if (row.TotalPartsCost != nil) != tc.costs {
				t.Errorf("TotalPartsCost visible = %v, want %v", row.TotalPartsCost != nil, tc.costs)
			}
			if (row.PurchaseDate != nil) != tc.provenance {
				t.Errorf("PurchaseDate visible = %v, want %v", row.PurchaseDate != nil, tc.provenance)
			}
			if (row.Description != nil) != tc.provenance {
				t.Errorf("Description visible = %v, want %v", row.Description != nil, tc.provenance)
			}
		})
	}
}

func TestProjectDetailsKeepsDescriptionAndPrice(t *testing.T) {
	sold := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d := &DetailsRow{SearchRow: *sampleRow(), SaleDate: &sold}
	policyFor(user.RolePublic).projectDetails(d)

	if d.Description == nil || d.SalePrice == nil {
		t.Fatal("details view shows description and sale price to every role")
	}
	if d.PurchasePrice != nil || d.TotalPartsCost != nil || d.PurchaseDate != nil || d.SaleDate != nil {
		t.Fatal("cost breakdown and dates must not reach the public details view")
	}

	d = &DetailsRow{SearchRow: *sampleRow(), SaleDate: &sold}
	policyFor(user.RoleOwner).projectDetails(d)
	if d.PurchasePrice == nil || d.SaleDate == nil {
		t.Fatal("owner details view keeps the full breakdown")
	}
}

func TestAskingPrice(t *testing.T) {
	cases := []struct {
		name          string
		purchasePrice float64
		partsCost     float64
		want          float64
	}{
		{"purchase and parts", 10000, 500, 13050.00},
		{"no parts", 8000, 0, 10000.00},
		{"rounds half up", 999.99, 0, 1249.99},
		{"small parts cost", 5000, 33.33, 6286.66},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AskingPrice(tc.purchasePrice, tc.partsCost); got != tc.want {
				t.Fatalf("AskingPrice(%v, %v) = %v, want %v", tc.purchasePrice, tc.partsCost, got, tc.want)
			}
		})
	}
}

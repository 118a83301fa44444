package sale

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/northavenue/dealership-backend/internal/apperr"
	"github.com/northavenue/dealership-backend/internal/modules/customer"
)

type fakeRepo struct {
	sales map[string]*SaleTransaction // by VIN
}

func (r *fakeRepo) CreateSale(ctx context.Context, s *SaleTransaction) error {
	if _, exists := r.sales[s.VIN]; exists {
		return apperr.Rejected("vehicle %s could not be sold", s.VIN)
	}
	r.sales[s.VIN] = s
	return nil
}

func (r *fakeRepo) GetPurchaseDetails(ctx context.Context, vin string) (*TransactionDetails, error) {
	return nil, apperr.NotFound("no purchase recorded for %s", vin)
}

func (r *fakeRepo) GetSaleDetails(ctx context.Context, vin string) (*TransactionDetails, error) {
	return nil, apperr.NotFound("no sale recorded for %s", vin)
}

type fakeCustomers struct {
	ids map[string]uuid.UUID
}

func (r *fakeCustomers) CreateIndividual(ctx context.Context, c *customer.Customer, d *customer.IndividualDetails) error {
	return nil
}

func (r *fakeCustomers) CreateBusiness(ctx context.Context, c *customer.Customer, d *customer.BusinessDetails) error {
	return nil
}

func (r *fakeCustomers) ListIdentifiers(ctx context.Context) ([]string, error) { return nil, nil }

func (r *fakeCustomers) ResolveID(ctx context.Context, identifier string) (uuid.UUID, error) {
	id, ok := r.ids[identifier]
	if !ok {
		return uuid.Nil, apperr.NotFound("no customer with identifier %s", identifier)
	}
	return id, nil
}

func TestRecordSaleResolvesBuyer(t *testing.T) {
	buyerID := uuid.New()
	repo := &fakeRepo{sales: make(map[string]*SaleTransaction)}
	svc := NewService(repo, &fakeCustomers{ids: map[string]uuid.UUID{"87-1234567": buyerID}})

	tx, err := svc.RecordSale(context.Background(), RecordSaleRequest{
		VIN:             "1HGCM82633A004352",
		BuyerIdentifier: "87-1234567",
		SalePrice:       13050.00,
		SaleDate:        "2025-06-01",
	}, "sales1")
	if err != nil {
		t.Fatal(err)
	}

	if tx.CustomerID != buyerID {
		t.Fatalf("buyer = %v, want %v", tx.CustomerID, buyerID)
	}
	if tx.Username != "sales1" {
		t.Fatalf("sale attributed to %q, want sales1", tx.Username)
	}
	if got := tx.SoldOn.Format("2006-01-02"); got != "2025-06-01" {
		t.Fatalf("sale date = %s", got)
	}
}

func TestRecordSaleRejectsUnknownBuyer(t *testing.T) {
	repo := &fakeRepo{sales: make(map[string]*SaleTransaction)}
	svc := NewService(repo, &fakeCustomers{})

	_, err := svc.RecordSale(context.Background(), RecordSaleRequest{
		VIN:             "1HGCM82633A004352",
		BuyerIdentifier: "000-00-0000",
		SalePrice:       13050.00,
		SaleDate:        "2025-06-01",
	}, "sales1")
	if !apperr.IsRejected(err) {
		t.Fatalf("expected rejection, got %v", err)
	}
	if len(repo.sales) != 0 {
		t.Fatal("sale must not be stored when the buyer is unknown")
	}
}

func TestRecordSaleRejectsSecondSale(t *testing.T) {
	buyerID := uuid.New()
	repo := &fakeRepo{sales: make(map[string]*SaleTransaction)}
	svc := NewService(repo, &fakeCustomers{ids: map[string]uuid.UUID{"87-1234567": buyerID}})

	req := RecordSaleRequest{
		VIN:             "1HGCM82633A004352",
		BuyerIdentifier: "87-1234567",
		SalePrice:       13050.00,
		SaleDate:        "2025-06-01",
	}
	if _, err := svc.RecordSale(context.Background(), req, "sales1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordSale(context.Background(), req, "sales2"); !apperr.IsRejected(err) {
		t.Fatalf("expected rejection for an already-sold vehicle, got %v", err)
	}
}

func TestRecordSaleInvalidDate(t *testing.T) {
	buyerID := uuid.New()
	repo := &fakeRepo{sales: make(map[string]*SaleTransaction)}
	svc := NewService(repo, &fakeCustomers{ids: map[string]uuid.UUID{"87-1234567": buyerID}})

	_, err := svc.RecordSale(context.Background(), RecordSaleRequest{
		VIN:             "1HGCM82633A004352",
		BuyerIdentifier: "87-1234567",
		SalePrice:       13050.00,
		SaleDate:        "06/01/2025",
	}, "sales1")
	if err == nil {
		t.Fatal("malformed sale date should fail")
	}
	if len(repo.sales) != 0 {
		t.Fatal("sale must not be stored with a malformed date")
	}
}

package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/northavenue/dealership-backend/internal/apperr"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL customer repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateIndividual(ctx context.Context, c *Customer, d *IndividualDetails) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertCustomer(ctx, tx, c); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO individual_customers
		  (customer_id, first_name, last_name, social_security_number)
		VALUES ($1,$2,$3,$4)`,
		c.ID, d.FirstName, d.LastName, d.SocialSecurityNumber)
	if err != nil {
		return apperr.FromDB(err, fmt.Sprintf("customer with SSN %s already exists", d.SocialSecurityNumber))
	}

	return tx.Commit()
}

func (r *postgresRepo) CreateBusiness(ctx context.Context, c *Customer, d *BusinessDetails) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertCustomer(ctx, tx, c); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO business_customers
		  (customer_id, business_name, tax_identification_number,
		   primary_contact_first_name, primary_contact_last_name, primary_contact_title)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		c.ID, d.BusinessName, d.TaxIdentificationNumber,
		d.PrimaryContactFirstName, d.PrimaryContactLastName, d.PrimaryContactTitle)
	if err != nil {
		return apperr.FromDB(err, fmt.Sprintf("customer with tax id %s already exists", d.TaxIdentificationNumber))
	}

	return tx.Commit()
}

func insertCustomer(ctx context.Context, tx *sql.Tx, c *Customer) error {
	var email interface{}
	if c.Email != "" {
		email = c.Email
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO customers
		  (id, email, phone_number, address_street, address_city, address_state, address_postal_code)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		c.ID, email, c.PhoneNumber, c.AddressStreet, c.AddressCity, c.AddressState, c.AddressPostalCode)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListIdentifiers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT social_security_number FROM individual_customers
		UNION
		SELECT tax_identification_number FROM business_customers
		ORDER BY 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *postgresRepo) ResolveID(ctx context.Context, identifier string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, `
		SELECT customer_id FROM individual_customers WHERE social_security_number = $1
		UNION
		SELECT customer_id FROM business_customers WHERE tax_identification_number = $1`,
		identifier).Scan(&id)
	if err == sql.ErrNoRows {
		return uuid.Nil, apperr.NotFound("no customer matches %s", identifier)
	}
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

package repositories

import (
	"context"

	"finboard/internal/models"
)

const customerFilter = `
		customers.name ILIKE '%' || $1 || '%' OR
		customers.email ILIKE '%' || $1 || '%'`

type CustomerRepository interface {
	Names(ctx context.Context) ([]models.CustomerField, error)
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]models.CustomerSummary, error)
	CountFiltered(ctx context.Context, query string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type customerRepo struct {
	db Database
}

func NewCustomerRepo(db Database) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Names(ctx context.Context) ([]models.CustomerField, error) {
	query := `
		SELECT id, name
		FROM customers
		ORDER BY name ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.CustomerField
	for rows.Next() {
		customer := models.CustomerField{}
		if err := rows.Scan(&customer.ID, &customer.Name); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

// ListFiltered aggregates each customer's invoices: pending and paid cent
// sums plus a true invoice row count.
func (r *customerRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]models.CustomerSummary, error) {
	sql := `
		SELECT
			customers.id,
			customers.name,
			customers.email,
			customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
			COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
		FROM customers
		LEFT JOIN invoices ON customers.id = invoices.customer_id
		WHERE` + customerFilter + `
		GROUP BY customers.id, customers.name, customers.email, customers.image_url
		ORDER BY customers.name ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, sql, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.CustomerSummary
	for rows.Next() {
		customer := models.CustomerSummary{}
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.ImageURL, &customer.TotalInvoices, &customer.TotalPending, &customer.TotalPaid); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (r *customerRepo) CountFiltered(ctx context.Context, query string) (int64, error) {
	sql := `
		SELECT COUNT(*)
		FROM customers
		WHERE` + customerFilter + `
	`
	var count int64
	if err := r.db.QueryRow(ctx, sql, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *customerRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

package repositories

import (
	"context"

	"finboard/internal/common"
	"finboard/internal/models"

	"github.com/google/uuid"
)

// invoiceFilter matches a free-text query against the joined invoice and
// customer columns, case-insensitively, as a substring. The term is always
// bound as a parameter, never interpolated.
const invoiceFilter = `
		customers.name ILIKE '%' || $1 || '%' OR
		customers.email ILIKE '%' || $1 || '%' OR
		invoices.amount::text ILIKE '%' || $1 || '%' OR
		invoices.date::text ILIKE '%' || $1 || '%' OR
		invoices.status ILIKE '%' || $1 || '%'`

type InvoiceRepository interface {
	Latest(ctx context.Context, limit int) ([]models.LatestInvoiceRaw, error)
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]models.InvoiceRow, error)
	CountFiltered(ctx context.Context, query string) (int64, error)
	Count(ctx context.Context) (int64, error)
	StatusTotals(ctx context.Context) (paid, pending int64, err error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.InvoiceForm, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*models.InvoiceRow, error)
	Insert(ctx context.Context, invoice *models.Invoice) error
	Update(ctx context.Context, invoice *models.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceRepo struct {
	db Database
}

func NewInvoiceRepo(db Database) InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Latest(ctx context.Context, limit int) ([]models.LatestInvoiceRaw, error) {
	query := `
		SELECT invoices.id, customers.name, customers.image_url, customers.email, invoices.amount
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []models.LatestInvoiceRaw
	for rows.Next() {
		invoice := models.LatestInvoiceRaw{}
		if err := rows.Scan(&invoice.ID, &invoice.Name, &invoice.ImageURL, &invoice.Email, &invoice.Amount); err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]models.InvoiceRow, error) {
	sql := `
		SELECT
			invoices.id,
			invoices.amount,
			invoices.date,
			invoices.status,
			customers.name,
			customers.email,
			customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE` + invoiceFilter + `
		ORDER BY invoices.date DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, sql, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []models.InvoiceRow
	for rows.Next() {
		invoice := models.InvoiceRow{}
		if err := rows.Scan(&invoice.ID, &invoice.Amount, &invoice.Date, &invoice.Status, &invoice.Name, &invoice.Email, &invoice.ImageURL); err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepo) CountFiltered(ctx context.Context, query string) (int64, error) {
	sql := `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE` + invoiceFilter + `
	`
	var count int64
	if err := r.db.QueryRow(ctx, sql, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *invoiceRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// StatusTotals sums paid and pending amounts in a single pass over invoices.
func (r *invoiceRepo) StatusTotals(ctx context.Context) (int64, int64, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending
		FROM invoices
	`
	var paid, pending int64
	if err := r.db.QueryRow(ctx, query).Scan(&paid, &pending); err != nil {
		return 0, 0, err
	}
	return paid, pending, nil
}

// GetByID returns the invoice in form shape, with the stored cents converted
// back to decimal units for pre-population.
func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.InvoiceForm, error) {
	query := `
		SELECT id, customer_id, amount, status
		FROM invoices
		WHERE id = $1
	`
	form := &models.InvoiceForm{}
	var cents int64
	if err := r.db.QueryRow(ctx, query, id).Scan(&form.ID, &form.CustomerID, &cents, &form.Status); err != nil {
		return nil, err
	}
	form.Amount = common.CentsToAmount(cents)
	return form, nil
}

func (r *invoiceRepo) GetDetail(ctx context.Context, id uuid.UUID) (*models.InvoiceRow, error) {
	query := `
		SELECT invoices.id, invoices.amount, invoices.date, invoices.status,
			customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE invoices.id = $1
	`
	row := &models.InvoiceRow{}
	if err := r.db.QueryRow(ctx, query, id).Scan(&row.ID, &row.Amount, &row.Date, &row.Status, &row.Name, &row.Email, &row.ImageURL); err != nil {
		return nil, err
	}
	return row, nil
}

func (r *invoiceRepo) Insert(ctx context.Context, invoice *models.Invoice) error {
	query := `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date)
	return err
}

func (r *invoiceRepo) Update(ctx context.Context, invoice *models.Invoice) error {
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.ID)
	return err
}

func (r *invoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM invoices WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice statuses form a closed enum.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Invoice is the persisted record. Amount is stored in integer cents.
type Invoice struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CustomerID uuid.UUID `json:"customer_id" db:"customer_id"`
	Amount     int64     `json:"amount" db:"amount"`
	Status     string    `json:"status" db:"status"`
	Date       time.Time `json:"date" db:"date"`
}

// InvoiceRow is a listing row joined with its customer.
type InvoiceRow struct {
	ID       uuid.UUID `json:"id"`
	Amount   int64     `json:"amount"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
}

// LatestInvoiceRaw is the most-recent-invoices row as read from the store.
type LatestInvoiceRaw struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url"`
	Email    string    `json:"email"`
	Amount   int64     `json:"amount"`
}

// LatestInvoice is LatestInvoiceRaw with the amount formatted for display.
type LatestInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url"`
	Email    string    `json:"email"`
	Amount   string    `json:"amount"`
}

// InvoiceForm pre-populates the edit form; Amount is in decimal units
// (stored cents divided by 100).
type InvoiceForm struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
}

// InvoiceListing is one page of the filtered invoices table.
type InvoiceListing struct {
	Invoices   []InvoiceRow `json:"invoices"`
	TotalPages int          `json:"total_pages"`
}

// InvoiceEditData bundles everything the edit form needs.
type InvoiceEditData struct {
	Invoice   InvoiceForm     `json:"invoice"`
	Customers []CustomerField `json:"customers"`
}

package models

import "github.com/google/uuid"

type Customer struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Email    string    `json:"email" db:"email"`
	ImageURL string    `json:"image_url" db:"image_url"`
}

// CustomerField is the id/name pair used to populate customer selects.
type CustomerField struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CustomerSummary aggregates a customer's invoices as read from the store.
// TotalInvoices is a row count; TotalPending and TotalPaid are cent sums.
type CustomerSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  int64     `json:"total_pending"`
	TotalPaid     int64     `json:"total_paid"`
}

// CustomerTableRow is CustomerSummary with the sums formatted for display.
type CustomerTableRow struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  string    `json:"total_pending"`
	TotalPaid     string    `json:"total_paid"`
}

// CustomerListing is one page of the filtered customers table.
type CustomerListing struct {
	Customers  []CustomerTableRow `json:"customers"`
	TotalPages int                `json:"total_pages"`
}

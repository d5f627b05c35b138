package models

// DashboardCards carries the aggregate card values; the monetary totals are
// formatted display strings.
type DashboardCards struct {
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	NumberOfCustomers    int64  `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

// DashboardOverview is the joined result of the three independent
// dashboard reads.
type DashboardOverview struct {
	Revenue        []Revenue       `json:"revenue"`
	LatestInvoices []LatestInvoice `json:"latest_invoices"`
	Cards          DashboardCards  `json:"cards"`
}

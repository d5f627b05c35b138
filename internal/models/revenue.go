package models

// Revenue is read-only reference data for the dashboard chart.
type Revenue struct {
	Month   string `json:"month" db:"month"`
	Revenue int64  `json:"revenue" db:"revenue"`
}

package repositories

import (
	"context"

	"finboard/internal/models"
)

type RevenueRepository interface {
	List(ctx context.Context) ([]models.Revenue, error)
}

type revenueRepo struct {
	db Database
}

func NewRevenueRepo(db Database) RevenueRepository {
	return &revenueRepo{db: db}
}

func (r *revenueRepo) List(ctx context.Context) ([]models.Revenue, error) {
	query := `SELECT month, revenue FROM revenue`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var revenue []models.Revenue
	for rows.Next() {
		rev := models.Revenue{}
		if err := rows.Scan(&rev.Month, &rev.Revenue); err != nil {
			return nil, err
		}
		revenue = append(revenue, rev)
	}
	return revenue, rows.Err()
}

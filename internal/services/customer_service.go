package services

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"finboard/internal/common"
	"finboard/internal/models"
	"finboard/internal/repositories"
)

type CustomerService interface {
	ListFiltered(ctx context.Context, query string, page int) (*models.CustomerListing, error)
	Names(ctx context.Context) ([]models.CustomerField, error)
}

type customerService struct {
	customerRepo repositories.CustomerRepository
	log          zerolog.Logger
}

func NewCustomerService(customerRepo repositories.CustomerRepository, log zerolog.Logger) CustomerService {
	return &customerService{customerRepo: customerRepo, log: log}
}

func (s *customerService) ListFiltered(ctx context.Context, query string, page int) (*models.CustomerListing, error) {
	var (
		summaries []models.CustomerSummary
		total     int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summaries, err = s.customerRepo.ListFiltered(gctx, query, common.PageSize, common.PageOffset(page))
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.customerRepo.CountFiltered(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("database error fetching customers")
		return nil, common.NewFetchError("customers")
	}

	customers := make([]models.CustomerTableRow, 0, len(summaries))
	for _, summary := range summaries {
		customers = append(customers, models.CustomerTableRow{
			ID:            summary.ID,
			Name:          summary.Name,
			Email:         summary.Email,
			ImageURL:      summary.ImageURL,
			TotalInvoices: summary.TotalInvoices,
			TotalPending:  common.FormatCurrency(summary.TotalPending),
			TotalPaid:     common.FormatCurrency(summary.TotalPaid),
		})
	}

	return &models.CustomerListing{
		Customers:  customers,
		TotalPages: common.TotalPages(total),
	}, nil
}

func (s *customerService) Names(ctx context.Context) ([]models.CustomerField, error) {
	customers, err := s.customerRepo.Names(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("database error fetching customer names")
		return nil, common.NewFetchError("all customers")
	}
	return customers, nil
}

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"finboard/internal/caching"
	"finboard/internal/common"
	"finboard/internal/models"
	"finboard/internal/repositories"
)

const (
	latestInvoiceCount = 5
	cardsTTL           = 5 * time.Minute
)

type DashboardService interface {
	// Overview joins the three independent dashboard reads.
	Overview(ctx context.Context) (*models.DashboardOverview, error)
	// Cards computes the aggregate card values. noStore bypasses the cache.
	Cards(ctx context.Context, noStore bool) (*models.DashboardCards, error)
	Revenue(ctx context.Context) ([]models.Revenue, error)
	LatestInvoices(ctx context.Context) ([]models.LatestInvoice, error)
}

type dashboardService struct {
	revenueRepo  repositories.RevenueRepository
	invoiceRepo  repositories.InvoiceRepository
	customerRepo repositories.CustomerRepository
	cache        caching.CacheService
	slowDelay    time.Duration
	log          zerolog.Logger
}

func NewDashboardService(revenueRepo repositories.RevenueRepository, invoiceRepo repositories.InvoiceRepository, customerRepo repositories.CustomerRepository, cache caching.CacheService, slowDelay time.Duration, log zerolog.Logger) DashboardService {
	return &dashboardService{
		revenueRepo:  revenueRepo,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		cache:        cache,
		slowDelay:    slowDelay,
		log:          log,
	}
}

func (s *dashboardService) Overview(ctx context.Context) (*models.DashboardOverview, error) {
	overview := &models.DashboardOverview{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		revenue, err := s.Revenue(gctx)
		if err != nil {
			return err
		}
		overview.Revenue = revenue
		return nil
	})
	g.Go(func() error {
		latest, err := s.LatestInvoices(gctx)
		if err != nil {
			return err
		}
		overview.LatestInvoices = latest
		return nil
	})
	g.Go(func() error {
		cards, err := s.Cards(gctx, true)
		if err != nil {
			return err
		}
		overview.Cards = *cards
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return overview, nil
}

func (s *dashboardService) Cards(ctx context.Context, noStore bool) (*models.DashboardCards, error) {
	if !noStore {
		cached, err := s.cache.GetCards(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("cards cache read failed")
		}
		if cached != nil {
			return cached, nil
		}
	}

	var (
		invoiceCount  int64
		customerCount int64
		paid, pending int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = s.invoiceRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.customerRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		paid, pending, err = s.invoiceRepo.StatusTotals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Msg("database error fetching card data")
		return nil, common.NewFetchError("card data")
	}

	cards := &models.DashboardCards{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    common.FormatCurrency(paid),
		TotalPendingInvoices: common.FormatCurrency(pending),
	}

	if err := s.cache.SetCards(ctx, cards, cardsTTL); err != nil {
		s.log.Warn().Err(err).Msg("cards cache write failed")
	}

	return cards, nil
}

func (s *dashboardService) Revenue(ctx context.Context) ([]models.Revenue, error) {
	s.simulateSlowQuery(ctx)

	revenue, err := s.revenueRepo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("database error fetching revenue")
		return nil, common.NewFetchError("revenue data")
	}
	return revenue, nil
}

func (s *dashboardService) LatestInvoices(ctx context.Context) ([]models.LatestInvoice, error) {
	s.simulateSlowQuery(ctx)

	raw, err := s.invoiceRepo.Latest(ctx, latestInvoiceCount)
	if err != nil {
		s.log.Error().Err(err).Msg("database error fetching latest invoices")
		return nil, common.NewFetchError("the latest invoices")
	}

	latest := make([]models.LatestInvoice, 0, len(raw))
	for _, invoice := range raw {
		latest = append(latest, models.LatestInvoice{
			ID:       invoice.ID,
			Name:     invoice.Name,
			ImageURL: invoice.ImageURL,
			Email:    invoice.Email,
			Amount:   common.FormatCurrency(invoice.Amount),
		})
	}
	return latest, nil
}

// simulateSlowQuery stands in for the loading-state delay on the two slow
// dashboard reads. Disabled when the configured delay is zero.
func (s *dashboardService) simulateSlowQuery(ctx context.Context) {
	if s.slowDelay <= 0 {
		return
	}
	select {
	case <-time.After(s.slowDelay):
	case <-ctx.Done():
	}
}

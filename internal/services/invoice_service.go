package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"finboard/internal/caching"
	"finboard/internal/common"
	"finboard/internal/models"
	"finboard/internal/repositories"
)

// InvoicesPath is the listing every successful create/update redirects to.
const InvoicesPath = "/dashboard/invoices"

const listingTTL = time.Minute

// ActionResult is the outcome of a mutation attempt. Exactly one of the
// three shapes applies: field errors (validation failed), a user-facing
// message (persistence failed), or a clean result with an optional redirect.
type ActionResult struct {
	Errors     map[string][]string `json:"errors,omitempty"`
	Message    string              `json:"message,omitempty"`
	RedirectTo string              `json:"redirectTo,omitempty"`
}

// OK reports whether the action completed.
func (r ActionResult) OK() bool {
	return len(r.Errors) == 0 && r.Message == ""
}

type InvoiceService interface {
	// ListFiltered returns one page of invoices matching query. noStore
	// bypasses the listing cache so results reflect the latest store state.
	ListFiltered(ctx context.Context, query string, page int, noStore bool) (*models.InvoiceListing, error)
	GetForEdit(ctx context.Context, id uuid.UUID) (*models.InvoiceEditData, error)
	Create(ctx context.Context, form RawInvoiceForm) ActionResult
	Update(ctx context.Context, id uuid.UUID, form RawInvoiceForm) ActionResult
	Delete(ctx context.Context, id uuid.UUID) ActionResult
}

type invoiceService struct {
	invoiceRepo  repositories.InvoiceRepository
	customerRepo repositories.CustomerRepository
	cache        caching.CacheService
	log          zerolog.Logger
}

func NewInvoiceService(invoiceRepo repositories.InvoiceRepository, customerRepo repositories.CustomerRepository, cache caching.CacheService, log zerolog.Logger) InvoiceService {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		cache:        cache,
		log:          log,
	}
}

func (s *invoiceService) ListFiltered(ctx context.Context, query string, page int, noStore bool) (*models.InvoiceListing, error) {
	if !noStore {
		cached, err := s.cache.GetInvoiceListing(ctx, query, page)
		if err != nil {
			s.log.Warn().Err(err).Msg("invoice listing cache read failed")
		}
		if cached != nil {
			return cached, nil
		}
	}

	var (
		rows  []models.InvoiceRow
		total int64
	)

	// The page query and the count share no data dependency.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.invoiceRepo.ListFiltered(gctx, query, common.PageSize, common.PageOffset(page))
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.invoiceRepo.CountFiltered(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("database error fetching invoices")
		return nil, common.NewFetchError("invoices")
	}

	listing := &models.InvoiceListing{
		Invoices:   rows,
		TotalPages: common.TotalPages(total),
	}

	if err := s.cache.SetInvoiceListing(ctx, query, page, listing, listingTTL); err != nil {
		s.log.Warn().Err(err).Msg("invoice listing cache write failed")
	}

	return listing, nil
}

func (s *invoiceService) GetForEdit(ctx context.Context, id uuid.UUID) (*models.InvoiceEditData, error) {
	var (
		form      *models.InvoiceForm
		customers []models.CustomerField
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		form, err = s.invoiceRepo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = s.customerRepo.Names(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		s.log.Error().Err(err).Stringer("invoice_id", id).Msg("database error fetching invoice")
		return nil, common.NewFetchError("invoice")
	}

	return &models.InvoiceEditData{Invoice: *form, Customers: customers}, nil
}

func (s *invoiceService) Create(ctx context.Context, form RawInvoiceForm) ActionResult {
	input, fieldErrors := ValidateInvoiceForm(form)
	if fieldErrors != nil {
		return ActionResult{
			Errors:  fieldErrors,
			Message: "Missing fields. Failed to create invoice.",
		}
	}

	invoice := &models.Invoice{
		CustomerID: input.CustomerID,
		Amount:     common.AmountToCents(input.Amount),
		Status:     input.Status,
		Date:       time.Now().UTC().Truncate(24 * time.Hour),
	}

	if err := s.invoiceRepo.Insert(ctx, invoice); err != nil {
		s.log.Error().Err(err).Msg("database error creating invoice")
		return ActionResult{Message: "Database Error: Failed to create invoice."}
	}

	s.invalidateListings(ctx)

	return ActionResult{RedirectTo: InvoicesPath}
}

func (s *invoiceService) Update(ctx context.Context, id uuid.UUID, form RawInvoiceForm) ActionResult {
	input, fieldErrors := ValidateInvoiceForm(form)
	if fieldErrors != nil {
		return ActionResult{
			Errors:  fieldErrors,
			Message: "Missing fields. Failed to update invoice.",
		}
	}

	invoice := &models.Invoice{
		ID:         id,
		CustomerID: input.CustomerID,
		Amount:     common.AmountToCents(input.Amount),
		Status:     input.Status,
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		s.log.Error().Err(err).Stringer("invoice_id", id).Msg("database error updating invoice")
		return ActionResult{Message: "Database Error: Failed to update invoice."}
	}

	s.invalidateListings(ctx)

	return ActionResult{RedirectTo: InvoicesPath}
}

// Delete skips validation (the id is a trusted identifier) and returns no
// redirect: deletes happen in place on the listing itself.
func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) ActionResult {
	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Stringer("invoice_id", id).Msg("database error deleting invoice")
		return ActionResult{Message: "Database Error: Failed to delete invoice."}
	}

	s.invalidateListings(ctx)

	return ActionResult{}
}

// invalidateListings marks the invoices read paths stale after a successful
// mutation. Failures are logged only: cached pages expire on their TTL.
func (s *invoiceService) invalidateListings(ctx context.Context) {
	if err := s.cache.InvalidateInvoices(ctx); err != nil {
		s.log.Warn().Err(err).Msg("invoice cache invalidation failed")
	}
}

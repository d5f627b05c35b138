package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"

	"finboard/internal/common"
	"finboard/internal/models"
	"finboard/internal/repositories"
)

const (
	receiptBucket    = "invoice-receipts"
	receiptURLExpiry = 15 * time.Minute
)

// ReceiptService renders an invoice as a PDF receipt, stores it and hands
// back a short-lived download URL.
type ReceiptService interface {
	ReceiptURL(ctx context.Context, id uuid.UUID) (string, error)
}

type receiptService struct {
	invoiceRepo repositories.InvoiceRepository
	storage     StorageService
	log         zerolog.Logger
}

func NewReceiptService(invoiceRepo repositories.InvoiceRepository, storage StorageService, log zerolog.Logger) ReceiptService {
	return &receiptService{
		invoiceRepo: invoiceRepo,
		storage:     storage,
		log:         log,
	}
}

func (s *receiptService) ReceiptURL(ctx context.Context, id uuid.UUID) (string, error) {
	detail, err := s.invoiceRepo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", common.ErrNotFound
		}
		s.log.Error().Err(err).Stringer("invoice_id", id).Msg("database error fetching invoice detail")
		return "", common.NewFetchError("invoice")
	}

	pdfData, err := renderReceipt(detail)
	if err != nil {
		return "", fmt.Errorf("render receipt: %w", err)
	}

	if err := s.storage.EnsureBucketExists(ctx, receiptBucket); err != nil {
		return "", fmt.Errorf("ensure receipt bucket: %w", err)
	}

	objectName := detail.ID.String() + ".pdf"
	if err := s.storage.Upload(ctx, receiptBucket, objectName, bytes.NewReader(pdfData), int64(len(pdfData)), "application/pdf"); err != nil {
		return "", fmt.Errorf("upload receipt: %w", err)
	}

	return s.storage.GetPresignedURL(ctx, receiptBucket, objectName, receiptURLExpiry)
}

func renderReceipt(invoice *models.InvoiceRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(33, 37, 41)
	pdf.Cell(0, 10, "INVOICE RECEIPT")
	pdf.Ln(15)

	pdf.SetFont("Arial", "", 11)
	line := func(label, value string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(40, 8, label)
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 8, value)
		pdf.Ln(8)
	}

	line("Invoice", invoice.ID.String())
	line("Customer", invoice.Name)
	line("Email", invoice.Email)
	line("Date", invoice.Date.Format("2006-01-02"))
	line("Status", invoice.Status)
	line("Amount", common.FormatCurrency(invoice.Amount))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

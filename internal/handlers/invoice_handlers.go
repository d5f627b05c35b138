package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"finboard/internal/common"
	"finboard/internal/services"
)

// InvoiceHandlers handles HTTP requests for invoices
type InvoiceHandlers struct {
	invoiceService services.InvoiceService
	receiptService services.ReceiptService
}

func NewInvoiceHandlers(invoiceService services.InvoiceService, receiptService services.ReceiptService) *InvoiceHandlers {
	return &InvoiceHandlers{
		invoiceService: invoiceService,
		receiptService: receiptService,
	}
}

// ListInvoices handles GET /invoices?query=&page=
func (h *InvoiceHandlers) ListInvoices(c echo.Context) error {
	ctx := c.Request().Context()

	query := c.QueryParam("query")
	page := common.ParsePage(c.QueryParam("page"))
	noStore := c.QueryParam("fresh") != ""

	listing, err := h.invoiceService.ListFiltered(ctx, query, page, noStore)
	if err != nil {
		return common.SendServerError(c, err.Error())
	}

	return c.JSON(http.StatusOK, listing)
}

// GetEditData handles GET /invoices/:id/edit, returning the invoice in form
// shape together with the customer select options.
func (h *InvoiceHandlers) GetEditData(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendClientError(c, "invalid invoice id")
	}

	data, err := h.invoiceService.GetForEdit(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.SendNotFoundError(c, "invoice")
		}
		return common.SendServerError(c, err.Error())
	}

	return c.JSON(http.StatusOK, data)
}

// CreateInvoice handles POST /invoices
func (h *InvoiceHandlers) CreateInvoice(c echo.Context) error {
	ctx := c.Request().Context()

	var form services.RawInvoiceForm
	if err := c.Bind(&form); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	result := h.invoiceService.Create(ctx, form)
	return respondToAction(c, result)
}

// UpdateInvoice handles PUT /invoices/:id
func (h *InvoiceHandlers) UpdateInvoice(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendClientError(c, "invalid invoice id")
	}

	var form services.RawInvoiceForm
	if err := c.Bind(&form); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	result := h.invoiceService.Update(ctx, id, form)
	return respondToAction(c, result)
}

// DeleteInvoice handles DELETE /invoices/:id
func (h *InvoiceHandlers) DeleteInvoice(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendClientError(c, "invalid invoice id")
	}

	result := h.invoiceService.Delete(ctx, id)
	if !result.OK() {
		return c.JSON(http.StatusInternalServerError, result)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetReceipt handles GET /invoices/:id/receipt
func (h *InvoiceHandlers) GetReceipt(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendClientError(c, "invalid invoice id")
	}

	url, err := h.receiptService.ReceiptURL(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.SendNotFoundError(c, "invoice")
		}
		return common.SendServerError(c, "Failed to generate receipt")
	}

	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

// respondToAction maps an ActionResult to an HTTP response: field errors
// come back as 400 with the structured errors, persistence failures as 500
// with the user-facing message, success as a redirect to the listing.
func respondToAction(c echo.Context, result services.ActionResult) error {
	if len(result.Errors) > 0 {
		return c.JSON(http.StatusBadRequest, result)
	}
	if result.Message != "" {
		return c.JSON(http.StatusInternalServerError, result)
	}
	return c.Redirect(http.StatusSeeOther, result.RedirectTo)
}

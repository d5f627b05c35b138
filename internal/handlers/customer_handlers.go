package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"finboard/internal/common"
	"finboard/internal/services"
)

type CustomerHandlers struct {
	customerService services.CustomerService
}

func NewCustomerHandlers(customerService services.CustomerService) *CustomerHandlers {
	return &CustomerHandlers{customerService: customerService}
}

// ListCustomers handles GET /customers?query=&page=
func (h *CustomerHandlers) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	query := c.QueryParam("query")
	page := common.ParsePage(c.QueryParam("page"))

	listing, err := h.customerService.ListFiltered(ctx, query, page)
	if err != nil {
		return common.SendServerError(c, err.Error())
	}

	return c.JSON(http.StatusOK, listing)
}

// ListCustomerNames handles GET /customers/names, the id/name pairs for
// the invoice form select.
func (h *CustomerHandlers) ListCustomerNames(c echo.Context) error {
	ctx := c.Request().Context()

	customers, err := h.customerService.Names(ctx)
	if err != nil {
		return common.SendServerError(c, err.Error())
	}

	return c.JSON(http.StatusOK, customers)
}

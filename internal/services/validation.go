package services

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RawInvoiceForm carries the form fields exactly as submitted, all strings.
type RawInvoiceForm struct {
	CustomerID string `json:"customerId" form:"customerId"`
	Amount     string `json:"amount" form:"amount"`
	Status     string `json:"status" form:"status"`
}

// InvoiceInput is the validated, typed payload. Amount is still in decimal
// units; conversion to cents happens immediately before persistence.
type InvoiceInput struct {
	CustomerID uuid.UUID
	Amount     float64
	Status     string
}

const (
	msgCustomer = "Please select a customer."
	msgAmount   = "Please enter an amount greater than $0."
	msgStatus   = "Please select an invoice status."
)

// maxFormAmount caps submitted amounts far below the point where the cent
// conversion would overflow int64. ParseFloat reports no error for inputs
// like "Inf", and clamps over-range ones like "1e300" to +Inf.
const maxFormAmount = 1e15

var validate = validator.New()

type invoiceFields struct {
	CustomerID string  `validate:"required,uuid"`
	Amount     float64 `validate:"gt=0"`
	Status     string  `validate:"oneof=pending paid"`
}

// ValidateInvoiceForm parses and constrains raw form fields, returning
// either the typed input or per-field error messages. It never returns both.
func ValidateInvoiceForm(form RawInvoiceForm) (*InvoiceInput, map[string][]string) {
	// Non-numeric, non-finite and out-of-range amounts all coerce to zero
	// and fail the gt=0 constraint.
	amount, err := strconv.ParseFloat(strings.TrimSpace(form.Amount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount > maxFormAmount {
		amount = 0
	}

	fields := invoiceFields{
		CustomerID: strings.TrimSpace(form.CustomerID),
		Amount:     amount,
		Status:     strings.TrimSpace(form.Status),
	}

	if err := validate.Struct(fields); err != nil {
		fieldErrors := map[string][]string{}
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				switch fe.Field() {
				case "CustomerID":
					fieldErrors["customerId"] = append(fieldErrors["customerId"], msgCustomer)
				case "Amount":
					fieldErrors["amount"] = append(fieldErrors["amount"], msgAmount)
				case "Status":
					fieldErrors["status"] = append(fieldErrors["status"], msgStatus)
				}
			}
		}
		return nil, fieldErrors
	}

	customerID, err := uuid.Parse(fields.CustomerID)
	if err != nil {
		return nil, map[string][]string{"customerId": {msgCustomer}}
	}

	return &InvoiceInput{
		CustomerID: customerID,
		Amount:     fields.Amount,
		Status:     fields.Status,
	}, nil
}

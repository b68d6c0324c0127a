// Package validation implements the strict manual-entry policy: required
// fields must be present and well-formed before any mutation is
// attempted. This is the counterpart to the tolerant import path, which
// coerces instead of rejecting.
package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"ledgerdesk/arap/internal/apperrors"
	"ledgerdesk/arap/internal/models"
)

// ReceivableInput carries raw manual-entry fields for a receivable.
type ReceivableInput struct {
	CustomerName   string
	ContractNumber string
	Amount         string
	InvoiceDate    string
	DueDate        string
	Contact        string
	Phone          string
	Notes          string
}

// Validate checks the input and builds a record ready for the
// repository. The id is left unset and the status forced to pending by
// Repository.Add.
func (in ReceivableInput) Validate() (models.Receivable, error) {
	if err := requireText("customerName", in.CustomerName); err != nil {
		return models.Receivable{}, err
	}
	if err := requireText("contractNumber", in.ContractNumber); err != nil {
		return models.Receivable{}, err
	}
	amount, err := parseAmount("amount", in.Amount)
	if err != nil {
		return models.Receivable{}, err
	}
	invoiceDate, err := parseRequiredDate("invoiceDate", in.InvoiceDate)
	if err != nil {
		return models.Receivable{}, err
	}
	dueDate, err := parseRequiredDate("dueDate", in.DueDate)
	if err != nil {
		return models.Receivable{}, err
	}

	return models.Receivable{
		CustomerName:   strings.TrimSpace(in.CustomerName),
		ContractNumber: strings.TrimSpace(in.ContractNumber),
		Amount:         amount,
		InvoiceDate:    invoiceDate,
		DueDate:        dueDate,
		Contact:        strings.TrimSpace(in.Contact),
		Phone:          strings.TrimSpace(in.Phone),
		Status:         models.StatusPending,
		Notes:          strings.TrimSpace(in.Notes),
	}, nil
}

// PayableInput carries raw manual-entry fields for a payable.
type PayableInput struct {
	SupplierName  string
	PurchaseOrder string
	Amount        string
	InvoiceDate   string
	DueDate       string
	PaymentMethod string
	Contact       string
	Notes         string
}

// Validate checks the input and builds a record ready for the
// repository.
func (in PayableInput) Validate() (models.Payable, error) {
	if err := requireText("supplierName", in.SupplierName); err != nil {
		return models.Payable{}, err
	}
	if err := requireText("purchaseOrder", in.PurchaseOrder); err != nil {
		return models.Payable{}, err
	}
	amount, err := parseAmount("amount", in.Amount)
	if err != nil {
		return models.Payable{}, err
	}
	invoiceDate, err := parseRequiredDate("invoiceDate", in.InvoiceDate)
	if err != nil {
		return models.Payable{}, err
	}
	dueDate, err := parseRequiredDate("dueDate", in.DueDate)
	if err != nil {
		return models.Payable{}, err
	}

	return models.Payable{
		SupplierName:  strings.TrimSpace(in.SupplierName),
		PurchaseOrder: strings.TrimSpace(in.PurchaseOrder),
		Amount:        amount,
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		Contact:       strings.TrimSpace(in.Contact),
		Status:        models.StatusPending,
		Notes:         strings.TrimSpace(in.Notes),
	}, nil
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &apperrors.ValidationError{Field: field, Reason: "must not be empty"}
	}
	return nil
}

func parseAmount(field, value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, &apperrors.ValidationError{Field: field, Reason: "must not be empty"}
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, &apperrors.ValidationError{Field: field, Reason: "must be a number"}
	}
	if amount.IsNegative() {
		return decimal.Zero, &apperrors.ValidationError{Field: field, Reason: "must not be negative"}
	}
	return amount, nil
}

func parseRequiredDate(field, value string) (models.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return models.Date{}, &apperrors.ValidationError{Field: field, Reason: "must not be empty"}
	}
	date, err := models.ParseDate(value)
	if err != nil {
		return models.Date{}, &apperrors.ValidationError{Field: field, Reason: "must be a YYYY-MM-DD date"}
	}
	return date, nil
}

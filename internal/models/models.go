// Package models defines the canonical record shapes managed by the
// application: receivables, payables and the derived transaction feed.
package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the settlement state of a record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Toggle flips pending to completed and back.
func (s Status) Toggle() Status {
	if s == StatusPending {
		return StatusCompleted
	}
	return StatusPending
}

// ParseStatus validates a status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Kind distinguishes the two record collections.
type Kind string

const (
	KindReceivable Kind = "receivable"
	KindPayable    Kind = "payable"
)

// ParseKind validates a kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindReceivable, KindPayable:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown record kind %q", s)
}

// Receivable is money owed to the business by a customer.
type Receivable struct {
	ID             int             `json:"id"`
	CustomerName   string          `json:"customerName"`
	ContractNumber string          `json:"contractNumber"`
	Amount         decimal.Decimal `json:"amount"`
	InvoiceDate    Date            `json:"invoiceDate"`
	DueDate        Date            `json:"dueDate"`
	Contact        string          `json:"contact"`
	Phone          string          `json:"phone"`
	Status         Status          `json:"status"`
	Notes          string          `json:"notes"`
}

// RecordID returns the collection-local id.
func (r Receivable) RecordID() int { return r.ID }

// RecordStatus returns the settlement state.
func (r Receivable) RecordStatus() Status { return r.Status }

// WithRecordID returns a copy with the id replaced.
func (r Receivable) WithRecordID(id int) Receivable {
	r.ID = id
	return r
}

// WithStatus returns a copy with the status replaced.
func (r Receivable) WithStatus(s Status) Receivable {
	r.Status = s
	return r
}

// Counterparty returns the customer name.
func (r Receivable) Counterparty() string { return r.CustomerName }

// Payable is money the business owes to a supplier.
type Payable struct {
	ID            int             `json:"id"`
	SupplierName  string          `json:"supplierName"`
	PurchaseOrder string          `json:"purchaseOrder"`
	Amount        decimal.Decimal `json:"amount"`
	InvoiceDate   Date            `json:"invoiceDate"`
	DueDate       Date            `json:"dueDate"`
	PaymentMethod string          `json:"paymentMethod"`
	Contact       string          `json:"contact"`
	Status        Status          `json:"status"`
	Notes         string          `json:"notes"`
}

// RecordID returns the collection-local id.
func (p Payable) RecordID() int { return p.ID }

// RecordStatus returns the settlement state.
func (p Payable) RecordStatus() Status { return p.Status }

// WithRecordID returns a copy with the id replaced.
func (p Payable) WithRecordID(id int) Payable {
	p.ID = id
	return p
}

// WithStatus returns a copy with the status replaced.
func (p Payable) WithStatus(s Status) Payable {
	p.Status = s
	return p
}

// Counterparty returns the supplier name.
func (p Payable) Counterparty() string { return p.SupplierName }

// Transaction is the derived, read-only feed entry computed from a
// receivable or payable. The feed is regenerated in full whenever either
// collection changes and is never patched in place.
type Transaction struct {
	ID            string          `json:"id" csv:"id"`
	Kind          Kind            `json:"kind" csv:"kind"`
	Counterparty  string          `json:"counterpartyName" csv:"counterparty"`
	Amount        decimal.Decimal `json:"amount" csv:"amount"`
	DueDate       Date            `json:"dueDate" csv:"due_date"`
	Status        Status          `json:"status" csv:"status"`
	DaysRemaining int             `json:"daysRemaining" csv:"days_remaining"`
	Priority      Priority        `json:"priority" csv:"priority"`
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	ID     string    `json:"id"`
	Time   time.Time `json:"time"`
	Action string    `json:"action"`
	Kind   Kind      `json:"kind,omitempty"`
	Detail string    `json:"detail"`
}

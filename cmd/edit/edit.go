// Package edit handles in-place record modification
package edit

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"ledgerdesk/arap/cmd/root"
	"ledgerdesk/arap/internal/models"
)

var (
	kindFlag      string
	idFlag        int
	customer      string
	contract      string
	supplier      string
	order         string
	amount        string
	invoiceDate   string
	dueDate       string
	contact       string
	phone         string
	paymentMethod string
	notes         string
)

// Cmd represents the edit command
var Cmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit fields of an existing record",
	Long: `Edit overlays the given field flags onto an existing record. Only the
flags actually set are changed; everything else, including the status, is
kept. Use the toggle command to change a record's status.`,
	Run: editFunc,
}

func init() {
	Cmd.Flags().StringVar(&kindFlag, "kind", "", "Record kind (receivable or payable)")
	Cmd.Flags().IntVar(&idFlag, "id", 0, "Record id")
	Cmd.Flags().StringVar(&customer, "customer", "", "Customer name (receivable)")
	Cmd.Flags().StringVar(&contract, "contract", "", "Contract number (receivable)")
	Cmd.Flags().StringVar(&supplier, "supplier", "", "Supplier name (payable)")
	Cmd.Flags().StringVar(&order, "order", "", "Purchase order (payable)")
	Cmd.Flags().StringVar(&amount, "amount", "", "Amount")
	Cmd.Flags().StringVar(&invoiceDate, "invoice-date", "", "Invoice date (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&dueDate, "due-date", "", "Due date (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&contact, "contact", "", "Contact person")
	Cmd.Flags().StringVar(&phone, "phone", "", "Contact phone (receivable)")
	Cmd.Flags().StringVar(&paymentMethod, "payment-method", "", "Payment method (payable)")
	Cmd.Flags().StringVar(&notes, "notes", "", "Notes")
}

func editFunc(cmd *cobra.Command, args []string) {
	kind, err := models.ParseKind(kindFlag)
	if err != nil {
		root.Log.Fatalf("Error: %v", err)
	}
	if idFlag <= 0 {
		root.Log.Fatalf("Error: --id is required")
	}

	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	changed := cmd.Flags().Changed

	switch kind {
	case models.KindReceivable:
		rec, err := l.Receivables().Get(idFlag)
		if err != nil {
			root.Log.Fatalf("Error: %v", err)
		}
		if changed("customer") {
			rec.CustomerName = customer
		}
		if changed("contract") {
			rec.ContractNumber = contract
		}
		if changed("amount") {
			rec.Amount = parseAmount(amount)
		}
		if changed("invoice-date") {
			rec.InvoiceDate = parseDate(invoiceDate)
		}
		if changed("due-date") {
			rec.DueDate = parseDate(dueDate)
		}
		if changed("contact") {
			rec.Contact = contact
		}
		if changed("phone") {
			rec.Phone = phone
		}
		if changed("notes") {
			rec.Notes = notes
		}
		updated, err := l.Receivables().Update(idFlag, rec)
		if err != nil {
			root.Log.Fatalf("Error updating receivable: %v", err)
		}
		l.RecordActivity("edit", kind, updated.CustomerName)
		cmd.Printf("Updated receivable %d\n", updated.ID)

	case models.KindPayable:
		rec, err := l.Payables().Get(idFlag)
		if err != nil {
			root.Log.Fatalf("Error: %v", err)
		}
		if changed("supplier") {
			rec.SupplierName = supplier
		}
		if changed("order") {
			rec.PurchaseOrder = order
		}
		if changed("amount") {
			rec.Amount = parseAmount(amount)
		}
		if changed("invoice-date") {
			rec.InvoiceDate = parseDate(invoiceDate)
		}
		if changed("due-date") {
			rec.DueDate = parseDate(dueDate)
		}
		if changed("payment-method") {
			rec.PaymentMethod = paymentMethod
		}
		if changed("contact") {
			rec.Contact = contact
		}
		if changed("notes") {
			rec.Notes = notes
		}
		updated, err := l.Payables().Update(idFlag, rec)
		if err != nil {
			root.Log.Fatalf("Error updating payable: %v", err)
		}
		l.RecordActivity("edit", kind, updated.SupplierName)
		cmd.Printf("Updated payable %d\n", updated.ID)
	}
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		root.Log.Fatalf("Error: invalid amount %q", s)
	}
	if d.IsNegative() {
		root.Log.Fatalf("Error: amount must not be negative")
	}
	return d
}

func parseDate(s string) models.Date {
	d, err := models.ParseDate(s)
	if err != nil {
		root.Log.Fatalf("Error: %v", err)
	}
	return d
}

// Package add handles manual record creation
package add

import (
	"github.com/spf13/cobra"

	"ledgerdesk/arap/cmd/root"
	"ledgerdesk/arap/internal/models"
	"ledgerdesk/arap/internal/validation"
)

var (
	kindFlag      string
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

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add a receivable or payable record",
	Long: `Add creates a new record from the given field flags. Unlike import,
manual entry is strict: required fields must be present, the amount must be
a non-negative number and dates must be in YYYY-MM-DD form. New records
always start pending.`,
	Run: addFunc,
}

func init() {
	Cmd.Flags().StringVar(&kindFlag, "kind", "", "Record kind (receivable or payable)")
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

func addFunc(cmd *cobra.Command, args []string) {
	kind, err := models.ParseKind(kindFlag)
	if err != nil {
		root.Log.Fatalf("Error: %v", err)
	}

	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	switch kind {
	case models.KindReceivable:
		rec, err := validation.ReceivableInput{
			CustomerName:   customer,
			ContractNumber: contract,
			Amount:         amount,
			InvoiceDate:    invoiceDate,
			DueDate:        dueDate,
			Contact:        contact,
			Phone:          phone,
			Notes:          notes,
		}.Validate()
		if err != nil {
			root.Log.Fatalf("Error: %v", err)
		}
		added, err := l.Receivables().Add(rec)
		if err != nil {
			root.Log.Fatalf("Error adding receivable: %v", err)
		}
		l.RecordActivity("add", kind, added.CustomerName)
		cmd.Printf("Added receivable %d (%s)\n", added.ID, added.CustomerName)

	case models.KindPayable:
		rec, err := validation.PayableInput{
			SupplierName:  supplier,
			PurchaseOrder: order,
			Amount:        amount,
			InvoiceDate:   invoiceDate,
			DueDate:       dueDate,
			PaymentMethod: paymentMethod,
			Contact:       contact,
			Notes:         notes,
		}.Validate()
		if err != nil {
			root.Log.Fatalf("Error: %v", err)
		}
		added, err := l.Payables().Add(rec)
		if err != nil {
			root.Log.Fatalf("Error adding payable: %v", err)
		}
		l.RecordActivity("add", kind, added.SupplierName)
		cmd.Printf("Added payable %d (%s)\n", added.ID, added.SupplierName)
	}
}

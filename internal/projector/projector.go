// Package projector derives the unified pending-transaction feed from
// the receivable and payable collections. The feed is a projection:
// callers regenerate it in full after any record mutation and never edit
// individual entries.
package projector

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ledgerdesk/arap/internal/models"
)

// Project maps every receivable and payable, pending and completed
// alike, to a Transaction. Days remaining and priority are computed at
// call time. Output order is receivables in insertion order followed by
// payables.
func Project(receivables []models.Receivable, payables []models.Payable, now time.Time) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(receivables)+len(payables))
	for _, r := range receivables {
		transactions = append(transactions,
			build(models.KindReceivable, r.ID, r.CustomerName, r.Amount, r.DueDate, r.Status, now))
	}
	for _, p := range payables {
		transactions = append(transactions,
			build(models.KindPayable, p.ID, p.SupplierName, p.Amount, p.DueDate, p.Status, now))
	}
	return transactions
}

func build(kind models.Kind, id int, counterparty string, amount decimal.Decimal,
	dueDate models.Date, status models.Status, now time.Time) models.Transaction {
	tx := models.Transaction{
		ID:           TransactionID(kind, id),
		Kind:         kind,
		Counterparty: counterparty,
		Amount:       amount,
		DueDate:      dueDate,
		Status:       status,
		// A record without a parseable due date carries no deadline:
		// it sorts last and is never flagged urgent.
		Priority: models.PriorityLow,
	}
	if !dueDate.IsZero() {
		tx.DaysRemaining = models.DaysRemaining(dueDate.Time, now)
		tx.Priority = models.Classify(dueDate.Time, now)
	}
	return tx
}

// TransactionID builds the composite feed id for a record.
func TransactionID(kind models.Kind, id int) string {
	return fmt.Sprintf("%s-%d", kind, id)
}

// ParseTransactionID splits a composite feed id back into record kind
// and record id.
func ParseTransactionID(id string) (models.Kind, int, error) {
	kindPart, idPart, found := strings.Cut(id, "-")
	if !found {
		return "", 0, fmt.Errorf("malformed transaction id %q", id)
	}
	kind, err := models.ParseKind(kindPart)
	if err != nil {
		return "", 0, fmt.Errorf("malformed transaction id %q: %w", id, err)
	}
	recordID, err := strconv.Atoi(idPart)
	if err != nil {
		return "", 0, fmt.Errorf("malformed transaction id %q: %w", id, err)
	}
	return kind, recordID, nil
}

// PendingByUrgency filters the feed to pending entries and orders them
// for the upcoming view: by priority rank, then by due date ascending,
// with dateless entries last within their priority.
func PendingByUrgency(transactions []models.Transaction) []models.Transaction {
	pending := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Status == models.StatusPending {
			pending = append(pending, tx)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		if pending[i].Priority.Rank() != pending[j].Priority.Rank() {
			return pending[i].Priority.Rank() < pending[j].Priority.Rank()
		}
		if pending[i].DueDate.IsZero() != pending[j].DueDate.IsZero() {
			return !pending[i].DueDate.IsZero()
		}
		return pending[i].DueDate.Before(pending[j].DueDate.Time)
	})
	return pending
}

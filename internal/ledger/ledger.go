// Package ledger wires the two record repositories to the persistence
// gateway and the transaction projector. It owns the single authoritative
// mutation path: every change goes through a source-record repository,
// and the derived feed is regenerated from both collections afterwards.
// The feed is never edited directly.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"ledgerdesk/arap/internal/logging"
	"ledgerdesk/arap/internal/models"
	"ledgerdesk/arap/internal/projector"
	"ledgerdesk/arap/internal/repository"
	"ledgerdesk/arap/internal/store"
)

// activityLimit caps the persisted recent-activity feed.
const activityLimit = 50

// Ledger owns both record collections and their derived views.
type Ledger struct {
	store       *store.Store
	receivables *repository.Repository[models.Receivable]
	payables    *repository.Repository[models.Payable]
	activity    []models.Activity
	log         logging.Logger
	now         func() time.Time
}

// Open loads the persisted collections and builds the repositories with
// the shared feed re-derivation hook installed.
func Open(st *store.Store, log logging.Logger) (*Ledger, error) {
	receivables, err := st.LoadReceivables()
	if err != nil {
		return nil, fmt.Errorf("error loading receivables: %w", err)
	}
	payables, err := st.LoadPayables()
	if err != nil {
		return nil, fmt.Errorf("error loading payables: %w", err)
	}
	activity, err := st.LoadActivity()
	if err != nil {
		return nil, fmt.Errorf("error loading activity: %w", err)
	}

	l := &Ledger{
		store:    st,
		activity: activity,
		log:      log,
		now:      time.Now,
	}
	l.receivables = repository.New(models.KindReceivable, receivables, st.SaveReceivables, log)
	l.payables = repository.New(models.KindPayable, payables, st.SavePayables, log)
	l.receivables.SetSyncHook(l.syncTransactions)
	l.payables.SetSyncHook(l.syncTransactions)
	return l, nil
}

// SetClock overrides the time source; used by tests for deterministic
// urgency classification.
func (l *Ledger) SetClock(now func() time.Time) {
	l.now = now
}

// Receivables returns the receivable repository.
func (l *Ledger) Receivables() *repository.Repository[models.Receivable] {
	return l.receivables
}

// Payables returns the payable repository.
func (l *Ledger) Payables() *repository.Repository[models.Payable] {
	return l.payables
}

// Transactions projects the feed from the current collections, with
// days remaining and priority computed against the current clock.
func (l *Ledger) Transactions() []models.Transaction {
	return projector.Project(l.receivables.Records(), l.payables.Records(), l.now())
}

// PersistedTransactions returns the feed as of the last persist.
func (l *Ledger) PersistedTransactions() ([]models.Transaction, error) {
	return l.store.LoadTransactions()
}

// syncTransactions is the hook run by both repositories after every
// mutation: regenerate the whole feed and persist it.
func (l *Ledger) syncTransactions() error {
	return l.store.SaveTransactions(l.Transactions())
}

// ImportWorkbook wholesale-replaces both collections with normalized
// import rows and remembers the source file name. Prior state is only
// touched once parsing has already succeeded.
func (l *Ledger) ImportWorkbook(fileName string, receivables []models.Receivable, payables []models.Payable) error {
	if err := l.receivables.BulkReplace(receivables); err != nil {
		return err
	}
	if err := l.payables.BulkReplace(payables); err != nil {
		return err
	}
	if err := l.store.SaveLastImportFile(fileName); err != nil {
		return err
	}
	l.recordActivity("import", "",
		fmt.Sprintf("%s: %d receivables, %d payables", fileName, l.receivables.Len(), l.payables.Len()))
	l.log.Info("workbook imported",
		logging.F("file", fileName),
		logging.F("receivables", l.receivables.Len()),
		logging.F("payables", l.payables.Len()))
	return nil
}

// CompleteTransaction marks the source record behind a composite feed id
// as completed. The feed itself is never mutated; completing goes
// through the record repository, which re-derives the feed.
func (l *Ledger) CompleteTransaction(id string) (models.Transaction, error) {
	kind, recordID, err := projector.ParseTransactionID(id)
	if err != nil {
		return models.Transaction{}, err
	}

	switch kind {
	case models.KindReceivable:
		rec, err := l.receivables.Get(recordID)
		if err != nil {
			return models.Transaction{}, err
		}
		if rec.Status == models.StatusPending {
			if _, err := l.receivables.ToggleStatus(recordID); err != nil {
				return models.Transaction{}, err
			}
			l.recordActivity("complete", kind, rec.CustomerName)
		}
	case models.KindPayable:
		rec, err := l.payables.Get(recordID)
		if err != nil {
			return models.Transaction{}, err
		}
		if rec.Status == models.StatusPending {
			if _, err := l.payables.ToggleStatus(recordID); err != nil {
				return models.Transaction{}, err
			}
			l.recordActivity("complete", kind, rec.SupplierName)
		}
	}

	for _, tx := range l.Transactions() {
		if tx.ID == id {
			return tx, nil
		}
	}
	return models.Transaction{}, fmt.Errorf("transaction %s missing after completion", id)
}

// LastImportFile returns the name of the last imported workbook.
func (l *Ledger) LastImportFile() (string, error) {
	return l.store.LastImportFile()
}

// Activity returns the recent-activity feed, most recent first.
func (l *Ledger) Activity() []models.Activity {
	return append([]models.Activity{}, l.activity...)
}

// RecordActivity appends an entry to the recent-activity feed. A failed
// activity write is logged and swallowed; it never blocks the mutation
// that triggered it.
func (l *Ledger) RecordActivity(action string, kind models.Kind, detail string) {
	l.recordActivity(action, kind, detail)
}

func (l *Ledger) recordActivity(action string, kind models.Kind, detail string) {
	entry := models.Activity{
		ID:     uuid.NewString(),
		Time:   l.now(),
		Action: action,
		Kind:   kind,
		Detail: detail,
	}
	l.activity = append([]models.Activity{entry}, l.activity...)
	if len(l.activity) > activityLimit {
		l.activity = l.activity[:activityLimit]
	}
	if err := l.store.SaveActivity(l.activity); err != nil {
		l.log.WithError(err).Warn("failed to persist activity feed")
	}
}

package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerdesk/arap/internal/apperrors"
	"ledgerdesk/arap/internal/logging"
	"ledgerdesk/arap/internal/models"
	"ledgerdesk/arap/internal/store"
)

var testNow = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func openTestLedger(t *testing.T) (*Ledger, *store.Store) {
	t.Helper()
	st, err := store.New(t.TempDir(), &logging.MockLogger{})
	require.NoError(t, err)
	l, err := Open(st, &logging.MockLogger{})
	require.NoError(t, err)
	l.SetClock(func() time.Time { return testNow })
	return l, st
}

func receivableRecord(name string, due models.Date) models.Receivable {
	return models.Receivable{
		CustomerName: name,
		Amount:       decimal.NewFromInt(100),
		DueDate:      due,
		Status:       models.StatusPending,
	}
}

func TestImportWorkbook(t *testing.T) {
	l, st := openTestLedger(t)

	receivables := []models.Receivable{
		receivableRecord("A公司", models.NewDate(2025, time.March, 15)),
		receivableRecord("B公司", models.NewDate(2025, time.March, 20)),
	}
	payables := []models.Payable{
		{SupplierName: "供应商", Amount: decimal.NewFromInt(50), DueDate: models.NewDate(2025, time.March, 12), Status: models.StatusPending},
	}

	require.NoError(t, l.ImportWorkbook("book.xlsx", receivables, payables))

	// Repositories reassigned sequential ids.
	records := l.Receivables().Records()
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, 2, records[1].ID)

	// The persisted feed covers both collections.
	feed, err := st.LoadTransactions()
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "receivable-1", feed[0].ID)
	assert.Equal(t, "receivable-2", feed[1].ID)
	assert.Equal(t, "payable-1", feed[2].ID)

	name, err := l.LastImportFile()
	require.NoError(t, err)
	assert.Equal(t, "book.xlsx", name)
}

func TestImportReplacesPriorCollections(t *testing.T) {
	l, _ := openTestLedger(t)
	require.NoError(t, l.ImportWorkbook("first.xlsx", []models.Receivable{
		receivableRecord("old", models.NewDate(2025, time.March, 15)),
	}, nil))

	require.NoError(t, l.ImportWorkbook("second.xlsx", []models.Receivable{
		receivableRecord("new-1", models.NewDate(2025, time.March, 15)),
		receivableRecord("new-2", models.NewDate(2025, time.March, 16)),
	}, nil))

	records := l.Receivables().Records()
	require.Len(t, records, 2)
	assert.Equal(t, "new-1", records[0].CustomerName)
	assert.Empty(t, l.Payables().Records())
}

func TestToggleKeepsFeedStatusInAgreement(t *testing.T) {
	l, st := openTestLedger(t)
	require.NoError(t, l.ImportWorkbook("book.xlsx", []models.Receivable{
		receivableRecord("A公司", models.NewDate(2025, time.March, 15)),
	}, nil))

	_, err := l.Receivables().ToggleStatus(1)
	require.NoError(t, err)

	feed, err := st.LoadTransactions()
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "receivable-1", feed[0].ID)
	assert.Equal(t, models.StatusCompleted, feed[0].Status)

	rec, err := l.Receivables().Get(1)
	require.NoError(t, err)
	assert.Equal(t, rec.Status, feed[0].Status)
}

func TestCompleteTransaction(t *testing.T) {
	l, st := openTestLedger(t)
	require.NoError(t, l.ImportWorkbook("book.xlsx",
		[]models.Receivable{receivableRecord("A公司", models.NewDate(2025, time.March, 15))},
		[]models.Payable{{SupplierName: "供应商", DueDate: models.NewDate(2025, time.March, 12), Status: models.StatusPending}},
	))

	tx, err := l.CompleteTransaction("payable-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, tx.Status)

	// The source record was mutated; the feed followed.
	rec, err := l.Payables().Get(1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, rec.Status)

	feed, err := st.LoadTransactions()
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, models.StatusPending, feed[0].Status)
	assert.Equal(t, models.StatusCompleted, feed[1].Status)
}

func TestCompleteTransactionIdempotent(t *testing.T) {
	l, _ := openTestLedger(t)
	require.NoError(t, l.ImportWorkbook("book.xlsx",
		[]models.Receivable{receivableRecord("A公司", models.NewDate(2025, time.March, 15))}, nil))

	_, err := l.CompleteTransaction("receivable-1")
	require.NoError(t, err)

	// Completing again does not toggle back to pending.
	tx, err := l.CompleteTransaction("receivable-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, tx.Status)
}

func TestCompleteTransactionErrors(t *testing.T) {
	l, _ := openTestLedger(t)

	_, err := l.CompleteTransaction("garbage")
	assert.Error(t, err)

	_, err = l.CompleteTransaction("receivable-99")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestTransactionsComputedAgainstClock(t *testing.T) {
	l, _ := openTestLedger(t)
	require.NoError(t, l.ImportWorkbook("book.xlsx", []models.Receivable{
		receivableRecord("A公司", models.NewDate(2025, time.March, 11)),
	}, nil))

	feed := l.Transactions()
	require.Len(t, feed, 1)
	assert.Equal(t, 1, feed[0].DaysRemaining)
	assert.Equal(t, models.PriorityCritical, feed[0].Priority)

	// Two days later the same record has slipped past due.
	l.SetClock(func() time.Time { return testNow.AddDate(0, 0, 2) })
	feed = l.Transactions()
	assert.Equal(t, -1, feed[0].DaysRemaining)
	assert.Equal(t, models.PriorityCritical, feed[0].Priority)
}

func TestActivityFeed(t *testing.T) {
	l, _ := openTestLedger(t)
	require.NoError(t, l.ImportWorkbook("book.xlsx", []models.Receivable{
		receivableRecord("A公司", models.NewDate(2025, time.March, 15)),
	}, nil))
	_, err := l.CompleteTransaction("receivable-1")
	require.NoError(t, err)

	activity := l.Activity()
	require.Len(t, activity, 2)
	// Most recent first.
	assert.Equal(t, "complete", activity[0].Action)
	assert.Equal(t, models.KindReceivable, activity[0].Kind)
	assert.Equal(t, "import", activity[1].Action)
	assert.NotEmpty(t, activity[0].ID)
}

func TestActivityPersistsAcrossOpen(t *testing.T) {
	st, err := store.New(t.TempDir(), &logging.MockLogger{})
	require.NoError(t, err)

	l, err := Open(st, &logging.MockLogger{})
	require.NoError(t, err)
	require.NoError(t, l.ImportWorkbook("book.xlsx", nil, nil))

	reopened, err := Open(st, &logging.MockLogger{})
	require.NoError(t, err)
	activity := reopened.Activity()
	require.Len(t, activity, 1)
	assert.Equal(t, "import", activity[0].Action)
}

func TestOpenRestoresCollections(t *testing.T) {
	dir := t.TempDir()
	st, err := store.New(dir, &logging.MockLogger{})
	require.NoError(t, err)

	l, err := Open(st, &logging.MockLogger{})
	require.NoError(t, err)
	require.NoError(t, l.ImportWorkbook("book.xlsx", []models.Receivable{
		receivableRecord("A公司", models.NewDate(2025, time.March, 15)),
	}, nil))

	st2, err := store.New(dir, &logging.MockLogger{})
	require.NoError(t, err)
	reopened, err := Open(st2, &logging.MockLogger{})
	require.NoError(t, err)

	records := reopened.Receivables().Records()
	require.Len(t, records, 1)
	assert.Equal(t, "A公司", records[0].CustomerName)
}

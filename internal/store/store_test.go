package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerdesk/arap/internal/logging"
	"ledgerdesk/arap/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), &logging.MockLogger{})
	require.NoError(t, err)
	return s
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := New(dir, &logging.MockLogger{})
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestReceivablesRoundTrip(t *testing.T) {
	s := newTestStore(t)

	records := []models.Receivable{
		{
			ID:             1,
			CustomerName:   "A公司",
			ContractNumber: "C1",
			Amount:         decimal.NewFromInt(100),
			InvoiceDate:    models.NewDate(2025, time.January, 1),
			DueDate:        models.NewDate(2025, time.January, 2),
			Status:         models.StatusPending,
		},
	}
	require.NoError(t, s.SaveReceivables(records))

	loaded, err := s.LoadReceivables()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "A公司", loaded[0].CustomerName)
	assert.True(t, loaded[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, models.NewDate(2025, time.January, 2), loaded[0].DueDate)
}

func TestLoadAbsentKeysAreEmpty(t *testing.T) {
	s := newTestStore(t)

	receivables, err := s.LoadReceivables()
	require.NoError(t, err)
	assert.Empty(t, receivables)

	payables, err := s.LoadPayables()
	require.NoError(t, err)
	assert.Empty(t, payables)

	transactions, err := s.LoadTransactions()
	require.NoError(t, err)
	assert.Empty(t, transactions)

	name, err := s.LastImportFile()
	require.NoError(t, err)
	assert.Equal(t, "", name)
}

func TestTransactionsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	transactions := []models.Transaction{
		{
			ID:            "receivable-1",
			Kind:          models.KindReceivable,
			Counterparty:  "A公司",
			Amount:        decimal.NewFromInt(100),
			DueDate:       models.NewDate(2025, time.January, 2),
			Status:        models.StatusPending,
			DaysRemaining: 3,
			Priority:      models.PriorityHigh,
		},
	}
	require.NoError(t, s.SaveTransactions(transactions))

	loaded, err := s.LoadTransactions()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "receivable-1", loaded[0].ID)
	assert.Equal(t, models.PriorityHigh, loaded[0].Priority)
}

func TestSaveEmptySliceWritesEmptyArray(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveReceivables(nil))

	data, err := os.ReadFile(filepath.Join(s.Dir(), "receivables.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestLastImportFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveLastImportFile("book.xlsx"))

	name, err := s.LastImportFile()
	require.NoError(t, err)
	assert.Equal(t, "book.xlsx", name)
}

func TestActivityRoundTrip(t *testing.T) {
	s := newTestStore(t)
	entries := []models.Activity{
		{ID: "a1", Time: time.Now().UTC().Truncate(time.Second), Action: "import", Detail: "book.xlsx"},
	}
	require.NoError(t, s.SaveActivity(entries))

	loaded, err := s.LoadActivity()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "import", loaded[0].Action)
}

func TestLoadCorruptFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "receivables.json"), []byte("{not json"), 0o644))

	_, err := s.LoadReceivables()
	assert.Error(t, err)
}

func TestLastWriteWins(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveReceivables([]models.Receivable{{ID: 1, CustomerName: "first"}}))
	require.NoError(t, s.SaveReceivables([]models.Receivable{{ID: 1, CustomerName: "second"}}))

	loaded, err := s.LoadReceivables()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "second", loaded[0].CustomerName)
}

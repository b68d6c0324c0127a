package xlsx

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ledgerdesk/arap/internal/logging"
	"ledgerdesk/arap/internal/models"
)

func TestWriteTemplateParseRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.xlsx")
	log := &logging.MockLogger{}

	require.NoError(t, WriteTemplate(path, log))

	result, err := ParseFile(path, log)
	require.NoError(t, err)

	assert.Equal(t, "template.xlsx", result.SourceFile)
	require.Len(t, result.ReceivableRows, 2)
	require.Len(t, result.PayableRows, 2)

	first := result.ReceivableRows[0]
	assert.Equal(t, "上海科技有限公司", first["客户名称"])
	assert.Equal(t, "HT2025001", first["合同编号"])
	assert.Equal(t, "2025-03-15", first["到期日期"])

	firstPayable := result.PayableRows[0]
	assert.Equal(t, "北京供应商贸易有限公司", firstPayable["供应商名称"])
	assert.Equal(t, "银行转账", firstPayable["付款方式"])
}

func TestExportFileParseRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xlsx")
	log := &logging.MockLogger{}

	receivables := []models.Receivable{
		{
			ID:             1,
			CustomerName:   "A公司",
			ContractNumber: "HT100",
			Amount:         decimal.NewFromInt(1500),
			InvoiceDate:    models.NewDate(2025, time.February, 1),
			DueDate:        models.NewDate(2025, time.March, 1),
			Contact:        "王五",
			Phone:          "13700137000",
			Status:         models.StatusPending,
			Notes:          "首期",
		},
	}
	payables := []models.Payable{
		{
			ID:            1,
			SupplierName:  "B供应商",
			PurchaseOrder: "CG200",
			Amount:        decimal.NewFromInt(300),
			InvoiceDate:   models.NewDate(2025, time.February, 5),
			DueDate:       models.NewDate(2025, time.March, 5),
			PaymentMethod: "银行转账",
			Status:        models.StatusCompleted,
		},
	}

	require.NoError(t, ExportFile(path, receivables, payables, log))

	result, err := ParseFile(path, log)
	require.NoError(t, err)

	require.Len(t, result.ReceivableRows, 1)
	row := result.ReceivableRows[0]
	assert.Equal(t, "A公司", row["客户名称"])
	assert.Equal(t, "1500", row["应收金额"])
	assert.Equal(t, "2025-03-01", row["到期日期"])
	assert.Equal(t, "pending", row["状态"])

	require.Len(t, result.PayableRows, 1)
	payableRow := result.PayableRows[0]
	assert.Equal(t, "B供应商", payableRow["供应商名称"])
	assert.Equal(t, "completed", payableRow["状态"])
	// Empty cells are omitted rather than mapped to blanks.
	_, ok := payableRow["备注"]
	assert.False(t, ok)
}

// writeGenericWorkbook builds a workbook whose sheet names give the
// importer no hints, so ParseFile has to fall back on sheet position.
func writeGenericWorkbook(t *testing.T, path string, sheets map[string][][]any) {
	t.Helper()

	f := excelize.NewFile()
	defer func() { require.NoError(t, f.Close()) }()

	names := make([]string, 0, len(sheets))
	for name := range sheets {
		names = append(names, name)
	}
	// Sheet1 already exists in a fresh workbook; create the rest.
	for _, name := range names {
		if name == "Sheet1" {
			continue
		}
		_, err := f.NewSheet(name)
		require.NoError(t, err)
	}
	if _, ok := sheets["Sheet1"]; !ok {
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}

	for name, rows := range sheets {
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func TestParseFileSingleUnnamedSheetFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.xlsx")
	log := &logging.MockLogger{}

	writeGenericWorkbook(t, path, map[string][][]any{
		"Sheet1": {
			{"客户名称", "合同编号", "应收金额", "到期日期"},
			{"A公司", "HT100", 1500, "2025-03-01"},
		},
	})

	result, err := ParseFile(path, log)
	require.NoError(t, err)

	// With no name match the first sheet is read as receivables and
	// there is no payable sheet to fall back on.
	require.Len(t, result.ReceivableRows, 1)
	assert.Equal(t, "A公司", result.ReceivableRows[0]["客户名称"])
	assert.Empty(t, result.PayableRows)
}

func TestParseFileSecondUnnamedSheetReadAsPayables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain2.xlsx")
	log := &logging.MockLogger{}

	writeGenericWorkbook(t, path, map[string][][]any{
		"Sheet1": {
			{"客户名称", "应收金额"},
			{"A公司", 1500},
		},
		"Sheet2": {
			{"供应商名称", "应付金额", "付款截止日"},
			{"B供应商", 300, "2025-03-05"},
		},
	})

	result, err := ParseFile(path, log)
	require.NoError(t, err)

	require.Len(t, result.ReceivableRows, 1)
	assert.Equal(t, "A公司", result.ReceivableRows[0]["客户名称"])
	require.Len(t, result.PayableRows, 1)
	assert.Equal(t, "B供应商", result.PayableRows[0]["供应商名称"])
	assert.Equal(t, "2025-03-05", result.PayableRows[0]["付款截止日"])
}

func TestParseFileMissingFile(t *testing.T) {
	log := &logging.MockLogger{}
	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.xlsx"), log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.xlsx")
}

func TestValidateFormat(t *testing.T) {
	dir := t.TempDir()
	log := &logging.MockLogger{}

	workbook := filepath.Join(dir, "ok.xlsx")
	require.NoError(t, WriteTemplate(workbook, log))
	ok, err := ValidateFormat(workbook)
	require.NoError(t, err)
	assert.True(t, ok)

	bogus := filepath.Join(dir, "bogus.xlsx")
	require.NoError(t, os.WriteFile(bogus, []byte("not a workbook"), 0o644))
	ok, err = ValidateFormat(bogus)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWriteTransactionsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	log := &logging.MockLogger{}

	transactions := []models.Transaction{
		{
			ID:            "receivable-1",
			Kind:          models.KindReceivable,
			Counterparty:  "A公司",
			Amount:        decimal.NewFromInt(1500),
			DueDate:       models.NewDate(2025, time.March, 1),
			Status:        models.StatusPending,
			DaysRemaining: 5,
			Priority:      models.PriorityMedium,
		},
	}

	require.NoError(t, WriteTransactionsCSV(path, transactions, log))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "receivable-1")
	assert.Contains(t, string(data), "2025-03-01")
}

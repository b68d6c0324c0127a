package xlsx

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"ledgerdesk/arap/internal/logging"
	"ledgerdesk/arap/internal/models"
)

// Column headers in template order. Export and the template use the
// domain-language names; the importer accepts these plus the English
// equivalents.
var (
	receivableHeaders = []string{"客户名称", "合同编号", "应收金额", "开票日期", "到期日期", "联系人", "联系电话", "状态", "备注"}
	payableHeaders    = []string{"供应商名称", "采购单号", "应付金额", "发票日期", "付款截止日", "付款方式", "联系人", "状态", "备注"}
)

// ExportFile writes both collections to a two-sheet workbook in the
// template layout.
func ExportFile(path string, receivables []models.Receivable, payables []models.Payable, log logging.Logger) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("failed to close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetReceivable); err != nil {
		return fmt.Errorf("error naming receivable sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetPayable); err != nil {
		return fmt.Errorf("error creating payable sheet: %w", err)
	}

	receivableRows := make([][]any, 0, len(receivables))
	for _, r := range receivables {
		receivableRows = append(receivableRows, []any{
			r.CustomerName, r.ContractNumber, r.Amount.InexactFloat64(),
			r.InvoiceDate.String(), r.DueDate.String(),
			r.Contact, r.Phone, string(r.Status), r.Notes,
		})
	}
	if err := writeSheet(f, SheetReceivable, receivableHeaders, receivableRows); err != nil {
		return err
	}

	payableRows := make([][]any, 0, len(payables))
	for _, p := range payables {
		payableRows = append(payableRows, []any{
			p.SupplierName, p.PurchaseOrder, p.Amount.InexactFloat64(),
			p.InvoiceDate.String(), p.DueDate.String(),
			p.PaymentMethod, p.Contact, string(p.Status), p.Notes,
		})
	}
	if err := writeSheet(f, SheetPayable, payableHeaders, payableRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error writing workbook %s: %w", path, err)
	}
	log.Info("workbook exported",
		logging.F("file", path),
		logging.F("receivables", len(receivables)),
		logging.F("payables", len(payables)))
	return nil
}

// WriteTemplate writes the bilingual import template with sample rows.
func WriteTemplate(path string, log logging.Logger) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("failed to close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetReceivable); err != nil {
		return fmt.Errorf("error naming receivable sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetPayable); err != nil {
		return fmt.Errorf("error creating payable sheet: %w", err)
	}

	receivableSamples := [][]any{
		{"上海科技有限公司", "HT2025001", 12500, "2025-02-15", "2025-03-15", "张三", "13800138000", "pending", "首期款项"},
		{"北京网络科技有限公司", "HT2025002", 8750, "2025-02-20", "2025-03-20", "李四", "13900139000", "pending", "服务费"},
	}
	if err := writeSheet(f, SheetReceivable, receivableHeaders, receivableSamples); err != nil {
		return err
	}

	payableSamples := [][]any{
		{"北京供应商贸易有限公司", "CG2025001", 8750, "2025-02-10", "2025-03-12", "银行转账", "赵六", "pending", "原材料采购"},
		{"深圳材料供应有限公司", "CG2025002", 3200, "2025-02-14", "2025-03-14", "银行转账", "钱七", "pending", "办公用品"},
	}
	if err := writeSheet(f, SheetPayable, payableHeaders, payableSamples); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error writing template %s: %w", path, err)
	}
	log.Info("template written", logging.F("file", path))
	return nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	headerCells := make([]any, len(headers))
	for i, h := range headers {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		return fmt.Errorf("error writing headers to %s: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("error writing row %d to %s: %w", i+2, sheet, err)
		}
	}
	return nil
}

// WriteTransactionsCSV exports the derived feed as CSV for downstream
// spreadsheet or reporting tools.
func WriteTransactionsCSV(path string, transactions []models.Transaction, log logging.Logger) error {
	file, err := os.Create(path) // #nosec G304 -- output path is user-provided
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("failed to close CSV file")
		}
	}()

	if err := gocsv.MarshalFile(&transactions, file); err != nil {
		return fmt.Errorf("error writing transactions CSV: %w", err)
	}
	log.Info("transaction feed exported", logging.F("file", path), logging.F("count", len(transactions)))
	return nil
}

// Package normalizer maps raw imported workbook rows, whose column names
// vary between the Chinese template headers and their English
// equivalents, onto the canonical record shapes. Import is best-effort:
// missing or malformed cells are coerced to defaults, never rejected.
package normalizer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"ledgerdesk/arap/internal/dateutils"
	"ledgerdesk/arap/internal/models"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldAmount
	fieldDate
	fieldStatus
)

// fieldSpec declares one canonical field and the source column names
// accepted for it, in priority order (template header first, English
// fallback second).
type fieldSpec struct {
	canonical string
	aliases   []string
	kind      fieldKind
}

var receivableFields = []fieldSpec{
	{"customerName", []string{"客户名称", "customerName"}, fieldText},
	{"contractNumber", []string{"合同编号", "contractNumber"}, fieldText},
	{"amount", []string{"应收金额", "amount"}, fieldAmount},
	{"invoiceDate", []string{"开票日期", "invoiceDate"}, fieldDate},
	{"dueDate", []string{"到期日期", "dueDate"}, fieldDate},
	{"contact", []string{"联系人", "contact"}, fieldText},
	{"phone", []string{"联系电话", "phone"}, fieldText},
	{"status", []string{"状态", "status"}, fieldStatus},
	{"notes", []string{"备注", "notes"}, fieldText},
}

var payableFields = []fieldSpec{
	{"supplierName", []string{"供应商名称", "supplierName"}, fieldText},
	{"purchaseOrder", []string{"采购单号", "purchaseOrder"}, fieldText},
	{"amount", []string{"应付金额", "amount"}, fieldAmount},
	{"invoiceDate", []string{"发票日期", "invoiceDate"}, fieldDate},
	{"dueDate", []string{"付款截止日", "dueDate"}, fieldDate},
	{"paymentMethod", []string{"付款方式", "paymentMethod"}, fieldText},
	{"contact", []string{"联系人", "contact"}, fieldText},
	{"status", []string{"状态", "status"}, fieldStatus},
	{"notes", []string{"备注", "notes"}, fieldText},
}

// NormalizeReceivable maps a raw row onto a Receivable. The id is set to
// ordinal; every field is populated, falling back to "" for text, zero
// for the amount and unparseable dates, and pending for the status.
func NormalizeReceivable(row map[string]any, ordinal int) models.Receivable {
	v := coerceRow(row, receivableFields)
	return models.Receivable{
		ID:             ordinal,
		CustomerName:   v.texts["customerName"],
		ContractNumber: v.texts["contractNumber"],
		Amount:         v.amount,
		InvoiceDate:    v.dates["invoiceDate"],
		DueDate:        v.dates["dueDate"],
		Contact:        v.texts["contact"],
		Phone:          v.texts["phone"],
		Status:         v.status,
		Notes:          v.texts["notes"],
	}
}

// NormalizePayable maps a raw row onto a Payable, analogous to
// NormalizeReceivable.
func NormalizePayable(row map[string]any, ordinal int) models.Payable {
	v := coerceRow(row, payableFields)
	return models.Payable{
		ID:            ordinal,
		SupplierName:  v.texts["supplierName"],
		PurchaseOrder: v.texts["purchaseOrder"],
		Amount:        v.amount,
		InvoiceDate:   v.dates["invoiceDate"],
		DueDate:       v.dates["dueDate"],
		PaymentMethod: v.texts["paymentMethod"],
		Contact:       v.texts["contact"],
		Status:        v.status,
		Notes:         v.texts["notes"],
	}
}

// NormalizeReceivables converts a sheet of raw rows, assigning 1-based
// sequential ids in input order.
func NormalizeReceivables(rows []map[string]any) []models.Receivable {
	records := make([]models.Receivable, 0, len(rows))
	for i, row := range rows {
		records = append(records, NormalizeReceivable(row, i+1))
	}
	return records
}

// NormalizePayables converts a sheet of raw rows, assigning 1-based
// sequential ids in input order.
func NormalizePayables(rows []map[string]any) []models.Payable {
	records := make([]models.Payable, 0, len(rows))
	for i, row := range rows {
		records = append(records, NormalizePayable(row, i+1))
	}
	return records
}

type rowValues struct {
	texts  map[string]string
	dates  map[string]models.Date
	amount decimal.Decimal
	status models.Status
}

func coerceRow(row map[string]any, specs []fieldSpec) rowValues {
	v := rowValues{
		texts:  make(map[string]string),
		dates:  make(map[string]models.Date),
		status: models.StatusPending,
	}
	for _, spec := range specs {
		raw, ok := lookup(row, spec.aliases)
		switch spec.kind {
		case fieldText:
			if ok {
				v.texts[spec.canonical] = coerceText(raw)
			} else {
				v.texts[spec.canonical] = ""
			}
		case fieldAmount:
			if ok {
				v.amount = coerceAmount(raw)
			}
		case fieldDate:
			if ok {
				v.dates[spec.canonical] = coerceDate(raw)
			}
		case fieldStatus:
			if ok {
				v.status = coerceStatus(raw)
			}
		}
	}
	return v
}

// lookup returns the first alias whose value is present and non-blank.
// A blank cell under the template header falls through to the English
// alias.
func lookup(row map[string]any, aliases []string) (any, bool) {
	for _, alias := range aliases {
		raw, ok := row[alias]
		if !ok || raw == nil {
			continue
		}
		if s, isString := raw.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return raw, true
	}
	return nil, false
}

func coerceText(raw any) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return decimal.NewFromFloat(v).String()
	case int:
		return decimal.NewFromInt(int64(v)).String()
	case int64:
		return decimal.NewFromInt(v).String()
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func coerceAmount(raw any) decimal.Decimal {
	switch v := raw.(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

func coerceDate(raw any) models.Date {
	switch v := raw.(type) {
	case models.Date:
		return v
	case string:
		t, err := dateutils.ParseDate(v)
		if err != nil {
			return models.Date{}
		}
		return models.DateOf(t)
	default:
		return models.Date{}
	}
}

func coerceStatus(raw any) models.Status {
	if s, ok := raw.(string); ok {
		if strings.EqualFold(strings.TrimSpace(s), string(models.StatusCompleted)) {
			return models.StatusCompleted
		}
	}
	return models.StatusPending
}


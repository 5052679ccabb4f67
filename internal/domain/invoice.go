package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

var InvoiceStatuses = []InvoiceStatus{
	InvoiceStatusDraft,
	InvoiceStatusSent,
	InvoiceStatusPaid,
	InvoiceStatusCancelled,
}

type InvoiceRow struct {
	ID        string        `json:"id"`
	Status    InvoiceStatus `json:"status"`
	Total     *float64      `json:"total"`
	IssueDate string        `json:"issue_date"`
	PaidDate  *string       `json:"paid_date"`
}

// PaidInvoicesToRecords converte as faturas pagas em registros de métrica usando a data de pagamento
func PaidInvoicesToRecords(invoices []InvoiceRow, loc *time.Location) []MetricRecord {
	records := make([]MetricRecord, 0, len(invoices))
	for _, invoice := range invoices {
		if invoice.Status != InvoiceStatusPaid {
			continue
		}

		paidDate := ""
		if invoice.PaidDate != nil {
			paidDate = *invoice.PaidDate
		}

		records = append(records, NewMetricRecord(paidDate, invoice.Total, CategoryNone, loc))
	}

	return records
}

type InvoiceStatusTotal struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// InvoiceStatusSummary traz o total e a quantidade de faturas por estado
type InvoiceStatusSummary struct {
	ByStatus map[InvoiceStatus]InvoiceStatusTotal `json:"by_status"`
}

func SummarizeInvoices(invoices []InvoiceRow) InvoiceStatusSummary {
	summary := InvoiceStatusSummary{
		ByStatus: make(map[InvoiceStatus]InvoiceStatusTotal, len(InvoiceStatuses)),
	}
	for _, status := range InvoiceStatuses {
		summary.ByStatus[status] = InvoiceStatusTotal{Amount: decimal.Zero}
	}

	for _, invoice := range invoices {
		entry := summary.ByStatus[invoice.Status]
		entry.Count++
		if invoice.Total != nil {
			entry.Amount = entry.Amount.Add(decimal.NewFromFloat(*invoice.Total))
		}
		summary.ByStatus[invoice.Status] = entry
	}

	return summary
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyRevenueReport representa o fechamento mensal armazenado no banco
type MonthlyRevenueReport struct {
	ID                string          `json:"id"`
	Period            string          `json:"period"` // Período no formato mm-yyyy
	Revenue           decimal.Decimal `json:"revenue"`
	SalesCount        int             `json:"sales_count"`
	AverageTicket     decimal.Decimal `json:"average_ticket"`
	ServicesCompleted int             `json:"services_completed"`
	ServicesRevenue   decimal.Decimal `json:"services_revenue"`
	InvoicesPaid      int             `json:"invoices_paid"`
	InvoicesAmount    decimal.Decimal `json:"invoices_amount"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// FormatPeriod formata o mês da data no formato mm-yyyy
func FormatPeriod(date time.Time) string {
	return date.Format("01-2006")
}

// ParsePeriod interpreta um período mm-yyyy como o primeiro dia do mês em loc
func ParsePeriod(period string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	return time.ParseInLocation("01-2006", period, loc)
}

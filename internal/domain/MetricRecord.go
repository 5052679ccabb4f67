package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category identifica o tipo de serviço de um registro, ou nenhum
type Category string

const (
	CategoryNone         Category = ""
	CategoryInstallation Category = "installation"
	CategoryRepair       Category = "repair"
	CategoryMaintenance  Category = "maintenance"
	CategoryInspection   Category = "inspection"
)

// MetricRecord representa um evento de negócio com data: uma venda, um serviço
// concluído ou uma fatura paga
type MetricRecord struct {
	OccurredAt time.Time       `json:"occurred_at"`
	Amount     decimal.Decimal `json:"amount"`
	Category   Category        `json:"category,omitempty"`
}

// IsValid indica se o registro possui uma data utilizável. Registros cuja data
// não pôde ser interpretada ficam com o tempo zero e são ignorados na agregação.
func (r MetricRecord) IsValid() bool {
	return !r.OccurredAt.IsZero()
}

// NewMetricRecord monta um registro a partir dos campos crus do backend. Datas
// sem fuso são interpretadas em loc.
func NewMetricRecord(occurredAt string, amount *float64, category Category, loc *time.Location) MetricRecord {
	record := MetricRecord{
		Amount:   decimal.Zero,
		Category: category,
	}

	if amount != nil && *amount > 0 {
		record.Amount = decimal.NewFromFloat(*amount)
	}

	if t, ok := ParseTimestamp(occurredAt, loc); ok {
		record.OccurredAt = t
	}

	return record
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseTimestamp interpreta as datas devolvidas pelo backend (timestamptz, timestamp e date)
func ParseTimestamp(value string, loc *time.Location) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	if loc == nil {
		loc = time.Local
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

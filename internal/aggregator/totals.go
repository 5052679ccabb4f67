package aggregator

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

// DefaultGrowthWindowDays é a janela usada no crescimento recente de vendas
const DefaultGrowthWindowDays = 30

// Totals soma os valores e conta os registros válidos em [from, to]
func Totals(records []domain.MetricRecord, from, to time.Time) (decimal.Decimal, int) {
	sum := decimal.Zero
	count := 0

	for _, record := range records {
		if !record.IsValid() || record.OccurredAt.Before(from) || record.OccurredAt.After(to) {
			continue
		}

		sum = sum.Add(record.Amount)
		count++
	}

	return sum, count
}

// Compare calcula os totais da janela atual e da anterior do período e as variações
func Compare(records []domain.MetricRecord, period domain.ReportingPeriod, now time.Time) domain.PeriodComparison {
	window := ResolveWindow(period, now)

	currentSum, currentCount := Totals(records, window.Start, window.End)
	previousSum, previousCount := Totals(records, window.PreviousStart, window.PreviousEnd)

	return domain.PeriodComparison{
		Period:        period,
		Window:        window,
		Revenue:       CalculateDeltaDecimal(currentSum, previousSum),
		Count:         CalculateDelta(float64(currentCount), float64(previousCount)),
		AverageTicket: CalculateDeltaDecimal(AverageTicket(currentSum, currentCount), AverageTicket(previousSum, previousCount)),
	}
}

// AverageTicket divide o total pela quantidade, ou zero quando não há registros
func AverageTicket(sum decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}

	return sum.Div(decimal.NewFromInt(int64(count))).Round(2)
}

// RollingGrowth compara os últimos days dias com os days dias anteriores
func RollingGrowth(records []domain.MetricRecord, days int, now time.Time) domain.DeltaMetric {
	if days <= 0 {
		days = DefaultGrowthWindowDays
	}

	recentStart := now.AddDate(0, 0, -days)
	previousStart := now.AddDate(0, 0, -2*days)

	recent := decimal.Zero
	previous := decimal.Zero
	for _, record := range records {
		if !record.IsValid() {
			continue
		}

		switch t := record.OccurredAt; {
		case !t.Before(recentStart):
			recent = recent.Add(record.Amount)
		case !t.Before(previousStart):
			previous = previous.Add(record.Amount)
		}
	}

	return CalculateDeltaDecimal(recent, previous)
}

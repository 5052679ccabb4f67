package aggregator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

func TestTotals_InclusiveBounds(t *testing.T) {
	from := date(2024, 6, 1, 0, 0)
	to := endOf(2024, 6, 30)
	records := []domain.MetricRecord{
		record(from, 1),
		record(to, 2),
		record(date(2024, 7, 1, 0, 0), 4),
		{Amount: decimal.NewFromInt(8)},
	}

	sum, count := Totals(records, from, to)

	assert.True(t, decimal.NewFromInt(3).Equal(sum))
	assert.Equal(t, 2, count)
}

func TestCompare(t *testing.T) {
	now := date(2024, 1, 10, 8, 0)
	records := []domain.MetricRecord{
		record(date(2024, 1, 2, 10, 0), 100),
		record(date(2024, 1, 9, 10, 0), 50),
		record(date(2023, 12, 31, 23, 0), 300), // dezembro
	}

	comparison := Compare(records, domain.PeriodMonth, now)

	assert.Equal(t, domain.PeriodMonth, comparison.Period)
	assert.Equal(t, 150.0, comparison.Revenue.CurrentValue)
	assert.Equal(t, 300.0, comparison.Revenue.PreviousValue)
	assert.Equal(t, 50.0, comparison.Revenue.PercentChange)
	assert.Equal(t, domain.DirectionDown, comparison.Revenue.Direction)

	assert.Equal(t, 2.0, comparison.Count.CurrentValue)
	assert.Equal(t, 1.0, comparison.Count.PreviousValue)
	assert.Equal(t, domain.DirectionUp, comparison.Count.Direction)

	assert.Equal(t, 75.0, comparison.AverageTicket.CurrentValue)
	assert.Equal(t, 300.0, comparison.AverageTicket.PreviousValue)
	assert.Equal(t, 75.0, comparison.AverageTicket.PercentChange)
}

func TestAverageTicket(t *testing.T) {
	assert.True(t, AverageTicket(decimal.NewFromInt(10), 0).IsZero())
	assert.Equal(t, "3.33", AverageTicket(decimal.NewFromInt(10), 3).StringFixed(2))
}

func TestRollingGrowth(t *testing.T) {
	now := date(2024, 6, 30, 12, 0)
	records := []domain.MetricRecord{
		record(date(2024, 6, 20, 0, 0), 150), // últimos 30 dias
		record(date(2024, 5, 10, 0, 0), 100), // 30 dias anteriores
		record(date(2024, 3, 1, 0, 0), 999),  // fora das duas janelas
	}

	growth := RollingGrowth(records, 0, now)

	assert.Equal(t, 150.0, growth.CurrentValue)
	assert.Equal(t, 100.0, growth.PreviousValue)
	assert.Equal(t, 50.0, growth.PercentChange)
	assert.Equal(t, domain.DirectionUp, growth.Direction)

	growth = RollingGrowth(records[:1], 30, now)
	assert.Equal(t, 100.0, growth.PercentChange)
}

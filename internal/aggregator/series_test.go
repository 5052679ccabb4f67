package aggregator

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

func record(at time.Time, amount int64) domain.MetricRecord {
	return domain.MetricRecord{OccurredAt: at, Amount: decimal.NewFromInt(amount)}
}

func TestBuildSeries_Day(t *testing.T) {
	now := date(2024, 6, 15, 14, 0)
	records := []domain.MetricRecord{
		record(date(2024, 6, 15, 9, 0), 10),
		record(date(2024, 6, 15, 9, 30), 20),
		record(date(2024, 6, 15, 23, 0), 5),
		record(date(2024, 6, 14, 9, 0), 100), // dia anterior
		{Amount: decimal.NewFromInt(50)},     // sem data
	}

	points := BuildSeries(records, domain.PeriodDay, now, LocaleEnUS)

	require.Len(t, points, 24)
	for hour, point := range points {
		switch hour {
		case 9:
			assert.Equal(t, "9:00", point.Label)
			assert.True(t, decimal.NewFromInt(30).Equal(point.Total))
			assert.Equal(t, 2, point.Count)
		case 23:
			assert.Equal(t, "23:00", point.Label)
			assert.True(t, decimal.NewFromInt(5).Equal(point.Total))
			assert.Equal(t, 1, point.Count)
		default:
			assert.True(t, point.Total.IsZero(), "hora %d", hour)
			assert.Zero(t, point.Count)
		}
	}
	assert.Equal(t, "0:00", points[0].Label)
}

func TestBuildSeries_Week(t *testing.T) {
	now := date(2024, 6, 13, 10, 0) // quinta
	records := []domain.MetricRecord{
		record(date(2024, 6, 9, 0, 0), 7),    // domingo, início do bucket
		record(date(2024, 6, 15, 23, 59), 3), // sábado
		record(date(2024, 6, 16, 0, 0), 99),  // próxima semana
	}

	points := BuildSeries(records, domain.PeriodWeek, now, LocaleEsMX)

	require.Len(t, points, 7)
	assert.Equal(t, "dom", points[0].Label)
	assert.Equal(t, "sáb", points[6].Label)
	assert.True(t, decimal.NewFromInt(7).Equal(points[0].Total))
	assert.True(t, decimal.NewFromInt(3).Equal(points[6].Total))
}

func TestBuildSeries_Month(t *testing.T) {
	now := date(2024, 6, 28, 10, 0)
	records := []domain.MetricRecord{
		record(date(2024, 6, 1, 0, 0), 1),   // primeiro instante da janela de 4 semanas
		record(date(2024, 6, 7, 23, 0), 2),  // ainda na semana 1
		record(date(2024, 6, 8, 0, 0), 4),   // semana 2
		record(date(2024, 6, 28, 23, 0), 8), // semana 4
		record(date(2024, 5, 31, 23, 0), 16),
	}

	points := BuildSeries(records, domain.PeriodMonth, now, LocaleEnUS)

	require.Len(t, points, 4)
	assert.Equal(t, []string{"Week 1", "Week 2", "Week 3", "Week 4"}, labels(points))
	assert.True(t, decimal.NewFromInt(3).Equal(points[0].Total))
	assert.True(t, decimal.NewFromInt(4).Equal(points[1].Total))
	assert.True(t, points[2].Total.IsZero())
	assert.True(t, decimal.NewFromInt(8).Equal(points[3].Total))
}

func TestBuildSeries_Year(t *testing.T) {
	now := date(2024, 6, 15, 14, 0)
	records := []domain.MetricRecord{
		record(date(2024, 1, 31, 23, 59), 10),
		record(date(2024, 12, 31, 23, 59), 20),
		record(date(2023, 12, 31, 23, 59), 40),
	}

	points := BuildSeries(records, domain.PeriodYear, now, LocaleEnUS)

	require.Len(t, points, 12)
	assert.Equal(t, "Jan", points[0].Label)
	assert.Equal(t, "Dec", points[11].Label)
	assert.True(t, decimal.NewFromInt(10).Equal(points[0].Total))
	assert.True(t, decimal.NewFromInt(20).Equal(points[11].Total))
}

func TestBuildSeries_EmptyInput(t *testing.T) {
	now := date(2024, 6, 15, 14, 0)
	expectedLen := map[domain.ReportingPeriod]int{
		domain.PeriodDay:   24,
		domain.PeriodWeek:  7,
		domain.PeriodMonth: 4,
		domain.PeriodYear:  12,
	}

	for period, size := range expectedLen {
		points := BuildSeries(nil, period, now, LocaleEsMX)

		require.Len(t, points, size, period)
		for _, point := range points {
			assert.True(t, point.Total.IsZero())
			assert.Zero(t, point.Count)
		}
	}
}

// a soma dos buckets é igual à soma dos registros dentro do intervalo da série
func TestBuildSeries_SumMatchesSpan(t *testing.T) {
	faker := gofakeit.New(42)
	now := date(2024, 6, 15, 14, 0)

	records := make([]domain.MetricRecord, 0, 500)
	for i := 0; i < 500; i++ {
		at := faker.DateRange(date(2023, 1, 1, 0, 0), date(2025, 1, 1, 0, 0)).UTC()
		records = append(records, record(at, int64(faker.IntRange(0, 5000))))
	}

	for _, period := range domain.ReportingPeriods {
		points := BuildSeries(records, period, now, LocaleEnUS)
		start, end := SeriesSpan(period, now)

		expectedSum, expectedCount := Totals(records, start, end.Add(-time.Nanosecond))

		sum := decimal.Zero
		count := 0
		for _, point := range points {
			sum = sum.Add(point.Total)
			count += point.Count
		}

		assert.True(t, expectedSum.Equal(sum), "%s: %s != %s", period, expectedSum, sum)
		assert.Equal(t, expectedCount, count, period)
	}
}

func TestMonthlySeries(t *testing.T) {
	now := date(2024, 2, 10, 12, 0)
	records := []domain.MetricRecord{
		record(date(2023, 9, 1, 0, 0), 1),
		record(date(2023, 12, 25, 10, 0), 2),
		record(date(2024, 2, 29, 23, 0), 4),
		record(date(2023, 8, 31, 23, 0), 100), // fora dos 6 meses
	}

	points := MonthlySeries(records, 0, now, LocaleEsMX)

	require.Len(t, points, DefaultMonthlySeriesMonths)
	assert.Equal(t, []string{"sept", "oct", "nov", "dic", "ene", "feb"}, labels(points))
	assert.True(t, decimal.NewFromInt(1).Equal(points[0].Total))
	assert.True(t, decimal.NewFromInt(2).Equal(points[3].Total))
	assert.True(t, decimal.NewFromInt(4).Equal(points[5].Total))
}

func TestMonthlySpan(t *testing.T) {
	start, end := MonthlySpan(0, date(2024, 2, 10, 12, 0))

	assert.Equal(t, date(2023, 9, 1, 0, 0), start)
	assert.Equal(t, date(2024, 3, 1, 0, 0), end)
}

func TestLocaleFor(t *testing.T) {
	assert.Equal(t, LocaleEsMX, LocaleFor("es-MX"))
	assert.Equal(t, LocaleEsMX, LocaleFor(" es_mx "))
	assert.Equal(t, LocalePtBR, LocaleFor("pt-BR"))
	assert.Equal(t, LocaleEnUS, LocaleFor("fr-FR"))
	assert.Equal(t, LocaleEnUS, LocaleFor(""))
}

func labels(points []domain.BucketPoint) []string {
	result := make([]string, 0, len(points))
	for _, point := range points {
		result = append(result, point.Label)
	}
	return result
}

package aggregator

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

// DefaultMonthlySeriesMonths é a quantidade de meses do gráfico de receita mensal
const DefaultMonthlySeriesMonths = 6

type bucket struct {
	start time.Time
	end   time.Time
	label string
}

// BuildSeries distribui os registros nos buckets do período (24 horas, 7 dias
// da semana, 4 semanas móveis ou 12 meses) em ordem cronológica. Buckets sem
// registros continuam presentes com total e quantidade zerados.
func BuildSeries(records []domain.MetricRecord, period domain.ReportingPeriod, now time.Time, locale Locale) []domain.BucketPoint {
	return fill(records, layout(period, now, locale))
}

// SeriesSpan devolve o intervalo [start, end) coberto pelos buckets do período
func SeriesSpan(period domain.ReportingPeriod, now time.Time) (time.Time, time.Time) {
	buckets := layout(period, now, LocaleEnUS)
	return buckets[0].start, buckets[len(buckets)-1].end
}

// MonthlySpan devolve o intervalo [start, end) coberto por MonthlySeries
func MonthlySpan(months int, now time.Time) (time.Time, time.Time) {
	if months <= 0 {
		months = DefaultMonthlySeriesMonths
	}

	current := startOfMonth(now)
	return current.AddDate(0, -(months - 1), 0), current.AddDate(0, 1, 0)
}

// MonthlySeries monta a série dos últimos meses calendário, terminando no mês de now
func MonthlySeries(records []domain.MetricRecord, months int, now time.Time, locale Locale) []domain.BucketPoint {
	if months <= 0 {
		months = DefaultMonthlySeriesMonths
	}

	current := startOfMonth(now)
	buckets := make([]bucket, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := current.AddDate(0, -i, 0)
		buckets = append(buckets, bucket{
			start: start,
			end:   start.AddDate(0, 1, 0),
			label: locale.Months[start.Month()-1],
		})
	}

	return fill(records, buckets)
}

func layout(period domain.ReportingPeriod, now time.Time, locale Locale) []bucket {
	today := startOfDay(now)

	switch period {
	case domain.PeriodDay:
		buckets := make([]bucket, 0, 24)
		for hour := 0; hour < 24; hour++ {
			buckets = append(buckets, bucket{
				start: time.Date(today.Year(), today.Month(), today.Day(), hour, 0, 0, 0, today.Location()),
				end:   time.Date(today.Year(), today.Month(), today.Day(), hour+1, 0, 0, 0, today.Location()),
				label: fmt.Sprintf("%d:00", hour),
			})
		}
		return buckets

	case domain.PeriodWeek:
		weekStart := today.AddDate(0, 0, -int(now.Weekday()))
		buckets := make([]bucket, 0, 7)
		for day := 0; day < 7; day++ {
			buckets = append(buckets, bucket{
				start: weekStart.AddDate(0, 0, day),
				end:   weekStart.AddDate(0, 0, day+1),
				label: locale.Weekdays[day],
			})
		}
		return buckets

	case domain.PeriodYear:
		yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		buckets := make([]bucket, 0, 12)
		for month := 0; month < 12; month++ {
			buckets = append(buckets, bucket{
				start: yearStart.AddDate(0, month, 0),
				end:   yearStart.AddDate(0, month+1, 0),
				label: locale.Months[month],
			})
		}
		return buckets

	default:
		// 4 semanas móveis terminando no fim do dia de now
		tomorrow := today.AddDate(0, 0, 1)
		buckets := make([]bucket, 0, 4)
		for week := 0; week < 4; week++ {
			start := tomorrow.AddDate(0, 0, -7*(4-week))
			buckets = append(buckets, bucket{
				start: start,
				end:   start.AddDate(0, 0, 7),
				label: fmt.Sprintf("%s %d", locale.WeekLabel, week+1),
			})
		}
		return buckets
	}
}

// fill espera buckets contíguos e em ordem cronológica
func fill(records []domain.MetricRecord, buckets []bucket) []domain.BucketPoint {
	points := make([]domain.BucketPoint, len(buckets))
	for i, b := range buckets {
		points[i] = domain.BucketPoint{Label: b.label, Total: decimal.Zero}
	}

	if len(buckets) == 0 {
		return points
	}

	first, last := buckets[0].start, buckets[len(buckets)-1].end
	for _, record := range records {
		if !record.IsValid() {
			continue
		}

		t := record.OccurredAt
		if t.Before(first) || !t.Before(last) {
			continue
		}

		i := sort.Search(len(buckets), func(i int) bool {
			return buckets[i].end.After(t)
		})
		if i == len(buckets) || t.Before(buckets[i].start) {
			continue
		}

		points[i].Total = points[i].Total.Add(record.Amount)
		points[i].Count++
	}

	return points
}

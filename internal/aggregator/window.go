package aggregator

import (
	"time"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

// ResolveWindow calcula a janela atual e a anterior para o período a partir de
// now, no fuso de now. Períodos desconhecidos são tratados como mês.
func ResolveWindow(period domain.ReportingPeriod, now time.Time) domain.PeriodWindow {
	start, next, previousStart := bounds(period, now)

	return domain.PeriodWindow{
		Start:         start,
		End:           lastInstant(next),
		PreviousStart: previousStart,
		PreviousEnd:   lastInstant(start),
	}
}

func bounds(period domain.ReportingPeriod, now time.Time) (start, next, previousStart time.Time) {
	today := startOfDay(now)

	switch period {
	case domain.PeriodDay:
		return today, today.AddDate(0, 0, 1), today.AddDate(0, 0, -1)
	case domain.PeriodWeek:
		start = today.AddDate(0, 0, -int(now.Weekday()))
		return start, start.AddDate(0, 0, 7), start.AddDate(0, 0, -7)
	case domain.PeriodYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(1, 0, 0), start.AddDate(-1, 0, 0)
	default:
		start = startOfMonth(now)
		return start, start.AddDate(0, 1, 0), start.AddDate(0, -1, 0)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// lastInstant é o último instante antes de next (23:59:59.999999999 do dia anterior)
func lastInstant(next time.Time) time.Time {
	return next.Add(-time.Nanosecond)
}

// Now é o relógio padrão para chamadores sem um instante fixo
func Now() time.Time {
	return time.Now()
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

// ReportingPeriod seleciona a granularidade dos buckets e a janela de comparação
type ReportingPeriod string

const (
	PeriodDay   ReportingPeriod = "day"
	PeriodWeek  ReportingPeriod = "week"
	PeriodMonth ReportingPeriod = "month"
	PeriodYear  ReportingPeriod = "year"
)

var ReportingPeriods = []ReportingPeriod{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear}

func ParseReportingPeriod(value string) (ReportingPeriod, error) {
	period := ReportingPeriod(strings.ToLower(strings.TrimSpace(value)))
	switch period {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return period, nil
	}

	return "", fmt.Errorf("período inválido: %q", value)
}

// PeriodWindow é a janela atual e a janela anterior equivalente. End e
// PreviousEnd são o último instante do intervalo (23:59:59 do dia de fechamento).
type PeriodWindow struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	PreviousStart time.Time `json:"previous_start"`
	PreviousEnd   time.Time `json:"previous_end"`
}

func (w PeriodWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func (w PeriodWindow) PreviousContains(t time.Time) bool {
	return !t.Before(w.PreviousStart) && !t.After(w.PreviousEnd)
}

func (w PeriodWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

func (w PeriodWindow) PreviousDuration() time.Duration {
	return w.PreviousEnd.Sub(w.PreviousStart)
}

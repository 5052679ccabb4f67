package domain

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// DeltaMetric compara o valor do período atual com o do período anterior
type DeltaMetric struct {
	CurrentValue  float64   `json:"current_value"`
	PreviousValue float64   `json:"previous_value"`
	PercentChange float64   `json:"percent_change"`
	Direction     Direction `json:"direction"`
}

// PeriodComparison agrupa os totais das duas janelas de um período
type PeriodComparison struct {
	Period        ReportingPeriod `json:"period"`
	Window        PeriodWindow    `json:"window"`
	Revenue       DeltaMetric     `json:"revenue"`
	Count         DeltaMetric     `json:"count"`
	AverageTicket DeltaMetric     `json:"average_ticket"`
}

package aggregator

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

var hundred = decimal.NewFromInt(100)

// CalculateDelta compara current com previous. Quando previous é zero a variação
// é 100% se houver atividade atual e 0% caso contrário, para o dashboard sempre
// exibir um percentual finito.
func CalculateDelta(current, previous float64) domain.DeltaMetric {
	percent := 0.0
	switch {
	case previous > 0:
		percent = math.Abs(current-previous) / previous * 100
	case current > 0:
		percent = 100
	}

	return domain.DeltaMetric{
		CurrentValue:  current,
		PreviousValue: previous,
		PercentChange: utils.RoundWithTwoDecimalPlace(percent),
		Direction:     direction(current >= previous),
	}
}

// CalculateDeltaDecimal é a variante monetária de CalculateDelta
func CalculateDeltaDecimal(current, previous decimal.Decimal) domain.DeltaMetric {
	percent := decimal.Zero
	switch {
	case previous.IsPositive():
		percent = current.Sub(previous).Abs().Div(previous).Mul(hundred)
	case current.IsPositive():
		percent = hundred
	}

	return domain.DeltaMetric{
		CurrentValue:  current.InexactFloat64(),
		PreviousValue: previous.InexactFloat64(),
		PercentChange: percent.Round(2).InexactFloat64(),
		Direction:     direction(current.GreaterThanOrEqual(previous)),
	}
}

func direction(up bool) domain.Direction {
	if up {
		return domain.DirectionUp
	}

	return domain.DirectionDown
}

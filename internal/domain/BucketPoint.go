package domain

import "github.com/shopspring/decimal"

// BucketPoint é uma entrada da série de um gráfico
type BucketPoint struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

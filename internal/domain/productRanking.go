package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductRankingResponse struct {
	Month      string               `json:"month"`
	Ranking    []ProductRankingItem `json:"ranking"`
	LastUpdate time.Time            `json:"last_update"`
}

type ProductRankingItem struct {
	ID               int             `json:"id"`
	Month            string          `json:"month"` // Formato mm-yyyy (ex: 01-2024)
	ProductName      string          `json:"product_name"`
	Quantity         int             `json:"quantity"`
	Revenue          decimal.Decimal `json:"revenue"`
	Position         int             `json:"position"`
	PositionChange   int             `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int             `json:"previous_position"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

package domain

import "github.com/shopspring/decimal"

// UnknownEntityName é usado quando a chave estrangeira não aponta mais para uma
// entidade viva (ex.: produto excluído), preservando o total de receita
const UnknownEntityName = "deleted/unknown"

// DefaultTopLimit é o tamanho padrão dos rankings
const DefaultTopLimit = 5

// RankingContribution é a contribuição de um item para o ranking
type RankingContribution struct {
	Key      string
	Quantity int
	Revenue  decimal.Decimal
}

type RankingItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

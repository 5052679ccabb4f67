package aggregator

import (
	"sort"
	"strings"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

// TopN acumula as contribuições por chave e devolve as n maiores por receita.
// Empates mantêm a ordem em que as chaves apareceram.
func TopN(contributions []domain.RankingContribution, n int) []domain.RankingItem {
	if n <= 0 {
		n = domain.DefaultTopLimit
	}

	items := RankAll(contributions)
	if len(items) > n {
		items = items[:n]
	}

	return items
}

// RankAll devolve todas as chaves acumuladas, ordenadas por receita decrescente
func RankAll(contributions []domain.RankingContribution) []domain.RankingItem {
	index := make(map[string]int, len(contributions))
	items := make([]domain.RankingItem, 0)

	for _, contribution := range contributions {
		key := strings.TrimSpace(contribution.Key)
		if key == "" {
			key = domain.UnknownEntityName
		}

		if i, exists := index[key]; exists {
			items[i].Quantity += contribution.Quantity
			items[i].Revenue = items[i].Revenue.Add(contribution.Revenue)
			continue
		}

		index[key] = len(items)
		items = append(items, domain.RankingItem{
			Name:     key,
			Quantity: contribution.Quantity,
			Revenue:  contribution.Revenue,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Revenue.GreaterThan(items[j].Revenue)
	})

	return items
}

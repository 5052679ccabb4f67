package aggregator

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

func contribution(key string, quantity int, revenue int64) domain.RankingContribution {
	return domain.RankingContribution{Key: key, Quantity: quantity, Revenue: decimal.NewFromInt(revenue)}
}

func TestTopN(t *testing.T) {
	tests := []struct {
		name          string
		contributions []domain.RankingContribution
		n             int
		expected      []domain.RankingItem
	}{
		{
			name: "Acumula por chave e ordena por receita",
			contributions: []domain.RankingContribution{
				contribution("A", 1, 10),
				contribution("B", 2, 30),
				contribution("A", 1, 5),
			},
			n: 2,
			expected: []domain.RankingItem{
				{Name: "B", Quantity: 2, Revenue: decimal.NewFromInt(30)},
				{Name: "A", Quantity: 2, Revenue: decimal.NewFromInt(15)},
			},
		},
		{
			name: "Chave vazia vira desconhecido",
			contributions: []domain.RankingContribution{
				contribution("", 1, 10),
				contribution("  ", 3, 5),
				contribution("Sensor", 1, 12),
			},
			n: 5,
			expected: []domain.RankingItem{
				{Name: domain.UnknownEntityName, Quantity: 4, Revenue: decimal.NewFromInt(15)},
				{Name: "Sensor", Quantity: 1, Revenue: decimal.NewFromInt(12)},
			},
		},
		{
			name: "Empate mantém a ordem de aparição",
			contributions: []domain.RankingContribution{
				contribution("X", 1, 10),
				contribution("Y", 1, 10),
				contribution("Z", 1, 20),
			},
			n: 3,
			expected: []domain.RankingItem{
				{Name: "Z", Quantity: 1, Revenue: decimal.NewFromInt(20)},
				{Name: "X", Quantity: 1, Revenue: decimal.NewFromInt(10)},
				{Name: "Y", Quantity: 1, Revenue: decimal.NewFromInt(10)},
			},
		},
		{
			name:          "Entrada vazia",
			contributions: nil,
			n:             5,
			expected:      []domain.RankingItem{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TopN(tt.contributions, tt.n)

			require.Len(t, result, len(tt.expected))
			for i := range tt.expected {
				assert.Equal(t, tt.expected[i].Name, result[i].Name)
				assert.Equal(t, tt.expected[i].Quantity, result[i].Quantity)
				assert.True(t, tt.expected[i].Revenue.Equal(result[i].Revenue), "%s: %s", result[i].Name, result[i].Revenue)
			}
		})
	}
}

func TestTopN_DefaultLimit(t *testing.T) {
	contributions := make([]domain.RankingContribution, 0, 10)
	for i := 0; i < 10; i++ {
		contributions = append(contributions, contribution(fmt.Sprintf("P%d", i), 1, int64(i)))
	}

	result := TopN(contributions, 0)

	require.Len(t, result, domain.DefaultTopLimit)
	assert.Equal(t, "P9", result[0].Name)
}

func TestTopN_Properties(t *testing.T) {
	faker := gofakeit.New(11)
	keys := []string{"Filtro", "Bomba", "Válvula", "Sensor", "Cabo", "", "Motor"}

	contributions := make([]domain.RankingContribution, 0, 300)
	total := decimal.Zero
	for i := 0; i < 300; i++ {
		c := contribution(keys[faker.IntRange(0, len(keys)-1)], faker.IntRange(1, 5), int64(faker.IntRange(0, 1000)))
		total = total.Add(c.Revenue)
		contributions = append(contributions, c)
	}

	all := RankAll(contributions)
	sum := decimal.Zero
	seen := map[string]bool{}
	for i, item := range all {
		sum = sum.Add(item.Revenue)
		assert.False(t, seen[item.Name], "chave repetida %s", item.Name)
		seen[item.Name] = true
		if i > 0 {
			assert.True(t, all[i-1].Revenue.GreaterThanOrEqual(item.Revenue))
		}
	}
	assert.True(t, total.Equal(sum))

	top := TopN(contributions, 3)
	assert.Equal(t, all[:3], top)
}

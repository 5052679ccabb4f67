package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRow é uma linha da tabela sales do backend
type SaleRow struct {
	ID          string   `json:"id"`
	CustomerID  *string  `json:"customer_id,omitempty"`
	TotalAmount *float64 `json:"total_amount"`
	SaleDate    string   `json:"sale_date"`
}

type ProductRef struct {
	Name string `json:"name"`
}

// SaleItemRow é uma linha de sale_items com o produto relacionado, que pode
// ser nulo quando o produto foi excluído
type SaleItemRow struct {
	ID        string      `json:"id"`
	ProductID *string     `json:"product_id"`
	Quantity  int         `json:"quantity"`
	Subtotal  *float64    `json:"subtotal"`
	Product   *ProductRef `json:"product"`
}

// ProductRow é uma linha da tabela products
type ProductRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"min_stock"`
}

func (p ProductRow) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// SalesToRecords converte vendas em registros de métrica
func SalesToRecords(sales []SaleRow, loc *time.Location) []MetricRecord {
	records := make([]MetricRecord, 0, len(sales))
	for _, sale := range sales {
		records = append(records, NewMetricRecord(sale.SaleDate, sale.TotalAmount, CategoryNone, loc))
	}

	return records
}

// SaleItemsToContributions resolve o nome do produto na borda; itens sem
// produto vivo ficam com a chave vazia e são atribuídos ao rótulo sentinela
func SaleItemsToContributions(items []SaleItemRow) []RankingContribution {
	contributions := make([]RankingContribution, 0, len(items))
	for _, item := range items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}

		revenue := decimal.Zero
		if item.Subtotal != nil {
			revenue = decimal.NewFromFloat(*item.Subtotal)
		}

		contributions = append(contributions, RankingContribution{
			Key:      name,
			Quantity: item.Quantity,
			Revenue:  revenue,
		})
	}

	return contributions
}

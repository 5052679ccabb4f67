// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

const (
	productRankingTable = "product_ranking pr"
)

var productRankingColumns = []string{
	"pr.id",
	"pr.month",
	"pr.product_name",
	"pr.quantity",
	"pr.revenue",
	"pr.position",
	"pr.position_change",
	"pr.previous_position",
	"pr.created_at",
	"pr.updated_at",
}

type ProductRankingRepository interface {
	GetByMonth(ctx context.Context, month string) ([]*domain.ProductRankingItem, error)
	GetProductRanking(ctx context.Context, month string) (*domain.ProductRankingResponse, error)
	SaveOrUpdateProductRanking(ctx context.Context, rankings []*domain.ProductRankingItem) error
	DeleteOutsideRanking(ctx context.Context, month string, productNames []string) (int64, error)
}

type productRankingRepository struct {
	conn postgres.Queryer
}

func NewProductRankingRepository(conn postgres.Queryer) ProductRankingRepository {
	return &productRankingRepository{
		conn: conn,
	}
}

func (r *productRankingRepository) GetByMonth(ctx context.Context, month string) ([]*domain.ProductRankingItem, error) {
	query, args, err := squirrel.
		Select(productRankingColumns...).
		From(productRankingTable).
		Where(squirrel.Eq{"pr.month": month}).
		OrderBy("pr.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.ProductRankingItem, 0)
	for rows.Next() {
		item, err := scanProductRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func (r *productRankingRepository) GetProductRanking(ctx context.Context, month string) (*domain.ProductRankingResponse, error) {
	items, err := r.GetByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	ranking := make([]domain.ProductRankingItem, 0, len(items))
	var lastUpdate time.Time
	for _, item := range items {
		ranking = append(ranking, *item)

		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	// Se não há registros, usar tempo atual para lastUpdate
	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.ProductRankingResponse{
		Month:      month,
		Ranking:    ranking,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *productRankingRepository) SaveOrUpdateProductRanking(ctx context.Context, rankings []*domain.ProductRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("product_ranking").
		Columns(
			"month",
			"product_name",
			"quantity",
			"revenue",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.Month,
			ranking.ProductName,
			ranking.Quantity,
			ranking.Revenue,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (month, product_name) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			revenue = EXCLUDED.revenue,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

// DeleteOutsideRanking remove do mês os produtos que saíram do ranking
func (r *productRankingRepository) DeleteOutsideRanking(ctx context.Context, month string, productNames []string) (int64, error) {
	builder := squirrel.
		Delete("product_ranking").
		Where(squirrel.Eq{"month": month}).
		PlaceholderFormat(squirrel.Dollar)

	if len(productNames) > 0 {
		builder = builder.Where(squirrel.NotEq{"product_name": productNames})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar query de remoção: %w", err)
	}

	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProductRankingItem(row scanner) (*domain.ProductRankingItem, error) {
	item := &domain.ProductRankingItem{}

	err := row.Scan(
		&item.ID,
		&item.Month,
		&item.ProductName,
		&item.Quantity,
		&item.Revenue,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}

package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

var rankingColumns = []string{
	"id", "month", "product_name", "quantity", "revenue", "position",
	"position_change", "previous_position", "created_at", "updated_at",
}

func TestProductRankingRepository_GetProductRanking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRankingRepository(db)
	updated := time.Date(2024, 6, 15, 6, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM product_ranking pr WHERE pr.month = $1 ORDER BY pr.position ASC")).
		WithArgs("06-2024").
		WillReturnRows(sqlmock.NewRows(rankingColumns).
			AddRow(1, "06-2024", "Bomba", 3, "450.00", 1, 1, 2, updated, updated).
			AddRow(2, "06-2024", "Filtro", 10, "300.50", 2, -1, 1, updated, updated.Add(-time.Hour)))

	response, err := repo.GetProductRanking(context.Background(), "06-2024")

	require.NoError(t, err)
	assert.Equal(t, "06-2024", response.Month)
	require.Len(t, response.Ranking, 2)
	assert.Equal(t, "Bomba", response.Ranking[0].ProductName)
	assert.True(t, decimal.RequireFromString("450").Equal(response.Ranking[0].Revenue))
	assert.Equal(t, -1, response.Ranking[1].PositionChange)
	assert.Equal(t, updated, response.LastUpdate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRankingRepository_GetProductRanking_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRankingRepository(db)

	mock.ExpectQuery("FROM product_ranking pr").
		WithArgs("01-2024").
		WillReturnRows(sqlmock.NewRows(rankingColumns))

	response, err := repo.GetProductRanking(context.Background(), "01-2024")

	require.NoError(t, err)
	assert.Empty(t, response.Ranking)
	assert.False(t, response.LastUpdate.IsZero())
}

func TestProductRankingRepository_SaveOrUpdateProductRanking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRankingRepository(db)
	rankings := []*domain.ProductRankingItem{
		{Month: "06-2024", ProductName: "Bomba", Quantity: 3, Revenue: decimal.NewFromInt(450), Position: 1, PositionChange: 0},
		{Month: "06-2024", ProductName: "Filtro", Quantity: 10, Revenue: decimal.NewFromInt(300), Position: 2, PositionChange: 0},
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO product_ranking (month,product_name,quantity,revenue,position,position_change,previous_position) VALUES ($1,$2,$3,$4,$5,$6,$7),($8,$9,$10,$11,$12,$13,$14)")).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err = repo.SaveOrUpdateProductRanking(context.Background(), rankings)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRankingRepository_SaveOrUpdateProductRanking_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = NewProductRankingRepository(db).SaveOrUpdateProductRanking(context.Background(), nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRankingRepository_DeleteOutsideRanking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRankingRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM product_ranking WHERE month = $1 AND product_name NOT IN ($2,$3)")).
		WithArgs("06-2024", "Bomba", "Filtro").
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteOutsideRanking(context.Background(), "06-2024", []string{"Bomba", "Filtro"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestProductRankingRepository_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM product_ranking pr").WillReturnError(errors.New("conexão perdida"))

	_, err = NewProductRankingRepository(db).GetByMonth(context.Background(), "06-2024")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "conexão perdida")
}

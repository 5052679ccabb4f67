package ranking

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/business-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

var ErrInvalidMonth = errors.New("mês inválido, use mm-yyyy")

type RankingService interface {
	// GetProductRanking devolve o ranking armazenado do mês; mês vazio é o mês corrente
	GetProductRanking(ctx context.Context, month string) (*domain.ProductRankingResponse, error)
}

type ProductRankingService struct {
	ProductRankingRepository repository.ProductRankingRepository
	location                 *time.Location
	clock                    func() time.Time
}

func NewProductRankingService(productRankingRepository repository.ProductRankingRepository, location *time.Location) *ProductRankingService {
	return &ProductRankingService{
		ProductRankingRepository: productRankingRepository,
		location:                 location,
		clock:                    time.Now,
	}
}

func (s *ProductRankingService) WithClock(clock func() time.Time) *ProductRankingService {
	s.clock = clock
	return s
}

func (s *ProductRankingService) GetProductRanking(ctx context.Context, month string) (*domain.ProductRankingResponse, error) {
	if month == "" {
		month = domain.FormatPeriod(s.clock().In(s.location))
	} else if _, err := domain.ParsePeriod(month, s.location); err != nil {
		return nil, ErrInvalidMonth
	}

	ranking, err := s.ProductRankingRepository.GetProductRanking(ctx, month)
	if err != nil {
		return nil, err
	}
	return ranking, nil
}

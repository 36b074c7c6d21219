package memory

import (
	"context"

	"github.com/vfg2006/consultorpro-api/infrastructure/repository"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/pkg/utils"
)

type performanceRepository struct {
	table *table[domain.Performance]
}

func NewPerformanceRepository() repository.PerformanceRepository {
	return &performanceRepository{table: newTable[domain.Performance]()}
}

func performanceKey(clientID, monthYear string) string {
	return clientID + "|" + monthYear
}

func (r *performanceRepository) SaveOrUpdate(_ context.Context, p *domain.Performance) error {
	key := performanceKey(p.ClientID, p.MonthYear)
	if existing, ok := r.table.get(key); ok {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	}
	if p.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		p.ID = id
	}
	r.table.put(key, *p)
	return nil
}

func (r *performanceRepository) GetByClientAndMonth(_ context.Context, clientID, monthYear string) (*domain.Performance, error) {
	p, ok := r.table.get(performanceKey(clientID, monthYear))
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *performanceRepository) ListByMonth(_ context.Context, monthYear string) ([]*domain.Performance, error) {
	rows := r.table.filter(func(p domain.Performance) bool { return p.MonthYear == monthYear })
	sortBy(rows, func(a, b domain.Performance) bool {
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.TotalBilling.GreaterThan(b.TotalBilling)
	})
	return pointers(rows), nil
}

func (r *performanceRepository) ListByClient(_ context.Context, clientID string) ([]*domain.Performance, error) {
	rows := r.table.filter(func(p domain.Performance) bool { return p.ClientID == clientID })
	sortBy(rows, func(a, b domain.Performance) bool { return a.MonthYear < b.MonthYear })
	return pointers(rows), nil
}

func (r *performanceRepository) Delete(_ context.Context, id string) error {
	for _, p := range r.table.filter(func(p domain.Performance) bool { return p.ID == id }) {
		r.table.remove(performanceKey(p.ClientID, p.MonthYear))
	}
	return nil
}

type performanceRankingRepository struct {
	table *table[domain.PerformanceRankingItem]
}

func NewPerformanceRankingRepository() repository.PerformanceRankingRepository {
	return &performanceRankingRepository{table: newTable[domain.PerformanceRankingItem]()}
}

func (r *performanceRankingRepository) GetByClientID(_ context.Context, clientID, monthYear string) (*domain.PerformanceRankingItem, error) {
	item, ok := r.table.get(performanceKey(clientID, monthYear))
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *performanceRankingRepository) GetRanking(_ context.Context, monthYear string) (*domain.PerformanceRanking, error) {
	rows := r.table.filter(func(item domain.PerformanceRankingItem) bool { return item.MonthYear == monthYear })
	sortBy(rows, func(a, b domain.PerformanceRankingItem) bool { return a.Position < b.Position })

	ranking := &domain.PerformanceRanking{MonthYear: monthYear, Ranking: rows}
	for _, item := range rows {
		if item.UpdatedAt.After(ranking.LastUpdate) {
			ranking.LastUpdate = item.UpdatedAt
		}
	}
	return ranking, nil
}

func (r *performanceRankingRepository) SaveOrUpdate(_ context.Context, rankings []*domain.PerformanceRankingItem) error {
	for _, item := range rankings {
		r.table.put(performanceKey(item.ClientID, item.MonthYear), *item)
	}
	return nil
}

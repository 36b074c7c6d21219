package memory

import (
	"context"

	"github.com/vfg2006/consultorpro-api/infrastructure/repository"
	"github.com/vfg2006/consultorpro-api/internal/domain"
)

type goalRepository struct {
	table *table[domain.Goal]
}

func NewGoalRepository() repository.GoalRepository {
	return &goalRepository{table: newTable[domain.Goal]()}
}

func (r *goalRepository) Create(_ context.Context, g *domain.Goal) error {
	r.table.put(g.ID, *g)
	return nil
}

func (r *goalRepository) Update(_ context.Context, g *domain.Goal) error {
	return r.table.update(g.ID, func(row *domain.Goal) error {
		*row = *g
		return nil
	})
}

func (r *goalRepository) Delete(_ context.Context, id string) error {
	r.table.remove(id)
	return nil
}

func (r *goalRepository) GetByID(_ context.Context, id string) (*domain.Goal, error) {
	g, ok := r.table.get(id)
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *goalRepository) ListByConsultancy(_ context.Context, consultancyID string) ([]*domain.Goal, error) {
	return pointers(r.table.filter(func(g domain.Goal) bool { return g.ConsultancyID == consultancyID })), nil
}

func (r *goalRepository) ListByMonth(_ context.Context, monthYear string) ([]*domain.Goal, error) {
	return pointers(domain.FilterByMonth(r.table.filter(all[domain.Goal]), monthYear, func(g domain.Goal) string { return g.ConsultancyID })), nil
}

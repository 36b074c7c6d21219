package memory

import (
	"context"

	"github.com/vfg2006/consultorpro-api/infrastructure/repository"
	"github.com/vfg2006/consultorpro-api/internal/domain"
)

type consultancyRepository struct {
	table *table[domain.Consultancy]
}

func NewConsultancyRepository() repository.ConsultancyRepository {
	return &consultancyRepository{table: newTable[domain.Consultancy]()}
}

func (r *consultancyRepository) Create(_ context.Context, c *domain.Consultancy) error {
	r.table.put(c.ID, *c)
	return nil
}

func (r *consultancyRepository) Update(_ context.Context, c *domain.Consultancy) error {
	return r.table.update(c.ID, func(row *domain.Consultancy) error {
		*row = *c
		return nil
	})
}

func (r *consultancyRepository) Delete(_ context.Context, id string) error {
	r.table.remove(id)
	return nil
}

func (r *consultancyRepository) GetByID(_ context.Context, id string) (*domain.Consultancy, error) {
	c, ok := r.table.get(id)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *consultancyRepository) ListByMonth(_ context.Context, monthYear string) ([]*domain.Consultancy, error) {
	rows := domain.FilterByMonth(r.table.filter(all[domain.Consultancy]), monthYear, func(c domain.Consultancy) string { return c.ID })
	sortBy(rows, func(a, b domain.Consultancy) bool { return a.ClientName < b.ClientName })
	return pointers(rows), nil
}

func (r *consultancyRepository) ListByClient(_ context.Context, clientID string) ([]*domain.Consultancy, error) {
	rows := r.table.filter(func(c domain.Consultancy) bool { return c.ClientID == clientID })
	sortBy(rows, func(a, b domain.Consultancy) bool { return a.MonthYear < b.MonthYear })
	return pointers(rows), nil
}

func pointers[T any](rows []T) []*T {
	result := make([]*T, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result
}

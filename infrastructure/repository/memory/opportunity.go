package memory

import (
	"context"
	"time"

	"github.com/vfg2006/consultorpro-api/infrastructure/repository"
	"github.com/vfg2006/consultorpro-api/internal/domain"
)

type opportunityRepository struct {
	table *table[domain.Opportunity]
}

func NewOpportunityRepository() repository.OpportunityRepository {
	return &opportunityRepository{table: newTable[domain.Opportunity]()}
}

func (r *opportunityRepository) Create(_ context.Context, o *domain.Opportunity) error {
	r.table.put(o.ID, *o)
	return nil
}

func (r *opportunityRepository) Update(_ context.Context, o *domain.Opportunity) error {
	return r.table.update(o.ID, func(row *domain.Opportunity) error {
		*row = *o
		return nil
	})
}

func (r *opportunityRepository) MarkConverted(_ context.Context, id, actionID string, at time.Time) error {
	return r.table.update(id, func(row *domain.Opportunity) error {
		if row.Converted {
			return repository.ErrAlreadyConverted
		}
		row.Converted = true
		row.ActionID = &actionID
		row.UpdatedAt = at
		return nil
	})
}

func (r *opportunityRepository) Delete(_ context.Context, id string) error {
	r.table.remove(id)
	return nil
}

func (r *opportunityRepository) GetByID(_ context.Context, id string) (*domain.Opportunity, error) {
	o, ok := r.table.get(id)
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *opportunityRepository) ListByConsultancy(_ context.Context, consultancyID string) ([]*domain.Opportunity, error) {
	return pointers(r.table.filter(func(o domain.Opportunity) bool { return o.ConsultancyID == consultancyID })), nil
}

func (r *opportunityRepository) ListByMonth(_ context.Context, monthYear string) ([]*domain.Opportunity, error) {
	return pointers(domain.FilterByMonth(r.table.filter(all[domain.Opportunity]), monthYear, func(o domain.Opportunity) string { return o.ConsultancyID })), nil
}

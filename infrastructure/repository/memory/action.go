package memory

import (
	"context"

	"github.com/vfg2006/consultorpro-api/infrastructure/repository"
	"github.com/vfg2006/consultorpro-api/internal/domain"
)

type actionRepository struct {
	table *table[domain.Action]
}

func NewActionRepository() repository.ActionRepository {
	return &actionRepository{table: newTable[domain.Action]()}
}

func (r *actionRepository) Create(_ context.Context, a *domain.Action) error {
	r.table.put(a.ID, *a)
	return nil
}

func (r *actionRepository) Update(_ context.Context, a *domain.Action) error {
	return r.table.update(a.ID, func(row *domain.Action) error {
		*row = *a
		return nil
	})
}

func (r *actionRepository) Delete(_ context.Context, id string) error {
	r.table.remove(id)
	return nil
}

func (r *actionRepository) GetByID(_ context.Context, id string) (*domain.Action, error) {
	a, ok := r.table.get(id)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *actionRepository) ListByConsultancy(_ context.Context, consultancyID string) ([]*domain.Action, error) {
	return pointers(r.table.filter(func(a domain.Action) bool { return a.ConsultancyID == consultancyID })), nil
}

func (r *actionRepository) ListByMonth(_ context.Context, monthYear string) ([]*domain.Action, error) {
	return pointers(domain.FilterByMonth(r.table.filter(all[domain.Action]), monthYear, func(a domain.Action) string { return a.ConsultancyID })), nil
}

func (r *actionRepository) ListByDiagnostic(_ context.Context, diagnosticID string) ([]*domain.Action, error) {
	return pointers(r.table.filter(func(a domain.Action) bool {
		return a.DiagnosticID != nil && *a.DiagnosticID == diagnosticID
	})), nil
}

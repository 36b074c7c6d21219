package memory

import (
	"context"
	"slices"

	"github.com/vfg2006/consultorpro-api/infrastructure/repository"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/pkg/utils"
)

// diagnosticRepository indexa pelo consultancy_id: um diagnóstico por consultoria
type diagnosticRepository struct {
	table *table[domain.Diagnostic]
}

func NewDiagnosticRepository() repository.DiagnosticRepository {
	return &diagnosticRepository{table: newTable[domain.Diagnostic]()}
}

func (r *diagnosticRepository) SaveOrUpdate(_ context.Context, d *domain.Diagnostic) error {
	if existing, ok := r.table.get(d.ConsultancyID); ok {
		d.ID = existing.ID
		d.CreatedAt = existing.CreatedAt
	}
	if d.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		d.ID = id
	}
	r.table.put(d.ConsultancyID, cloneDiagnostic(*d))
	return nil
}

func (r *diagnosticRepository) GetByConsultancy(_ context.Context, consultancyID string) (*domain.Diagnostic, error) {
	d, ok := r.table.get(consultancyID)
	if !ok {
		return nil, nil
	}
	clone := cloneDiagnostic(d)
	return &clone, nil
}

func (r *diagnosticRepository) ListByMonth(_ context.Context, monthYear string) ([]*domain.Diagnostic, error) {
	rows := domain.FilterByMonth(r.table.filter(all[domain.Diagnostic]), monthYear, func(d domain.Diagnostic) string { return d.ConsultancyID })
	for i := range rows {
		rows[i] = cloneDiagnostic(rows[i])
	}
	return pointers(rows), nil
}

func (r *diagnosticRepository) Delete(_ context.Context, id string) error {
	for _, d := range r.table.filter(func(d domain.Diagnostic) bool { return d.ID == id }) {
		r.table.remove(d.ConsultancyID)
	}
	return nil
}

func cloneDiagnostic(d domain.Diagnostic) domain.Diagnostic {
	d.Strengths = slices.Clone(d.Strengths)
	d.Weaknesses = slices.Clone(d.Weaknesses)
	d.Opportunities = slices.Clone(d.Opportunities)
	d.Threats = slices.Clone(d.Threats)
	d.Problems = slices.Clone(d.Problems)
	d.Insights = slices.Clone(d.Insights)
	return d
}

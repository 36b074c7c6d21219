package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/consultorpro-api/infrastructure/database/postgres"
	"github.com/vfg2006/consultorpro-api/internal/domain"
)

type DiagnosticRepository interface {
	SaveOrUpdate(ctx context.Context, diagnostic *domain.Diagnostic) error
	GetByConsultancy(ctx context.Context, consultancyID string) (*domain.Diagnostic, error)
	ListByMonth(ctx context.Context, monthYear string) ([]*domain.Diagnostic, error)
	Delete(ctx context.Context, id string) error
}

var diagnosticColumns = []string{
	"id", "consultancy_id", "strengths", "weaknesses", "opportunities", "threats", "problems", "insights",
	"created_at", "updated_at",
}

type diagnosticRepository struct {
	conn postgres.Queryer
}

func NewDiagnosticRepository(conn postgres.Queryer) DiagnosticRepository {
	return &diagnosticRepository{
		conn: conn,
	}
}

// SaveOrUpdate mantém um único diagnóstico por consultoria; as listas são gravadas como text[]
func (r *diagnosticRepository) SaveOrUpdate(ctx context.Context, d *domain.Diagnostic) error {
	query, args, err := psql.
		Insert(diagnosticsTable).
		Columns(diagnosticColumns...).
		Values(
			d.ID,
			d.ConsultancyID,
			pq.Array(nonNil(d.Strengths)),
			pq.Array(nonNil(d.Weaknesses)),
			pq.Array(nonNil(d.Opportunities)),
			pq.Array(nonNil(d.Threats)),
			pq.Array(nonNil(d.Problems)),
			pq.Array(nonNil(d.Insights)),
			d.CreatedAt,
			d.UpdatedAt,
		).
		Suffix(`
		ON CONFLICT (consultancy_id) DO UPDATE SET
			strengths = EXCLUDED.strengths,
			weaknesses = EXCLUDED.weaknesses,
			opportunities = EXCLUDED.opportunities,
			threats = EXCLUDED.threats,
			problems = EXCLUDED.problems,
			insights = EXCLUDED.insights,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.CreatedAt); err != nil {
		return fmt.Errorf("erro ao salvar diagnóstico: %w", err)
	}
	return nil
}

func (r *diagnosticRepository) GetByConsultancy(ctx context.Context, consultancyID string) (*domain.Diagnostic, error) {
	query, args, err := psql.
		Select(diagnosticColumns...).
		From(diagnosticsTable).
		Where(squirrel.Eq{"consultancy_id": consultancyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	diagnostic, err := scanDiagnostic(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear diagnóstico: %w", err)
	}
	return diagnostic, nil
}

func (r *diagnosticRepository) ListByMonth(ctx context.Context, monthYear string) ([]*domain.Diagnostic, error) {
	query, args, err := psql.
		Select(diagnosticColumns...).
		From(diagnosticsTable).
		Where(monthLike(monthYear)).
		OrderBy("consultancy_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	diagnostics := make([]*domain.Diagnostic, 0)
	for rows.Next() {
		diagnostic, err := scanDiagnostic(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear diagnóstico: %w", err)
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}
	return diagnostics, nil
}

func (r *diagnosticRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.conn, diagnosticsTable, id)
}

func scanDiagnostic(row rowScanner) (*domain.Diagnostic, error) {
	d := &domain.Diagnostic{}
	err := row.Scan(
		&d.ID,
		&d.ConsultancyID,
		pq.Array(&d.Strengths),
		pq.Array(&d.Weaknesses),
		pq.Array(&d.Opportunities),
		pq.Array(&d.Threats),
		pq.Array(&d.Problems),
		pq.Array(&d.Insights),
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/consultorpro-api/infrastructure/database/postgres"
	"github.com/vfg2006/consultorpro-api/internal/domain"
)

type ActionRepository interface {
	Create(ctx context.Context, action *domain.Action) error
	Update(ctx context.Context, action *domain.Action) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Action, error)
	ListByConsultancy(ctx context.Context, consultancyID string) ([]*domain.Action, error)
	ListByMonth(ctx context.Context, monthYear string) ([]*domain.Action, error)
	ListByDiagnostic(ctx context.Context, diagnosticID string) ([]*domain.Action, error)
}

var actionColumns = []string{
	"id", "consultancy_id", "title", "description", "impact", "effort", "quadrant", "status", "owner",
	"deadline", "diagnostic_id", "goal_id", "opportunity_id", "created_at", "updated_at",
}

type actionRepository struct {
	conn postgres.Queryer
}

func NewActionRepository(conn postgres.Queryer) ActionRepository {
	return &actionRepository{
		conn: conn,
	}
}

func (r *actionRepository) Create(ctx context.Context, a *domain.Action) error {
	query, args, err := psql.
		Insert(actionsTable).
		Columns(actionColumns...).
		Values(a.ID, a.ConsultancyID, a.Title, a.Description, a.Impact, a.Effort, a.Quadrant, a.Status, a.Owner,
			a.Deadline, a.DiagnosticID, a.GoalID, a.OpportunityID, a.CreatedAt, a.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao criar ação: %w", err)
	}
	return nil
}

// Update grava todos os campos editáveis; o quadrante já vem recalculado pelo domínio
func (r *actionRepository) Update(ctx context.Context, a *domain.Action) error {
	query, args, err := psql.
		Update(actionsTable).
		Set("title", a.Title).
		Set("description", a.Description).
		Set("impact", a.Impact).
		Set("effort", a.Effort).
		Set("quadrant", a.Quadrant).
		Set("status", a.Status).
		Set("owner", a.Owner).
		Set("deadline", a.Deadline).
		Set("diagnostic_id", a.DiagnosticID).
		Set("goal_id", a.GoalID).
		Set("opportunity_id", a.OpportunityID).
		Set("updated_at", a.UpdatedAt).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := execAffecting(ctx, r.conn, query, args); err != nil {
		return fmt.Errorf("erro ao atualizar ação: %w", err)
	}
	return nil
}

func (r *actionRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.conn, actionsTable, id)
}

func (r *actionRepository) GetByID(ctx context.Context, id string) (*domain.Action, error) {
	query, args, err := psql.
		Select(actionColumns...).
		From(actionsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	action, err := scanAction(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ação: %w", err)
	}
	return action, nil
}

func (r *actionRepository) ListByConsultancy(ctx context.Context, consultancyID string) ([]*domain.Action, error) {
	return r.list(ctx, squirrel.Eq{"consultancy_id": consultancyID})
}

func (r *actionRepository) ListByMonth(ctx context.Context, monthYear string) ([]*domain.Action, error) {
	return r.list(ctx, monthLike(monthYear))
}

func (r *actionRepository) ListByDiagnostic(ctx context.Context, diagnosticID string) ([]*domain.Action, error) {
	return r.list(ctx, squirrel.Eq{"diagnostic_id": diagnosticID})
}

func (r *actionRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Action, error) {
	query, args, err := psql.
		Select(actionColumns...).
		From(actionsTable).
		Where(where).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	actions := make([]*domain.Action, 0)
	for rows.Next() {
		action, err := scanAction(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ação: %w", err)
		}
		actions = append(actions, action)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}
	return actions, nil
}

func scanAction(row rowScanner) (*domain.Action, error) {
	a := &domain.Action{}
	err := row.Scan(
		&a.ID,
		&a.ConsultancyID,
		&a.Title,
		&a.Description,
		&a.Impact,
		&a.Effort,
		&a.Quadrant,
		&a.Status,
		&a.Owner,
		&a.Deadline,
		&a.DiagnosticID,
		&a.GoalID,
		&a.OpportunityID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

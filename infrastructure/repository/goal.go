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

type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) error
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	ListByConsultancy(ctx context.Context, consultancyID string) ([]*domain.Goal, error)
	ListByMonth(ctx context.Context, monthYear string) ([]*domain.Goal, error)
}

var goalColumns = []string{
	"id", "consultancy_id", "title", "description", "target_value", "current_value",
	"unit", "status", "deadline", "created_at", "updated_at",
}

type goalRepository struct {
	conn postgres.Queryer
}

func NewGoalRepository(conn postgres.Queryer) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

func (r *goalRepository) Create(ctx context.Context, g *domain.Goal) error {
	query, args, err := psql.
		Insert(goalsTable).
		Columns(goalColumns...).
		Values(g.ID, g.ConsultancyID, g.Title, g.Description, g.TargetValue, g.CurrentValue,
			g.Unit, g.Status, g.Deadline, g.CreatedAt, g.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao criar meta: %w", err)
	}
	return nil
}

func (r *goalRepository) Update(ctx context.Context, g *domain.Goal) error {
	query, args, err := psql.
		Update(goalsTable).
		Set("title", g.Title).
		Set("description", g.Description).
		Set("target_value", g.TargetValue).
		Set("current_value", g.CurrentValue).
		Set("unit", g.Unit).
		Set("status", g.Status).
		Set("deadline", g.Deadline).
		Set("updated_at", g.UpdatedAt).
		Where(squirrel.Eq{"id": g.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := execAffecting(ctx, r.conn, query, args); err != nil {
		return fmt.Errorf("erro ao atualizar meta: %w", err)
	}
	return nil
}

func (r *goalRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.conn, goalsTable, id)
}

func (r *goalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	query, args, err := psql.
		Select(goalColumns...).
		From(goalsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	goal, err := scanGoal(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta: %w", err)
	}
	return goal, nil
}

func (r *goalRepository) ListByConsultancy(ctx context.Context, consultancyID string) ([]*domain.Goal, error) {
	return r.list(ctx, squirrel.Eq{"consultancy_id": consultancyID})
}

func (r *goalRepository) ListByMonth(ctx context.Context, monthYear string) ([]*domain.Goal, error) {
	return r.list(ctx, monthLike(monthYear))
}

func (r *goalRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Goal, error) {
	query, args, err := psql.
		Select(goalColumns...).
		From(goalsTable).
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

	goals := make([]*domain.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}
	return goals, nil
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	g := &domain.Goal{}
	err := row.Scan(
		&g.ID,
		&g.ConsultancyID,
		&g.Title,
		&g.Description,
		&g.TargetValue,
		&g.CurrentValue,
		&g.Unit,
		&g.Status,
		&g.Deadline,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

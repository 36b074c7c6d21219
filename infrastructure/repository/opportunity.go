package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/consultorpro-api/infrastructure/database/postgres"
	"github.com/vfg2006/consultorpro-api/internal/domain"
)

type OpportunityRepository interface {
	Create(ctx context.Context, opportunity *domain.Opportunity) error
	Update(ctx context.Context, opportunity *domain.Opportunity) error
	// MarkConverted marca a oportunidade como convertida somente se ainda não estiver;
	// devolve ErrAlreadyConverted quando outra promoção chegou antes
	MarkConverted(ctx context.Context, id, actionID string, at time.Time) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Opportunity, error)
	ListByConsultancy(ctx context.Context, consultancyID string) ([]*domain.Opportunity, error)
	ListByMonth(ctx context.Context, monthYear string) ([]*domain.Opportunity, error)
}

var opportunityColumns = []string{
	"id", "consultancy_id", "title", "description", "estimated_value", "probability",
	"converted", "action_id", "created_at", "updated_at",
}

type opportunityRepository struct {
	conn postgres.Queryer
}

func NewOpportunityRepository(conn postgres.Queryer) OpportunityRepository {
	return &opportunityRepository{
		conn: conn,
	}
}

func (r *opportunityRepository) Create(ctx context.Context, o *domain.Opportunity) error {
	query, args, err := psql.
		Insert(opportunitiesTable).
		Columns(opportunityColumns...).
		Values(o.ID, o.ConsultancyID, o.Title, o.Description, o.EstimatedValue, o.Probability,
			o.Converted, o.ActionID, o.CreatedAt, o.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao criar oportunidade: %w", err)
	}
	return nil
}

func (r *opportunityRepository) Update(ctx context.Context, o *domain.Opportunity) error {
	query, args, err := psql.
		Update(opportunitiesTable).
		Set("title", o.Title).
		Set("description", o.Description).
		Set("estimated_value", o.EstimatedValue).
		Set("probability", o.Probability).
		Set("converted", o.Converted).
		Set("action_id", o.ActionID).
		Set("updated_at", o.UpdatedAt).
		Where(squirrel.Eq{"id": o.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := execAffecting(ctx, r.conn, query, args); err != nil {
		return fmt.Errorf("erro ao atualizar oportunidade: %w", err)
	}
	return nil
}

func (r *opportunityRepository) MarkConverted(ctx context.Context, id, actionID string, at time.Time) error {
	query, args, err := psql.
		Update(opportunitiesTable).
		Set("converted", true).
		Set("action_id", actionID).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id, "converted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = execAffecting(ctx, r.conn, query, args)
	if errors.Is(err, ErrNotFound) {
		return ErrAlreadyConverted
	}
	if err != nil {
		return fmt.Errorf("erro ao converter oportunidade: %w", err)
	}
	return nil
}

func (r *opportunityRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.conn, opportunitiesTable, id)
}

func (r *opportunityRepository) GetByID(ctx context.Context, id string) (*domain.Opportunity, error) {
	query, args, err := psql.
		Select(opportunityColumns...).
		From(opportunitiesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	opportunity, err := scanOpportunity(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear oportunidade: %w", err)
	}
	return opportunity, nil
}

func (r *opportunityRepository) ListByConsultancy(ctx context.Context, consultancyID string) ([]*domain.Opportunity, error) {
	return r.list(ctx, squirrel.Eq{"consultancy_id": consultancyID})
}

func (r *opportunityRepository) ListByMonth(ctx context.Context, monthYear string) ([]*domain.Opportunity, error) {
	return r.list(ctx, monthLike(monthYear))
}

func (r *opportunityRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Opportunity, error) {
	query, args, err := psql.
		Select(opportunityColumns...).
		From(opportunitiesTable).
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

	opportunities := make([]*domain.Opportunity, 0)
	for rows.Next() {
		opportunity, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear oportunidade: %w", err)
		}
		opportunities = append(opportunities, opportunity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}
	return opportunities, nil
}

func scanOpportunity(row rowScanner) (*domain.Opportunity, error) {
	o := &domain.Opportunity{}
	err := row.Scan(
		&o.ID,
		&o.ConsultancyID,
		&o.Title,
		&o.Description,
		&o.EstimatedValue,
		&o.Probability,
		&o.Converted,
		&o.ActionID,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

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

type ConsultancyRepository interface {
	Create(ctx context.Context, consultancy *domain.Consultancy) error
	Update(ctx context.Context, consultancy *domain.Consultancy) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Consultancy, error)
	ListByMonth(ctx context.Context, monthYear string) ([]*domain.Consultancy, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Consultancy, error)
}

var consultancyColumns = []string{
	"id", "client_id", "client_name", "month_year", "consultant", "status", "notes", "created_at", "updated_at",
}

type consultancyRepository struct {
	conn postgres.Queryer
}

func NewConsultancyRepository(conn postgres.Queryer) ConsultancyRepository {
	return &consultancyRepository{
		conn: conn,
	}
}

func (r *consultancyRepository) Create(ctx context.Context, c *domain.Consultancy) error {
	query, args, err := psql.
		Insert(consultanciesTable).
		Columns(consultancyColumns...).
		Values(c.ID, c.ClientID, c.ClientName, c.MonthYear, c.Consultant, c.Status, c.Notes, c.CreatedAt, c.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao criar consultoria: %w", err)
	}
	return nil
}

func (r *consultancyRepository) Update(ctx context.Context, c *domain.Consultancy) error {
	query, args, err := psql.
		Update(consultanciesTable).
		Set("client_name", c.ClientName).
		Set("consultant", c.Consultant).
		Set("status", c.Status).
		Set("notes", c.Notes).
		Set("updated_at", c.UpdatedAt).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := execAffecting(ctx, r.conn, query, args); err != nil {
		return fmt.Errorf("erro ao atualizar consultoria: %w", err)
	}
	return nil
}

func (r *consultancyRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.conn, consultanciesTable, id)
}

func (r *consultancyRepository) GetByID(ctx context.Context, id string) (*domain.Consultancy, error) {
	query, args, err := psql.
		Select(consultancyColumns...).
		From(consultanciesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	consultancy, err := scanConsultancy(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear consultoria: %w", err)
	}
	return consultancy, nil
}

// ListByMonth usa a mesma regra de contenção das demais entidades: o id contém o período
func (r *consultancyRepository) ListByMonth(ctx context.Context, monthYear string) ([]*domain.Consultancy, error) {
	query, args, err := psql.
		Select(consultancyColumns...).
		From(consultanciesTable).
		Where(idLike(monthYear)).
		OrderBy("client_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *consultancyRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Consultancy, error) {
	query, args, err := psql.
		Select(consultancyColumns...).
		From(consultanciesTable).
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("month_year ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *consultancyRepository) list(ctx context.Context, query string, args []interface{}) ([]*domain.Consultancy, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	consultancies := make([]*domain.Consultancy, 0)
	for rows.Next() {
		consultancy, err := scanConsultancy(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear consultoria: %w", err)
		}
		consultancies = append(consultancies, consultancy)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}
	return consultancies, nil
}

func scanConsultancy(row rowScanner) (*domain.Consultancy, error) {
	c := &domain.Consultancy{}
	err := row.Scan(
		&c.ID,
		&c.ClientID,
		&c.ClientName,
		&c.MonthYear,
		&c.Consultant,
		&c.Status,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

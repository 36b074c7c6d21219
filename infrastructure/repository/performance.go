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

type PerformanceRepository interface {
	SaveOrUpdate(ctx context.Context, performance *domain.Performance) error
	GetByClientAndMonth(ctx context.Context, clientID, monthYear string) (*domain.Performance, error)
	ListByMonth(ctx context.Context, monthYear string) ([]*domain.Performance, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Performance, error)
	Delete(ctx context.Context, id string) error
}

var performanceColumns = []string{
	"id", "client_id", "client_name", "month_year",
	"active_clients", "new_clients", "cancelled_clients", "active_contracts", "support_tickets",
	"total_billing", "delinquency_amount", "churn_rate", "delinquency_rate", "uptime", "nps", "satisfaction",
	"score", "score_band", "created_at", "updated_at",
}

type performanceRepository struct {
	conn postgres.Queryer
}

func NewPerformanceRepository(conn postgres.Queryer) PerformanceRepository {
	return &performanceRepository{
		conn: conn,
	}
}

// SaveOrUpdate grava o fechamento do mês; já existindo (client_id, month_year), sobrescreve
func (r *performanceRepository) SaveOrUpdate(ctx context.Context, p *domain.Performance) error {
	query := psql.
		Insert(performancesTable).
		Columns(performanceColumns...).
		Values(
			p.ID, p.ClientID, p.ClientName, p.MonthYear,
			p.ActiveClients, p.NewClients, p.CancelledClients, p.ActiveContracts, p.SupportTickets,
			p.TotalBilling, p.DelinquencyAmount, p.ChurnRate, p.DelinquencyRate, p.Uptime, p.NPS, p.Satisfaction,
			p.Score, p.ScoreBand, p.CreatedAt, p.UpdatedAt,
		).
		Suffix(`
		ON CONFLICT (client_id, month_year) DO UPDATE SET
			client_name = EXCLUDED.client_name,
			active_clients = EXCLUDED.active_clients,
			new_clients = EXCLUDED.new_clients,
			cancelled_clients = EXCLUDED.cancelled_clients,
			active_contracts = EXCLUDED.active_contracts,
			support_tickets = EXCLUDED.support_tickets,
			total_billing = EXCLUDED.total_billing,
			delinquency_amount = EXCLUDED.delinquency_amount,
			churn_rate = EXCLUDED.churn_rate,
			delinquency_rate = EXCLUDED.delinquency_rate,
			uptime = EXCLUDED.uptime,
			nps = EXCLUDED.nps,
			satisfaction = EXCLUDED.satisfaction,
			score = EXCLUDED.score,
			score_band = EXCLUDED.score_band,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("erro ao salvar performance: %w", err)
	}
	return nil
}

func (r *performanceRepository) GetByClientAndMonth(ctx context.Context, clientID, monthYear string) (*domain.Performance, error) {
	query, args, err := psql.
		Select(performanceColumns...).
		From(performancesTable).
		Where(squirrel.Eq{"client_id": clientID, "month_year": monthYear}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	performance, err := scanPerformance(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear performance: %w", err)
	}
	return performance, nil
}

func (r *performanceRepository) ListByMonth(ctx context.Context, monthYear string) ([]*domain.Performance, error) {
	query, args, err := psql.
		Select(performanceColumns...).
		From(performancesTable).
		Where(squirrel.Eq{"month_year": monthYear}).
		OrderBy("score DESC", "total_billing DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *performanceRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Performance, error) {
	query, args, err := psql.
		Select(performanceColumns...).
		From(performancesTable).
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("month_year ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *performanceRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.conn, performancesTable, id)
}

func (r *performanceRepository) list(ctx context.Context, query string, args []interface{}) ([]*domain.Performance, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	performances := make([]*domain.Performance, 0)
	for rows.Next() {
		performance, err := scanPerformance(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear performance: %w", err)
		}
		performances = append(performances, performance)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}
	return performances, nil
}

func scanPerformance(row rowScanner) (*domain.Performance, error) {
	p := &domain.Performance{}
	err := row.Scan(
		&p.ID,
		&p.ClientID,
		&p.ClientName,
		&p.MonthYear,
		&p.ActiveClients,
		&p.NewClients,
		&p.CancelledClients,
		&p.ActiveContracts,
		&p.SupportTickets,
		&p.TotalBilling,
		&p.DelinquencyAmount,
		&p.ChurnRate,
		&p.DelinquencyRate,
		&p.Uptime,
		&p.NPS,
		&p.Satisfaction,
		&p.Score,
		&p.ScoreBand,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

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

type PerformanceRankingRepository interface {
	GetByClientID(ctx context.Context, clientID, monthYear string) (*domain.PerformanceRankingItem, error)
	GetRanking(ctx context.Context, monthYear string) (*domain.PerformanceRanking, error)
	SaveOrUpdate(ctx context.Context, rankings []*domain.PerformanceRankingItem) error
}

var rankingColumns = []string{
	"client_id", "month_year", "client_name", "score", "score_band", "total_billing",
	"position", "position_change", "previous_position", "updated_at",
}

type performanceRankingRepository struct {
	conn postgres.Queryer
}

func NewPerformanceRankingRepository(conn postgres.Queryer) PerformanceRankingRepository {
	return &performanceRankingRepository{
		conn: conn,
	}
}

func (r *performanceRankingRepository) GetRanking(ctx context.Context, monthYear string) (*domain.PerformanceRanking, error) {
	query, args, err := psql.
		Select(rankingColumns...).
		From(performanceRankingsTable).
		Where(squirrel.Eq{"month_year": monthYear}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]domain.PerformanceRankingItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := scanRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		rankings = append(rankings, *item)

		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return &domain.PerformanceRanking{
		MonthYear:  monthYear,
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *performanceRankingRepository) GetByClientID(ctx context.Context, clientID, monthYear string) (*domain.PerformanceRankingItem, error) {
	query, args, err := psql.
		Select(rankingColumns...).
		From(performanceRankingsTable).
		Where(squirrel.Eq{"client_id": clientID, "month_year": monthYear}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	item, err := scanRankingItem(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
	}
	return item, nil
}

func (r *performanceRankingRepository) SaveOrUpdate(ctx context.Context, rankings []*domain.PerformanceRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	query := psql.
		Insert(performanceRankingsTable).
		Columns(rankingColumns...)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.ClientID,
			ranking.MonthYear,
			ranking.ClientName,
			ranking.Score,
			ranking.ScoreBand,
			ranking.TotalBilling,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
			ranking.UpdatedAt,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (client_id, month_year) DO UPDATE SET
			client_name = EXCLUDED.client_name,
			score = EXCLUDED.score,
			score_band = EXCLUDED.score_band,
			total_billing = EXCLUDED.total_billing,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = EXCLUDED.updated_at
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}
	return nil
}

func scanRankingItem(row rowScanner) (*domain.PerformanceRankingItem, error) {
	item := &domain.PerformanceRankingItem{}
	err := row.Scan(
		&item.ClientID,
		&item.MonthYear,
		&item.ClientName,
		&item.Score,
		&item.ScoreBand,
		&item.TotalBilling,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

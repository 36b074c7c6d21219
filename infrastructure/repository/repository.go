// Package repository contém as interfaces e as implementações PostgreSQL dos repositórios
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/consultorpro-api/infrastructure/database/postgres"
)

const (
	consultanciesTable       = "consultancies"
	performancesTable        = "performances"
	performanceRankingsTable = "performance_rankings"
	goalsTable               = "goals"
	actionsTable             = "actions"
	opportunitiesTable       = "opportunities"
	diagnosticsTable         = "diagnostics"
	usersTable               = "users"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var (
	// ErrNotFound indica que a escrita não encontrou o registro (UPDATE sem linhas afetadas)
	ErrNotFound = errors.New("registro não encontrado")
	// ErrAlreadyConverted indica que outra promoção marcou a oportunidade antes
	ErrAlreadyConverted = errors.New("oportunidade já convertida")
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern monta o padrão LIKE tratando % e _ do termo como literais
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// monthLike aplica a regra de contenção do período sobre a chave da consultoria
func monthLike(monthYear string) squirrel.Sqlizer {
	return squirrel.Expr(`consultancy_id LIKE ? ESCAPE '\'`, containsPattern(monthYear))
}

// idLike é a mesma regra aplicada à própria chave, na tabela de consultorias
func idLike(monthYear string) squirrel.Sqlizer {
	return squirrel.Expr(`id LIKE ? ESCAPE '\'`, containsPattern(monthYear))
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func deleteByID(ctx context.Context, conn postgres.Queryer, table, id string) error {
	query, args, err := psql.
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao remover registro de %s: %w", table, err)
	}
	return nil
}

func execAffecting(ctx context.Context, conn postgres.Queryer, query string, args []interface{}) error {
	result, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

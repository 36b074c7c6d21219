package consulting

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/pkg/apiErrors"
	"github.com/vfg2006/consultorpro-api/pkg/log"
	"github.com/vfg2006/consultorpro-api/pkg/utils"
)

// MonthOverview agrega metas, ações, oportunidades, diagnósticos e performances do período
func (s *Service) MonthOverview(ctx context.Context, monthYear string) (*domain.MonthOverview, error) {
	if monthYear == "" {
		return nil, NewConsultancyError(ErrMonthYearRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if _, err := utils.ParseMonthYear(monthYear); err != nil {
		return nil, NewConsultancyError(ErrInvalidMonthYear, apiErrors.ErrInvalidFormat, monthYear)
	}

	monthErr := func(err error) error {
		return NewConsultancyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	consultancies, err := s.consultancyRepo.ListByMonth(ctx, monthYear)
	if err != nil {
		return nil, monthErr(err)
	}
	goals, err := s.goalRepo.ListByMonth(ctx, monthYear)
	if err != nil {
		return nil, monthErr(err)
	}
	actions, err := s.actionRepo.ListByMonth(ctx, monthYear)
	if err != nil {
		return nil, monthErr(err)
	}
	opportunities, err := s.opportunityRepo.ListByMonth(ctx, monthYear)
	if err != nil {
		return nil, monthErr(err)
	}
	diagnostics, err := s.diagnosticRepo.ListByMonth(ctx, monthYear)
	if err != nil {
		return nil, monthErr(err)
	}
	performances, err := s.performanceRepo.ListByMonth(ctx, monthYear)
	if err != nil {
		return nil, monthErr(err)
	}

	now := s.now()
	overview := &domain.MonthOverview{
		MonthYear:     monthYear,
		Consultancies: len(consultancies),
		Goals:         goalOverview(goals, now),
		Actions:       actionOverview(actions),
		Opportunities: opportunityOverview(opportunities),
		Diagnostics:   diagnosticTotals(diagnostics, actions),
		Performance:   monthPerformance(performances),
		GeneratedAt:   now,
	}

	log.ForComponent(ctx, "consulting").WithFields(log.Fields{
		"month_year":    monthYear,
		"consultancies": overview.Consultancies,
	}).Debug("consulting: visão do mês gerada")

	return overview, nil
}

func diagnosticTotals(diagnostics []*domain.Diagnostic, actions []*domain.Action) domain.DiagnosticTotals {
	totals := domain.DiagnosticTotals{Diagnostics: len(diagnostics)}

	ids := make(map[string]bool, len(diagnostics))
	for _, diagnostic := range diagnostics {
		ids[diagnostic.ID] = true

		summary := diagnostic.Summarize(0)
		totals.Strengths += summary.Strengths
		totals.Weaknesses += summary.Weaknesses
		totals.Opportunities += summary.Opportunities
		totals.Threats += summary.Threats
		totals.Problems += summary.Problems
		totals.Insights += summary.Insights
	}

	for _, action := range actions {
		if action.DiagnosticID != nil && ids[*action.DiagnosticID] {
			totals.LinkedActions++
		}
	}
	return totals
}

// monthPerformance recalcula o score de cada cliente antes de agrupar por faixa
func monthPerformance(performances []*domain.Performance) domain.MonthPerformance {
	result := domain.MonthPerformance{
		Clients: len(performances),
		ByBand: map[domain.Band]int{
			domain.BandExcellent:        0,
			domain.BandGood:             0,
			domain.BandNeedsImprovement: 0,
		},
		TotalBilling: decimal.Zero,
	}
	if len(performances) == 0 {
		return result
	}

	bands := domain.CountBy(performances, func(p *domain.Performance) domain.Band {
		return domain.BandFor(domain.ComputeScore(*p))
	})
	for band, count := range bands {
		result.ByBand[band] = count
	}

	scores := domain.SumBy(performances, func(p *domain.Performance) float64 {
		return float64(domain.ComputeScore(*p))
	})
	result.AverageScore = utils.RoundWithTwoDecimalPlace(scores / float64(len(performances)))

	for _, performance := range performances {
		result.TotalBilling = result.TotalBilling.Add(performance.TotalBilling)
	}
	return result
}

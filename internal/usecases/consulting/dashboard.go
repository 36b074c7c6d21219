package consulting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/pkg/apiErrors"
	"github.com/vfg2006/consultorpro-api/pkg/log"
	"github.com/vfg2006/consultorpro-api/pkg/utils"
)

// panelData são os registros da consultoria usados pelo painel e pela linha do tempo
type panelData struct {
	consultancy   *domain.Consultancy
	goals         []*domain.Goal
	actions       []*domain.Action
	opportunities []*domain.Opportunity
	diagnostic    *domain.Diagnostic
	performance   *domain.Performance
}

func (s *Service) load(ctx context.Context, consultancyID string) (*panelData, error) {
	consultancy, err := s.consultancyRepo.GetByID(ctx, consultancyID)
	if err != nil {
		return nil, s.dbError(consultancyID, err)
	}
	if consultancy == nil {
		return nil, nil
	}

	data := &panelData{consultancy: consultancy}

	if data.goals, err = s.goalRepo.ListByConsultancy(ctx, consultancyID); err != nil {
		return nil, s.dbError(consultancyID, err)
	}
	if data.actions, err = s.actionRepo.ListByConsultancy(ctx, consultancyID); err != nil {
		return nil, s.dbError(consultancyID, err)
	}
	if data.opportunities, err = s.opportunityRepo.ListByConsultancy(ctx, consultancyID); err != nil {
		return nil, s.dbError(consultancyID, err)
	}
	if data.diagnostic, err = s.diagnosticRepo.GetByConsultancy(ctx, consultancyID); err != nil {
		return nil, s.dbError(consultancyID, err)
	}
	if data.performance, err = s.performanceRepo.GetByClientAndMonth(ctx, consultancy.ClientID, consultancy.MonthYear); err != nil {
		return nil, s.dbError(consultancyID, err)
	}

	return data, nil
}

func (s *Service) dbError(consultancyID string, err error) error {
	return NewConsultancyIDError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, consultancyID, err.Error())
}

// Dashboard monta o painel da consultoria. Consultoria inexistente gera painel zerado, sem erro.
func (s *Service) Dashboard(ctx context.Context, consultancyID string) (*domain.Dashboard, error) {
	data, err := s.load(ctx, consultancyID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if data == nil {
		log.ForComponent(ctx, "consulting").WithField("consultancy_id", consultancyID).
			Debug("consulting: consultoria não encontrada, painel vazio")
		return emptyDashboard(consultancyID, now), nil
	}

	dashboard := emptyDashboard(consultancyID, now)
	dashboard.Consultancy = data.consultancy
	dashboard.Goals = goalOverview(data.goals, now)
	dashboard.Actions = actionOverview(data.actions)
	dashboard.Opportunities = opportunityOverview(data.opportunities)
	dashboard.Timeline = timeline(data, DefaultTimelineLimit)

	if data.performance != nil {
		dashboard.Performance = performanceOverview(*data.performance)
	}
	if data.diagnostic != nil {
		linked := 0
		for _, action := range data.actions {
			if action.DiagnosticID != nil && *action.DiagnosticID == data.diagnostic.ID {
				linked++
			}
		}
		summary := data.diagnostic.Summarize(linked)
		dashboard.Diagnostic = &summary
	}

	return dashboard, nil
}

// Timeline retorna os eventos mais recentes da consultoria. limit <= 0 usa DefaultTimelineLimit.
func (s *Service) Timeline(ctx context.Context, consultancyID string, limit int) ([]domain.TimelineEvent, error) {
	if limit <= 0 {
		limit = DefaultTimelineLimit
	}

	data, err := s.load(ctx, consultancyID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []domain.TimelineEvent{}, nil
	}
	return timeline(data, limit), nil
}

func emptyDashboard(consultancyID string, now time.Time) *domain.Dashboard {
	return &domain.Dashboard{
		ConsultancyID: consultancyID,
		Goals: domain.GoalOverview{
			ByStatus: map[domain.GoalStatus]int{
				domain.GoalStatusAchieved:   0,
				domain.GoalStatusInProgress: 0,
				domain.GoalStatusMissed:     0,
			},
			AtRisk: []domain.GoalProgress{},
		},
		Actions: domain.ActionOverview{
			ByQuadrant: map[domain.Quadrant]int{
				domain.QuadrantQuickWins: 0,
				domain.QuadrantProjects:  0,
				domain.QuadrantFillIns:   0,
				domain.QuadrantThankless: 0,
			},
			ByStatus: map[domain.ActionStatus]int{
				domain.ActionStatusPending:    0,
				domain.ActionStatusInProgress: 0,
				domain.ActionStatusDone:       0,
			},
		},
		Opportunities: domain.OpportunityOverview{
			EstimatedValue: decimal.Zero,
			ConvertedValue: decimal.Zero,
		},
		Timeline:    []domain.TimelineEvent{},
		GeneratedAt: now,
	}
}

func goalOverview(goals []*domain.Goal, now time.Time) domain.GoalOverview {
	overview := emptyDashboard("", now).Goals
	overview.Total = len(goals)

	for status, count := range domain.CountBy(goals, func(g *domain.Goal) domain.GoalStatus { return g.Status }) {
		overview.ByStatus[status] = count
	}

	progress := make([]domain.GoalProgress, 0, len(goals))
	for _, goal := range goals {
		evaluated := goal.Evaluate(now)
		progress = append(progress, evaluated)
		if evaluated.AtRisk {
			overview.AtRisk = append(overview.AtRisk, evaluated)
		}
	}

	overview.AchievedPercentage = utils.RoundWithTwoDecimalPlace(
		domain.Percentage(float64(overview.ByStatus[domain.GoalStatusAchieved]), float64(overview.Total)),
	)
	if overview.Total > 0 {
		sum := domain.SumBy(progress, func(p domain.GoalProgress) float64 { return p.Progress })
		overview.AverageProgress = utils.RoundWithTwoDecimalPlace(sum / float64(overview.Total))
	}

	return overview
}

func actionOverview(actions []*domain.Action) domain.ActionOverview {
	overview := emptyDashboard("", time.Time{}).Actions
	overview.Total = len(actions)

	// O quadrante é derivado de novo, nunca lido do registro
	quadrants := domain.CountBy(actions, func(a *domain.Action) domain.Quadrant {
		return domain.ClassifyQuadrant(a.Impact, a.Effort)
	})
	for quadrant, count := range quadrants {
		overview.ByQuadrant[quadrant] = count
	}
	for status, count := range domain.CountBy(actions, func(a *domain.Action) domain.ActionStatus { return a.Status }) {
		overview.ByStatus[status] = count
	}

	overview.CompletionPercentage = utils.RoundWithTwoDecimalPlace(
		domain.Percentage(float64(overview.ByStatus[domain.ActionStatusDone]), float64(overview.Total)),
	)
	return overview
}

func opportunityOverview(opportunities []*domain.Opportunity) domain.OpportunityOverview {
	overview := domain.OpportunityOverview{
		Total:          len(opportunities),
		EstimatedValue: decimal.Zero,
		ConvertedValue: decimal.Zero,
	}

	for _, opportunity := range opportunities {
		overview.EstimatedValue = overview.EstimatedValue.Add(opportunity.EstimatedValue)
		if opportunity.Converted {
			overview.Converted++
			overview.ConvertedValue = overview.ConvertedValue.Add(opportunity.EstimatedValue)
		}
	}

	overview.ConversionRate = utils.RoundWithTwoDecimalPlace(
		domain.Percentage(float64(overview.Converted), float64(overview.Total)),
	)
	return overview
}

// performanceOverview recalcula score e faixa em vez de confiar no que foi gravado
func performanceOverview(p domain.Performance) *domain.PerformanceOverview {
	score := domain.ComputeScore(p)
	band := domain.BandFor(score)

	return &domain.PerformanceOverview{
		Score:      score,
		Band:       band,
		Color:      band.Color(),
		Indicators: p.Indicators(),
		ARPU:       p.ARPU(),
	}
}

func timeline(data *panelData, limit int) []domain.TimelineEvent {
	events := make([]domain.TimelineEvent, 0, len(data.goals)+len(data.actions)+len(data.opportunities)+1)

	for _, goal := range data.goals {
		events = append(events, domain.TimelineEvent{
			Type:        domain.TimelineGoal,
			ReferenceID: goal.ID,
			Title:       goal.Title,
			Detail:      string(goal.Status),
			Date:        goal.CreatedAt,
		})
	}
	for _, action := range data.actions {
		events = append(events, domain.TimelineEvent{
			Type:        domain.TimelineAction,
			ReferenceID: action.ID,
			Title:       action.Title,
			Detail:      string(domain.ClassifyQuadrant(action.Impact, action.Effort)),
			Date:        action.CreatedAt,
		})
	}
	for _, opportunity := range data.opportunities {
		detail := "aberta"
		if opportunity.Converted {
			detail = "convertida"
		}
		events = append(events, domain.TimelineEvent{
			Type:        domain.TimelineOpportunity,
			ReferenceID: opportunity.ID,
			Title:       opportunity.Title,
			Detail:      detail,
			Date:        opportunity.CreatedAt,
		})
	}
	if data.diagnostic != nil {
		events = append(events, domain.TimelineEvent{
			Type:        domain.TimelineDiagnostic,
			ReferenceID: data.diagnostic.ID,
			Title:       "Diagnóstico do mês",
			Date:        data.diagnostic.UpdatedAt,
		})
	}

	return domain.MostRecent(events, limit, func(e domain.TimelineEvent) time.Time { return e.Date })
}

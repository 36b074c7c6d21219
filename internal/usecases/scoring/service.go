package scoring

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/consultorpro-api/infrastructure/repository"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/pkg/apiErrors"
	"github.com/vfg2006/consultorpro-api/pkg/log"
	"github.com/vfg2006/consultorpro-api/pkg/utils"
)

type Scorer interface {
	RegisterPerformance(ctx context.Context, performance *domain.Performance) (*domain.Performance, error)
	GetPerformance(ctx context.Context, clientID, monthYear string) (*domain.Performance, error)
	ListPerformances(ctx context.Context, monthYear string) ([]*domain.Performance, error)
	ClientHistory(ctx context.Context, clientID string) ([]*domain.Performance, error)
	DeletePerformance(ctx context.Context, id string) error
	Evaluate(performance domain.Performance) Evaluation
	RecalculateMonth(ctx context.Context, monthYear string) (int, error)
	BuildRanking(ctx context.Context, monthYear string) (*domain.PerformanceRanking, error)
	GetRanking(ctx context.Context, monthYear string) (*domain.PerformanceRanking, error)
	GetClientRanking(ctx context.Context, clientID, monthYear string) (*domain.PerformanceRankingItem, error)
}

// Evaluation é o resultado do cálculo sem persistência
type Evaluation struct {
	Breakdown  domain.ScoreBreakdown        `json:"breakdown"`
	Score      int                          `json:"score"`
	Band       domain.Band                  `json:"band"`
	Color      string                       `json:"color"`
	Indicators domain.PerformanceIndicators `json:"indicators"`
	ARPU       decimal.Decimal              `json:"arpu"`
	NetGrowth  int                          `json:"net_growth"`
}

type Service struct {
	performanceRepo repository.PerformanceRepository
	rankingRepo     repository.PerformanceRankingRepository
	now             func() time.Time
}

func NewService(
	performanceRepo repository.PerformanceRepository,
	rankingRepo repository.PerformanceRankingRepository,
) Scorer {
	return &Service{
		performanceRepo: performanceRepo,
		rankingRepo:     rankingRepo,
		now:             time.Now,
	}
}

func (s *Service) RegisterPerformance(ctx context.Context, p *domain.Performance) (*domain.Performance, error) {
	if err := validatePerformance(p); err != nil {
		return nil, err
	}

	p.Recalculate()

	now := s.now()
	if p.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewScoringError(err, apiErrors.ErrInternalServer, "Erro ao gerar ID")
		}
		p.ID = id
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	if err := s.performanceRepo.SaveOrUpdate(ctx, p); err != nil {
		return nil, NewClientScoringError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, p.ClientID, err.Error())
	}

	log.ForComponent(ctx, "scoring").WithFields(log.Fields{
		"client_id":  p.ClientID,
		"month_year": p.MonthYear,
		"score":      p.Score,
	}).Info("scoring: performance registrada")

	return p, nil
}

func validatePerformance(p *domain.Performance) error {
	if p.ClientID == "" {
		return NewScoringError(ErrClientIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if _, err := utils.ParseMonthYear(p.MonthYear); err != nil {
		return NewClientScoringError(ErrInvalidMonthYear, apiErrors.ErrInvalidFormat, p.ClientID, p.MonthYear)
	}

	if p.ActiveClients < 0 || p.NewClients < 0 || p.CancelledClients < 0 || p.ActiveContracts < 0 || p.SupportTickets < 0 {
		return NewClientScoringError(ErrInvalidIndicator, apiErrors.ErrInvalidRequest, p.ClientID, "contadores não podem ser negativos")
	}

	if p.TotalBilling.IsNegative() || p.DelinquencyAmount.IsNegative() {
		return NewClientScoringError(ErrInvalidIndicator, apiErrors.ErrInvalidRequest, p.ClientID, "valores monetários não podem ser negativos")
	}

	for name, rate := range map[string]float64{"churn_rate": p.ChurnRate, "delinquency_rate": p.DelinquencyRate, "uptime": p.Uptime} {
		if rate < 0 || rate > 100 {
			return NewClientScoringError(ErrInvalidIndicator, apiErrors.ErrInvalidRequest, p.ClientID, name+" deve estar entre 0 e 100")
		}
	}

	if p.NPS < -100 || p.NPS > 100 {
		return NewClientScoringError(ErrInvalidIndicator, apiErrors.ErrInvalidRequest, p.ClientID, "nps deve estar entre -100 e 100")
	}

	if p.Satisfaction < 0 || p.Satisfaction > 5 {
		return NewClientScoringError(ErrInvalidIndicator, apiErrors.ErrInvalidRequest, p.ClientID, "satisfaction deve estar entre 0 e 5")
	}

	return nil
}

func (s *Service) GetPerformance(ctx context.Context, clientID, monthYear string) (*domain.Performance, error) {
	p, err := s.performanceRepo.GetByClientAndMonth(ctx, clientID, monthYear)
	if err != nil {
		return nil, NewClientScoringError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, err.Error())
	}
	if p == nil {
		return nil, NewClientScoringError(ErrPerformanceNotFound, apiErrors.ErrNotFound, clientID, monthYear)
	}
	return p, nil
}

func (s *Service) ListPerformances(ctx context.Context, monthYear string) ([]*domain.Performance, error) {
	if _, err := utils.ParseMonthYear(monthYear); err != nil {
		return nil, NewScoringError(ErrInvalidMonthYear, apiErrors.ErrInvalidFormat, monthYear)
	}

	performances, err := s.performanceRepo.ListByMonth(ctx, monthYear)
	if err != nil {
		return nil, NewScoringError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return performances, nil
}

func (s *Service) ClientHistory(ctx context.Context, clientID string) ([]*domain.Performance, error) {
	performances, err := s.performanceRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, NewClientScoringError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, err.Error())
	}

	sort.SliceStable(performances, func(i, j int) bool {
		return performances[i].MonthYear < performances[j].MonthYear
	})
	return performances, nil
}

func (s *Service) DeletePerformance(ctx context.Context, id string) error {
	if err := s.performanceRepo.Delete(ctx, id); err != nil {
		return NewScoringError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return nil
}

func (s *Service) Evaluate(p domain.Performance) Evaluation {
	breakdown := p.Breakdown()
	return Evaluation{
		Breakdown:  breakdown,
		Score:      breakdown.Total,
		Band:       breakdown.Band,
		Color:      breakdown.Band.Color(),
		Indicators: p.Indicators(),
		ARPU:       p.ARPU(),
		NetGrowth:  p.NetGrowth(),
	}
}

// RecalculateMonth regrava score e faixa de todas as performances do período
func (s *Service) RecalculateMonth(ctx context.Context, monthYear string) (int, error) {
	performances, err := s.ListPerformances(ctx, monthYear)
	if err != nil {
		return 0, err
	}

	logger := log.ForComponent(ctx, "scoring").WithField("month_year", monthYear)

	updated := 0
	for _, p := range performances {
		previousScore := p.Score
		p.Recalculate()
		if p.Score == previousScore {
			continue
		}

		p.UpdatedAt = s.now()
		if err := s.performanceRepo.SaveOrUpdate(ctx, p); err != nil {
			return updated, NewClientScoringError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, p.ClientID, err.Error())
		}
		updated++

		logger.WithFields(log.Fields{
			"client_id":      p.ClientID,
			"previous_score": previousScore,
			"score":          p.Score,
		}).Info("scoring: score recalculado")
	}

	return updated, nil
}

// BuildRanking calcula e grava o ranking do mês, comparando com o ranking do mês anterior
func (s *Service) BuildRanking(ctx context.Context, monthYear string) (*domain.PerformanceRanking, error) {
	performances, err := s.ListPerformances(ctx, monthYear)
	if err != nil {
		return nil, err
	}

	previous, err := s.previousPositions(ctx, monthYear)
	if err != nil {
		return nil, err
	}

	items := rankPerformances(performances, s.now())
	updatePositions(items, previous)

	if err := s.rankingRepo.SaveOrUpdate(ctx, items); err != nil {
		return nil, NewScoringError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForComponent(ctx, "scoring").WithFields(log.Fields{
		"month_year": monthYear,
		"clients":    len(items),
	}).Info("scoring: ranking mensal atualizado")

	return toRanking(monthYear, items), nil
}

// GetRanking retorna o ranking gravado; sem ranking gravado, calcula na hora sem persistir
func (s *Service) GetRanking(ctx context.Context, monthYear string) (*domain.PerformanceRanking, error) {
	if _, err := utils.ParseMonthYear(monthYear); err != nil {
		return nil, NewScoringError(ErrInvalidMonthYear, apiErrors.ErrInvalidFormat, monthYear)
	}

	stored, err := s.rankingRepo.GetRanking(ctx, monthYear)
	if err != nil {
		return nil, NewScoringError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if stored != nil && len(stored.Ranking) > 0 {
		return stored, nil
	}

	performances, err := s.ListPerformances(ctx, monthYear)
	if err != nil {
		return nil, err
	}

	previous, err := s.previousPositions(ctx, monthYear)
	if err != nil {
		return nil, err
	}

	items := rankPerformances(performances, s.now())
	updatePositions(items, previous)
	return toRanking(monthYear, items), nil
}

// GetClientRanking lê a posição gravada do cliente; sem ranking gravado, procura no ranking calculado
func (s *Service) GetClientRanking(ctx context.Context, clientID, monthYear string) (*domain.PerformanceRankingItem, error) {
	if clientID == "" {
		return nil, NewScoringError(ErrClientIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if _, err := utils.ParseMonthYear(monthYear); err != nil {
		return nil, NewClientScoringError(ErrInvalidMonthYear, apiErrors.ErrInvalidFormat, clientID, monthYear)
	}

	item, err := s.rankingRepo.GetByClientID(ctx, clientID, monthYear)
	if err != nil {
		return nil, NewClientScoringError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, err.Error())
	}
	if item != nil {
		return item, nil
	}

	ranking, err := s.GetRanking(ctx, monthYear)
	if err != nil {
		return nil, err
	}
	for i := range ranking.Ranking {
		if ranking.Ranking[i].ClientID == clientID {
			return &ranking.Ranking[i], nil
		}
	}

	return nil, NewClientScoringError(ErrRankingNotFound, apiErrors.ErrNotFound, clientID, monthYear)
}

// previousPositions usa o ranking gravado do mês anterior ou, na falta dele, o calcula das performances
func (s *Service) previousPositions(ctx context.Context, monthYear string) (map[string]int, error) {
	previousMonth, err := utils.PreviousMonthYear(monthYear)
	if err != nil {
		return nil, NewScoringError(ErrInvalidMonthYear, apiErrors.ErrInvalidFormat, monthYear)
	}

	positions := make(map[string]int)

	stored, err := s.rankingRepo.GetRanking(ctx, previousMonth)
	if err != nil {
		return nil, NewScoringError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if stored != nil && len(stored.Ranking) > 0 {
		for _, item := range stored.Ranking {
			positions[item.ClientID] = item.Position
		}
		return positions, nil
	}

	performances, err := s.performanceRepo.ListByMonth(ctx, previousMonth)
	if err != nil {
		return nil, NewScoringError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	for _, item := range rankPerformances(performances, s.now()) {
		positions[item.ClientID] = item.Position
	}
	return positions, nil
}

// rankPerformances ordena por score desc, faturamento desc e client_id, com posições a partir de 1
func rankPerformances(performances []*domain.Performance, now time.Time) []*domain.PerformanceRankingItem {
	items := make([]*domain.PerformanceRankingItem, 0, len(performances))
	for _, p := range performances {
		score := domain.ComputeScore(*p)
		items = append(items, &domain.PerformanceRankingItem{
			ClientID:     p.ClientID,
			ClientName:   p.ClientName,
			MonthYear:    p.MonthYear,
			Score:        score,
			ScoreBand:    domain.BandFor(score),
			TotalBilling: p.TotalBilling,
			UpdatedAt:    now,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		if !items[i].TotalBilling.Equal(items[j].TotalBilling) {
			return items[i].TotalBilling.GreaterThan(items[j].TotalBilling)
		}
		return items[i].ClientID < items[j].ClientID
	})

	for i, item := range items {
		item.Position = i + 1
	}
	return items
}

// updatePositions preenche a variação: positivo = subiu, negativo = desceu
func updatePositions(items []*domain.PerformanceRankingItem, previous map[string]int) {
	for _, item := range items {
		previousPosition, exists := previous[item.ClientID]
		if !exists {
			continue
		}
		item.PreviousPosition = previousPosition
		item.PositionChange = previousPosition - item.Position
	}
}

func toRanking(monthYear string, items []*domain.PerformanceRankingItem) *domain.PerformanceRanking {
	ranking := &domain.PerformanceRanking{
		MonthYear: monthYear,
		Ranking:   make([]domain.PerformanceRankingItem, 0, len(items)),
	}
	for _, item := range items {
		ranking.Ranking = append(ranking.Ranking, *item)
		if item.UpdatedAt.After(ranking.LastUpdate) {
			ranking.LastUpdate = item.UpdatedAt
		}
	}
	return ranking
}

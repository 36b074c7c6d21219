package planning

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/vfg2006/consultorpro-api/infrastructure/repository"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/pkg/apiErrors"
	"github.com/vfg2006/consultorpro-api/pkg/log"
	"github.com/vfg2006/consultorpro-api/pkg/utils"
)

type Planner interface {
	CreateAction(ctx context.Context, action *domain.Action) (*domain.Action, error)
	GetAction(ctx context.Context, id string) (*domain.Action, error)
	UpdateAction(ctx context.Context, req *domain.UpdateActionRequest) (*domain.Action, error)
	MoveToQuadrant(ctx context.Context, id string, quadrant domain.Quadrant) (*domain.Action, error)
	SetActionStatus(ctx context.Context, id string, status domain.ActionStatus) (*domain.Action, error)
	DeleteAction(ctx context.Context, id string) error
	ListActions(ctx context.Context, consultancyID string) ([]*domain.Action, error)
	Matrix(ctx context.Context, consultancyID string) (*domain.ActionMatrix, error)
	Classify(impact, effort domain.Level) (domain.Quadrant, error)

	CreateOpportunity(ctx context.Context, opportunity *domain.Opportunity) (*domain.Opportunity, error)
	GetOpportunity(ctx context.Context, id string) (*domain.Opportunity, error)
	UpdateOpportunity(ctx context.Context, req *domain.UpdateOpportunityRequest) (*domain.Opportunity, error)
	DeleteOpportunity(ctx context.Context, id string) error
	ListOpportunities(ctx context.Context, consultancyID string) ([]*domain.Opportunity, error)
	PromoteOpportunity(ctx context.Context, req *domain.PromoteOpportunityRequest) (*domain.Action, error)
}

type Service struct {
	actionRepo      repository.ActionRepository
	opportunityRepo repository.OpportunityRepository
	now             func() time.Time
}

func NewService(actionRepo repository.ActionRepository, opportunityRepo repository.OpportunityRepository) Planner {
	return &Service{
		actionRepo:      actionRepo,
		opportunityRepo: opportunityRepo,
		now:             time.Now,
	}
}

func (s *Service) CreateAction(ctx context.Context, action *domain.Action) (*domain.Action, error) {
	if action.ConsultancyID == "" {
		return nil, NewPlanningError(ErrConsultancyIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if action.Title == "" {
		return nil, NewPlanningError(ErrTitleRequired, apiErrors.ErrMissingRequiredData, "")
	}

	// O quadrante enviado pelo cliente é ignorado
	if err := action.SetImpactEffort(action.Impact, action.Effort); err != nil {
		return nil, NewPlanningError(err, apiErrors.ErrInvalidEnum, levelDetails(action.Impact, action.Effort))
	}

	if action.Status == "" {
		action.Status = domain.ActionStatusPending
	}
	if !action.Status.Valid() {
		return nil, NewPlanningError(domain.ErrInvalidActionStatus, apiErrors.ErrInvalidEnum, string(action.Status))
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewPlanningError(err, apiErrors.ErrInternalServer, "Erro ao gerar ID")
	}

	now := s.now()
	action.ID = id
	action.CreatedAt = now
	action.UpdatedAt = now

	if err := s.actionRepo.Create(ctx, action); err != nil {
		return nil, NewPlanningError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForComponent(ctx, "planning").WithFields(log.Fields{
		"consultancy_id": action.ConsultancyID,
		"action_id":      action.ID,
		"quadrant":       action.Quadrant,
	}).Info("planning: ação criada")

	return action, nil
}

func levelDetails(impact, effort domain.Level) string {
	return "impact=" + string(impact) + " effort=" + string(effort)
}

func (s *Service) GetAction(ctx context.Context, id string) (*domain.Action, error) {
	action, err := s.actionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewResourcePlanningError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	if action == nil {
		return nil, NewResourcePlanningError(ErrActionNotFound, apiErrors.ErrNotFound, id, "")
	}
	return action, nil
}

// UpdateAction aplica os campos enviados; qualquer mudança de impacto ou esforço recalcula o quadrante
func (s *Service) UpdateAction(ctx context.Context, req *domain.UpdateActionRequest) (*domain.Action, error) {
	action, err := s.GetAction(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, NewResourcePlanningError(ErrTitleRequired, apiErrors.ErrMissingRequiredData, req.ID, "")
		}
		action.Title = *req.Title
	}
	if req.Description != nil {
		action.Description = *req.Description
	}
	if req.Owner != nil {
		action.Owner = *req.Owner
	}
	if req.Deadline != nil {
		action.Deadline = req.Deadline
	}
	if req.DiagnosticID != nil {
		action.DiagnosticID = req.DiagnosticID
	}
	if req.GoalID != nil {
		action.GoalID = req.GoalID
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, NewResourcePlanningError(domain.ErrInvalidActionStatus, apiErrors.ErrInvalidEnum, req.ID, string(*req.Status))
		}
		action.Status = *req.Status
	}

	impact, effort := action.Impact, action.Effort
	if req.Impact != nil {
		impact = *req.Impact
	}
	if req.Effort != nil {
		effort = *req.Effort
	}
	if err := action.SetImpactEffort(impact, effort); err != nil {
		return nil, NewResourcePlanningError(err, apiErrors.ErrInvalidEnum, req.ID, levelDetails(impact, effort))
	}

	return s.saveAction(ctx, action)
}

// MoveToQuadrant aplica o par canônico do quadrante de destino (arrastar e soltar na matriz)
func (s *Service) MoveToQuadrant(ctx context.Context, id string, quadrant domain.Quadrant) (*domain.Action, error) {
	action, err := s.GetAction(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := action.MoveTo(quadrant); err != nil {
		return nil, NewResourcePlanningError(err, apiErrors.ErrInvalidEnum, id, string(quadrant))
	}

	return s.saveAction(ctx, action)
}

func (s *Service) SetActionStatus(ctx context.Context, id string, status domain.ActionStatus) (*domain.Action, error) {
	return s.UpdateAction(ctx, &domain.UpdateActionRequest{ID: id, Status: &status})
}

func (s *Service) DeleteAction(ctx context.Context, id string) error {
	if _, err := s.GetAction(ctx, id); err != nil {
		return err
	}

	if err := s.actionRepo.Delete(ctx, id); err != nil {
		return NewResourcePlanningError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	return nil
}

func (s *Service) ListActions(ctx context.Context, consultancyID string) ([]*domain.Action, error) {
	actions, err := s.actionRepo.ListByConsultancy(ctx, consultancyID)
	if err != nil {
		return nil, NewPlanningError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return actions, nil
}

// Matrix agrupa as ações nos quatro quadrantes, cada grupo ordenado pelo prazo (sem prazo no fim)
func (s *Service) Matrix(ctx context.Context, consultancyID string) (*domain.ActionMatrix, error) {
	actions, err := s.ListActions(ctx, consultancyID)
	if err != nil {
		return nil, err
	}

	matrix := &domain.ActionMatrix{
		ConsultancyID: consultancyID,
		Quadrants:     make(map[domain.Quadrant][]domain.Action, 4),
		Total:         len(actions),
	}
	for _, quadrant := range domain.Quadrants() {
		matrix.Quadrants[quadrant] = []domain.Action{}
	}

	for _, action := range actions {
		// Registros antigos podem ter quadrante gravado divergente; a matriz usa sempre o derivado
		quadrant := domain.ClassifyQuadrant(action.Impact, action.Effort)
		action.Quadrant = quadrant
		matrix.Quadrants[quadrant] = append(matrix.Quadrants[quadrant], *action)
	}

	for _, bucket := range matrix.Quadrants {
		sort.SliceStable(bucket, func(i, j int) bool {
			return deadlineBefore(bucket[i].Deadline, bucket[j].Deadline)
		})
	}

	return matrix, nil
}

func deadlineBefore(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	}
	return a.Before(*b)
}

func (s *Service) Classify(impact, effort domain.Level) (domain.Quadrant, error) {
	if !impact.Valid() || !effort.Valid() {
		return "", NewPlanningError(domain.ErrInvalidLevel, apiErrors.ErrInvalidEnum, levelDetails(impact, effort))
	}
	return domain.ClassifyQuadrant(impact, effort), nil
}

func (s *Service) saveAction(ctx context.Context, action *domain.Action) (*domain.Action, error) {
	action.UpdatedAt = s.now()
	if err := s.actionRepo.Update(ctx, action); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewResourcePlanningError(ErrActionNotFound, apiErrors.ErrNotFound, action.ID, "")
		}
		return nil, NewResourcePlanningError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, action.ID, err.Error())
	}
	return action, nil
}

package tracking

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/consultorpro-api/infrastructure/repository"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/pkg/apiErrors"
	"github.com/vfg2006/consultorpro-api/pkg/log"
	"github.com/vfg2006/consultorpro-api/pkg/utils"
)

type GoalTracker interface {
	CreateGoal(ctx context.Context, goal *domain.Goal) (*domain.GoalProgress, error)
	GetGoal(ctx context.Context, id string) (*domain.GoalProgress, error)
	UpdateGoal(ctx context.Context, req *domain.UpdateGoalRequest) (*domain.GoalProgress, error)
	UpdateCurrentValue(ctx context.Context, id string, value float64) (*domain.GoalProgress, error)
	SetStatus(ctx context.Context, id string, status domain.GoalStatus) (*domain.GoalProgress, error)
	DeleteGoal(ctx context.Context, id string) error
	ListGoals(ctx context.Context, consultancyID string) ([]domain.GoalProgress, error)
	ListAtRisk(ctx context.Context, monthYear string) ([]domain.GoalProgress, error)
}

type Service struct {
	goalRepo repository.GoalRepository
	now      func() time.Time
}

func NewService(goalRepo repository.GoalRepository) GoalTracker {
	return &Service{
		goalRepo: goalRepo,
		now:      time.Now,
	}
}

func (s *Service) CreateGoal(ctx context.Context, goal *domain.Goal) (*domain.GoalProgress, error) {
	if goal.ConsultancyID == "" {
		return nil, NewTrackingError(ErrConsultancyIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if goal.Unit == "" {
		goal.Unit = domain.GoalUnitNumber
	}
	if goal.Status == "" {
		goal.Status = domain.GoalStatusInProgress
	}

	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewTrackingError(err, apiErrors.ErrInternalServer, "Erro ao gerar ID")
	}

	now := s.now()
	goal.ID = id
	goal.CreatedAt = now
	goal.UpdatedAt = now

	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForComponent(ctx, "tracking").WithFields(log.Fields{
		"consultancy_id": goal.ConsultancyID,
		"goal_id":        goal.ID,
	}).Info("tracking: meta criada")

	return s.evaluate(goal), nil
}

func validateGoal(goal *domain.Goal) error {
	if goal.Title == "" {
		return NewGoalTrackingError(ErrTitleRequired, apiErrors.ErrMissingRequiredData, goal.ID, "")
	}
	if goal.TargetValue < 0 {
		return NewGoalTrackingError(ErrInvalidTarget, apiErrors.ErrInvalidRequest, goal.ID, "")
	}
	if !goal.Unit.Valid() {
		return NewGoalTrackingError(domain.ErrInvalidGoalUnit, apiErrors.ErrInvalidEnum, goal.ID, string(goal.Unit))
	}
	if !goal.Status.Valid() {
		return NewGoalTrackingError(domain.ErrInvalidGoalStatus, apiErrors.ErrInvalidEnum, goal.ID, string(goal.Status))
	}
	return nil
}

func (s *Service) GetGoal(ctx context.Context, id string) (*domain.GoalProgress, error) {
	goal, err := s.findGoal(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.evaluate(goal), nil
}

func (s *Service) UpdateGoal(ctx context.Context, req *domain.UpdateGoalRequest) (*domain.GoalProgress, error) {
	goal, err := s.findGoal(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.TargetValue != nil {
		goal.TargetValue = *req.TargetValue
	}
	if req.CurrentValue != nil {
		goal.CurrentValue = *req.CurrentValue
	}
	if req.Unit != nil {
		goal.Unit = *req.Unit
	}
	if req.Status != nil {
		goal.Status = *req.Status
	}
	if req.Deadline != nil {
		goal.Deadline = req.Deadline
	}

	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	return s.save(ctx, goal)
}

func (s *Service) UpdateCurrentValue(ctx context.Context, id string, value float64) (*domain.GoalProgress, error) {
	return s.UpdateGoal(ctx, &domain.UpdateGoalRequest{ID: id, CurrentValue: &value})
}

// SetStatus grava o status informado pelo usuário; o status derivado continua disponível em ImpliedStatus
func (s *Service) SetStatus(ctx context.Context, id string, status domain.GoalStatus) (*domain.GoalProgress, error) {
	if !status.Valid() {
		return nil, NewGoalTrackingError(domain.ErrInvalidGoalStatus, apiErrors.ErrInvalidEnum, id, string(status))
	}
	return s.UpdateGoal(ctx, &domain.UpdateGoalRequest{ID: id, Status: &status})
}

func (s *Service) DeleteGoal(ctx context.Context, id string) error {
	if _, err := s.findGoal(ctx, id); err != nil {
		return err
	}

	if err := s.goalRepo.Delete(ctx, id); err != nil {
		return NewGoalTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	return nil
}

// ListGoals devolve lista vazia quando a consultoria não tem metas ou não existe
func (s *Service) ListGoals(ctx context.Context, consultancyID string) ([]domain.GoalProgress, error) {
	goals, err := s.goalRepo.ListByConsultancy(ctx, consultancyID)
	if err != nil {
		return nil, NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return s.evaluateAll(goals, false), nil
}

// ListAtRisk percorre as metas do período pela regra de contenção e mantém as sinalizadas
func (s *Service) ListAtRisk(ctx context.Context, monthYear string) ([]domain.GoalProgress, error) {
	if _, err := utils.ParseMonthYear(monthYear); err != nil {
		return nil, NewTrackingError(ErrInvalidMonthYear, apiErrors.ErrInvalidFormat, monthYear)
	}

	goals, err := s.goalRepo.ListByMonth(ctx, monthYear)
	if err != nil {
		return nil, NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return s.evaluateAll(goals, true), nil
}

func (s *Service) findGoal(ctx context.Context, id string) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewGoalTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	if goal == nil {
		return nil, NewGoalTrackingError(ErrGoalNotFound, apiErrors.ErrNotFound, id, "")
	}
	return goal, nil
}

func (s *Service) save(ctx context.Context, goal *domain.Goal) (*domain.GoalProgress, error) {
	goal.UpdatedAt = s.now()
	if err := s.goalRepo.Update(ctx, goal); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewGoalTrackingError(ErrGoalNotFound, apiErrors.ErrNotFound, goal.ID, "")
		}
		return nil, NewGoalTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, goal.ID, err.Error())
	}
	return s.evaluate(goal), nil
}

func (s *Service) evaluate(goal *domain.Goal) *domain.GoalProgress {
	progress := goal.Evaluate(s.now())
	return &progress
}

func (s *Service) evaluateAll(goals []*domain.Goal, onlyAtRisk bool) []domain.GoalProgress {
	now := s.now()
	result := make([]domain.GoalProgress, 0, len(goals))
	for _, goal := range goals {
		progress := goal.Evaluate(now)
		if onlyAtRisk && !progress.AtRisk {
			continue
		}
		result = append(result, progress)
	}
	return result
}

package planning

import (
	"context"
	"errors"

	"github.com/vfg2006/consultorpro-api/infrastructure/repository"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/pkg/apiErrors"
	"github.com/vfg2006/consultorpro-api/pkg/log"
	"github.com/vfg2006/consultorpro-api/pkg/utils"
)

func (s *Service) CreateOpportunity(ctx context.Context, opportunity *domain.Opportunity) (*domain.Opportunity, error) {
	if opportunity.ConsultancyID == "" {
		return nil, NewPlanningError(ErrConsultancyIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if opportunity.Probability == "" {
		opportunity.Probability = domain.LevelMedium
	}
	if err := validateOpportunity(opportunity); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewPlanningError(err, apiErrors.ErrInternalServer, "Erro ao gerar ID")
	}

	now := s.now()
	opportunity.ID = id
	opportunity.Converted = false
	opportunity.ActionID = nil
	opportunity.CreatedAt = now
	opportunity.UpdatedAt = now

	if err := s.opportunityRepo.Create(ctx, opportunity); err != nil {
		return nil, NewPlanningError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return opportunity, nil
}

func validateOpportunity(opportunity *domain.Opportunity) error {
	if opportunity.Title == "" {
		return NewResourcePlanningError(ErrTitleRequired, apiErrors.ErrMissingRequiredData, opportunity.ID, "")
	}
	if !opportunity.Probability.Valid() {
		return NewResourcePlanningError(domain.ErrInvalidLevel, apiErrors.ErrInvalidEnum, opportunity.ID, string(opportunity.Probability))
	}
	if opportunity.EstimatedValue.IsNegative() {
		return NewResourcePlanningError(ErrInvalidEstimatedValue, apiErrors.ErrInvalidRequest, opportunity.ID, opportunity.EstimatedValue.String())
	}
	return nil
}

func (s *Service) GetOpportunity(ctx context.Context, id string) (*domain.Opportunity, error) {
	opportunity, err := s.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewResourcePlanningError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	if opportunity == nil {
		return nil, NewResourcePlanningError(ErrOpportunityNotFound, apiErrors.ErrNotFound, id, "")
	}
	return opportunity, nil
}

func (s *Service) UpdateOpportunity(ctx context.Context, req *domain.UpdateOpportunityRequest) (*domain.Opportunity, error) {
	opportunity, err := s.GetOpportunity(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		opportunity.Title = *req.Title
	}
	if req.Description != nil {
		opportunity.Description = *req.Description
	}
	if req.EstimatedValue != nil {
		opportunity.EstimatedValue = *req.EstimatedValue
	}
	if req.Probability != nil {
		opportunity.Probability = *req.Probability
	}

	if err := validateOpportunity(opportunity); err != nil {
		return nil, err
	}

	opportunity.UpdatedAt = s.now()
	if err := s.opportunityRepo.Update(ctx, opportunity); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewResourcePlanningError(ErrOpportunityNotFound, apiErrors.ErrNotFound, req.ID, "")
		}
		return nil, NewResourcePlanningError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, req.ID, err.Error())
	}
	return opportunity, nil
}

func (s *Service) DeleteOpportunity(ctx context.Context, id string) error {
	if _, err := s.GetOpportunity(ctx, id); err != nil {
		return err
	}

	if err := s.opportunityRepo.Delete(ctx, id); err != nil {
		return NewResourcePlanningError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	return nil
}

func (s *Service) ListOpportunities(ctx context.Context, consultancyID string) ([]*domain.Opportunity, error) {
	opportunities, err := s.opportunityRepo.ListByConsultancy(ctx, consultancyID)
	if err != nil {
		return nil, NewPlanningError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return opportunities, nil
}

// PromoteOpportunity cria a ação ligada à oportunidade e marca a oportunidade como convertida.
// Sem impacto informado, usa a probabilidade; sem esforço informado, usa medium.
func (s *Service) PromoteOpportunity(ctx context.Context, req *domain.PromoteOpportunityRequest) (*domain.Action, error) {
	opportunity, err := s.GetOpportunity(ctx, req.OpportunityID)
	if err != nil {
		return nil, err
	}

	if opportunity.Converted {
		return nil, NewResourcePlanningError(ErrOpportunityAlreadyConverted, apiErrors.ErrConflict, opportunity.ID, "")
	}

	impact := opportunity.Probability
	if req.Impact != nil {
		impact = *req.Impact
	}
	effort := domain.LevelMedium
	if req.Effort != nil {
		effort = *req.Effort
	}

	opportunityID := opportunity.ID
	action, err := s.CreateAction(ctx, &domain.Action{
		ConsultancyID: opportunity.ConsultancyID,
		Title:         opportunity.Title,
		Description:   opportunity.Description,
		Impact:        impact,
		Effort:        effort,
		Owner:         req.Owner,
		Deadline:      req.Deadline,
		OpportunityID: &opportunityID,
	})
	if err != nil {
		return nil, err
	}

	// A marcação só vale se a oportunidade ainda não foi convertida; quem perder a corrida desfaz a própria ação
	if err := s.opportunityRepo.MarkConverted(ctx, opportunity.ID, action.ID, s.now()); err != nil {
		if deleteErr := s.actionRepo.Delete(ctx, action.ID); deleteErr != nil {
			log.ForComponent(ctx, "planning").WithError(deleteErr).Error("planning: erro ao desfazer ação da promoção")
		}

		switch {
		case errors.Is(err, repository.ErrAlreadyConverted):
			return nil, NewResourcePlanningError(ErrOpportunityAlreadyConverted, apiErrors.ErrConflict, opportunity.ID, "")
		case errors.Is(err, repository.ErrNotFound):
			return nil, NewResourcePlanningError(ErrOpportunityNotFound, apiErrors.ErrNotFound, opportunity.ID, "")
		}
		return nil, NewResourcePlanningError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, opportunity.ID, err.Error())
	}

	log.ForComponent(ctx, "planning").WithFields(log.Fields{
		"consultancy_id": opportunity.ConsultancyID,
		"opportunity_id": opportunity.ID,
		"action_id":      action.ID,
	}).Info("planning: oportunidade promovida a ação")

	return action, nil
}

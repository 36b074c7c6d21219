package consulting

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

// DefaultTimelineLimit é a quantidade de eventos da linha do tempo quando nenhum limite é informado
const DefaultTimelineLimit = 10

type Consultant interface {
	CreateConsultancy(ctx context.Context, consultancy *domain.Consultancy) (*domain.Consultancy, error)
	GetConsultancy(ctx context.Context, id string) (*domain.Consultancy, error)
	UpdateConsultancy(ctx context.Context, req *domain.UpdateConsultancyRequest) (*domain.Consultancy, error)
	DeleteConsultancy(ctx context.Context, id string) error
	ListByMonth(ctx context.Context, monthYear string) ([]*domain.Consultancy, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Consultancy, error)
	Dashboard(ctx context.Context, consultancyID string) (*domain.Dashboard, error)
	Timeline(ctx context.Context, consultancyID string, limit int) ([]domain.TimelineEvent, error)
	MonthOverview(ctx context.Context, monthYear string) (*domain.MonthOverview, error)
}

// Repositories agrupa os repositórios lidos pelo painel
type Repositories struct {
	Consultancy repository.ConsultancyRepository
	Goal        repository.GoalRepository
	Action      repository.ActionRepository
	Opportunity repository.OpportunityRepository
	Diagnostic  repository.DiagnosticRepository
	Performance repository.PerformanceRepository
}

type Service struct {
	consultancyRepo repository.ConsultancyRepository
	goalRepo        repository.GoalRepository
	actionRepo      repository.ActionRepository
	opportunityRepo repository.OpportunityRepository
	diagnosticRepo  repository.DiagnosticRepository
	performanceRepo repository.PerformanceRepository
	now             func() time.Time
}

func NewService(repos Repositories) Consultant {
	return &Service{
		consultancyRepo: repos.Consultancy,
		goalRepo:        repos.Goal,
		actionRepo:      repos.Action,
		opportunityRepo: repos.Opportunity,
		diagnosticRepo:  repos.Diagnostic,
		performanceRepo: repos.Performance,
		now:             time.Now,
	}
}

// CreateConsultancy abre o acompanhamento do cliente no mês. A chave é <client_id>-<month_year>.
func (s *Service) CreateConsultancy(ctx context.Context, consultancy *domain.Consultancy) (*domain.Consultancy, error) {
	if consultancy.ClientID == "" {
		return nil, NewConsultancyError(ErrClientIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if consultancy.MonthYear == "" {
		return nil, NewConsultancyError(ErrMonthYearRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if _, err := utils.ParseMonthYear(consultancy.MonthYear); err != nil {
		return nil, NewConsultancyError(ErrInvalidMonthYear, apiErrors.ErrInvalidFormat, consultancy.MonthYear)
	}

	if consultancy.Status == "" {
		consultancy.Status = domain.ConsultancyStatusActive
	}
	if !consultancy.Status.Valid() {
		return nil, NewConsultancyError(ErrInvalidStatus, apiErrors.ErrInvalidEnum, string(consultancy.Status))
	}

	consultancy.ID = domain.NewConsultancyKey(consultancy.ClientID, consultancy.MonthYear)

	existing, err := s.consultancyRepo.GetByID(ctx, consultancy.ID)
	if err != nil {
		return nil, NewConsultancyIDError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, consultancy.ID, err.Error())
	}
	if existing != nil {
		return nil, NewConsultancyIDError(ErrConsultancyExists, apiErrors.ErrConflict, consultancy.ID, "")
	}

	now := s.now()
	consultancy.CreatedAt = now
	consultancy.UpdatedAt = now

	if err := s.consultancyRepo.Create(ctx, consultancy); err != nil {
		return nil, NewConsultancyIDError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, consultancy.ID, err.Error())
	}

	log.ForComponent(ctx, "consulting").WithFields(log.Fields{
		"consultancy_id": consultancy.ID,
		"client_id":      consultancy.ClientID,
		"month_year":     consultancy.MonthYear,
	}).Info("consulting: consultoria criada")

	return consultancy, nil
}

func (s *Service) GetConsultancy(ctx context.Context, id string) (*domain.Consultancy, error) {
	consultancy, err := s.consultancyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewConsultancyIDError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	if consultancy == nil {
		return nil, NewConsultancyIDError(ErrConsultancyNotFound, apiErrors.ErrNotFound, id, "")
	}
	return consultancy, nil
}

func (s *Service) UpdateConsultancy(ctx context.Context, req *domain.UpdateConsultancyRequest) (*domain.Consultancy, error) {
	consultancy, err := s.GetConsultancy(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.ClientName != nil {
		consultancy.ClientName = *req.ClientName
	}
	if req.Consultant != nil {
		consultancy.Consultant = *req.Consultant
	}
	if req.Notes != nil {
		consultancy.Notes = *req.Notes
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, NewConsultancyIDError(ErrInvalidStatus, apiErrors.ErrInvalidEnum, req.ID, string(*req.Status))
		}
		consultancy.Status = *req.Status
	}

	consultancy.UpdatedAt = s.now()
	if err := s.consultancyRepo.Update(ctx, consultancy); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewConsultancyIDError(ErrConsultancyNotFound, apiErrors.ErrNotFound, req.ID, "")
		}
		return nil, NewConsultancyIDError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, req.ID, err.Error())
	}
	return consultancy, nil
}

// DeleteConsultancy remove só a consultoria; metas e ações ficam órfãs e passam a não aparecer no painel
func (s *Service) DeleteConsultancy(ctx context.Context, id string) error {
	if _, err := s.GetConsultancy(ctx, id); err != nil {
		return err
	}

	if err := s.consultancyRepo.Delete(ctx, id); err != nil {
		return NewConsultancyIDError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	return nil
}

// ListByMonth aplica a regra de contenção: toda consultoria cuja chave contém o token é listada
func (s *Service) ListByMonth(ctx context.Context, monthYear string) ([]*domain.Consultancy, error) {
	if monthYear == "" {
		return nil, NewConsultancyError(ErrMonthYearRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if _, err := utils.ParseMonthYear(monthYear); err != nil {
		return nil, NewConsultancyError(ErrInvalidMonthYear, apiErrors.ErrInvalidFormat, monthYear)
	}

	consultancies, err := s.consultancyRepo.ListByMonth(ctx, monthYear)
	if err != nil {
		return nil, NewConsultancyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return consultancies, nil
}

func (s *Service) ListByClient(ctx context.Context, clientID string) ([]*domain.Consultancy, error) {
	if clientID == "" {
		return nil, NewConsultancyError(ErrClientIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	consultancies, err := s.consultancyRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, NewConsultancyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return consultancies, nil
}

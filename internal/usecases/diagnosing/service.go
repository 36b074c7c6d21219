package diagnosing

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/consultorpro-api/infrastructure/repository"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/internal/usecases/planning"
	"github.com/vfg2006/consultorpro-api/pkg/apiErrors"
	"github.com/vfg2006/consultorpro-api/pkg/log"
	"github.com/vfg2006/consultorpro-api/pkg/utils"
)

type Diagnoser interface {
	SaveDiagnostic(ctx context.Context, diagnostic *domain.Diagnostic) (*domain.Diagnostic, error)
	GetDiagnostic(ctx context.Context, consultancyID string) (*domain.Diagnostic, error)
	Summary(ctx context.Context, consultancyID string) (*domain.DiagnosticSummary, error)
	LinkedActions(ctx context.Context, consultancyID string) ([]*domain.Action, error)
	CreateActionFromFinding(ctx context.Context, req *domain.CreateActionFromFindingRequest) (*domain.Action, error)
}

type Service struct {
	diagnosticRepo repository.DiagnosticRepository
	actionRepo     repository.ActionRepository
	planner        planning.Planner
	now            func() time.Time
}

func NewService(diagnosticRepo repository.DiagnosticRepository, actionRepo repository.ActionRepository, planner planning.Planner) Diagnoser {
	return &Service{
		diagnosticRepo: diagnosticRepo,
		actionRepo:     actionRepo,
		planner:        planner,
		now:            time.Now,
	}
}

// SaveDiagnostic grava o diagnóstico da consultoria, substituindo todas as listas
func (s *Service) SaveDiagnostic(ctx context.Context, diagnostic *domain.Diagnostic) (*domain.Diagnostic, error) {
	if diagnostic.ConsultancyID == "" {
		return nil, NewDiagnosticError(ErrConsultancyIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewDiagnosticError(err, apiErrors.ErrInternalServer, diagnostic.ConsultancyID, "Erro ao gerar ID")
	}

	now := s.now()
	diagnostic.ID = id
	diagnostic.CreatedAt = now
	diagnostic.UpdatedAt = now
	normalizeLists(diagnostic)

	// Se já existir, o repositório mantém o id e o created_at originais
	if err := s.diagnosticRepo.SaveOrUpdate(ctx, diagnostic); err != nil {
		return nil, NewDiagnosticError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, diagnostic.ConsultancyID, err.Error())
	}

	log.ForComponent(ctx, "diagnosing").WithFields(log.Fields{
		"consultancy_id": diagnostic.ConsultancyID,
		"diagnostic_id":  diagnostic.ID,
	}).Info("diagnosing: diagnóstico salvo")

	return diagnostic, nil
}

func normalizeLists(d *domain.Diagnostic) {
	for _, list := range []*[]string{&d.Strengths, &d.Weaknesses, &d.Opportunities, &d.Threats, &d.Problems, &d.Insights} {
		if *list == nil {
			*list = []string{}
		}
	}
}

// GetDiagnostic retorna um diagnóstico vazio quando a consultoria ainda não tem um
func (s *Service) GetDiagnostic(ctx context.Context, consultancyID string) (*domain.Diagnostic, error) {
	diagnostic, err := s.find(ctx, consultancyID)
	if err != nil {
		return nil, err
	}
	if diagnostic == nil {
		diagnostic = &domain.Diagnostic{ConsultancyID: consultancyID}
	}
	normalizeLists(diagnostic)
	return diagnostic, nil
}

func (s *Service) find(ctx context.Context, consultancyID string) (*domain.Diagnostic, error) {
	diagnostic, err := s.diagnosticRepo.GetByConsultancy(ctx, consultancyID)
	if err != nil {
		return nil, NewDiagnosticError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, consultancyID, err.Error())
	}
	return diagnostic, nil
}

func (s *Service) Summary(ctx context.Context, consultancyID string) (*domain.DiagnosticSummary, error) {
	diagnostic, err := s.GetDiagnostic(ctx, consultancyID)
	if err != nil {
		return nil, err
	}

	actions, err := s.linked(ctx, diagnostic)
	if err != nil {
		return nil, err
	}

	summary := diagnostic.Summarize(len(actions))
	return &summary, nil
}

func (s *Service) LinkedActions(ctx context.Context, consultancyID string) ([]*domain.Action, error) {
	diagnostic, err := s.find(ctx, consultancyID)
	if err != nil {
		return nil, err
	}
	return s.linked(ctx, diagnostic)
}

func (s *Service) linked(ctx context.Context, diagnostic *domain.Diagnostic) ([]*domain.Action, error) {
	if diagnostic == nil || diagnostic.ID == "" {
		return []*domain.Action{}, nil
	}

	actions, err := s.actionRepo.ListByDiagnostic(ctx, diagnostic.ID)
	if err != nil {
		return nil, NewDiagnosticError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, diagnostic.ConsultancyID, err.Error())
	}
	return actions, nil
}

// CreateActionFromFinding usa o texto do achado como título da ação e liga a ação ao diagnóstico
func (s *Service) CreateActionFromFinding(ctx context.Context, req *domain.CreateActionFromFindingRequest) (*domain.Action, error) {
	diagnostic, err := s.find(ctx, req.ConsultancyID)
	if err != nil {
		return nil, err
	}
	if diagnostic == nil {
		return nil, NewDiagnosticError(ErrDiagnosticNotFound, apiErrors.ErrNotFound, req.ConsultancyID, "")
	}

	finding, err := diagnostic.Finding(req.Kind, req.Index)
	if err != nil {
		code := apiErrors.ErrNotFound
		if errors.Is(err, domain.ErrInvalidFindingKind) {
			code = apiErrors.ErrInvalidEnum
		}
		return nil, NewDiagnosticError(err, code, req.ConsultancyID, string(req.Kind))
	}

	impact, effort := req.Impact, req.Effort
	if impact == "" {
		impact = domain.LevelMedium
	}
	if effort == "" {
		effort = domain.LevelMedium
	}

	diagnosticID := diagnostic.ID
	action, err := s.planner.CreateAction(ctx, &domain.Action{
		ConsultancyID: diagnostic.ConsultancyID,
		Title:         finding,
		Description:   "Originada do diagnóstico (" + string(req.Kind) + ")",
		Impact:        impact,
		Effort:        effort,
		Owner:         req.Owner,
		Deadline:      req.Deadline,
		DiagnosticID:  &diagnosticID,
	})
	if err != nil {
		return nil, err
	}

	return action, nil
}

package planning

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/consultorpro-api/infrastructure/repository"
	"github.com/vfg2006/consultorpro-api/infrastructure/repository/memory"
	"github.com/vfg2006/consultorpro-api/infrastructure/repository/mocks"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

func newMemoryService() *Service {
	service := NewService(memory.NewActionRepository(), memory.NewOpportunityRepository()).(*Service)
	service.now = func() time.Time { return fixedNow }
	return service
}

func level(l domain.Level) *domain.Level { return &l }

func dayOffset(days int) *time.Time {
	deadline := fixedNow.AddDate(0, 0, days)
	return &deadline
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()

	var planningErr *PlanningError
	require.True(t, errors.As(err, &planningErr))
	assert.Equal(t, code, planningErr.Code)
}

func TestService_CreateAction_DerivesQuadrant(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService()

	action, err := service.CreateAction(ctx, &domain.Action{
		ConsultancyID: "client42-2024-01",
		Title:         "Reativar e-mail marketing",
		Impact:        domain.LevelHigh,
		Effort:        domain.LevelLow,
		Quadrant:      domain.QuadrantThankless,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, action.ID)
	assert.Equal(t, domain.QuadrantQuickWins, action.Quadrant)
	assert.Equal(t, domain.ActionStatusPending, action.Status)
	assert.Equal(t, fixedNow, action.CreatedAt)
}

func TestService_CreateAction_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		action   domain.Action
		wantErr  error
		wantCode string
	}{
		{name: "sem consultoria", action: domain.Action{Title: "x", Impact: domain.LevelLow, Effort: domain.LevelLow}, wantErr: ErrConsultancyIDRequired, wantCode: apiErrors.ErrMissingRequiredData},
		{name: "sem título", action: domain.Action{ConsultancyID: "c-2024-01", Impact: domain.LevelLow, Effort: domain.LevelLow}, wantErr: ErrTitleRequired, wantCode: apiErrors.ErrMissingRequiredData},
		{name: "impacto inválido", action: domain.Action{ConsultancyID: "c-2024-01", Title: "x", Impact: "enorme", Effort: domain.LevelLow}, wantErr: domain.ErrInvalidLevel, wantCode: apiErrors.ErrInvalidEnum},
		{name: "esforço ausente", action: domain.Action{ConsultancyID: "c-2024-01", Title: "x", Impact: domain.LevelLow}, wantErr: domain.ErrInvalidLevel, wantCode: apiErrors.ErrInvalidEnum},
		{name: "status inválido", action: domain.Action{ConsultancyID: "c-2024-01", Title: "x", Impact: domain.LevelLow, Effort: domain.LevelLow, Status: "feito"}, wantErr: domain.ErrInvalidActionStatus, wantCode: apiErrors.ErrInvalidEnum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := tt.action
			_, err := newMemoryService().CreateAction(ctx, &action)
			assert.ErrorIs(t, err, tt.wantErr)
			assertCode(t, err, tt.wantCode)
		})
	}
}

func TestService_UpdateAction_RecomputesQuadrant(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService()

	action, err := service.CreateAction(ctx, &domain.Action{
		ConsultancyID: "client42-2024-01",
		Title:         "Campanha",
		Impact:        domain.LevelHigh,
		Effort:        domain.LevelLow,
	})
	require.NoError(t, err)

	updated, err := service.UpdateAction(ctx, &domain.UpdateActionRequest{ID: action.ID, Effort: level(domain.LevelHigh)})
	require.NoError(t, err)
	assert.Equal(t, domain.QuadrantProjects, updated.Quadrant)

	updated, err = service.UpdateAction(ctx, &domain.UpdateActionRequest{ID: action.ID, Impact: level(domain.LevelMedium)})
	require.NoError(t, err)
	assert.Equal(t, domain.QuadrantThankless, updated.Quadrant)

	stored, err := service.GetAction(ctx, action.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LevelMedium, stored.Impact)
	assert.Equal(t, domain.LevelHigh, stored.Effort)
	assert.Equal(t, domain.QuadrantThankless, stored.Quadrant)

	_, err = service.UpdateAction(ctx, &domain.UpdateActionRequest{ID: action.ID, Impact: level("enorme")})
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)
}

func TestService_MoveToQuadrant(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService()

	action, err := service.CreateAction(ctx, &domain.Action{
		ConsultancyID: "client42-2024-01",
		Title:         "Treinamento",
		Impact:        domain.LevelMedium,
		Effort:        domain.LevelMedium,
	})
	require.NoError(t, err)

	moved, err := service.MoveToQuadrant(ctx, action.ID, domain.QuadrantFillIns)
	require.NoError(t, err)
	assert.Equal(t, domain.LevelLow, moved.Impact)
	assert.Equal(t, domain.LevelLow, moved.Effort)
	assert.Equal(t, domain.QuadrantFillIns, moved.Quadrant)

	_, err = service.MoveToQuadrant(ctx, action.ID, "urgentes")
	assert.ErrorIs(t, err, domain.ErrInvalidQuadrant)
	assertCode(t, err, apiErrors.ErrInvalidEnum)

	_, err = service.MoveToQuadrant(ctx, "inexistente", domain.QuadrantFillIns)
	assert.ErrorIs(t, err, ErrActionNotFound)
}

func TestService_SetActionStatus(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService()

	action, err := service.CreateAction(ctx, &domain.Action{
		ConsultancyID: "client42-2024-01",
		Title:         "Revisar preços",
		Impact:        domain.LevelLow,
		Effort:        domain.LevelLow,
	})
	require.NoError(t, err)

	updated, err := service.SetActionStatus(ctx, action.ID, domain.ActionStatusDone)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionStatusDone, updated.Status)
	assert.Equal(t, domain.QuadrantFillIns, updated.Quadrant)

	_, err = service.SetActionStatus(ctx, action.ID, "cancelada")
	assert.ErrorIs(t, err, domain.ErrInvalidActionStatus)
}

func TestService_Matrix(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService()

	create := func(title string, impact, effort domain.Level, deadline *time.Time) {
		_, err := service.CreateAction(ctx, &domain.Action{
			ConsultancyID: "client42-2024-01",
			Title:         title,
			Impact:        impact,
			Effort:        effort,
			Deadline:      deadline,
		})
		require.NoError(t, err)
	}

	create("sem prazo", domain.LevelHigh, domain.LevelLow, nil)
	create("prazo longo", domain.LevelHigh, domain.LevelLow, dayOffset(30))
	create("prazo curto", domain.LevelHigh, domain.LevelLow, dayOffset(5))
	create("projeto", domain.LevelHigh, domain.LevelHigh, nil)
	create("médio", domain.LevelMedium, domain.LevelLow, nil)

	matrix, err := service.Matrix(ctx, "client42-2024-01")
	require.NoError(t, err)
	assert.Equal(t, 5, matrix.Total)
	assert.Len(t, matrix.Quadrants, 4)

	var titles []string
	for _, action := range matrix.Quadrants[domain.QuadrantQuickWins] {
		titles = append(titles, action.Title)
	}
	assert.Equal(t, []string{"prazo curto", "prazo longo", "sem prazo"}, titles)
	assert.Len(t, matrix.Quadrants[domain.QuadrantProjects], 1)
	assert.Empty(t, matrix.Quadrants[domain.QuadrantFillIns])
	assert.Len(t, matrix.Quadrants[domain.QuadrantThankless], 1)

	empty, err := service.Matrix(ctx, "outro-2024-01")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)
	assert.NotNil(t, empty.Quadrants[domain.QuadrantFillIns])
}

func TestService_Classify(t *testing.T) {
	service := newMemoryService()

	quadrant, err := service.Classify(domain.LevelLow, domain.LevelHigh)
	require.NoError(t, err)
	assert.Equal(t, domain.QuadrantThankless, quadrant)

	_, err = service.Classify("x", domain.LevelHigh)
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)
}

func TestService_DeleteAction(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService()

	action, err := service.CreateAction(ctx, &domain.Action{
		ConsultancyID: "client42-2024-01",
		Title:         "Remover",
		Impact:        domain.LevelLow,
		Effort:        domain.LevelLow,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteAction(ctx, action.ID))

	err = service.DeleteAction(ctx, action.ID)
	assert.ErrorIs(t, err, ErrActionNotFound)
	assertCode(t, err, apiErrors.ErrNotFound)
}

func TestService_CreateOpportunity(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService()

	opportunity, err := service.CreateOpportunity(ctx, &domain.Opportunity{
		ConsultancyID:  "client42-2024-01",
		Title:          "Plano empresarial",
		EstimatedValue: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, opportunity.ID)
	assert.Equal(t, domain.LevelMedium, opportunity.Probability)
	assert.False(t, opportunity.Converted)

	_, err = service.CreateOpportunity(ctx, &domain.Opportunity{
		ConsultancyID:  "client42-2024-01",
		Title:          "Negativa",
		EstimatedValue: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, ErrInvalidEstimatedValue)

	_, err = service.CreateOpportunity(ctx, &domain.Opportunity{
		ConsultancyID: "client42-2024-01",
		Title:         "Probabilidade",
		Probability:   "certa",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)
	assertCode(t, err, apiErrors.ErrInvalidEnum)
}

func TestService_PromoteOpportunity(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService()

	opportunity, err := service.CreateOpportunity(ctx, &domain.Opportunity{
		ConsultancyID: "client42-2024-01",
		Title:         "Upsell fibra",
		Description:   "Clientes com plano antigo",
		Probability:   domain.LevelHigh,
	})
	require.NoError(t, err)

	action, err := service.PromoteOpportunity(ctx, &domain.PromoteOpportunityRequest{
		OpportunityID: opportunity.ID,
		Effort:        level(domain.LevelLow),
		Owner:         "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "Upsell fibra", action.Title)
	assert.Equal(t, "client42-2024-01", action.ConsultancyID)
	assert.Equal(t, domain.LevelHigh, action.Impact)
	assert.Equal(t, domain.QuadrantQuickWins, action.Quadrant)
	require.NotNil(t, action.OpportunityID)
	assert.Equal(t, opportunity.ID, *action.OpportunityID)

	stored, err := service.GetOpportunity(ctx, opportunity.ID)
	require.NoError(t, err)
	assert.True(t, stored.Converted)
	require.NotNil(t, stored.ActionID)
	assert.Equal(t, action.ID, *stored.ActionID)

	_, err = service.PromoteOpportunity(ctx, &domain.PromoteOpportunityRequest{OpportunityID: opportunity.ID})
	assert.ErrorIs(t, err, ErrOpportunityAlreadyConverted)
	assertCode(t, err, apiErrors.ErrConflict)

	actions, err := service.ListActions(ctx, "client42-2024-01")
	require.NoError(t, err)
	assert.Len(t, actions, 1)
}

func TestService_PromoteOpportunity_Defaults(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService()

	opportunity, err := service.CreateOpportunity(ctx, &domain.Opportunity{
		ConsultancyID: "client42-2024-01",
		Title:         "Parceria",
		Probability:   domain.LevelLow,
	})
	require.NoError(t, err)

	action, err := service.PromoteOpportunity(ctx, &domain.PromoteOpportunityRequest{OpportunityID: opportunity.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.LevelLow, action.Impact)
	assert.Equal(t, domain.LevelMedium, action.Effort)
	assert.Equal(t, domain.QuadrantThankless, action.Quadrant)
}

func TestService_PromoteOpportunity_RollsBackAction(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	actionRepo := mocks.NewMockActionRepository(ctrl)
	opportunityRepo := mocks.NewMockOpportunityRepository(ctrl)
	service := NewService(actionRepo, opportunityRepo)

	opportunityRepo.EXPECT().GetByID(gomock.Any(), "op1").Return(&domain.Opportunity{
		ID:            "op1",
		ConsultancyID: "client42-2024-01",
		Title:         "Upsell",
		Probability:   domain.LevelHigh,
	}, nil)
	actionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	opportunityRepo.EXPECT().MarkConverted(gomock.Any(), "op1", gomock.Any(), gomock.Any()).Return(errors.New("conexão perdida"))
	actionRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	_, err := service.PromoteOpportunity(ctx, &domain.PromoteOpportunityRequest{OpportunityID: "op1"})
	assert.ErrorIs(t, err, ErrDatabaseOperation)
	assertCode(t, err, apiErrors.ErrDatabaseOperation)
}

func TestService_PromoteOpportunity_LostRace(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	actionRepo := mocks.NewMockActionRepository(ctrl)
	opportunityRepo := mocks.NewMockOpportunityRepository(ctrl)
	service := NewService(actionRepo, opportunityRepo)

	// A leitura ainda vê a oportunidade aberta; a marcação descobre que outra promoção venceu
	opportunityRepo.EXPECT().GetByID(gomock.Any(), "op1").Return(&domain.Opportunity{
		ID:            "op1",
		ConsultancyID: "client42-2024-01",
		Title:         "Upsell",
		Probability:   domain.LevelHigh,
	}, nil)

	var created string
	actionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Action) error {
		created = a.ID
		return nil
	})
	opportunityRepo.EXPECT().MarkConverted(gomock.Any(), "op1", gomock.Any(), gomock.Any()).Return(repository.ErrAlreadyConverted)
	actionRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) error {
		assert.Equal(t, created, id)
		return nil
	})

	_, err := service.PromoteOpportunity(ctx, &domain.PromoteOpportunityRequest{OpportunityID: "op1"})
	assert.ErrorIs(t, err, ErrOpportunityAlreadyConverted)
	assertCode(t, err, apiErrors.ErrConflict)
}

func TestService_PromoteOpportunity_Concurrent(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService()

	opportunity, err := service.CreateOpportunity(ctx, &domain.Opportunity{
		ConsultancyID: "client42-2024-01",
		Title:         "Upsell fibra",
		Probability:   domain.LevelHigh,
	})
	require.NoError(t, err)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.PromoteOpportunity(ctx, &domain.PromoteOpportunityRequest{OpportunityID: opportunity.ID})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrOpportunityAlreadyConverted)
	}
	assert.Equal(t, 1, succeeded)

	actions, err := service.ListActions(ctx, "client42-2024-01")
	require.NoError(t, err)
	require.Len(t, actions, 1)

	stored, err := service.GetOpportunity(ctx, opportunity.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ActionID)
	assert.Equal(t, actions[0].ID, *stored.ActionID)
}

func TestService_UpdateAction_DeletedConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)

	actionRepo := mocks.NewMockActionRepository(ctrl)
	service := NewService(actionRepo, mocks.NewMockOpportunityRepository(ctrl))

	actionRepo.EXPECT().GetByID(gomock.Any(), "a1").Return(&domain.Action{
		ID:            "a1",
		ConsultancyID: "client42-2024-01",
		Impact:        domain.LevelHigh,
		Effort:        domain.LevelLow,
		Status:        domain.ActionStatusPending,
	}, nil)
	actionRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(repository.ErrNotFound)

	owner := "Ana"
	_, err := service.UpdateAction(context.Background(), &domain.UpdateActionRequest{ID: "a1", Owner: &owner})
	assert.ErrorIs(t, err, ErrActionNotFound)
	assertCode(t, err, apiErrors.ErrNotFound)
}

func TestService_ListActions_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)

	actionRepo := mocks.NewMockActionRepository(ctrl)
	service := NewService(actionRepo, mocks.NewMockOpportunityRepository(ctrl))

	actionRepo.EXPECT().ListByConsultancy(gomock.Any(), "c-2024-01").Return(nil, errors.New("timeout"))

	_, err := service.Matrix(context.Background(), "c-2024-01")
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

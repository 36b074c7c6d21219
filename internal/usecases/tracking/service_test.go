package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

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
	service := NewService(memory.NewGoalRepository()).(*Service)
	service.now = func() time.Time { return fixedNow }
	return service
}

func daysFromNow(days int) *time.Time {
	deadline := fixedNow.Add(time.Duration(days) * 24 * time.Hour)
	return &deadline
}

func TestService_CreateGoal(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService()

	progress, err := service.CreateGoal(ctx, &domain.Goal{
		ConsultancyID: "client42-2024-01",
		Title:         "Novos assinantes",
		TargetValue:   200,
		CurrentValue:  50,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, progress.Goal.ID)
	assert.Equal(t, domain.GoalUnitNumber, progress.Goal.Unit)
	assert.Equal(t, domain.GoalStatusInProgress, progress.Goal.Status)
	assert.Equal(t, 25.0, progress.Progress)
	assert.False(t, progress.AtRisk)
}

func TestService_CreateGoal_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		goal     domain.Goal
		wantErr  error
		wantCode string
	}{
		{name: "sem consultoria", goal: domain.Goal{Title: "x"}, wantErr: ErrConsultancyIDRequired, wantCode: apiErrors.ErrMissingRequiredData},
		{name: "sem título", goal: domain.Goal{ConsultancyID: "c-2024-01"}, wantErr: ErrTitleRequired, wantCode: apiErrors.ErrMissingRequiredData},
		{name: "alvo negativo", goal: domain.Goal{ConsultancyID: "c-2024-01", Title: "x", TargetValue: -1}, wantErr: ErrInvalidTarget, wantCode: apiErrors.ErrInvalidRequest},
		{name: "unidade inválida", goal: domain.Goal{ConsultancyID: "c-2024-01", Title: "x", Unit: "kg"}, wantErr: domain.ErrInvalidGoalUnit, wantCode: apiErrors.ErrInvalidEnum},
		{name: "status inválido", goal: domain.Goal{ConsultancyID: "c-2024-01", Title: "x", Status: "feito"}, wantErr: domain.ErrInvalidGoalStatus, wantCode: apiErrors.ErrInvalidEnum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := tt.goal
			_, err := newMemoryService().CreateGoal(ctx, &goal)
			assert.ErrorIs(t, err, tt.wantErr)

			var trackingErr *TrackingError
			require.True(t, errors.As(err, &trackingErr))
			assert.Equal(t, tt.wantCode, trackingErr.Code)
		})
	}
}

func TestService_UpdateCurrentValueAndStatus(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService()

	created, err := service.CreateGoal(ctx, &domain.Goal{ConsultancyID: "c1-2024-01", Title: "Churn", TargetValue: 10})
	require.NoError(t, err)

	progress, err := service.UpdateCurrentValue(ctx, created.Goal.ID, 15)
	require.NoError(t, err)
	assert.Equal(t, 100.0, progress.Progress)
	assert.Equal(t, 150.0, progress.RawProgress)
	assert.Equal(t, domain.GoalStatusAchieved, progress.ImpliedStatus)
	// O status gravado só muda quando o usuário define
	assert.Equal(t, domain.GoalStatusInProgress, progress.Goal.Status)

	progress, err = service.SetStatus(ctx, created.Goal.ID, domain.GoalStatusAchieved)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalStatusAchieved, progress.Goal.Status)

	_, err = service.SetStatus(ctx, created.Goal.ID, "concluida")
	assert.ErrorIs(t, err, domain.ErrInvalidGoalStatus)

	_, err = service.UpdateCurrentValue(ctx, "inexistente", 1)
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestService_ListAtRisk(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService()

	goals := []domain.Goal{
		{ConsultancyID: "client42-2024-01", Title: "em risco", TargetValue: 100, CurrentValue: 50, Deadline: daysFromNow(3)},
		{ConsultancyID: "client42-2024-01", Title: "prazo longe", TargetValue: 100, CurrentValue: 50, Deadline: daysFromNow(10)},
		{ConsultancyID: "client42-2024-01", Title: "quase lá", TargetValue: 100, CurrentValue: 80, Deadline: daysFromNow(3)},
		{ConsultancyID: "client42-2024-01", Title: "prazo vencido", TargetValue: 100, CurrentValue: 10, Deadline: daysFromNow(-1)},
		{ConsultancyID: "client7-2024-01", Title: "alvo zero", TargetValue: 0, Deadline: daysFromNow(2)},
		{ConsultancyID: "client42-2024-11", Title: "outro mês", TargetValue: 100, CurrentValue: 0, Deadline: daysFromNow(3)},
	}
	for i := range goals {
		_, err := service.CreateGoal(ctx, &goals[i])
		require.NoError(t, err)
	}

	atRisk, err := service.ListAtRisk(ctx, "2024-01")
	require.NoError(t, err)

	titles := make([]string, 0, len(atRisk))
	for _, progress := range atRisk {
		assert.True(t, progress.AtRisk)
		titles = append(titles, progress.Goal.Title)
	}
	assert.Equal(t, []string{"em risco", "alvo zero"}, titles)

	_, err = service.ListAtRisk(ctx, "2024")
	assert.ErrorIs(t, err, ErrInvalidMonthYear)
}

func TestService_ListGoals_MissingConsultancy(t *testing.T) {
	goals, err := newMemoryService().ListGoals(context.Background(), "cliente-sem-registro-2024-01")
	require.NoError(t, err)
	assert.NotNil(t, goals)
	assert.Empty(t, goals)
}

func TestService_DeleteGoal_RepositoryError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockGoalRepository(ctrl)
	repo.EXPECT().GetByID(ctx, "g1").Return(&domain.Goal{ID: "g1"}, nil)
	repo.EXPECT().Delete(ctx, "g1").Return(errors.New("conexão perdida"))

	err := NewService(repo).DeleteGoal(ctx, "g1")
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestService_UpdateCurrentValue_GoalDeletedConcurrently(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockGoalRepository(ctrl)
	repo.EXPECT().GetByID(ctx, "g1").Return(&domain.Goal{
		ID:            "g1",
		ConsultancyID: "client42-2024-01",
		Title:         "Novos assinantes",
		TargetValue:   200,
		Unit:          domain.GoalUnitNumber,
		Status:        domain.GoalStatusInProgress,
	}, nil)
	repo.EXPECT().Update(ctx, gomock.Any()).Return(repository.ErrNotFound)

	_, err := NewService(repo).UpdateCurrentValue(ctx, "g1", 120)
	assert.ErrorIs(t, err, ErrGoalNotFound)

	var trackingErr *TrackingError
	require.True(t, errors.As(err, &trackingErr))
	assert.Equal(t, apiErrors.ErrNotFound, trackingErr.Code)
}

package consulting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/consultorpro-api/infrastructure/repository/memory"
	"github.com/vfg2006/consultorpro-api/infrastructure/repository/mocks"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

func memoryRepositories() Repositories {
	return Repositories{
		Consultancy: memory.NewConsultancyRepository(),
		Goal:        memory.NewGoalRepository(),
		Action:      memory.NewActionRepository(),
		Opportunity: memory.NewOpportunityRepository(),
		Diagnostic:  memory.NewDiagnosticRepository(),
		Performance: memory.NewPerformanceRepository(),
	}
}

func newMemoryService(repos Repositories) *Service {
	service := NewService(repos).(*Service)
	service.now = func() time.Time { return fixedNow }
	return service
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()

	var consultancyErr *ConsultancyError
	require.True(t, errors.As(err, &consultancyErr))
	assert.Equal(t, code, consultancyErr.Code)
}

func TestService_CreateConsultancy(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService(memoryRepositories())

	consultancy, err := service.CreateConsultancy(ctx, &domain.Consultancy{
		ClientID:   "client42",
		ClientName: "Provedor Norte",
		MonthYear:  "2024-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "client42-2024-01", consultancy.ID)
	assert.Equal(t, domain.ConsultancyStatusActive, consultancy.Status)
	assert.Equal(t, fixedNow, consultancy.CreatedAt)

	_, err = service.CreateConsultancy(ctx, &domain.Consultancy{ClientID: "client42", MonthYear: "2024-01"})
	assert.ErrorIs(t, err, ErrConsultancyExists)
	assertCode(t, err, apiErrors.ErrConflict)
}

func TestService_CreateConsultancy_Validation(t *testing.T) {
	tests := []struct {
		name        string
		consultancy domain.Consultancy
		wantErr     error
		wantCode    string
	}{
		{name: "sem cliente", consultancy: domain.Consultancy{MonthYear: "2024-01"}, wantErr: ErrClientIDRequired, wantCode: apiErrors.ErrMissingRequiredData},
		{name: "sem mês", consultancy: domain.Consultancy{ClientID: "c1"}, wantErr: ErrMonthYearRequired, wantCode: apiErrors.ErrMissingRequiredData},
		{name: "mês inválido", consultancy: domain.Consultancy{ClientID: "c1", MonthYear: "01/2024"}, wantErr: ErrInvalidMonthYear, wantCode: apiErrors.ErrInvalidFormat},
		{name: "status inválido", consultancy: domain.Consultancy{ClientID: "c1", MonthYear: "2024-01", Status: "paused"}, wantErr: ErrInvalidStatus, wantCode: apiErrors.ErrInvalidEnum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consultancy := tt.consultancy
			_, err := newMemoryService(memoryRepositories()).CreateConsultancy(context.Background(), &consultancy)
			assert.ErrorIs(t, err, tt.wantErr)
			assertCode(t, err, tt.wantCode)
		})
	}
}

func TestService_UpdateAndDeleteConsultancy(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService(memoryRepositories())

	_, err := service.CreateConsultancy(ctx, &domain.Consultancy{ClientID: "client42", MonthYear: "2024-01"})
	require.NoError(t, err)

	closed := domain.ConsultancyStatusClosed
	consultant := "Marina"
	updated, err := service.UpdateConsultancy(ctx, &domain.UpdateConsultancyRequest{
		ID:         "client42-2024-01",
		Status:     &closed,
		Consultant: &consultant,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ConsultancyStatusClosed, updated.Status)
	assert.Equal(t, "Marina", updated.Consultant)

	require.NoError(t, service.DeleteConsultancy(ctx, "client42-2024-01"))

	_, err = service.GetConsultancy(ctx, "client42-2024-01")
	assert.ErrorIs(t, err, ErrConsultancyNotFound)
	assertCode(t, err, apiErrors.ErrNotFound)
}

func TestService_ListByMonth_ContainsRule(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService(memoryRepositories())

	for _, c := range []domain.Consultancy{
		{ClientID: "client42", MonthYear: "2024-01"},
		{ClientID: "client7", MonthYear: "2024-01"},
		{ClientID: "client42", MonthYear: "2024-02"},
	} {
		consultancy := c
		_, err := service.CreateConsultancy(ctx, &consultancy)
		require.NoError(t, err)
	}

	january, err := service.ListByMonth(ctx, "2024-01")
	require.NoError(t, err)
	assert.Len(t, january, 2)

	for _, invalid := range []string{"42", "%", "2024_01", "2024-13"} {
		_, err := service.ListByMonth(ctx, invalid)
		assert.ErrorIs(t, err, ErrInvalidMonthYear, invalid)
		assertCode(t, err, apiErrors.ErrInvalidFormat)
	}

	byClient, err := service.ListByClient(ctx, "client42")
	require.NoError(t, err)
	assert.Len(t, byClient, 2)

	_, err = service.ListByMonth(ctx, "")
	assert.ErrorIs(t, err, ErrMonthYearRequired)
}

func TestService_GetConsultancy_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	consultancyRepo := mocks.NewMockConsultancyRepository(ctrl)

	repos := memoryRepositories()
	repos.Consultancy = consultancyRepo
	service := NewService(repos)

	consultancyRepo.EXPECT().GetByID(gomock.Any(), "c-2024-01").Return(nil, errors.New("conexão recusada"))

	_, err := service.GetConsultancy(context.Background(), "c-2024-01")
	assert.ErrorIs(t, err, ErrDatabaseOperation)
	assertCode(t, err, apiErrors.ErrDatabaseOperation)
}

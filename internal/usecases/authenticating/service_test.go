package authenticating

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/consultorpro-api/infrastructure/repository/mocks"
	"github.com/vfg2006/consultorpro-api/internal/config"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAuthConfig = config.Auth{Secret: "segredo-de-teste", TokenTTL: time.Hour}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(repo *mocks.MockUserRepository)
		wantCode string
	}{
		{
			name:     "login válido gera token",
			email:    " Ana@ConsultorPro.com ",
			password: "Senha123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "ana@consultorpro.com").Return(&domain.User{
					ID: 7, Name: "Ana", Email: "ana@consultorpro.com", Active: true, RoleID: domain.RoleConsultant,
					PasswordHash: hashPassword(t, "Senha123"),
				}, nil)
			},
		},
		{
			name:     "senha incorreta",
			email:    "ana@consultorpro.com",
			password: "errada",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "ana@consultorpro.com").Return(&domain.User{
					ID: 7, Active: true, PasswordHash: hashPassword(t, "Senha123"),
				}, nil)
			},
			wantCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "usuário inexistente",
			email:    "ninguem@consultorpro.com",
			password: "Senha123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "ninguem@consultorpro.com").Return(nil, nil)
			},
			wantCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "usuário desativado",
			email:    "ana@consultorpro.com",
			password: "Senha123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "ana@consultorpro.com").Return(&domain.User{ID: 7, Active: false}, nil)
			},
			wantCode: apiErrors.ErrUserDisabled,
		},
		{
			name:     "dados ausentes",
			setup:    func(repo *mocks.MockUserRepository) {},
			wantCode: apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockUserRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo, testAuthConfig)
			token, err := service.LoginUser(ctx, tt.email, tt.password)

			if tt.wantCode != "" {
				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, tt.wantCode, authErr.Code)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, 7, claims.UserID)
			assert.Equal(t, domain.RoleConsultant, claims.UserRoleID)
		})
	}
}

func TestService_ValidateToken_RejectsOtherSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepository(ctrl)
	other := NewService(repo, config.Auth{Secret: "outro-segredo"}).(*Service)
	token, err := other.generateJWT(&domain.User{ID: 1})
	require.NoError(t, err)

	_, err = NewService(repo, testAuthConfig).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("cria usuário com papel padrão de leitor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		repo.EXPECT().GetUserByEmail(ctx, "bruno@consultorpro.com").Return(nil, nil)
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha123")))
			user.ID = 3
			return user, nil
		})

		created, err := NewService(repo, testAuthConfig).CreateUser(ctx, &domain.User{
			Name: "Bruno", Email: "Bruno@consultorpro.com", PasswordHash: "Senha123",
		})
		require.NoError(t, err)
		assert.Equal(t, 3, created.ID)
		assert.Equal(t, domain.RoleViewer, created.RoleID)
		assert.True(t, created.Active)
		assert.Empty(t, created.PasswordHash)
	})

	t.Run("email duplicado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		repo.EXPECT().GetUserByEmail(ctx, "bruno@consultorpro.com").Return(&domain.User{ID: 1}, nil)

		_, err := NewService(repo, testAuthConfig).CreateUser(ctx, &domain.User{
			Name: "Bruno", Email: "bruno@consultorpro.com", PasswordHash: "Senha123",
		})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("papel inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, err := NewService(mocks.NewMockUserRepository(ctrl), testAuthConfig).CreateUser(ctx, &domain.User{
			Name: "Bruno", Email: "bruno@consultorpro.com", PasswordHash: "Senha123", RoleID: 9,
		})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("senha fraca", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, err := NewService(mocks.NewMockUserRepository(ctrl), testAuthConfig).CreateUser(ctx, &domain.User{
			Name: "Bruno", Email: "bruno@consultorpro.com", PasswordHash: "fraca",
		})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service := &Service{}

	assert.NoError(t, service.ValidatePasswordStrength("Consultor2024"))
	assert.Error(t, service.ValidatePasswordStrength("curta1A"))
	assert.Error(t, service.ValidatePasswordStrength("semnumeroAqui"))
	assert.Error(t, service.ValidatePasswordStrength("12345678a"))
}

func TestIsCredentialsError(t *testing.T) {
	assert.True(t, IsCredentialsError(NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")))
	assert.True(t, IsCredentialsError(NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, 7, "")))
	assert.False(t, IsCredentialsError(NewAuthError(errors.New("conexão recusada"), apiErrors.ErrDatabaseOperation, "")))
}

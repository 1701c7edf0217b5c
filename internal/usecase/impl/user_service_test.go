package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_FirstUserIsAdmin(t *testing.T) {
	fx := createTestUserService(t)
	tx := newTxFixture(t)
	tx.expectExecute(fx.txManager)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)
	tx.users.EXPECT().FindByEmail(ctx, "admin@example.com").Return(nil, repository.ErrUserNotFound)
	tx.users.EXPECT().Count(ctx).Return(int64(0), nil)
	tx.users.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "  Admin@Example.com ", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.True(t, user.IsActive)
}

func TestUserService_Register_LaterUsersAreCustomers(t *testing.T) {
	fx := createTestUserService(t)
	tx := newTxFixture(t)
	tx.expectExecute(fx.txManager)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed_password", nil)
	tx.users.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(nil, repository.ErrUserNotFound)
	tx.users.EXPECT().Count(ctx).Return(int64(3), nil)
	tx.users.EXPECT().Create(ctx, mock.Anything).Return(nil)

	user, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "buyer@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, user.Role)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	tx := newTxFixture(t)
	tx.expectExecute(fx.txManager)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed_password", nil)
	tx.users.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "taken@example.com", Password: "secret"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_ConcurrentDuplicate(t *testing.T) {
	fx := createTestUserService(t)
	tx := newTxFixture(t)
	tx.expectExecute(fx.txManager)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed_password", nil)
	tx.users.EXPECT().FindByEmail(ctx, "race@example.com").Return(nil, repository.ErrUserNotFound)
	tx.users.EXPECT().Count(ctx).Return(int64(1), nil)
	tx.users.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "race@example.com", Password: "secret"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_MissingFields(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{Email: " "})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "owner@example.com", PasswordHash: "hash", IsActive: true, Role: entity.RoleOwner}

	fx.userRepo.EXPECT().FindByEmail(ctx, "owner@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hash").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, "OWNER").Return("access", "refresh", nil)
	fx.tokenService.EXPECT().GetAccessTokenDuration().Return(30 * time.Minute)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "Owner@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, int64(1800), out.ExpiresIn)
	assert.Same(t, user, out.User)
}

func TestUserService_Login_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "x"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(&entity.User{PasswordHash: "hash", IsActive: true}, nil)
		fx.hasher.EXPECT().Check("wrong", "hash").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@example.com", Password: "wrong"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("inactive user", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(&entity.User{PasswordHash: "hash"}, nil)
		fx.hasher.EXPECT().Check("secret", "hash").Return(true)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@example.com", Password: "secret"})
		assert.True(t, errors.Is(err, domainerrors.ErrInactiveUser))
	})
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("role comes from the database", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: userID, Role: "CUSTOMER", Type: service.TokenTypeAccess}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, IsActive: true, Role: entity.RoleOwner}, nil)

		user, err := fx.service.Authenticate(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, entity.RoleOwner, user.Role)
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)

		_, err := fx.service.Authenticate(ctx, "tok")
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("tok").Return(nil, errors.New("token is expired"))

		_, err := fx.service.Authenticate(ctx, "tok")
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Authenticate(ctx, "tok")
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("inactive user", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

		_, err := fx.service.Authenticate(ctx, "tok")
		assert.True(t, errors.Is(err, domainerrors.ErrInactiveUser))
	})
}

func TestUserService_AdminOperations_RequireAdmin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleOwner}

	_, err := fx.service.ListUsers(ctx, owner, usecase.Pagination{})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = fx.service.GetUser(ctx, owner, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = fx.service.SetRole(ctx, owner, uuid.New(), entity.RoleAdmin)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_ListUsers_ClampsPage(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	admin := entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
	users := []*entity.User{{ID: uuid.New()}}

	fx.userRepo.EXPECT().List(ctx, repository.Page{Skip: 0, Limit: 500}).Return(users, nil)

	got, err := fx.service.ListUsers(ctx, admin, usecase.Pagination{Skip: -3, Limit: 10_000})
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	admin := entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUser(ctx, admin, id)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_SetRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	admin := entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id, Role: entity.RoleCustomer}, nil)
	fx.userRepo.EXPECT().UpdateRole(ctx, id, entity.RoleOwner).Return(nil)

	user, err := fx.service.SetRole(ctx, admin, id, entity.RoleOwner)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOwner, user.Role)
}

func TestUserService_SetRole_UnknownRole(t *testing.T) {
	fx := createTestUserService(t)

	admin := entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}

	_, err := fx.service.SetRole(context.Background(), admin, uuid.New(), entity.Role("GOD"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

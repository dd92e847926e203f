package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthService(
	userRepo repository.UserRepository,
	cartRepo repository.CartRepository,
	hasher *mockSvc.MockPasswordHasher,
	tokenSvc *mockSvc.MockTokenService,
) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		CartRepo:     cartRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       testLogger(),
	})
}

func TestAuthService_Register_Success(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := newAuthService(mockUserRepo, mockCartRepo, mockHasher, mockTokenSvc)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		ExistsByEmail(ctx, "alice@example.com").
		Return(false, nil)

	mockHasher.EXPECT().
		Hash("secret123").
		Return("hashed", nil)

	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, entity.RoleUser, user.Role)
			assert.Equal(t, "hashed", user.PasswordHash)
			user.ID = 7
			return nil
		})

	mockCartRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	mockTokenSvc.EXPECT().
		Generate("alice@example.com", entity.RoleUser).
		Return("signed-token", nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, int64(7), output.ID)
	assert.Equal(t, "user", output.Role)
}

func TestAuthService_Register_EmailExists(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := newAuthService(mockUserRepo, mockCartRepo, mockHasher, mockTokenSvc)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		ExistsByEmail(ctx, "alice@example.com").
		Return(true, nil)

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := newAuthService(mockUserRepo, mockCartRepo, mockHasher, mockTokenSvc)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		ExistsByEmail(ctx, "alice@example.com").
		Return(false, nil)

	mockHasher.EXPECT().
		Hash("secret123").
		Return("hashed", nil)

	// The pre-check passed but the insert hit the unique constraint.
	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailExists)

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)
}

func TestAuthService_Register_CartCreationIsBestEffort(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := newAuthService(mockUserRepo, mockCartRepo, mockHasher, mockTokenSvc)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		ExistsByEmail(ctx, "alice@example.com").
		Return(false, nil)

	mockHasher.EXPECT().
		Hash("secret123").
		Return("hashed", nil)

	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	mockCartRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(errors.New("connection lost"))

	mockTokenSvc.EXPECT().
		Generate("alice@example.com", entity.RoleUser).
		Return("signed-token", nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
}

func TestAuthService_Login_Success(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := newAuthService(mockUserRepo, mockCartRepo, mockHasher, mockTokenSvc)

	ctx := context.Background()
	user := &entity.User{
		ID:           3,
		Name:         "Bob",
		Email:        "bob@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleAdmin,
	}

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "bob@example.com").
		Return(user, nil)

	mockHasher.EXPECT().
		Check("secret123", "hashed").
		Return(true)

	mockTokenSvc.EXPECT().
		Generate("bob@example.com", entity.RoleAdmin).
		Return("signed-token", nil)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "bob@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, "admin", output.Role)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordCollapse(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		mockHasher := mockSvc.NewMockPasswordHasher(t)
		mockTokenSvc := mockSvc.NewMockTokenService(t)
		service := newAuthService(mockUserRepo, mockCartRepo, mockHasher, mockTokenSvc)

		mockUserRepo.EXPECT().
			FindByEmail(ctx, "ghost@example.com").
			Return(nil, repository.ErrUserNotFound)

		_, err := service.Login(ctx, &usecase.LoginInput{
			Email:    "ghost@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		mockHasher := mockSvc.NewMockPasswordHasher(t)
		mockTokenSvc := mockSvc.NewMockTokenService(t)
		service := newAuthService(mockUserRepo, mockCartRepo, mockHasher, mockTokenSvc)

		mockUserRepo.EXPECT().
			FindByEmail(ctx, "bob@example.com").
			Return(&entity.User{Email: "bob@example.com", PasswordHash: "hashed"}, nil)

		mockHasher.EXPECT().
			Check("wrong", "hashed").
			Return(false)

		_, err := service.Login(ctx, &usecase.LoginInput{
			Email:    "bob@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := newAuthService(mockUserRepo, mockCartRepo, mockHasher, mockTokenSvc)

	ctx := context.Background()
	user := &entity.User{ID: 3, Email: "bob@example.com", PasswordHash: "old-hash"}

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "bob@example.com").
		Return(user, nil)

	mockHasher.EXPECT().
		Check("old-pass", "old-hash").
		Return(true)

	mockHasher.EXPECT().
		Hash("new-pass").
		Return("new-hash", nil)

	mockUserRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, updated *entity.User) error {
			assert.Equal(t, "new-hash", updated.PasswordHash)
			return nil
		})

	err := service.ChangePassword(ctx, entity.Principal{Email: "bob@example.com", Role: entity.RoleUser},
		&usecase.ChangePasswordInput{CurrentPassword: "old-pass", NewPassword: "new-pass"})
	require.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := newAuthService(mockUserRepo, mockCartRepo, mockHasher, mockTokenSvc)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "bob@example.com").
		Return(&entity.User{ID: 3, Email: "bob@example.com", PasswordHash: "old-hash"}, nil)

	mockHasher.EXPECT().
		Check("not-it", "old-hash").
		Return(false)

	err := service.ChangePassword(ctx, entity.Principal{Email: "bob@example.com", Role: entity.RoleUser},
		&usecase.ChangePasswordInput{CurrentPassword: "not-it", NewPassword: "new-pass"})
	assert.ErrorIs(t, err, domainerrors.ErrWrongCurrentPassword)
}

func TestAuthService_ResolveUser_GoneSubjectIsUnauthorized(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := newAuthService(mockUserRepo, mockCartRepo, mockHasher, mockTokenSvc)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "gone@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := service.ResolveUser(ctx, "gone@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

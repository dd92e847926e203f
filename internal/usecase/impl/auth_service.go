// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	cartRepo     repository.CartRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	CartRepo     repository.CartRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all
// dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		cartRepo:     params.CartRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new USER account and issues a token for it.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	exists, err := srv.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email existence")
	}
	if exists {
		srv.log(ctx).Warn("Registration with existing email", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailExists.WrapMessage("registration failed")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	// The role is fixed here; it is never taken from the request.
	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// A concurrent registration (or a case-variant duplicate under a
		// case-insensitive collation) slips past the pre-check and lands here
		// as a unique-constraint violation.
		if errors.Is(err, domainerrors.ErrEmailExists) {
			return nil, errors.Wrap(err, "registration failed")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	// Cart creation is best effort: registration must not fail because of it.
	if err := srv.cartRepo.Create(ctx, &entity.Cart{UserID: newUser.ID}); err != nil {
		srv.log(ctx).Warn("Failed to create cart for new user",
			slog.Int64("userID", newUser.ID), slog.Any("error", err))
	}

	return srv.issueToken(ctx, newUser)
}

// Login verifies the credentials and issues a token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Collapse into the same signal as a wrong password so callers
			// cannot probe which emails are registered.
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	return srv.issueToken(ctx, user)
}

// ChangePassword verifies the current password of the acting principal and
// persists the new one.
func (srv *authService) ChangePassword(ctx context.Context, principal entity.Principal, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing password", slog.String("email", principal.Email))

	user, err := srv.userRepo.FindByEmail(ctx, principal.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUnauthorized.WrapMessage("principal has no user record")
		}

		return errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change with wrong current password", slog.Int64("userID", user.ID))

		return domainerrors.ErrWrongCurrentPassword.WrapMessage("password change failed")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	user.PasswordHash = hashedPassword
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist new password")
	}
	srv.log(ctx).Info("Password changed", slog.Int64("userID", user.ID))

	return nil
}

// ResolveUser loads the user record behind a validated principal's email.
func (srv *authService) ResolveUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// A valid token whose subject no longer maps to a user is treated
			// as unauthenticated, not as a server error.
			return nil, domainerrors.ErrUnauthorized.WrapMessage("token subject has no user record")
		}

		return nil, errors.Wrap(err, "failed to resolve user by email")
	}

	return user, nil
}

// issueToken signs a token for the user and assembles the auth response.
func (srv *authService) issueToken(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.Generate(user.Email, user.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	view := usecase.NewUserView(user)

	return &usecase.AuthOutput{
		Token: token,
		ID:    view.ID,
		Name:  view.Name,
		Email: view.Email,
		Role:  view.Role,
	}, nil
}

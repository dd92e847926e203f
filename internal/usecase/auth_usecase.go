// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// The role is never part of the input; every registration creates a USER.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput defines the data required to change the password of the
// authenticated principal. The acting identity comes from the security
// boundary, never from the request body.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// --- Output DTOs ---

// AuthOutput returns the issued token together with the user's public fields.
type AuthOutput struct {
	Token string `json:"token"`
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserView is the public projection of a user record.
type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NewUserView maps a user entity to its public projection. The role is
// exposed in unprefixed lowercase, matching the login response shape.
func NewUserView(user *entity.User) *UserView {
	return &UserView{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  strings.ToLower(user.Role.String()),
	}
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Register creates a USER account, a best-effort empty cart, and returns
	// an issued token. Fails with ErrEmailExists on a duplicate email.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token. Absent user and wrong
	// password both fail with ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// ChangePassword re-hashes and persists the new password for the acting
	// principal after verifying the current one.
	ChangePassword(ctx context.Context, principal entity.Principal, input *ChangePasswordInput) error

	// ResolveUser loads the full user record behind a principal's email.
	ResolveUser(ctx context.Context, email string) (*entity.User, error)
}

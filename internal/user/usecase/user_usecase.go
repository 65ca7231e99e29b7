// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"

	validation "github.com/jellydator/validation"

	authService "github.com/theclub/api/internal/auth/service"
	apperrors "github.com/theclub/api/internal/errors"
	"github.com/theclub/api/internal/user/domain"
	appValidation "github.com/theclub/api/internal/validation"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// RegisterUserInput contains the input data for account registration.
type RegisterUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UseCase defines the interface for user business logic operations.
type UseCase interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
}

// UserRepository interface defines user repository operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	FindActiveByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
}

// UserUseCase handles user-related business logic.
type UserUseCase struct {
	userRepo      UserRepository
	secretService authService.SecretService
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(userRepo UserRepository, secretService authService.SecretService) UseCase {
	return &UserUseCase{
		userRepo:      userRepo,
		secretService: secretService,
	}
}

// validateRegisterUserInput validates the registration input using jellydator/validation.
// This covers required field checks, email format validation, and password
// strength requirements (min 8 chars, uppercase, lowercase, number, special char).
func (uc *UserUseCase) validateRegisterUserInput(input RegisterUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:      8,
				RequireUpper:   true,
				RequireLower:   true,
				RequireNumber:  true,
				RequireSpecial: true,
			},
		),
	)
	return appValidation.WrapValidationError(err)
}

// Register creates a new account. Self-registered accounts always start as
// active readers; only the create-user admin command can assign other roles.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	if err := uc.validateRegisterUserInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.secretService.HashSecret(input.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
		Role:     domain.RoleReader,
		Active:   true,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetByID retrieves a user by id.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// List retrieves users with normalized pagination.
func (uc *UserUseCase) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return uc.userRepo.List(ctx, offset, limit)
}

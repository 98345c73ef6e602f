package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

type RegisterWithPasswordUseCase struct {
	userRepo     user.UserRepository
	hasher       PasswordHasher
	emailService EmailService
	logger       logger.Interface
}

func NewRegisterWithPasswordUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	emailService EmailService,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		emailService: emailService,
		logger:       logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error) {
	if cmd.Name == "" || cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("Name, email, and password are required")
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("Password must be at least 8 characters")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process registration")
	}

	newUser, err := user.NewUser(cmd.Name, cmd.Email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) || errors.IsConflictError(err) {
			return nil, errors.NewConflictError("Email already registered")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	// Mail delivery is best effort; the account exists either way.
	if err := uc.emailService.SendWelcomeEmail(newUser.Email(), newUser.Name()); err != nil {
		uc.logger.Warnw("failed to send welcome email", "error", err, "user_id", newUser.ID())
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID())

	return dto.FromEntity(newUser), nil
}

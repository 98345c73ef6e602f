package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginResult struct {
	User   *dto.UserDTO
	Tokens *TokenPair
}

type LoginWithPasswordUseCase struct {
	userRepo       user.UserRepository
	sessionRepo    user.SessionRepository
	hasher         PasswordHasher
	tokenService   TokenService
	tokenHasher    TokenHasher
	sessionExpDays int
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.UserRepository,
	sessionRepo user.SessionRepository,
	hasher PasswordHasher,
	tokenService TokenService,
	tokenHasher TokenHasher,
	sessionExpDays int,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		hasher:         hasher,
		tokenService:   tokenService,
		tokenHasher:    tokenHasher,
		sessionExpDays: sessionExpDays,
		logger:         logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("Email and password are required")
	}

	// Identical failure for unknown email and wrong password.
	account, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("Invalid email or password")
		}
		uc.logger.Errorw("failed to load user for login", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		return nil, errors.NewUnauthorizedError("Invalid email or password")
	}

	expiresAt := biztime.NowUTC().Add(time.Duration(uc.sessionExpDays) * 24 * time.Hour)
	session, err := user.NewSession(account.ID(), cmd.IPAddress, cmd.UserAgent, expiresAt)
	if err != nil {
		uc.logger.Errorw("failed to create session", "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}

	tokens, err := uc.tokenService.Generate(account.ID(), session.ID())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err)
		return nil, errors.NewInternalError("failed to generate tokens")
	}

	session.AttachRefreshTokenHash(uc.tokenHasher.Hash(tokens.RefreshToken))

	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		uc.logger.Errorw("failed to save session", "error", err)
		return nil, err
	}

	uc.logger.Infow("user logged in", "user_id", account.ID(), "session_id", session.ID())

	return &LoginResult{
		User:   dto.FromEntity(account),
		Tokens: tokens,
	}, nil
}

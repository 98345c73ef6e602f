package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenUseCase struct {
	sessionRepo  user.SessionRepository
	tokenService TokenService
	tokenHasher  TokenHasher
	txManager    TransactionManager
	logger       logger.Interface
}

func NewRefreshTokenUseCase(
	sessionRepo user.SessionRepository,
	tokenService TokenService,
	tokenHasher TokenHasher,
	txManager TransactionManager,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
		tokenHasher:  tokenHasher,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*TokenPair, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewUnauthorizedError("Missing refresh token")
	}

	tokens, claims, err := uc.tokenService.Refresh(cmd.RefreshToken)
	if err != nil {
		uc.logger.Warnw("refresh token rejected", "error", err)
		return nil, errors.NewUnauthorizedError("Invalid or expired refresh token")
	}

	// The check-and-rotate must be atomic so two concurrent refreshes with
	// the same token cannot both succeed.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		session, err := uc.sessionRepo.GetByID(txCtx, claims.SessionID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewUnauthorizedError("Session no longer exists")
			}
			return err
		}

		if session.IsExpired(biztime.NowUTC()) {
			return errors.NewUnauthorizedError("Session expired")
		}

		// Rotation: the presented token must be the one the session last issued.
		if session.RefreshTokenHash() != uc.tokenHasher.Hash(cmd.RefreshToken) {
			uc.logger.Warnw("refresh token hash mismatch", "session_id", session.ID())
			return errors.NewUnauthorizedError("Invalid refresh token")
		}

		newHash := uc.tokenHasher.Hash(tokens.RefreshToken)
		if err := uc.sessionRepo.UpdateRefreshTokenHash(txCtx, session.ID(), newHash); err != nil {
			uc.logger.Errorw("failed to rotate refresh token", "error", err, "session_id", session.ID())
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tokens, nil
}

package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/id"
	"helpdesk/internal/shared/logger"
)

type GetAPIKeyQuery struct {
	UserID string
}

type GetAPIKeyUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetAPIKeyUseCase(userRepo user.UserRepository, logger logger.Interface) *GetAPIKeyUseCase {
	return &GetAPIKeyUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute returns the user's current key, or nil when none has been issued.
func (uc *GetAPIKeyUseCase) Execute(ctx context.Context, query GetAPIKeyQuery) (*string, error) {
	account, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	return account.APIKey(), nil
}

type GenerateAPIKeyCommand struct {
	UserID string
}

type GenerateAPIKeyUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGenerateAPIKeyUseCase(userRepo user.UserRepository, logger logger.Interface) *GenerateAPIKeyUseCase {
	return &GenerateAPIKeyUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute mints a fresh key and replaces any existing one in the same write.
func (uc *GenerateAPIKeyUseCase) Execute(ctx context.Context, cmd GenerateAPIKeyCommand) (string, error) {
	key, err := id.NewAPIKey()
	if err != nil {
		uc.logger.Errorw("failed to generate api key", "error", err)
		return "", err
	}

	if err := uc.userRepo.UpdateAPIKey(ctx, cmd.UserID, &key); err != nil {
		uc.logger.Errorw("failed to store api key", "error", err, "user_id", cmd.UserID)
		return "", err
	}

	uc.logger.Infow("api key generated", "user_id", cmd.UserID)
	return key, nil
}

type RevokeAPIKeyCommand struct {
	UserID string
}

type RevokeAPIKeyUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewRevokeAPIKeyUseCase(userRepo user.UserRepository, logger logger.Interface) *RevokeAPIKeyUseCase {
	return &RevokeAPIKeyUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute clears the stored key. Revoking when no key exists is a no-op
// success so the endpoint stays idempotent.
func (uc *RevokeAPIKeyUseCase) Execute(ctx context.Context, cmd RevokeAPIKeyCommand) error {
	if err := uc.userRepo.UpdateAPIKey(ctx, cmd.UserID, nil); err != nil {
		uc.logger.Errorw("failed to revoke api key", "error", err, "user_id", cmd.UserID)
		return err
	}

	uc.logger.Infow("api key revoked", "user_id", cmd.UserID)
	return nil
}

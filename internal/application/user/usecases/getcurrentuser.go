package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type GetCurrentUserQuery struct {
	UserID string
}

type GetCurrentUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.UserRepository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, query GetCurrentUserQuery) (*dto.UserDTO, error) {
	account, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	return dto.FromEntity(account), nil
}

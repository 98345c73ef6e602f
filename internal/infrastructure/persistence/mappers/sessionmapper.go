package mappers

import (
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
)

// SessionMapper handles the conversion between Session domain entities and persistence models.
type SessionMapper interface {
	ToModel(entity *user.Session) *models.SessionModel
	ToDomain(model *models.SessionModel) (*user.Session, error)
}

type SessionMapperImpl struct{}

func NewSessionMapper() SessionMapper {
	return &SessionMapperImpl{}
}

func (m *SessionMapperImpl) ToModel(entity *user.Session) *models.SessionModel {
	if entity == nil {
		return nil
	}
	return &models.SessionModel{
		ID:               entity.ID(),
		UserID:           entity.UserID(),
		RefreshTokenHash: entity.RefreshTokenHash(),
		IPAddress:        entity.IPAddress(),
		UserAgent:        entity.UserAgent(),
		ExpiresAt:        entity.ExpiresAt(),
		LastUsedAt:       entity.LastUsedAt(),
		CreatedAt:        entity.CreatedAt(),
	}
}

func (m *SessionMapperImpl) ToDomain(model *models.SessionModel) (*user.Session, error) {
	if model == nil {
		return nil, nil
	}
	return user.ReconstructSession(
		model.ID,
		model.UserID,
		model.RefreshTokenHash,
		model.IPAddress,
		model.UserAgent,
		model.ExpiresAt,
		model.CreatedAt,
		model.LastUsedAt,
	)
}

package user

import "context"

// UserRepository persists accounts and resolves credentials.
type UserRepository interface {
	Save(ctx context.Context, u *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// FindByAPIKey resolves a stored key by exact equality. An unknown key
	// returns a not-found error, never a partial match.
	FindByAPIKey(ctx context.Context, apiKey string) (*User, error)

	// UpdateAPIKey replaces the user's key. A nil value revokes it; the
	// previous key stops resolving immediately either way.
	UpdateAPIKey(ctx context.Context, userID string, apiKey *string) error
}

// SessionRepository persists login sessions.
type SessionRepository interface {
	Save(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	UpdateRefreshTokenHash(ctx context.Context, sessionID, hash string) error
	Delete(ctx context.Context, sessionID string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
)

// PasswordHasher hashes and verifies login passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenPair is an issued access/refresh token set.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenClaims is the subset of JWT claims the use cases need.
type TokenClaims struct {
	UserID    string
	SessionID string
}

// TokenService issues and rotates JWT pairs.
type TokenService interface {
	Generate(userID, sessionID string) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, *TokenClaims, error)
}

// TokenHasher produces the digest stored alongside a session so raw
// refresh tokens never hit the database.
type TokenHasher interface {
	Hash(token string) string
}

// TransactionManager runs a function inside a single database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EmailService delivers account mail. Failures must never fail the caller.
type EmailService interface {
	SendWelcomeEmail(to, name string) error
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*TokenPair, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd LogoutCommand) error
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, query GetCurrentUserQuery) (*dto.UserDTO, error)
}

type GetAPIKeyExecutor interface {
	Execute(ctx context.Context, query GetAPIKeyQuery) (*string, error)
}

type GenerateAPIKeyExecutor interface {
	Execute(ctx context.Context, cmd GenerateAPIKeyCommand) (string, error)
}

type RevokeAPIKeyExecutor interface {
	Execute(ctx context.Context, cmd RevokeAPIKeyCommand) error
}

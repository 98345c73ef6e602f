package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc         func(ctx context.Context, u *user.User) error
	GetByIDFunc      func(ctx context.Context, userID string) (*user.User, error)
	GetByEmailFunc   func(ctx context.Context, email string) (*user.User, error)
	FindByAPIKeyFunc func(ctx context.Context, apiKey string) (*user.User, error)
	UpdateAPIKeyFunc func(ctx context.Context, userID string, apiKey *string) error
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID string) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByAPIKey(ctx context.Context, apiKey string) (*user.User, error) {
	if m.FindByAPIKeyFunc != nil {
		return m.FindByAPIKeyFunc(ctx, apiKey)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateAPIKey(ctx context.Context, userID string, apiKey *string) error {
	if m.UpdateAPIKeyFunc != nil {
		return m.UpdateAPIKeyFunc(ctx, userID, apiKey)
	}
	return nil
}

type mockSessionRepository struct {
	SaveFunc                   func(ctx context.Context, s *user.Session) error
	GetByIDFunc                func(ctx context.Context, sessionID string) (*user.Session, error)
	UpdateRefreshTokenHashFunc func(ctx context.Context, sessionID, hash string) error
	DeleteFunc                 func(ctx context.Context, sessionID string) error
	DeleteByUserIDFunc         func(ctx context.Context, userID string) error
}

func (m *mockSessionRepository) Save(ctx context.Context, s *user.Session) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *mockSessionRepository) UpdateRefreshTokenHash(ctx context.Context, sessionID, hash string) error {
	if m.UpdateRefreshTokenHashFunc != nil {
		return m.UpdateRefreshTokenHashFunc(ctx, sessionID, hash)
	}
	return nil
}

func (m *mockSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID)
	}
	return nil
}

func (m *mockSessionRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	if hash != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type mockTokenService struct {
	GenerateFunc func(userID, sessionID string) (*TokenPair, error)
	RefreshFunc  func(refreshToken string) (*TokenPair, *TokenClaims, error)
}

func (m *mockTokenService) Generate(userID, sessionID string) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, sessionID)
	}
	return &TokenPair{AccessToken: "access-" + sessionID, RefreshToken: "refresh-" + sessionID, ExpiresIn: 900}, nil
}

func (m *mockTokenService) Refresh(refreshToken string) (*TokenPair, *TokenClaims, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(refreshToken)
	}
	return nil, nil, fmt.Errorf("not configured")
}

type mockTokenHasher struct{}

func (m *mockTokenHasher) Hash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// mockTxManager runs the function directly; transactional behavior is the
// real manager's concern.
type mockTxManager struct{}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockEmailService struct {
	SendWelcomeEmailFunc func(to, name string) error
}

func (m *mockEmailService) SendWelcomeEmail(to, name string) error {
	if m.SendWelcomeEmailFunc != nil {
		return m.SendWelcomeEmailFunc(to, name)
	}
	return nil
}

type mockLogger struct{}

func newMockLogger() logger.Interface { return &mockLogger{} }

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

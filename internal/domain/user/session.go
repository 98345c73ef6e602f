package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"helpdesk/internal/shared/biztime"
)

// Session is a server-side login record. A JWT only grants access while
// its session row still exists and has not expired.
type Session struct {
	id               string
	userID           string
	refreshTokenHash string
	ipAddress        string
	userAgent        string
	expiresAt        time.Time
	createdAt        time.Time
	lastUsedAt       time.Time
}

// NewSession creates a session for the user. The refresh token hash is
// attached after token generation.
func NewSession(userID, ipAddress, userAgent string, expiresAt time.Time) (*Session, error) {
	if len(userID) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	now := biztime.NowUTC()
	if !expiresAt.After(now) {
		return nil, fmt.Errorf("session expiry must be in the future")
	}

	return &Session{
		id:         uuid.NewString(),
		userID:     userID,
		ipAddress:  ipAddress,
		userAgent:  userAgent,
		expiresAt:  expiresAt,
		createdAt:  now,
		lastUsedAt: now,
	}, nil
}

// ReconstructSession rebuilds a session from persistence.
func ReconstructSession(sessionID, userID, refreshTokenHash, ipAddress, userAgent string, expiresAt, createdAt, lastUsedAt time.Time) (*Session, error) {
	if len(sessionID) == 0 {
		return nil, fmt.Errorf("session ID is required")
	}
	if len(userID) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Session{
		id:               sessionID,
		userID:           userID,
		refreshTokenHash: refreshTokenHash,
		ipAddress:        ipAddress,
		userAgent:        userAgent,
		expiresAt:        expiresAt,
		createdAt:        createdAt,
		lastUsedAt:       lastUsedAt,
	}, nil
}

// AttachRefreshTokenHash stores the hash of the refresh token issued for
// this session. Rotation replaces it.
func (s *Session) AttachRefreshTokenHash(hash string) {
	s.refreshTokenHash = hash
}

// IsExpired reports whether the session has passed its expiry.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.expiresAt.After(now)
}

// Touch records session activity.
func (s *Session) Touch() {
	s.lastUsedAt = biztime.NowUTC()
}

func (s *Session) ID() string                { return s.id }
func (s *Session) UserID() string            { return s.userID }
func (s *Session) RefreshTokenHash() string  { return s.refreshTokenHash }
func (s *Session) IPAddress() string         { return s.ipAddress }
func (s *Session) UserAgent() string         { return s.userAgent }
func (s *Session) ExpiresAt() time.Time      { return s.expiresAt }
func (s *Session) CreatedAt() time.Time      { return s.createdAt }
func (s *Session) LastUsedAt() time.Time     { return s.lastUsedAt }

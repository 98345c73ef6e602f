package user

import (
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/id"
)

// User is an account holder. The optional API key is a second credential
// equivalent to a session for ticket access, but it cannot manage itself.
type User struct {
	id           string
	name         string
	email        string
	passwordHash string
	apiKey       *string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates an account. The password must already be hashed.
func NewUser(name, email, passwordHash string) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) == 0 || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	userID, err := id.NewUserID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	now := biztime.NowUTC()

	return &User{
		id:           userID,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(userID, name, email, passwordHash string, apiKey *string, createdAt, updatedAt time.Time) (*User, error) {
	if len(userID) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           userID,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		apiKey:       apiKey,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() string           { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) APIKey() *string      { return u.apiKey }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

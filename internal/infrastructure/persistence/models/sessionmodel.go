package models

import "time"

// SessionModel represents the database persistence model for sessions.
type SessionModel struct {
	ID               string    `gorm:"primaryKey;size:64"`
	UserID           string    `gorm:"size:32;not null;index"`
	RefreshTokenHash string    `gorm:"size:255;index"`
	IPAddress        string    `gorm:"size:45"`
	UserAgent        string    `gorm:"size:512"`
	ExpiresAt        time.Time `gorm:"not null;index"`
	LastUsedAt       time.Time `gorm:"not null"`
	CreatedAt        time.Time
}

func (SessionModel) TableName() string {
	return "sessions"
}

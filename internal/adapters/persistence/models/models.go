package models

import (
	"time"

	"gorm.io/gorm"
)

// Session represents the sessions table. The browser only holds the
// opaque session ID; the upstream bearer token is sealed before it
// touches the column.
type Session struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Role        string    `gorm:"size:20;not null;index" json:"role"`
	TokenSealed string    `gorm:"size:2048;not null" json:"-"`
	UserData    string    `gorm:"size:2048" json:"-"` // profile snapshot as JSON
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastSeenAt  time.Time `gorm:"not null;index" json:"last_seen_at"`
	ExpiresAt   time.Time `gorm:"not null;index" json:"expires_at"`
}

func (Session) TableName() string {
	return "sessions"
}

// IsExpired reports whether the absolute expiry has passed
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsIdle reports whether the session has been inactive longer than the
// sliding window
func (s *Session) IsIdle(idle time.Duration) bool {
	return time.Now().After(s.LastSeenAt.Add(idle))
}

// AutoMigrate creates the gateway tables if they don't exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Session{},
	)
}

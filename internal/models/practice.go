package models

import (
	"time"

	"github.com/google/uuid"
)

// PracticeAttempt is one evaluated answer, kept so a user can review past
// practice within their browsing session.
type PracticeAttempt struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID  string    `gorm:"type:text;index;not null" json:"-"`
	Question   string    `gorm:"type:text" json:"question"`
	Answer     string    `gorm:"type:text" json:"answer"`
	Clarity    int       `gorm:"not null;default:0" json:"clarity"`
	Relevance  int       `gorm:"not null;default:0" json:"relevance"`
	Confidence int       `gorm:"not null;default:0" json:"confidence"`
	Feedback   string    `gorm:"type:text" json:"feedback"`
	Outcome    Outcome   `gorm:"type:text;not null;default:'ok'" json:"outcome"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (PracticeAttempt) TableName() string {
	return "practice_attempts"
}

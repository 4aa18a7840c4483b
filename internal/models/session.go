package models

import (
	"time"

	"github.com/google/uuid"
)

// InterviewSession is one interview attempt. The question list is fixed at
// creation time and never edited afterwards.
type InterviewSession struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"` // nil = guest session
	Role         string     `gorm:"type:text" json:"role"`
	Questions    []string   `gorm:"serializer:json;type:jsonb" json:"questions"`
	StartedAt    time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"started_at"`
	CompletedAt  *time.Time `gorm:"type:timestamp" json:"completed_at,omitempty"`
	OverallScore *float64   `json:"overall_score,omitempty"`
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}

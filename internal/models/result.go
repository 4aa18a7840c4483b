package models

import (
	"time"

	"github.com/google/uuid"
)

// QuestionResult records the outcome of one answered question. Records are
// append-only and never mutated after creation.
//
// session_id carries no foreign key constraint: results are not validated
// against the sessions table before insertion.
type QuestionResult struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID       uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	Question        string    `gorm:"type:text" json:"question"`
	AnswerText      string    `gorm:"type:text" json:"answer_text"`
	AnswerScore     int       `json:"answer_score"`
	EyeContactScore int       `json:"eye_contact_score"`
	Feedback        string    `gorm:"type:text" json:"feedback"`
	CreatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (QuestionResult) TableName() string {
	return "question_results"
}

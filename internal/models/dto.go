package models

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type StartInterviewRequest struct {
	Role string `json:"role" validate:"required"`
}

type StartInterviewResponse struct {
	SessionID string   `json:"session_id"`
	Questions []string `json:"questions"`
}

type EvaluateAnswerRequest struct {
	SessionID       string `json:"session_id" validate:"required,uuid"`
	Question        string `json:"question"`
	AnswerText      string `json:"answer_text" validate:"required"`
	EyeContactScore int    `json:"eye_contact_score"`
}

type EvaluateAnswerResponse struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// InterviewReport is derived from a session's question results on demand and
// never persisted.
type InterviewReport struct {
	TotalQuestions int      `json:"total_questions"`
	AvgAnswerScore float64  `json:"avg_answer_score"`
	AvgEyeScore    float64  `json:"avg_eye_score"`
	Strengths      []string `json:"strengths"`
	Improvements   []string `json:"improvements"`
}

type StatsResponse struct {
	TotalUsers      int64   `json:"total_users"`
	TotalInterviews int64   `json:"total_interviews"`
	AverageScore    float64 `json:"average_score"`
}

type SessionSummary struct {
	ID             uuid.UUID `json:"id"`
	Role           string    `json:"role"`
	StartedAt      time.Time `json:"started_at"`
	QuestionsCount int       `json:"questions_count"`
	AnsweredCount  int       `json:"answered_count"`
	AvgScore       *float64  `json:"avg_score"`
}

type AdminUser struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	IsAdmin         bool             `json:"is_admin"`
	CreatedAt       time.Time        `json:"created_at"`
	TotalInterviews int              `json:"total_interviews"`
	TotalAnswers    int              `json:"total_answers"`
	OverallAvgScore *float64         `json:"overall_avg_score"`
	Sessions        []SessionSummary `json:"sessions"`
}

type UsersResponse struct {
	Users              []AdminUser `json:"users"`
	OrphanSessionCount int         `json:"orphan_session_count"`
}

type SessionDetail struct {
	ID        uuid.UUID        `json:"id"`
	Role      string           `json:"role"`
	StartedAt time.Time        `json:"started_at"`
	Questions []string         `json:"questions"`
	Results   []QuestionResult `json:"results"`
}

type UserDetail struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	IsAdmin   bool            `json:"is_admin"`
	CreatedAt time.Time       `json:"created_at"`
	Sessions  []SessionDetail `json:"sessions"`
}

type MigrateOrphansRequest struct {
	AssignToUserID string `json:"assign_to_user_id"`
}

type MigrateOrphansResponse struct {
	Message    string     `json:"message"`
	Migrated   int64      `json:"migrated"`
	AssignedTo *uuid.UUID `json:"assigned_to,omitempty"`
}

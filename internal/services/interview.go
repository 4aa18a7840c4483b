package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"mockmate/interview-api/internal/models"
	"mockmate/interview-api/internal/repositories"
)

// InterviewService sequences the interview flow: question generation,
// answer evaluation, and report derivation.
type InterviewService interface {
	StartSession(ctx context.Context, role string, userID *uuid.UUID) (*models.InterviewSession, error)
	SubmitAnswer(ctx context.Context, sessionID uuid.UUID, question, answerText string, eyeContactScore int) (*models.QuestionResult, error)
	GetReport(ctx context.Context, sessionID uuid.UUID) (*models.InterviewReport, error)
}

type interviewService struct {
	sessionRepo   repositories.SessionRepository
	resultRepo    repositories.ResultRepository
	llm           LLMService
	promptBuilder *PromptBuilder
}

func NewInterviewService(
	sessionRepo repositories.SessionRepository,
	resultRepo repositories.ResultRepository,
	llm LLMService,
) InterviewService {
	return &interviewService{
		sessionRepo:   sessionRepo,
		resultRepo:    resultRepo,
		llm:           llm,
		promptBuilder: NewPromptBuilder(),
	}
}

// StartSession generates up to 10 role-specific questions and creates a new
// session. A nil userID denotes a guest session.
func (s *interviewService) StartSession(ctx context.Context, role string, userID *uuid.UUID) (*models.InterviewSession, error) {
	if role == "" {
		return nil, fmt.Errorf("%w: role is required", ErrValidation)
	}

	prompt := s.promptBuilder.BuildQuestionPrompt(role)
	raw, err := s.llm.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	questions, err := ParseQuestionList(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	session := &models.InterviewSession{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      role,
		Questions: questions,
		StartedAt: time.Now(),
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	log.Printf("🎯 Session %s started for role %q with %d questions\n", session.ID, role, len(questions))
	return session, nil
}

// SubmitAnswer evaluates one answer and records the result. The session is
// deliberately not looked up first: a result may reference a session this
// service never stored.
func (s *interviewService) SubmitAnswer(ctx context.Context, sessionID uuid.UUID, question, answerText string, eyeContactScore int) (*models.QuestionResult, error) {
	if strings.TrimSpace(answerText) == "" {
		return nil, fmt.Errorf("%w: answer text is required", ErrValidation)
	}

	prompt := s.promptBuilder.BuildEvaluationPrompt(question, answerText)
	feedback, err := s.llm.GenerateText(ctx, prompt, 0.3)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	result := &models.QuestionResult{
		ID:              uuid.New(),
		SessionID:       sessionID,
		Question:        question,
		AnswerText:      answerText,
		AnswerScore:     ExtractScore(feedback),
		EyeContactScore: eyeContactScore,
		Feedback:        feedback,
		CreatedAt:       time.Now(),
	}

	if err := s.resultRepo.Create(result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return result, nil
}

// GetReport aggregates all recorded results for a session. A session with no
// results has no report.
func (s *interviewService) GetReport(ctx context.Context, sessionID uuid.UUID) (*models.InterviewReport, error) {
	results, err := s.resultRepo.FindBySessionID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no results found for this session", ErrNotFound)
	}

	report := BuildReport(results)
	return &report, nil
}

package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockmate/interview-api/internal/models"
)

type fakeLLM struct {
	response string
	err      error
	calls    int
}

func (f *fakeLLM) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeSessionRepo struct {
	sessions  []models.InterviewSession
	createErr error
}

func (f *fakeSessionRepo) Create(session *models.InterviewSession) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.sessions = append(f.sessions, *session)
	return nil
}

func (f *fakeSessionRepo) FindByID(id uuid.UUID) (*models.InterviewSession, error) {
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			return &f.sessions[i], nil
		}
	}
	return nil, fmt.Errorf("session not found")
}

func (f *fakeSessionRepo) FindByUserID(userID uuid.UUID) ([]models.InterviewSession, error) {
	return nil, nil
}

func (f *fakeSessionRepo) FindAll() ([]models.InterviewSession, error) {
	return f.sessions, nil
}

func (f *fakeSessionRepo) FindRecent(limit int) ([]models.InterviewSession, error) {
	return f.sessions, nil
}

func (f *fakeSessionRepo) FindOrphans() ([]models.InterviewSession, error) {
	return nil, nil
}

func (f *fakeSessionRepo) AssignOrphans(userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeSessionRepo) Count() (int64, error) {
	return int64(len(f.sessions)), nil
}

type fakeResultRepo struct {
	results   []models.QuestionResult
	createErr error
	findErr   error
}

func (f *fakeResultRepo) Create(result *models.QuestionResult) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.results = append(f.results, *result)
	return nil
}

func (f *fakeResultRepo) FindBySessionID(sessionID uuid.UUID) ([]models.QuestionResult, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []models.QuestionResult
	for _, r := range f.results {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResultRepo) FindAll() ([]models.QuestionResult, error) {
	return f.results, nil
}

func (f *fakeResultRepo) FindRecent(limit int) ([]models.QuestionResult, error) {
	return f.results, nil
}

func (f *fakeResultRepo) AverageAnswerScore() (float64, error) {
	return 0, nil
}

func (f *fakeResultRepo) Count() (int64, error) {
	return int64(len(f.results)), nil
}

func newTestService(llm *fakeLLM) (InterviewService, *fakeSessionRepo, *fakeResultRepo) {
	sessions := &fakeSessionRepo{}
	results := &fakeResultRepo{}
	return NewInterviewService(sessions, results, llm), sessions, results
}

func TestStartSession_EmptyRoleFailsBeforeUpstreamCall(t *testing.T) {
	llm := &fakeLLM{response: `["Q1"]`}
	svc, _, _ := newTestService(llm)

	_, err := svc.StartSession(context.Background(), "", nil)

	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, llm.calls)
}

func TestStartSession_CreatesSessionWithParsedQuestions(t *testing.T) {
	llm := &fakeLLM{response: `["Q1", "Q2", "Q3"]`}
	svc, sessions, _ := newTestService(llm)

	session, err := svc.StartSession(context.Background(), "Backend Engineer", nil)

	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", session.Role)
	assert.Equal(t, []string{"Q1", "Q2", "Q3"}, session.Questions)
	assert.Nil(t, session.UserID)
	require.Len(t, sessions.sessions, 1)
	assert.Equal(t, session.ID, sessions.sessions[0].ID)
}

func TestStartSession_AttachesOwner(t *testing.T) {
	llm := &fakeLLM{response: `["Q1"]`}
	svc, _, _ := newTestService(llm)
	userID := uuid.New()

	session, err := svc.StartSession(context.Background(), "Data Analyst", &userID)

	require.NoError(t, err)
	require.NotNil(t, session.UserID)
	assert.Equal(t, userID, *session.UserID)
}

func TestStartSession_UpstreamFailure(t *testing.T) {
	llm := &fakeLLM{err: fmt.Errorf("connection refused")}
	svc, sessions, _ := newTestService(llm)

	_, err := svc.StartSession(context.Background(), "DevOps", nil)

	require.ErrorIs(t, err, ErrUpstream)
	assert.Empty(t, sessions.sessions)
}

func TestStartSession_UnparsableResponse(t *testing.T) {
	llm := &fakeLLM{response: "I'm sorry, I can't help with that."}
	svc, sessions, _ := newTestService(llm)

	_, err := svc.StartSession(context.Background(), "DevOps", nil)

	require.ErrorIs(t, err, ErrUpstream)
	assert.Empty(t, sessions.sessions)
}

func TestStartSession_ZeroQuestionsIsValid(t *testing.T) {
	llm := &fakeLLM{response: `[]`}
	svc, sessions, _ := newTestService(llm)

	session, err := svc.StartSession(context.Background(), "Niche Role", nil)

	require.NoError(t, err)
	assert.Empty(t, session.Questions)
	assert.Len(t, sessions.sessions, 1)
}

func TestSubmitAnswer_BlankAnswerFailsBeforeUpstreamCall(t *testing.T) {
	llm := &fakeLLM{response: "Score: 8/10"}
	svc, _, _ := newTestService(llm)

	_, err := svc.SubmitAnswer(context.Background(), uuid.New(), "Q1", "   \t\n", 80)

	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, llm.calls)
}

func TestSubmitAnswer_RecordsScoreAndFullFeedback(t *testing.T) {
	feedback := "Score: 8/10\nFeedback: Clear and mostly complete."
	llm := &fakeLLM{response: feedback}
	svc, _, results := newTestService(llm)
	sessionID := uuid.New()

	result, err := svc.SubmitAnswer(context.Background(), sessionID, "Q1", "Goroutines are lightweight threads.", 75)

	require.NoError(t, err)
	assert.Equal(t, 8, result.AnswerScore)
	assert.Equal(t, feedback, result.Feedback)
	assert.Equal(t, 75, result.EyeContactScore)
	assert.Equal(t, sessionID, result.SessionID)
	require.Len(t, results.results, 1)
}

func TestSubmitAnswer_MissingScoreDegradesToDefault(t *testing.T) {
	llm := &fakeLLM{response: "Feedback: interesting answer, hard to grade."}
	svc, _, results := newTestService(llm)

	result, err := svc.SubmitAnswer(context.Background(), uuid.New(), "Q1", "An answer", 60)

	require.NoError(t, err)
	assert.Equal(t, 5, result.AnswerScore)
	assert.Len(t, results.results, 1)
}

func TestSubmitAnswer_DoesNotCheckSessionExistence(t *testing.T) {
	// Results for never-seen sessions are accepted on purpose.
	llm := &fakeLLM{response: "Score: 6/10"}
	svc, sessions, results := newTestService(llm)
	unknownSession := uuid.New()

	_, err := svc.SubmitAnswer(context.Background(), unknownSession, "Q1", "answer", 50)

	require.NoError(t, err)
	assert.Empty(t, sessions.sessions)
	require.Len(t, results.results, 1)
	assert.Equal(t, unknownSession, results.results[0].SessionID)
}

func TestGetReport_NoResultsIsNotFound(t *testing.T) {
	svc, _, _ := newTestService(&fakeLLM{})

	_, err := svc.GetReport(context.Background(), uuid.New())

	require.ErrorIs(t, err, ErrNotFound)
}

func TestInterviewRoundTrip(t *testing.T) {
	questions := `["Q1","Q2","Q3","Q4","Q5","Q6","Q7","Q8","Q9","Q10"]`
	llm := &fakeLLM{response: questions}
	svc, _, _ := newTestService(llm)

	session, err := svc.StartSession(context.Background(), "Backend Engineer", nil)
	require.NoError(t, err)
	require.Len(t, session.Questions, 10)

	llm.response = "Score: 8/10\nFeedback: Good."
	for _, q := range session.Questions {
		_, err := svc.SubmitAnswer(context.Background(), session.ID, q, "a solid answer", 85)
		require.NoError(t, err)
	}

	report, err := svc.GetReport(context.Background(), session.ID)
	require.NoError(t, err)

	assert.Equal(t, 10, report.TotalQuestions)
	assert.Equal(t, 8.0, report.AvgAnswerScore)
	assert.Equal(t, 85.0, report.AvgEyeScore)
	assert.NotContains(t, report.Improvements, "Complete all questions for a full assessment next time")
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mockmate/interview-api/internal/middleware"
	"mockmate/interview-api/internal/models"
	"mockmate/interview-api/internal/services"
)

type InterviewHandler struct {
	interviewService services.InterviewService
}

func NewInterviewHandler(interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
	}
}

// HandleStart handles POST /interview/start
func (h *InterviewHandler) HandleStart(c *fiber.Ctx) error {
	var req models.StartInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	var userID *uuid.UUID
	if claims := middleware.CurrentUser(c); claims != nil {
		userID = &claims.UserID
	}

	session, err := h.interviewService.StartSession(c.Context(), req.Role, userID)
	if err != nil {
		return interviewError(c, err, "Failed to start interview")
	}

	return c.JSON(models.StartInterviewResponse{
		SessionID: session.ID.String(),
		Questions: session.Questions,
	})
}

// HandleEvaluate handles POST /interview/evaluate
func (h *InterviewHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session_id format",
		})
	}

	result, err := h.interviewService.SubmitAnswer(
		c.Context(),
		sessionID,
		req.Question,
		req.AnswerText,
		req.EyeContactScore,
	)
	if err != nil {
		return interviewError(c, err, "Evaluation failed")
	}

	return c.JSON(models.EvaluateAnswerResponse{
		Score:    result.AnswerScore,
		Feedback: result.Feedback,
	})
}

// HandleReport handles GET /interview/report/:sessionId
func (h *InterviewHandler) HandleReport(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	report, err := h.interviewService.GetReport(c.Context(), sessionID)
	if err != nil {
		return interviewError(c, err, "Report generation failed")
	}

	return c.JSON(report)
}

// interviewError maps the service error taxonomy onto HTTP statuses.
// Validation and not-found reasons are surfaced verbatim; upstream and
// persistence failures collapse to a generic message.
func interviewError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fallback,
		})
	}
}

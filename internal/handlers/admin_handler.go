package handlers

import (
	"fmt"
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mockmate/interview-api/internal/models"
	"mockmate/interview-api/internal/repositories"
)

const debugRowLimit = 20

type AdminHandler struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	resultRepo  repositories.ResultRepository
}

func NewAdminHandler(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	resultRepo repositories.ResultRepository,
) *AdminHandler {
	return &AdminHandler{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		resultRepo:  resultRepo,
	}
}

// HandleStats handles GET /admin/stats
func (h *AdminHandler) HandleStats(c *fiber.Ctx) error {
	totalUsers, err := h.userRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Stats failed",
		})
	}

	totalInterviews, err := h.sessionRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Stats failed",
		})
	}

	avgScore, err := h.resultRepo.AverageAnswerScore()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Stats failed",
		})
	}

	return c.JSON(models.StatsResponse{
		TotalUsers:      totalUsers,
		TotalInterviews: totalInterviews,
		AverageScore:    math.Round(avgScore*100) / 100,
	})
}

// HandleListUsers handles GET /admin/users
func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.userRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}

	allSessions, err := h.sessionRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}

	allResults, err := h.resultRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}

	resultsBySession := make(map[uuid.UUID][]models.QuestionResult)
	for _, r := range allResults {
		resultsBySession[r.SessionID] = append(resultsBySession[r.SessionID], r)
	}

	sessionsByUser := make(map[uuid.UUID][]models.InterviewSession)
	orphanCount := 0
	for _, s := range allSessions {
		if s.UserID == nil {
			orphanCount++
			continue
		}
		sessionsByUser[*s.UserID] = append(sessionsByUser[*s.UserID], s)
	}

	adminUsers := make([]models.AdminUser, 0, len(users))
	for _, user := range users {
		sessions := sessionsByUser[user.ID]

		summaries := make([]models.SessionSummary, 0, len(sessions))
		totalAnswers := 0
		var scoreSum float64
		for _, s := range sessions {
			results := resultsBySession[s.ID]
			summaries = append(summaries, models.SessionSummary{
				ID:             s.ID,
				Role:           s.Role,
				StartedAt:      s.StartedAt,
				QuestionsCount: len(s.Questions),
				AnsweredCount:  len(results),
				AvgScore:       averageScore(results),
			})

			totalAnswers += len(results)
			for _, r := range results {
				scoreSum += float64(r.AnswerScore)
			}
		}

		var overallAvg *float64
		if totalAnswers > 0 {
			v := math.Round(scoreSum/float64(totalAnswers)*10) / 10
			overallAvg = &v
		}

		adminUsers = append(adminUsers, models.AdminUser{
			ID:              user.ID,
			Name:            user.Name,
			Email:           user.Email,
			IsAdmin:         user.IsAdmin,
			CreatedAt:       user.CreatedAt,
			TotalInterviews: len(sessions),
			TotalAnswers:    totalAnswers,
			OverallAvgScore: overallAvg,
			Sessions:        summaries,
		})
	}

	return c.JSON(models.UsersResponse{
		Users:              adminUsers,
		OrphanSessionCount: orphanCount,
	})
}

// HandleUserDetail handles GET /admin/users/:userId
func (h *AdminHandler) HandleUserDetail(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	sessions, err := h.sessionRepo.FindByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch user detail",
		})
	}

	details := make([]models.SessionDetail, 0, len(sessions))
	for _, s := range sessions {
		results, err := h.resultRepo.FindBySessionID(s.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to fetch user detail",
			})
		}
		details = append(details, models.SessionDetail{
			ID:        s.ID,
			Role:      s.Role,
			StartedAt: s.StartedAt,
			Questions: s.Questions,
			Results:   results,
		})
	}

	return c.JSON(fiber.Map{
		"user": models.UserDetail{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt,
			Sessions:  details,
		},
	})
}

// HandleDebug handles GET /admin/debug with a capped snapshot of the store.
func (h *AdminHandler) HandleDebug(c *fiber.Ctx) error {
	sessions, err := h.sessionRepo.FindRecent(debugRowLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	results, err := h.resultRepo.FindRecent(debugRowLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	users, err := h.userRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	userRows := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		userRows = append(userRows, fiber.Map{
			"id":    u.ID,
			"name":  u.Name,
			"email": u.Email,
		})
	}

	sessionRows := make([]fiber.Map, 0, len(sessions))
	for _, s := range sessions {
		sessionRows = append(sessionRows, fiber.Map{
			"id":         s.ID,
			"role":       s.Role,
			"user_id":    s.UserID,
			"started_at": s.StartedAt,
		})
	}

	resultRows := make([]fiber.Map, 0, len(results))
	for _, r := range results {
		resultRows = append(resultRows, fiber.Map{
			"id":           r.ID,
			"session_id":   r.SessionID,
			"answer_score": r.AnswerScore,
		})
	}

	return c.JSON(fiber.Map{
		"user_count":    len(users),
		"session_count": len(sessions),
		"result_count":  len(results),
		"users":         userRows,
		"sessions":      sessionRows,
		"results":       resultRows,
	})
}

// HandleMigrateOrphans handles POST /admin/migrate-orphans. Ownerless
// sessions are assigned to the requested user, or to the most recently
// registered non-admin user when none is named.
func (h *AdminHandler) HandleMigrateOrphans(c *fiber.Ctx) error {
	var req models.MigrateOrphansRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	orphans, err := h.sessionRepo.FindOrphans()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if len(orphans) == 0 {
		return c.JSON(models.MigrateOrphansResponse{
			Message:  "No orphan sessions found.",
			Migrated: 0,
		})
	}

	var targetUserID uuid.UUID
	if req.AssignToUserID != "" {
		targetUserID, err = uuid.Parse(req.AssignToUserID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid assign_to_user_id format",
			})
		}
	} else {
		latest, err := h.userRepo.FindLatestNonAdmin()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "No users found to assign to",
			})
		}
		targetUserID = latest.ID
	}

	migrated, err := h.sessionRepo.AssignOrphans(targetUserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.MigrateOrphansResponse{
		Message:    fmt.Sprintf("Migrated %d sessions to user %s", migrated, targetUserID),
		Migrated:   migrated,
		AssignedTo: &targetUserID,
	})
}

// averageScore is the per-session mean answer score, rounded to one
// decimal, or nil when no answers were recorded.
func averageScore(results []models.QuestionResult) *float64 {
	if len(results) == 0 {
		return nil
	}
	var sum float64
	for _, r := range results {
		sum += float64(r.AnswerScore)
	}
	avg := math.Round(sum/float64(len(results))*10) / 10
	return &avg
}

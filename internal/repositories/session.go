package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mockmate/interview-api/internal/models"
)

type SessionRepository interface {
	Create(session *models.InterviewSession) error
	FindByID(id uuid.UUID) (*models.InterviewSession, error)
	FindByUserID(userID uuid.UUID) ([]models.InterviewSession, error)
	FindAll() ([]models.InterviewSession, error)
	FindRecent(limit int) ([]models.InterviewSession, error)
	FindOrphans() ([]models.InterviewSession, error)
	AssignOrphans(userID uuid.UUID) (int64, error)
	Count() (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create implements SessionRepository.
func (r *sessionRepository) Create(session *models.InterviewSession) error {
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// FindByID implements SessionRepository.
func (r *sessionRepository) FindByID(id uuid.UUID) (*models.InterviewSession, error) {
	var session models.InterviewSession
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return &session, nil
}

// FindByUserID implements SessionRepository.
func (r *sessionRepository) FindByUserID(userID uuid.UUID) ([]models.InterviewSession, error) {
	var sessions []models.InterviewSession
	err := r.db.
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find sessions for user: %w", err)
	}
	return sessions, nil
}

// FindAll implements SessionRepository.
func (r *sessionRepository) FindAll() ([]models.InterviewSession, error) {
	var sessions []models.InterviewSession
	if err := r.db.Order("started_at DESC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to find sessions: %w", err)
	}
	return sessions, nil
}

// FindRecent implements SessionRepository.
func (r *sessionRepository) FindRecent(limit int) ([]models.InterviewSession, error) {
	var sessions []models.InterviewSession
	err := r.db.
		Order("started_at DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recent sessions: %w", err)
	}
	return sessions, nil
}

// FindOrphans returns sessions that have no owning user.
func (r *sessionRepository) FindOrphans() ([]models.InterviewSession, error) {
	var sessions []models.InterviewSession
	if err := r.db.Where("user_id IS NULL").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to find orphan sessions: %w", err)
	}
	return sessions, nil
}

// AssignOrphans attaches every ownerless session to the given user and
// returns the number of sessions updated.
func (r *sessionRepository) AssignOrphans(userID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.InterviewSession{}).
		Where("user_id IS NULL").
		Update("user_id", userID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to assign orphan sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Count implements SessionRepository.
func (r *sessionRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.InterviewSession{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mockmate/interview-api/internal/models"
)

type ResultRepository interface {
	Create(result *models.QuestionResult) error
	FindBySessionID(sessionID uuid.UUID) ([]models.QuestionResult, error)
	FindAll() ([]models.QuestionResult, error)
	FindRecent(limit int) ([]models.QuestionResult, error)
	AverageAnswerScore() (float64, error)
	Count() (int64, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

// Create implements ResultRepository.
func (r *resultRepository) Create(result *models.QuestionResult) error {
	if err := r.db.Create(result).Error; err != nil {
		return fmt.Errorf("failed to create question result: %w", err)
	}
	return nil
}

// FindBySessionID returns all results recorded for one session, oldest first.
func (r *resultRepository) FindBySessionID(sessionID uuid.UUID) ([]models.QuestionResult, error) {
	var results []models.QuestionResult
	err := r.db.
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find results for session: %w", err)
	}
	return results, nil
}

// FindAll implements ResultRepository.
func (r *resultRepository) FindAll() ([]models.QuestionResult, error) {
	var results []models.QuestionResult
	if err := r.db.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to find results: %w", err)
	}
	return results, nil
}

// FindRecent implements ResultRepository.
func (r *resultRepository) FindRecent(limit int) ([]models.QuestionResult, error) {
	var results []models.QuestionResult
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recent results: %w", err)
	}
	return results, nil
}

// AverageAnswerScore returns the mean answer score across every stored
// result, or 0 when none exist.
func (r *resultRepository) AverageAnswerScore() (float64, error) {
	var avg float64
	err := r.db.Model(&models.QuestionResult{}).
		Select("COALESCE(AVG(answer_score), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute average answer score: %w", err)
	}
	return avg, nil
}

// Count implements ResultRepository.
func (r *resultRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.QuestionResult{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count results: %w", err)
	}
	return count, nil
}

package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/interview-coach/internal/models"
)

const defaultHistoryLimit = 50

type PracticeRepository interface {
	Create(attempt *models.PracticeAttempt) error
	FindBySession(sessionID string, limit int) ([]models.PracticeAttempt, error)
}

type practiceRepository struct {
	db *gorm.DB
}

// NewPracticeRepository returns a repository backed by db, or a no-op one
// when db is nil.
func NewPracticeRepository(db *gorm.DB) PracticeRepository {
	if db == nil {
		return disabledPracticeRepository{}
	}
	return &practiceRepository{db: db}
}

func (r *practiceRepository) Create(attempt *models.PracticeAttempt) error {
	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	if err := r.db.Create(attempt).Error; err != nil {
		return fmt.Errorf("failed to create practice attempt: %w", err)
	}
	return nil
}

func (r *practiceRepository) FindBySession(sessionID string, limit int) ([]models.PracticeAttempt, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	var attempts []models.PracticeAttempt
	err := r.db.
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&attempts).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find practice attempts: %w", err)
	}

	return attempts, nil
}

type disabledPracticeRepository struct{}

func (disabledPracticeRepository) Create(*models.PracticeAttempt) error {
	return nil
}

func (disabledPracticeRepository) FindBySession(string, int) ([]models.PracticeAttempt, error) {
	return []models.PracticeAttempt{}, nil
}

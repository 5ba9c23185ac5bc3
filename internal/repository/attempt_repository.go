package repository

import (
	"cs_sprint_backend/internal/model"

	"gorm.io/gorm"
)

// AttemptRepository appends graded quiz and apply attempts. Rows are never
// updated after creation.
type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) CreateQuizAttempt(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) CreateApplyAttempt(attempt *model.ApplyAttempt) error {
	return r.DB.Create(attempt).Error
}

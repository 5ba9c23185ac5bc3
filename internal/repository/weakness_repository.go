package repository

import (
	"errors"

	"cs_sprint_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WeaknessRepository struct {
	DB *gorm.DB
}

func NewWeaknessRepository(db *gorm.DB) *WeaknessRepository {
	return &WeaknessRepository{DB: db}
}

func (r *WeaknessRepository) ScoresByUser(userID uint) ([]model.CategoryScore, error) {
	var scores []model.CategoryScore
	err := r.DB.Where("user_id = ?", userID).Find(&scores).Error
	return scores, err
}

// UpsertScore writes a per-(user, category) score, marking the category
// tested.
func (r *WeaknessRepository) UpsertScore(userID uint, category string, score int) error {
	row := model.CategoryScore{
		UserID:   userID,
		Category: category,
		Score:    score,
		Tested:   true,
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "tested", "updated_at"}),
	}).Create(&row).Error
}

func (r *WeaknessRepository) CreateDiagnostic(attempt *model.DiagnosticAttempt) error {
	return r.DB.Create(attempt).Error
}

// LatestCompletedDiagnostic returns nil without error when the user has never
// completed a diagnostic.
func (r *WeaknessRepository) LatestCompletedDiagnostic(userID uint) (*model.DiagnosticAttempt, error) {
	var attempt model.DiagnosticAttempt
	err := r.DB.Where("user_id = ? AND status = ?", userID, model.DiagnosticCompleted).
		Order("completed_at DESC").
		First(&attempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attempt, nil
}

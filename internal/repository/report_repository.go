package repository

import (
	"cs_sprint_backend/internal/model"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// HasPendingByReporter reports whether the user already has a pending report
// on the target.
func (r *ReportRepository) HasPendingByReporter(tx *gorm.DB, targetType model.ReportTargetType, targetID string, reporterID uint) (bool, error) {
	var count int64
	err := tx.Model(&model.Report{}).
		Where("target_type = ? AND target_id = ? AND reporter_id = ? AND status = ?",
			targetType, targetID, reporterID, model.ReportPending).
		Count(&count).Error
	return count > 0, err
}

func (r *ReportRepository) Create(tx *gorm.DB, report *model.Report) error {
	return tx.Create(report).Error
}

// CountByTarget counts reports of any status against the target.
func (r *ReportRepository) CountByTarget(tx *gorm.DB, targetType model.ReportTargetType, targetID string) (int64, error) {
	var count int64
	err := tx.Model(&model.Report{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	return count, err
}

func (r *ReportRepository) CreateModerationAction(tx *gorm.DB, action *model.ModerationAction) error {
	return tx.Create(action).Error
}

func (r *ReportRepository) ListModerationActions(targetType, targetID string) ([]model.ModerationAction, error) {
	var actions []model.ModerationAction
	err := r.DB.Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("created_at ASC").
		Find(&actions).Error
	return actions, err
}

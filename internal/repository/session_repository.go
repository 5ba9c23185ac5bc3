package repository

import (
	"time"

	"cs_sprint_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(run *model.SessionRun) error {
	return r.DB.Create(run).Error
}

func (r *SessionRepository) FindByID(id string) (*model.SessionRun, error) {
	var run model.SessionRun
	err := r.DB.First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// FindByIDWithDetails loads a run with its attempts (and their question or
// task) and reflections.
func (r *SessionRepository) FindByIDWithDetails(id string) (*model.SessionRun, error) {
	var run model.SessionRun
	err := r.DB.
		Preload("QuizAttempts.Question").
		Preload("ApplyAttempts.Task").
		Preload("Reflections").
		First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// Update merges the given column map into the run row.
func (r *SessionRepository) Update(id string, fields map[string]interface{}) error {
	return r.DB.Model(&model.SessionRun{}).Where("id = ?", id).Updates(fields).Error
}

func (r *SessionRepository) ListByUser(userID uint, limit int) ([]model.SessionRun, error) {
	var runs []model.SessionRun
	err := r.DB.Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	return runs, err
}

func (r *SessionRepository) ListCompletedBetween(userID uint, from, to time.Time) ([]model.SessionRun, error) {
	var runs []model.SessionRun
	err := r.DB.
		Where("user_id = ? AND status = ? AND completed_at >= ? AND completed_at < ?",
			userID, model.SessionCompleted, from, to).
		Order("completed_at ASC").
		Find(&runs).Error
	return runs, err
}

// ModuleStats is the per-module aggregate row of the admin module list.
type ModuleStats struct {
	Runs        int64    `json:"runs"`
	Completions int64    `json:"completions"`
	AvgScore    *float64 `json:"avgScore"`
}

func (r *SessionRepository) StatsByModule(moduleID string) (*ModuleStats, error) {
	var stats ModuleStats
	if err := r.DB.Model(&model.SessionRun{}).
		Where("module_id = ?", moduleID).
		Count(&stats.Runs).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.SessionRun{}).
		Where("module_id = ? AND status = ?", moduleID, model.SessionCompleted).
		Count(&stats.Completions).Error; err != nil {
		return nil, err
	}
	row := r.DB.Model(&model.SessionRun{}).
		Where("module_id = ? AND score IS NOT NULL", moduleID).
		Select("AVG(score)").Row()
	if err := row.Scan(&stats.AvgScore); err != nil {
		return nil, err
	}
	return &stats, nil
}

package repository

import (
	"cs_sprint_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.QuizQuestion) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.QuizQuestion, error) {
	var question model.QuizQuestion
	err := r.DB.First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) ListByModule(moduleID string) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.DB.Where("module_id = ? AND diagnostic = ?", moduleID, false).
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) ListDiagnostic() ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.DB.Where("diagnostic = ?", true).Order("id ASC").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindTaskByID(id uint) (*model.ApplyTask, error) {
	var task model.ApplyTask
	err := r.DB.First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *QuestionRepository) ListTasksByModule(moduleID string) ([]model.ApplyTask, error) {
	var tasks []model.ApplyTask
	err := r.DB.Where("module_id = ?", moduleID).Order("id ASC").Find(&tasks).Error
	return tasks, err
}

package repository

import (
	"cs_sprint_backend/internal/model"

	"gorm.io/gorm"
)

type ReflectionRepository struct {
	DB *gorm.DB
}

func NewReflectionRepository(db *gorm.DB) *ReflectionRepository {
	return &ReflectionRepository{DB: db}
}

func (r *ReflectionRepository) Create(reflection *model.Reflection) error {
	return r.DB.Create(reflection).Error
}

func (r *ReflectionRepository) ListPublic(limit int) ([]model.Reflection, error) {
	var reflections []model.Reflection
	err := r.DB.Preload("User").
		Where("is_public = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&reflections).Error
	return reflections, err
}

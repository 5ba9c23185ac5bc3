package repository

import (
	"cs_sprint_backend/internal/model"

	"gorm.io/gorm"
)

type ModuleVersionRepository struct {
	DB *gorm.DB
}

func NewModuleVersionRepository(db *gorm.DB) *ModuleVersionRepository {
	return &ModuleVersionRepository{DB: db}
}

func (r *ModuleVersionRepository) Create(version *model.ModuleVersion) error {
	return r.DB.Create(version).Error
}

func (r *ModuleVersionRepository) ListByModule(moduleID string) ([]model.ModuleVersion, error) {
	var versions []model.ModuleVersion
	err := r.DB.Where("module_id = ?", moduleID).
		Order("version DESC").
		Find(&versions).Error
	return versions, err
}

func (r *ModuleVersionRepository) NextVersion(moduleID string) (int, error) {
	var max *int
	row := r.DB.Model(&model.ModuleVersion{}).
		Where("module_id = ?", moduleID).
		Select("MAX(version)").Row()
	if err := row.Scan(&max); err != nil {
		return 0, err
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}

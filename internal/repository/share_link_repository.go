package repository

import (
	"errors"

	"cs_sprint_backend/internal/model"

	"gorm.io/gorm"
)

type ShareLinkRepository struct {
	DB *gorm.DB
}

func NewShareLinkRepository(db *gorm.DB) *ShareLinkRepository {
	return &ShareLinkRepository{DB: db}
}

// FindActiveByRun returns nil without error when the run has no active link.
func (r *ShareLinkRepository) FindActiveByRun(runID string) (*model.ShareLink, error) {
	var link model.ShareLink
	err := r.DB.Where("session_run_id = ? AND active = ?", runID, true).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (r *ShareLinkRepository) FindBySlug(slug string) (*model.ShareLink, error) {
	var link model.ShareLink
	err := r.DB.Where("slug = ? AND active = ?", slug, true).First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *ShareLinkRepository) Create(link *model.ShareLink) error {
	return r.DB.Create(link).Error
}

func (r *ShareLinkRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ShareLink{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

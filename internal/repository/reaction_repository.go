package repository

import (
	"errors"

	"cs_sprint_backend/internal/model"

	"gorm.io/gorm"
)

type ReactionRepository struct {
	DB *gorm.DB
}

func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{DB: db}
}

// Find returns nil without error when no reaction row exists for the triple.
func (r *ReactionRepository) Find(postID string, userID uint, reactionType string) (*model.Reaction, error) {
	var reaction model.Reaction
	err := r.DB.Where("post_id = ? AND user_id = ? AND type = ?", postID, userID, reactionType).
		First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reaction, nil
}

func (r *ReactionRepository) Create(reaction *model.Reaction) error {
	return r.DB.Create(reaction).Error
}

func (r *ReactionRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&model.Reaction{}, id).Error
}

func (r *ReactionRepository) Count(postID, reactionType string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Reaction{}).
		Where("post_id = ? AND type = ?", postID, reactionType).
		Count(&count).Error
	return count, err
}

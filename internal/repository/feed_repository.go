package repository

import (
	"cs_sprint_backend/internal/model"

	"gorm.io/gorm"
)

type FeedPostRepository struct {
	DB *gorm.DB
}

func NewFeedPostRepository(db *gorm.DB) *FeedPostRepository {
	return &FeedPostRepository{DB: db}
}

func (r *FeedPostRepository) Create(post *model.FeedPost) error {
	return r.DB.Create(post).Error
}

func (r *FeedPostRepository) FindByID(id string) (*model.FeedPost, error) {
	var post model.FeedPost
	err := r.DB.Preload("Author").First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *FeedPostRepository) ListVisible(offset, limit int) ([]model.FeedPost, int64, error) {
	var posts []model.FeedPost
	var total int64

	query := r.DB.Model(&model.FeedPost{}).Where("visibility = ?", model.VisibilityPublic)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Author").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

type FeedCommentRepository struct {
	DB *gorm.DB
}

func NewFeedCommentRepository(db *gorm.DB) *FeedCommentRepository {
	return &FeedCommentRepository{DB: db}
}

func (r *FeedCommentRepository) Create(comment *model.FeedComment) error {
	return r.DB.Create(comment).Error
}

func (r *FeedCommentRepository) FindByID(id string) (*model.FeedComment, error) {
	var comment model.FeedComment
	err := r.DB.Preload("Author").First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *FeedCommentRepository) ListByPost(postID string) ([]model.FeedComment, error) {
	var comments []model.FeedComment
	err := r.DB.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *FeedCommentRepository) Update(comment *model.FeedComment) error {
	return r.DB.Save(comment).Error
}

func (r *FeedCommentRepository) Delete(id string) error {
	return r.DB.Delete(&model.FeedComment{}, "id = ?", id).Error
}

package repository

import (
	"errors"

	"cs_sprint_backend/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

// FindByUserID returns nil without error when the user has no subscription
// row; callers treat that as the free plan.
func (r *SubscriptionRepository) FindByUserID(userID uint) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.DB.Where("user_id = ?", userID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Save(sub *model.Subscription) error {
	return r.DB.Save(sub).Error
}

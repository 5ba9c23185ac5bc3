package model

import "time"

type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Subscription is one row per user. Absence of a row, a non-active status, or
// a lapsed period all resolve to the free plan. Billing is mocked; the row is
// written by the mock checkout endpoint only.
type Subscription struct {
	BaseModel
	UserID    uint               `gorm:"uniqueIndex;not null" json:"userId"`
	Plan      Plan               `gorm:"size:20;default:'free'" json:"plan"`
	Status    SubscriptionStatus `gorm:"size:20;default:'active'" json:"status"`
	PeriodEnd *time.Time         `json:"periodEnd"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// Entitlements is the resolved plan plus the flag set it unlocks.
type Entitlements struct {
	Plan     Plan            `json:"plan"`
	Features map[string]bool `json:"features"`
}

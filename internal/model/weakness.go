package model

import "time"

// CategoryScore is a per-(user, category) proficiency row. The weakness map
// synthesizes missing categories as score 0, tested=false instead of leaving
// them absent.
type CategoryScore struct {
	BaseModel
	UserID   uint   `gorm:"uniqueIndex:idx_user_category;not null" json:"userId"`
	Category string `gorm:"uniqueIndex:idx_user_category;size:30;not null" json:"category"`
	Score    int    `gorm:"default:0" json:"score"`
	Tested   bool   `gorm:"default:false" json:"tested"`
}

func (CategoryScore) TableName() string {
	return "category_scores"
}

type DiagnosticStatus string

const (
	DiagnosticInProgress DiagnosticStatus = "in-progress"
	DiagnosticCompleted  DiagnosticStatus = "completed"
)

// DiagnosticAttempt records one pass through the diagnostic question set.
type DiagnosticAttempt struct {
	UUIDBase
	UserID      uint             `gorm:"index;not null" json:"userId"`
	Score       int              `gorm:"default:0" json:"score"`
	Status      DiagnosticStatus `gorm:"size:20;default:'in-progress'" json:"status"`
	CompletedAt *time.Time       `json:"completedAt"`
}

func (DiagnosticAttempt) TableName() string {
	return "diagnostic_attempts"
}

// WeaknessEntry is the per-category shape returned by the weakness map.
type WeaknessEntry struct {
	Score     int        `json:"score"`
	Tested    bool       `json:"tested"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// DiagnosticSummary is the latest completed diagnostic, or null when the user
// has never finished one.
type DiagnosticSummary struct {
	ID          string     `json:"id"`
	Score       int        `json:"score"`
	CompletedAt *time.Time `json:"completedAt"`
}

type WeaknessMap struct {
	Categories       map[string]WeaknessEntry `json:"categories"`
	LatestDiagnostic *DiagnosticSummary       `json:"latestDiagnostic"`
}

// Recommendation is one ranked topic suggestion.
type Recommendation struct {
	ModuleID string `json:"moduleId"`
	Title    string `json:"title"`
	Reason   string `json:"reason"`
	Rank     int    `json:"rank"`
}

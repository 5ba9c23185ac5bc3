package model

// ShareLink maps a short random slug to a session run. Creation is idempotent:
// re-requesting a link for the same run returns the existing active row.
type ShareLink struct {
	BaseModel
	SessionRunID string `gorm:"size:36;index;not null" json:"sessionRunId"`
	UserID       uint   `gorm:"index;not null" json:"userId"`
	Slug         string `gorm:"size:16;uniqueIndex;not null" json:"slug"`
	Active       bool   `gorm:"default:true" json:"active"`
}

func (ShareLink) TableName() string {
	return "share_links"
}

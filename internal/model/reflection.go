package model

// Reflection is the free-text wrap-up a user writes at the end of a session
// run. Append-only once created; no edit or delete is exposed.
// swagger:model
type Reflection struct {
	UUIDBase
	SessionRunID string `gorm:"size:36;index;not null" json:"sessionRunId"`
	UserID       uint   `gorm:"index;not null" json:"userId"`
	Content      string `gorm:"type:text;not null" json:"content"`
	IsPublic     bool   `gorm:"default:false" json:"isPublic"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Reflection) TableName() string {
	return "reflections"
}

package model

type PostVisibility string

const (
	VisibilityPublic  PostVisibility = "public"
	VisibilityPrivate PostVisibility = "private"
)

type FeedPost struct {
	UUIDBase
	AuthorID   uint           `gorm:"index;not null" json:"authorId"`
	Author     User           `gorm:"foreignKey:AuthorID" json:"-"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	ImageURL   string         `gorm:"size:255" json:"imageUrl"`
	Visibility PostVisibility `gorm:"size:20;default:'public'" json:"visibility"`

	Comments []FeedComment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

func (FeedPost) TableName() string {
	return "feed_posts"
}

type FeedComment struct {
	UUIDBase
	PostID   string `gorm:"size:36;index;not null" json:"feedPostId"`
	AuthorID uint   `gorm:"index;not null" json:"authorId"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"-"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Hidden   bool   `gorm:"default:false" json:"hidden"`
}

func (FeedComment) TableName() string {
	return "feed_comments"
}

// Reaction rows are unique on (post, user, type); toggling deletes or creates
// a row rather than flipping a flag.
type Reaction struct {
	BaseModel
	PostID string `gorm:"uniqueIndex:idx_post_user_type;size:36;not null" json:"feedPostId"`
	UserID uint   `gorm:"uniqueIndex:idx_post_user_type;not null" json:"userId"`
	Type   string `gorm:"uniqueIndex:idx_post_user_type;size:20;not null" json:"type"`
}

func (Reaction) TableName() string {
	return "reactions"
}

type ReportTargetType string

const (
	ReportTargetPost    ReportTargetType = "post"
	ReportTargetComment ReportTargetType = "comment"
)

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

type Report struct {
	UUIDBase
	TargetType ReportTargetType `gorm:"size:20;not null" json:"targetType"`
	TargetID   string           `gorm:"size:36;index;not null" json:"targetId"`
	ReporterID uint             `gorm:"index;not null" json:"userId"`
	Reason     string           `gorm:"size:500" json:"reason"`
	Status     ReportStatus     `gorm:"size:20;default:'pending'" json:"status"`
}

func (Report) TableName() string {
	return "reports"
}

// ModerationAction is the audit row written when moderation changes content
// state. Actor is "system" for threshold auto-hides.
type ModerationAction struct {
	UUIDBase
	TargetType string `gorm:"size:20;not null" json:"targetType"`
	TargetID   string `gorm:"size:36;index;not null" json:"targetId"`
	Action     string `gorm:"size:50;not null" json:"action"`
	Actor      string `gorm:"size:50;not null" json:"actor"`
	Detail     string `gorm:"size:255" json:"detail"`
}

func (ModerationAction) TableName() string {
	return "moderation_actions"
}

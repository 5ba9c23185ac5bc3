package model

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	TrueFalse      QuestionType = "true-false"
	FillInBlank    QuestionType = "fill-in-blank"
)

func (t QuestionType) Valid() bool {
	switch t {
	case MultipleChoice, TrueFalse, FillInBlank:
		return true
	}
	return false
}

// QuizQuestion belongs to a catalog module and optionally to the diagnostic
// set. Options is a JSON-encoded string array for multiple-choice questions.
type QuizQuestion struct {
	BaseModel
	ModuleID   string       `gorm:"size:40;index" json:"moduleId"`
	Type       QuestionType `gorm:"size:20;not null" json:"type"`
	Prompt     string       `gorm:"type:text;not null" json:"prompt"`
	Options    string       `gorm:"type:text" json:"options"`
	Answer     string       `gorm:"size:500;not null" json:"-"`
	Category   string       `gorm:"size:30" json:"category"`
	Diagnostic bool         `gorm:"default:false" json:"diagnostic"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// ApplyTask is the hands-on exercise of a module's apply stage.
type ApplyTask struct {
	BaseModel
	ModuleID     string `gorm:"size:40;index;not null" json:"moduleId"`
	Title        string `gorm:"size:255;not null" json:"title"`
	Instructions string `gorm:"type:text" json:"instructions"`
	Answer       string `gorm:"size:500" json:"-"`
}

func (ApplyTask) TableName() string {
	return "apply_tasks"
}

// ModuleVersion is one entry of a module's content revision history.
type ModuleVersion struct {
	BaseModel
	ModuleID string `gorm:"size:40;index;not null" json:"moduleId"`
	Version  int    `gorm:"not null" json:"version"`
	Summary  string `gorm:"size:500" json:"summary"`
	EditorID uint   `json:"editorId"`
}

func (ModuleVersion) TableName() string {
	return "module_versions"
}

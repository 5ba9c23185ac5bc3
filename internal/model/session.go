package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

// Checkpoint is the serialized progress marker inside a session run. It is
// stored as a single JSON column and always replaced as a whole object —
// callers resend the full checkpoint on every save.
type Checkpoint struct {
	Stage         string `json:"stage"`
	TimeRemaining int    `json:"timeRemaining"`
}

func (c Checkpoint) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Checkpoint) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = Checkpoint{}
		return nil
	default:
		return errors.New("unsupported checkpoint column type")
	}
}

// SessionRun is one instance of a user progressing through a module's
// four-stage learning flow. Soft lifecycle only: runs are never deleted.
// swagger:model
type SessionRun struct {
	UUIDBase
	UserID      uint          `gorm:"index;not null" json:"userId"`
	ModuleID    string        `gorm:"size:40;index;not null" json:"moduleId"`
	Status      SessionStatus `gorm:"size:20;default:'active'" json:"status"`
	Checkpoint  Checkpoint    `gorm:"type:text" json:"checkpointData"`
	Score       *int          `json:"score"`
	StartedAt   time.Time     `json:"startedAt"`
	CompletedAt *time.Time    `json:"completedAt"`

	QuizAttempts  []QuizAttempt  `gorm:"foreignKey:SessionRunID" json:"quizAttempts,omitempty"`
	ApplyAttempts []ApplyAttempt `gorm:"foreignKey:SessionRunID" json:"applyAttempts,omitempty"`
	Reflections   []Reflection   `gorm:"foreignKey:SessionRunID" json:"reflections,omitempty"`
}

func (SessionRun) TableName() string {
	return "session_runs"
}

// QuizAttempt is an append-only graded answer tied to a session run.
type QuizAttempt struct {
	BaseModel
	SessionRunID string        `gorm:"size:36;index;not null" json:"sessionRunId"`
	QuestionID   uint          `gorm:"index;not null" json:"questionId"`
	Question     *QuizQuestion `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	Answer       string        `gorm:"type:text" json:"answer"`
	IsCorrect    bool          `json:"isCorrect"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

type ApplyAttempt struct {
	BaseModel
	SessionRunID string     `gorm:"size:36;index;not null" json:"sessionRunId"`
	TaskID       uint       `gorm:"index;not null" json:"taskId"`
	Task         *ApplyTask `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Answer       string     `gorm:"type:text" json:"answer"`
	IsCorrect    bool       `json:"isCorrect"`
}

func (ApplyAttempt) TableName() string {
	return "apply_attempts"
}

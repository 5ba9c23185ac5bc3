package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cs_sprint_backend/internal/catalog"
	"cs_sprint_backend/internal/model"
	"cs_sprint_backend/internal/repository"
	"cs_sprint_backend/internal/util"

	"gorm.io/gorm"
)

type SessionService struct {
	SessionRepo  *repository.SessionRepository
	AttemptRepo  *repository.AttemptRepository
	QuestionRepo *repository.QuestionRepository
}

func NewSessionService(
	sessionRepo *repository.SessionRepository,
	attemptRepo *repository.AttemptRepository,
	questionRepo *repository.QuestionRepository,
) *SessionService {
	return &SessionService{
		SessionRepo:  sessionRepo,
		AttemptRepo:  attemptRepo,
		QuestionRepo: questionRepo,
	}
}

// SessionRunResponse is a run with its catalog module attached.
type SessionRunResponse struct {
	model.SessionRun
	Module *catalog.Module `json:"module"`
}

// Start creates an active run for the user on the referenced module. The
// reference is resolved by module id first, then by slug.
func (s *SessionService) Start(userID uint, moduleRef string) (*SessionRunResponse, error) {
	mod, ok := catalog.Resolve(moduleRef)
	if !ok {
		return nil, fmt.Errorf("module %q: %w", moduleRef, util.ErrNotFound)
	}

	run := &model.SessionRun{
		UserID:   userID,
		ModuleID: mod.ID,
		Status:   model.SessionActive,
		Checkpoint: model.Checkpoint{
			Stage:         catalog.Stages[0].ID,
			TimeRemaining: catalog.TotalSessionSeconds,
		},
		StartedAt: time.Now(),
	}

	if err := s.SessionRepo.Create(run); err != nil {
		return nil, err
	}

	return &SessionRunResponse{SessionRun: *run, Module: mod}, nil
}

// CheckpointUpdate is the patch shape of a checkpoint save. Absent fields are
// left untouched; the checkpoint object itself is replaced whole — callers
// must resend the full checkpoint on every save.
type CheckpointUpdate struct {
	CheckpointData *model.Checkpoint    `json:"checkpointData"`
	Status         *model.SessionStatus `json:"status"`
	Score          *int                 `json:"score"`
}

// SaveCheckpoint merges the update into the run. Setting status to completed
// also stamps completed-at; the stamp is never unset once written.
func (s *SessionService) SaveCheckpoint(runID string, userID uint, update CheckpointUpdate) (*SessionRunResponse, error) {
	run, err := s.SessionRepo.FindByID(runID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	if run.UserID != userID {
		return nil, util.ErrForbidden
	}

	fields := map[string]interface{}{}

	if update.CheckpointData != nil {
		if _, ok := catalog.StageByID(update.CheckpointData.Stage); !ok {
			return nil, util.NewValidationError("알 수 없는 학습 단계입니다: " + update.CheckpointData.Stage)
		}
		fields["checkpoint"] = *update.CheckpointData
	}

	if update.Status != nil {
		switch *update.Status {
		case model.SessionActive, model.SessionCompleted:
		default:
			return nil, util.NewValidationError("status는 active 또는 completed 여야 합니다")
		}
		fields["status"] = *update.Status
		if *update.Status == model.SessionCompleted && run.CompletedAt == nil {
			now := time.Now()
			fields["completed_at"] = now
		}
	}

	if update.Score != nil {
		fields["score"] = *update.Score
	}

	if len(fields) > 0 {
		if err := s.SessionRepo.Update(runID, fields); err != nil {
			return nil, err
		}
	}

	return s.Get(runID)
}

// Get returns the run with its module, attempts and reflections joined.
func (s *SessionService) Get(runID string) (*SessionRunResponse, error) {
	run, err := s.SessionRepo.FindByIDWithDetails(runID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	mod, _ := catalog.ModuleByID(run.ModuleID)
	return &SessionRunResponse{SessionRun: *run, Module: mod}, nil
}

func (s *SessionService) ListByUser(userID uint, limit int) ([]model.SessionRun, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.SessionRepo.ListByUser(userID, limit)
}

func (s *SessionService) loadOwnedRun(runID string, userID uint) (*model.SessionRun, error) {
	run, err := s.SessionRepo.FindByID(runID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	if run.UserID != userID {
		return nil, util.ErrForbidden
	}
	return run, nil
}

// ListModuleQuestions returns a module's quiz pool. Answers stay server-side
// through the model's json tags.
func (s *SessionService) ListModuleQuestions(moduleRef string) ([]model.QuizQuestion, error) {
	mod, ok := catalog.Resolve(moduleRef)
	if !ok {
		return nil, fmt.Errorf("module %q: %w", moduleRef, util.ErrNotFound)
	}
	return s.QuestionRepo.ListByModule(mod.ID)
}

// ListModuleTasks returns a module's apply-stage task pool.
func (s *SessionService) ListModuleTasks(moduleRef string) ([]model.ApplyTask, error) {
	mod, ok := catalog.Resolve(moduleRef)
	if !ok {
		return nil, fmt.Errorf("module %q: %w", moduleRef, util.ErrNotFound)
	}
	return s.QuestionRepo.ListTasksByModule(mod.ID)
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// RecordQuizAttempt grades the answer against the stored question and appends
// the attempt. Attempts are never mutated afterwards.
func (s *SessionService) RecordQuizAttempt(runID string, userID uint, questionID uint, answer string) (*model.QuizAttempt, error) {
	if _, err := s.loadOwnedRun(runID, userID); err != nil {
		return nil, err
	}

	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	attempt := &model.QuizAttempt{
		SessionRunID: runID,
		QuestionID:   questionID,
		Answer:       answer,
		IsCorrect:    normalizeAnswer(answer) == normalizeAnswer(question.Answer),
	}
	if err := s.AttemptRepo.CreateQuizAttempt(attempt); err != nil {
		return nil, err
	}
	attempt.Question = question
	return attempt, nil
}

func (s *SessionService) RecordApplyAttempt(runID string, userID uint, taskID uint, answer string) (*model.ApplyAttempt, error) {
	if _, err := s.loadOwnedRun(runID, userID); err != nil {
		return nil, err
	}

	task, err := s.QuestionRepo.FindTaskByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	attempt := &model.ApplyAttempt{
		SessionRunID: runID,
		TaskID:       taskID,
		Answer:       answer,
		IsCorrect:    normalizeAnswer(answer) == normalizeAnswer(task.Answer),
	}
	if err := s.AttemptRepo.CreateApplyAttempt(attempt); err != nil {
		return nil, err
	}
	attempt.Task = task
	return attempt, nil
}

// MonthlyReport aggregates the user's completed runs for one calendar month.
// Served behind the monthly-report feature gate.
type MonthlyReport struct {
	Year           int      `json:"year"`
	Month          int      `json:"month"`
	CompletedRuns  int      `json:"completedRuns"`
	TotalScore     int      `json:"totalScore"`
	AverageScore   *float64 `json:"averageScore"`
	ModulesStudied []string `json:"modulesStudied"`
}

func (s *SessionService) GetMonthlyReport(userID uint, year int, month time.Month) (*MonthlyReport, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)

	runs, err := s.SessionRepo.ListCompletedBetween(userID, from, to)
	if err != nil {
		return nil, err
	}

	report := &MonthlyReport{Year: year, Month: int(month)}
	scored := 0
	seen := map[string]bool{}
	for _, run := range runs {
		report.CompletedRuns++
		if run.Score != nil {
			report.TotalScore += *run.Score
			scored++
		}
		if !seen[run.ModuleID] {
			seen[run.ModuleID] = true
			report.ModulesStudied = append(report.ModulesStudied, run.ModuleID)
		}
	}
	if scored > 0 {
		avg := float64(report.TotalScore) / float64(scored)
		report.AverageScore = &avg
	}
	return report, nil
}

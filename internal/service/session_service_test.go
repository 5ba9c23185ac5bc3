package service

import (
	"errors"
	"testing"

	"cs_sprint_backend/internal/catalog"
	"cs_sprint_backend/internal/model"
	"cs_sprint_backend/internal/repository"
	"cs_sprint_backend/internal/util"
)

func newSessionService(t *testing.T) (*SessionService, *model.User) {
	t.Helper()

	db := newTestDB(t)
	user := createTestUser(t, db, "learner")
	svc := NewSessionService(
		repository.NewSessionRepository(db),
		repository.NewAttemptRepository(db),
		repository.NewQuestionRepository(db),
	)
	return svc, user
}

func TestStartSessionResolvesSlug(t *testing.T) {
	svc, user := newSessionService(t)

	run, err := svc.Start(user.ID, "tcp-handshake")
	if err != nil {
		t.Fatalf("start by slug: %v", err)
	}

	if run.Status != model.SessionActive {
		t.Fatalf("expected active status, got %q", run.Status)
	}
	if run.Checkpoint.Stage != catalog.Stages[0].ID {
		t.Fatalf("expected first stage checkpoint, got %q", run.Checkpoint.Stage)
	}
	if run.Checkpoint.TimeRemaining != catalog.TotalSessionSeconds {
		t.Fatalf("expected full time budget, got %d", run.Checkpoint.TimeRemaining)
	}
	if run.Module == nil || run.Module.ID != "tcp-handshake" {
		t.Fatal("catalog module not attached to the run")
	}
}

func TestStartSessionUnknownModule(t *testing.T) {
	svc, user := newSessionService(t)

	if _, err := svc.Start(user.ID, "no-such-module"); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestSaveCheckpointReplacesWholeObject(t *testing.T) {
	svc, user := newSessionService(t)

	run, err := svc.Start(user.ID, "tcp-handshake")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	updated, err := svc.SaveCheckpoint(run.ID, user.ID, CheckpointUpdate{
		CheckpointData: &model.Checkpoint{Stage: "quiz", TimeRemaining: 900},
	})
	if err != nil {
		t.Fatalf("save checkpoint: %v", err)
	}
	if updated.Checkpoint.Stage != "quiz" || updated.Checkpoint.TimeRemaining != 900 {
		t.Fatalf("checkpoint not replaced: %+v", updated.Checkpoint)
	}

	// The checkpoint object is replaced whole, so the second save fully
	// supersedes the first.
	updated, err = svc.SaveCheckpoint(run.ID, user.ID, CheckpointUpdate{
		CheckpointData: &model.Checkpoint{Stage: "apply", TimeRemaining: 360},
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if updated.Checkpoint.Stage != "apply" || updated.Checkpoint.TimeRemaining != 360 {
		t.Fatalf("second checkpoint not replaced: %+v", updated.Checkpoint)
	}
}

func TestSaveCheckpointRejectsUnknownStage(t *testing.T) {
	svc, user := newSessionService(t)

	run, err := svc.Start(user.ID, "dns-journey")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	_, err = svc.SaveCheckpoint(run.ID, user.ID, CheckpointUpdate{
		CheckpointData: &model.Checkpoint{Stage: "warmup", TimeRemaining: 100},
	})
	var vErr *util.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCompletedAtStampedOnce(t *testing.T) {
	svc, user := newSessionService(t)

	run, err := svc.Start(user.ID, "tcp-handshake")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	completed := model.SessionCompleted
	score := 80
	first, err := svc.SaveCheckpoint(run.ID, user.ID, CheckpointUpdate{Status: &completed, Score: &score})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if first.CompletedAt == nil {
		t.Fatal("completed-at not stamped on completion")
	}
	if first.Score == nil || *first.Score != 80 {
		t.Fatalf("score not saved: %v", first.Score)
	}

	second, err := svc.SaveCheckpoint(run.ID, user.ID, CheckpointUpdate{Status: &completed})
	if err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	if second.CompletedAt == nil || !second.CompletedAt.Equal(*first.CompletedAt) {
		t.Fatalf("completed-at moved: first %v, second %v", first.CompletedAt, second.CompletedAt)
	}
}

func TestSaveCheckpointOwnership(t *testing.T) {
	svc, user := newSessionService(t)
	other := createTestUser(t, svc.SessionRepo.DB, "intruder")

	run, err := svc.Start(user.ID, "tcp-handshake")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	active := model.SessionActive
	if _, err := svc.SaveCheckpoint(run.ID, other.ID, CheckpointUpdate{Status: &active}); !errors.Is(err, util.ErrForbidden) {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}
}

func TestRecordQuizAttemptGrades(t *testing.T) {
	svc, user := newSessionService(t)

	question := &model.QuizQuestion{
		ModuleID: "tcp-handshake",
		Type:     model.TrueFalse,
		Prompt:   "SYN이 첫 번째 패킷이다",
		Answer:   "True",
		Category: "networking",
	}
	if err := svc.QuestionRepo.Create(question); err != nil {
		t.Fatalf("create question: %v", err)
	}

	run, err := svc.Start(user.ID, "tcp-handshake")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// Grading normalizes case and surrounding whitespace.
	correct, err := svc.RecordQuizAttempt(run.ID, user.ID, question.ID, "  true ")
	if err != nil {
		t.Fatalf("record attempt: %v", err)
	}
	if !correct.IsCorrect {
		t.Fatal("normalized answer not graded correct")
	}

	wrong, err := svc.RecordQuizAttempt(run.ID, user.ID, question.ID, "false")
	if err != nil {
		t.Fatalf("record wrong attempt: %v", err)
	}
	if wrong.IsCorrect {
		t.Fatal("wrong answer graded correct")
	}

	// Attempts are append-only; both rows must survive.
	full, err := svc.Get(run.ID)
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if len(full.QuizAttempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(full.QuizAttempts))
	}
}

func TestMonthlyReportAggregates(t *testing.T) {
	svc, user := newSessionService(t)

	completed := model.SessionCompleted
	for _, score := range []int{80, 60} {
		run, err := svc.Start(user.ID, "tcp-handshake")
		if err != nil {
			t.Fatalf("start: %v", err)
		}
		s := score
		if _, err := svc.SaveCheckpoint(run.ID, user.ID, CheckpointUpdate{Status: &completed, Score: &s}); err != nil {
			t.Fatalf("complete: %v", err)
		}
	}

	// An active run must not count toward the report.
	run, err := svc.Start(user.ID, "dns-journey")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	now := run.StartedAt
	report, err := svc.GetMonthlyReport(user.ID, now.Year(), now.Month())
	if err != nil {
		t.Fatalf("monthly report: %v", err)
	}

	if report.CompletedRuns != 2 {
		t.Fatalf("expected 2 completed runs, got %d", report.CompletedRuns)
	}
	if report.AverageScore == nil || *report.AverageScore != 70 {
		t.Fatalf("expected average 70, got %v", report.AverageScore)
	}
	if len(report.ModulesStudied) != 1 || report.ModulesStudied[0] != "tcp-handshake" {
		t.Fatalf("unexpected modules studied: %v", report.ModulesStudied)
	}
}

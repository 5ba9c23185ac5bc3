package service

import (
	"errors"
	"strings"
	"testing"

	"cs_sprint_backend/internal/model"
	"cs_sprint_backend/internal/repository"
	"cs_sprint_backend/internal/util"
)

func newReflectionFixture(t *testing.T) (*ReflectionService, *model.User, string) {
	t.Helper()

	db := newTestDB(t)
	user := createTestUser(t, db, "writer")

	sessionRepo := repository.NewSessionRepository(db)
	sessions := NewSessionService(sessionRepo, repository.NewAttemptRepository(db), repository.NewQuestionRepository(db))
	run, err := sessions.Start(user.ID, "tcp-handshake")
	if err != nil {
		t.Fatalf("start run: %v", err)
	}

	svc := NewReflectionService(repository.NewReflectionRepository(db), sessionRepo)
	return svc, user, run.ID
}

func TestReflectionAcceptsLongContentWithoutEnders(t *testing.T) {
	svc, user, runID := newReflectionFixture(t)

	// 60 characters, zero sentence enders: passes on length alone.
	content := strings.Repeat("오", 60)
	if _, err := svc.Submit(user.ID, runID, content, false); err != nil {
		t.Fatalf("long content rejected: %v", err)
	}
}

func TestReflectionAcceptsShortContentWithEnders(t *testing.T) {
	svc, user, runID := newReflectionFixture(t)

	// Short but with three sentence marks: passes on structure alone.
	if _, err := svc.Submit(user.ID, runID, "배웠다. 어려웠다. 다시 본다.", true); err != nil {
		t.Fatalf("short structured content rejected: %v", err)
	}
}

func TestReflectionRejectsThinContent(t *testing.T) {
	svc, user, runID := newReflectionFixture(t)

	_, err := svc.Submit(user.ID, runID, "좋았어요", false)
	var vErr *util.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Message != "최소 3문장 이상 작성해주세요" {
		t.Fatalf("unexpected rejection message: %q", vErr.Message)
	}
}

func TestReflectionOwnership(t *testing.T) {
	svc, _, runID := newReflectionFixture(t)
	other := createTestUser(t, svc.SessionRepo.DB, "other")

	_, err := svc.Submit(other.ID, runID, strings.Repeat("기록", 30), false)
	if !errors.Is(err, util.ErrForbidden) {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}
}

func TestListPublicExcludesPrivate(t *testing.T) {
	svc, user, runID := newReflectionFixture(t)

	if _, err := svc.Submit(user.ID, runID, "공개 회고입니다. 오늘 배운 것. 내일 할 것.", true); err != nil {
		t.Fatalf("submit public: %v", err)
	}
	if _, err := svc.Submit(user.ID, runID, "비공개 회고입니다. 오늘 배운 것. 내일 할 것.", false); err != nil {
		t.Fatalf("submit private: %v", err)
	}

	public, err := svc.ListPublic(10)
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	if len(public) != 1 {
		t.Fatalf("expected 1 public reflection, got %d", len(public))
	}
	if !public[0].IsPublic {
		t.Fatal("private reflection leaked into the public list")
	}
}

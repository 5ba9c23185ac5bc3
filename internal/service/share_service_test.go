package service

import (
	"errors"
	"testing"

	"cs_sprint_backend/internal/model"
	"cs_sprint_backend/internal/repository"
	"cs_sprint_backend/internal/util"
)

func newShareFixture(t *testing.T) (*ShareService, *model.User, string) {
	t.Helper()

	db := newTestDB(t)
	user := createTestUser(t, db, "sharer")

	sessionRepo := repository.NewSessionRepository(db)
	sessions := NewSessionService(sessionRepo, repository.NewAttemptRepository(db), repository.NewQuestionRepository(db))
	run, err := sessions.Start(user.ID, "tcp-handshake")
	if err != nil {
		t.Fatalf("start run: %v", err)
	}

	svc := NewShareService(repository.NewShareLinkRepository(db), sessionRepo)
	return svc, user, run.ID
}

func TestShareLinkIdempotent(t *testing.T) {
	svc, user, runID := newShareFixture(t)

	first, err := svc.CreateOrGet(runID, user.ID)
	if err != nil {
		t.Fatalf("create link: %v", err)
	}
	if len(first.Slug) != 10 {
		t.Fatalf("expected 10-char slug, got %q", first.Slug)
	}
	if !first.Active {
		t.Fatal("new link not active")
	}

	second, err := svc.CreateOrGet(runID, user.ID)
	if err != nil {
		t.Fatalf("re-create link: %v", err)
	}
	if second.Slug != first.Slug || second.ID != first.ID {
		t.Fatalf("repeated share minted a new link: %q vs %q", first.Slug, second.Slug)
	}
}

func TestShareLinkOwnership(t *testing.T) {
	svc, _, runID := newShareFixture(t)
	other := createTestUser(t, svc.SessionRepo.DB, "stranger")

	if _, err := svc.CreateOrGet(runID, other.ID); !errors.Is(err, util.ErrForbidden) {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}
}

func TestResolveShareLink(t *testing.T) {
	svc, user, runID := newShareFixture(t)

	link, err := svc.CreateOrGet(runID, user.ID)
	if err != nil {
		t.Fatalf("create link: %v", err)
	}

	run, err := svc.Resolve(link.Slug)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if run.ID != runID {
		t.Fatalf("resolved wrong run: %q", run.ID)
	}

	if _, err := svc.Resolve("nope123456"); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("expected not-found for unknown slug, got %v", err)
	}
}

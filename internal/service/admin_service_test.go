package service

import (
	"errors"
	"testing"

	"cs_sprint_backend/internal/catalog"
	"cs_sprint_backend/internal/model"
	"cs_sprint_backend/internal/repository"
	"cs_sprint_backend/internal/util"
)

func newAdminFixture(t *testing.T) (*AdminService, *model.User) {
	t.Helper()

	db := newTestDB(t)
	admin := createTestUser(t, db, "admin")
	svc := NewAdminService(
		repository.NewSessionRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewModuleVersionRepository(db),
	)
	return svc, admin
}

func TestCreateQuestionRejectsUnknownType(t *testing.T) {
	svc, admin := newAdminFixture(t)

	_, err := svc.CreateQuizQuestion(admin.ID, CreateQuestionInput{
		Type:   "essay",
		Prompt: "설명하시오",
		Answer: "정답",
	})
	var vErr *util.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error for unknown type, got %v", err)
	}
}

func TestMultipleChoiceNeedsOptions(t *testing.T) {
	svc, admin := newAdminFixture(t)

	_, err := svc.CreateQuizQuestion(admin.ID, CreateQuestionInput{
		Type:    model.MultipleChoice,
		Prompt:  "다음 중 옳은 것은?",
		Options: []string{"하나뿐"},
		Answer:  "하나뿐",
	})
	var vErr *util.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error for single option, got %v", err)
	}
}

func TestCreateQuestionAppendsVersionHistory(t *testing.T) {
	svc, admin := newAdminFixture(t)

	input := CreateQuestionInput{
		ModuleID: "tcp-handshake",
		Type:     model.TrueFalse,
		Prompt:   "SYN-ACK은 서버가 보낸다",
		Answer:   "True",
		Category: "networking",
	}

	if _, err := svc.CreateQuizQuestion(admin.ID, input); err != nil {
		t.Fatalf("create first question: %v", err)
	}
	if _, err := svc.CreateQuizQuestion(admin.ID, input); err != nil {
		t.Fatalf("create second question: %v", err)
	}

	versions, err := svc.ListModuleVersions("tcp-handshake")
	if err != nil {
		t.Fatalf("list versions: %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("expected 2 version entries, got %d", len(versions))
	}
}

func TestListModuleVersionsUnknownModule(t *testing.T) {
	svc, _ := newAdminFixture(t)

	if _, err := svc.ListModuleVersions("ghost-module"); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestAdminListModulesCoversCatalog(t *testing.T) {
	svc, _ := newAdminFixture(t)

	rows, err := svc.ListModules()
	if err != nil {
		t.Fatalf("list modules: %v", err)
	}
	if len(rows) != len(catalog.Modules) {
		t.Fatalf("expected %d rows, got %d", len(catalog.Modules), len(rows))
	}
	for _, row := range rows {
		if row.Stats.Runs != 0 {
			t.Fatalf("fresh db reported %d runs for %s", row.Stats.Runs, row.ID)
		}
	}
}

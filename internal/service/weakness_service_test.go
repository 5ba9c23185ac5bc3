package service

import (
	"errors"
	"testing"

	"cs_sprint_backend/internal/catalog"
	"cs_sprint_backend/internal/model"
	"cs_sprint_backend/internal/repository"
	"cs_sprint_backend/internal/util"
)

func newWeaknessFixture(t *testing.T) (*WeaknessService, *model.User) {
	t.Helper()

	db := newTestDB(t)
	user := createTestUser(t, db, "diagnosed")
	svc := NewWeaknessService(
		repository.NewWeaknessRepository(db),
		repository.NewQuestionRepository(db),
	)
	return svc, user
}

func TestWeaknessMapSynthesizesAllCategories(t *testing.T) {
	svc, user := newWeaknessFixture(t)

	wm, err := svc.GetWeaknessMap(user.ID)
	if err != nil {
		t.Fatalf("weakness map: %v", err)
	}

	if len(wm.Categories) != len(catalog.Categories) {
		t.Fatalf("expected %d categories, got %d", len(catalog.Categories), len(wm.Categories))
	}
	for _, category := range catalog.Categories {
		entry, ok := wm.Categories[category]
		if !ok {
			t.Fatalf("category %q missing from map", category)
		}
		if entry.Score != 0 || entry.Tested || entry.UpdatedAt != nil {
			t.Fatalf("untested category %q not zeroed: %+v", category, entry)
		}
	}
	if wm.LatestDiagnostic != nil {
		t.Fatal("new user must have no diagnostic summary")
	}
}

func TestSubmitDiagnosticGradesAndUpserts(t *testing.T) {
	svc, user := newWeaknessFixture(t)

	q1 := &model.QuizQuestion{Type: model.TrueFalse, Prompt: "TCP는 연결 지향이다", Answer: "True", Category: "networking", Diagnostic: true}
	q2 := &model.QuizQuestion{Type: model.TrueFalse, Prompt: "UDP는 재전송을 보장한다", Answer: "False", Category: "networking", Diagnostic: true}
	for _, q := range []*model.QuizQuestion{q1, q2} {
		if err := svc.QuestionRepo.Create(q); err != nil {
			t.Fatalf("create question: %v", err)
		}
	}

	attempt, err := svc.SubmitDiagnostic(user.ID, []DiagnosticAnswer{
		{QuestionID: q1.ID, Answer: "true"},
		{QuestionID: q2.ID, Answer: "true"},
	})
	if err != nil {
		t.Fatalf("submit diagnostic: %v", err)
	}

	if attempt.Status != model.DiagnosticCompleted || attempt.CompletedAt == nil {
		t.Fatalf("attempt not completed: %+v", attempt)
	}
	if attempt.Score != 50 {
		t.Fatalf("expected score 50, got %d", attempt.Score)
	}

	wm, err := svc.GetWeaknessMap(user.ID)
	if err != nil {
		t.Fatalf("weakness map: %v", err)
	}

	networking := wm.Categories["networking"]
	if !networking.Tested || networking.Score != 50 {
		t.Fatalf("networking not updated: %+v", networking)
	}
	// Categories without diagnostic answers stay synthesized.
	if wm.Categories["concurrency"].Tested {
		t.Fatal("untested category marked tested")
	}
	if wm.LatestDiagnostic == nil || wm.LatestDiagnostic.ID != attempt.ID {
		t.Fatalf("latest diagnostic not surfaced: %+v", wm.LatestDiagnostic)
	}
}

func TestSubmitDiagnosticRejectsEmpty(t *testing.T) {
	svc, user := newWeaknessFixture(t)

	_, err := svc.SubmitDiagnostic(user.ID, nil)
	var vErr *util.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRecommendationsIdenticalForGuestsAndMembers(t *testing.T) {
	svc, user := newWeaknessFixture(t)

	guest, err := svc.GetRecommendations(0)
	if err != nil {
		t.Fatalf("guest recommendations: %v", err)
	}
	member, err := svc.GetRecommendations(user.ID)
	if err != nil {
		t.Fatalf("member recommendations: %v", err)
	}

	if len(guest) != 3 || len(member) != 3 {
		t.Fatalf("expected 3 recommendations each, got %d and %d", len(guest), len(member))
	}
	for i := range guest {
		if guest[i] != member[i] {
			t.Fatalf("recommendation %d differs between guest and member", i)
		}
	}
}

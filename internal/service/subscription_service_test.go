package service

import (
	"testing"
	"time"

	"cs_sprint_backend/internal/model"
	"cs_sprint_backend/internal/repository"
)

func newSubscriptionFixture(t *testing.T) (*SubscriptionService, *model.User) {
	t.Helper()

	db := newTestDB(t)
	user := createTestUser(t, db, "subscriber")
	svc := NewSubscriptionService(repository.NewSubscriptionRepository(db), nil)
	return svc, user
}

func TestResolvePlanDefaultsToFree(t *testing.T) {
	svc, user := newSubscriptionFixture(t)

	plan, err := svc.ResolvePlan(user.ID)
	if err != nil {
		t.Fatalf("resolve plan: %v", err)
	}
	if plan != model.PlanFree {
		t.Fatalf("user without a subscription row must be free, got %q", plan)
	}
}

func TestResolvePlanLapsedPeriodIsFree(t *testing.T) {
	svc, user := newSubscriptionFixture(t)

	lapsed := time.Now().Add(-time.Hour)
	sub := &model.Subscription{
		UserID:    user.ID,
		Plan:      model.PlanPro,
		Status:    model.SubscriptionActive,
		PeriodEnd: &lapsed,
	}
	if err := svc.SubscriptionRepo.Save(sub); err != nil {
		t.Fatalf("save subscription: %v", err)
	}

	plan, err := svc.ResolvePlan(user.ID)
	if err != nil {
		t.Fatalf("resolve plan: %v", err)
	}
	if plan != model.PlanFree {
		t.Fatalf("lapsed pro must resolve to free, got %q", plan)
	}
}

func TestFeatureGateMatrix(t *testing.T) {
	svc, user := newSubscriptionFixture(t)

	cases := []struct {
		flag        string
		freeAllowed bool
	}{
		{"community", true},
		{"share-link", true},
		{"ai-coach", false},
		{"monthly-report", false},
		{"study-room", false},
		{"not-a-real-flag", false}, // unknown flags fail closed
	}

	for _, tc := range cases {
		allowed, err := svc.CheckFeature(user.ID, tc.flag)
		if err != nil {
			t.Fatalf("check %s: %v", tc.flag, err)
		}
		if allowed != tc.freeAllowed {
			t.Fatalf("free user, flag %s: expected %v, got %v", tc.flag, tc.freeAllowed, allowed)
		}
	}

	if _, err := svc.MockCheckout(user.ID); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	for _, flag := range []string{"community", "share-link", "ai-coach", "monthly-report", "study-room"} {
		allowed, err := svc.CheckFeature(user.ID, flag)
		if err != nil {
			t.Fatalf("check %s: %v", flag, err)
		}
		if !allowed {
			t.Fatalf("pro user denied flag %s", flag)
		}
	}
}

func TestCheckoutThenCancelDropsEntitlements(t *testing.T) {
	svc, user := newSubscriptionFixture(t)

	sub, err := svc.MockCheckout(user.ID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if sub.Plan != model.PlanPro || sub.Status != model.SubscriptionActive {
		t.Fatalf("checkout produced %q/%q", sub.Plan, sub.Status)
	}
	if sub.PeriodEnd == nil || time.Until(*sub.PeriodEnd) < 29*24*time.Hour {
		t.Fatalf("period end not ~30 days out: %v", sub.PeriodEnd)
	}

	if _, err := svc.Cancel(user.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	plan, err := svc.ResolvePlan(user.ID)
	if err != nil {
		t.Fatalf("resolve plan: %v", err)
	}
	if plan != model.PlanFree {
		t.Fatalf("canceled subscription must resolve to free, got %q", plan)
	}
}

func TestApplyFeaturePolicyReload(t *testing.T) {
	svc, user := newSubscriptionFixture(t)

	allowed, err := svc.CheckFeature(user.ID, "community")
	if err != nil || !allowed {
		t.Fatalf("community should start free: %v %v", allowed, err)
	}

	svc.ApplyFeaturePolicy(map[string]string{
		"community": "pro",
		"ai-coach":  "free",
	})

	if allowed, _ := svc.CheckFeature(user.ID, "community"); allowed {
		t.Fatal("reloaded policy did not gate community")
	}
	if allowed, _ := svc.CheckFeature(user.ID, "ai-coach"); !allowed {
		t.Fatal("reloaded policy did not open ai-coach")
	}
}

func TestEntitlementsCoverEveryFlag(t *testing.T) {
	svc, user := newSubscriptionFixture(t)

	ent, err := svc.GetEntitlements(user.ID)
	if err != nil {
		t.Fatalf("entitlements: %v", err)
	}
	if ent.Plan != model.PlanFree {
		t.Fatalf("expected free plan, got %q", ent.Plan)
	}
	for _, flag := range []string{"ai-coach", "monthly-report", "study-room", "share-link", "community"} {
		if _, ok := ent.Features[flag]; !ok {
			t.Fatalf("flag %s missing from entitlements", flag)
		}
	}
}

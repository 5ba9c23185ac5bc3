package service

import (
	"sync"
	"time"

	"cs_sprint_backend/internal/config"
	"cs_sprint_backend/internal/model"
	"cs_sprint_backend/internal/repository"
)

// defaultFeaturePolicy is the flag → minimum plan mapping used when the
// config file does not override it.
var defaultFeaturePolicy = map[string]model.Plan{
	"ai-coach":       model.PlanPro,
	"monthly-report": model.PlanPro,
	"study-room":     model.PlanPro,
	"share-link":     model.PlanFree,
	"community":      model.PlanFree,
}

type SubscriptionService struct {
	SubscriptionRepo *repository.SubscriptionRepository

	mu     sync.RWMutex
	policy map[string]model.Plan
}

func NewSubscriptionService(subscriptionRepo *repository.SubscriptionRepository, cfg *config.Config) *SubscriptionService {
	s := &SubscriptionService{
		SubscriptionRepo: subscriptionRepo,
		policy:           defaultFeaturePolicy,
	}
	if cfg != nil {
		s.ApplyFeaturePolicy(cfg.Features.MinimumPlan)
	}
	return s
}

// ApplyFeaturePolicy swaps in the configured flag mapping. Called at startup
// and again by the config watcher on reload.
func (s *SubscriptionService) ApplyFeaturePolicy(minimumPlan map[string]string) {
	if len(minimumPlan) == 0 {
		return
	}
	policy := make(map[string]model.Plan, len(minimumPlan))
	for flag, plan := range minimumPlan {
		policy[flag] = model.Plan(plan)
	}
	s.mu.Lock()
	s.policy = policy
	s.mu.Unlock()
}

// ResolvePlan returns the user's effective plan. No subscription row, a
// non-active status or a lapsed period all mean free.
func (s *SubscriptionService) ResolvePlan(userID uint) (model.Plan, error) {
	sub, err := s.SubscriptionRepo.FindByUserID(userID)
	if err != nil {
		return "", err
	}
	if sub == nil || sub.Status != model.SubscriptionActive {
		return model.PlanFree, nil
	}
	if sub.PeriodEnd != nil && sub.PeriodEnd.Before(time.Now()) {
		return model.PlanFree, nil
	}
	return sub.Plan, nil
}

// CheckFeature reports whether the user's plan meets the flag's minimum plan.
// Unknown flags are Pro-only, so a typo fails closed.
func (s *SubscriptionService) CheckFeature(userID uint, flag string) (bool, error) {
	plan, err := s.ResolvePlan(userID)
	if err != nil {
		return false, err
	}

	s.mu.RLock()
	minimum, ok := s.policy[flag]
	s.mu.RUnlock()
	if !ok {
		minimum = model.PlanPro
	}

	if minimum == model.PlanFree {
		return true, nil
	}
	return plan == model.PlanPro, nil
}

// GetEntitlements returns the resolved plan and every known flag's verdict.
func (s *SubscriptionService) GetEntitlements(userID uint) (*model.Entitlements, error) {
	plan, err := s.ResolvePlan(userID)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	flags := make([]string, 0, len(s.policy))
	for flag := range s.policy {
		flags = append(flags, flag)
	}
	s.mu.RUnlock()

	features := make(map[string]bool, len(flags))
	for _, flag := range flags {
		allowed, err := s.CheckFeature(userID, flag)
		if err != nil {
			return nil, err
		}
		features[flag] = allowed
	}

	return &model.Entitlements{Plan: plan, Features: features}, nil
}

// MockCheckout upgrades the user to Pro for thirty days. Stands in for the
// external billing provider.
func (s *SubscriptionService) MockCheckout(userID uint) (*model.Subscription, error) {
	sub, err := s.SubscriptionRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		sub = &model.Subscription{UserID: userID}
	}

	periodEnd := time.Now().AddDate(0, 0, 30)
	sub.Plan = model.PlanPro
	sub.Status = model.SubscriptionActive
	sub.PeriodEnd = &periodEnd

	if err := s.SubscriptionRepo.Save(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Cancel marks the subscription canceled; entitlements drop immediately.
func (s *SubscriptionService) Cancel(userID uint) (*model.Subscription, error) {
	sub, err := s.SubscriptionRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		sub = &model.Subscription{UserID: userID, Plan: model.PlanFree}
	}
	sub.Status = model.SubscriptionCanceled

	if err := s.SubscriptionRepo.Save(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

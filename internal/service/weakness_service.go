package service

import (
	"time"

	"cs_sprint_backend/internal/catalog"
	"cs_sprint_backend/internal/model"
	"cs_sprint_backend/internal/repository"
	"cs_sprint_backend/internal/util"
)

type WeaknessService struct {
	WeaknessRepo *repository.WeaknessRepository
	QuestionRepo *repository.QuestionRepository
}

func NewWeaknessService(
	weaknessRepo *repository.WeaknessRepository,
	questionRepo *repository.QuestionRepository,
) *WeaknessService {
	return &WeaknessService{WeaknessRepo: weaknessRepo, QuestionRepo: questionRepo}
}

// GetWeaknessMap returns exactly one entry per fixed category. Categories the
// user was never tested on are synthesized as zero, not omitted.
func (s *WeaknessService) GetWeaknessMap(userID uint) (*model.WeaknessMap, error) {
	stored, err := s.WeaknessRepo.ScoresByUser(userID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]model.CategoryScore, len(stored))
	for _, score := range stored {
		byCategory[score.Category] = score
	}

	result := &model.WeaknessMap{
		Categories: make(map[string]model.WeaknessEntry, len(catalog.Categories)),
	}
	for _, category := range catalog.Categories {
		if score, ok := byCategory[category]; ok {
			updatedAt := score.UpdatedAt
			result.Categories[category] = model.WeaknessEntry{
				Score:     score.Score,
				Tested:    score.Tested,
				UpdatedAt: &updatedAt,
			}
		} else {
			result.Categories[category] = model.WeaknessEntry{Score: 0, Tested: false, UpdatedAt: nil}
		}
	}

	latest, err := s.WeaknessRepo.LatestCompletedDiagnostic(userID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		result.LatestDiagnostic = &model.DiagnosticSummary{
			ID:          latest.ID,
			Score:       latest.Score,
			CompletedAt: latest.CompletedAt,
		}
	}

	return result, nil
}

// GetRecommendations serves the fixed default ranking to everyone. The
// authenticated branch exists so weakness-aware ranking can slot in later,
// but it deliberately returns the same list today.
func (s *WeaknessService) GetRecommendations(userID uint) ([]model.Recommendation, error) {
	if userID == 0 {
		return catalog.DefaultRecommendations, nil
	}
	return catalog.DefaultRecommendations, nil
}

// DiagnosticAnswer pairs a diagnostic question with the chosen answer.
type DiagnosticAnswer struct {
	QuestionID uint   `json:"questionId"`
	Answer     string `json:"answer"`
}

// SubmitDiagnostic grades the answers against the diagnostic set, records a
// completed attempt and upserts the per-category scores.
func (s *WeaknessService) SubmitDiagnostic(userID uint, answers []DiagnosticAnswer) (*model.DiagnosticAttempt, error) {
	if len(answers) == 0 {
		return nil, util.NewValidationError("답안이 비어 있습니다")
	}

	questions, err := s.QuestionRepo.ListDiagnostic()
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]*model.QuizQuestion, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	type tally struct{ correct, total int }
	perCategory := map[string]*tally{}
	correctTotal := 0
	graded := 0

	for _, ans := range answers {
		question, ok := byID[ans.QuestionID]
		if !ok {
			continue
		}
		graded++
		t := perCategory[question.Category]
		if t == nil {
			t = &tally{}
			perCategory[question.Category] = t
		}
		t.total++
		if normalizeAnswer(ans.Answer) == normalizeAnswer(question.Answer) {
			t.correct++
			correctTotal++
		}
	}

	if graded == 0 {
		return nil, util.NewValidationError("유효한 진단 문항 답안이 없습니다")
	}

	now := time.Now()
	attempt := &model.DiagnosticAttempt{
		UserID:      userID,
		Score:       correctTotal * 100 / graded,
		Status:      model.DiagnosticCompleted,
		CompletedAt: &now,
	}
	if err := s.WeaknessRepo.CreateDiagnostic(attempt); err != nil {
		return nil, err
	}

	for category, t := range perCategory {
		if !catalog.ValidCategory(category) {
			continue
		}
		if err := s.WeaknessRepo.UpsertScore(userID, category, t.correct*100/t.total); err != nil {
			return nil, err
		}
	}

	return attempt, nil
}

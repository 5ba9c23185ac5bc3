package service

import (
	"errors"
	"strings"
	"unicode/utf8"

	"cs_sprint_backend/internal/model"
	"cs_sprint_backend/internal/repository"
	"cs_sprint_backend/internal/util"

	"gorm.io/gorm"
)

type ReflectionService struct {
	ReflectionRepo *repository.ReflectionRepository
	SessionRepo    *repository.SessionRepository
}

func NewReflectionService(
	reflectionRepo *repository.ReflectionRepository,
	sessionRepo *repository.SessionRepository,
) *ReflectionService {
	return &ReflectionService{ReflectionRepo: reflectionRepo, SessionRepo: sessionRepo}
}

const minReflectionChars = 50

var sentenceEnders = []string{".", "!", "?", "。"}

func countSentenceEnders(content string) int {
	count := 0
	for _, mark := range sentenceEnders {
		count += strings.Count(content, mark)
	}
	return count
}

// Submit persists a reflection once it clears the minimum-substance check:
// content passes when it has at least two sentence-ending marks OR is at
// least 50 characters long. Rejection requires failing both.
func (s *ReflectionService) Submit(userID uint, sessionRunID, content string, isPublic bool) (*model.Reflection, error) {
	if sessionRunID == "" || content == "" {
		return nil, util.NewValidationError("sessionRunId와 content는 필수입니다")
	}

	run, err := s.SessionRepo.FindByID(sessionRunID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	if run.UserID != userID {
		return nil, util.ErrForbidden
	}

	if countSentenceEnders(content) < 2 && utf8.RuneCountInString(content) < minReflectionChars {
		return nil, util.NewValidationError("최소 3문장 이상 작성해주세요")
	}

	reflection := &model.Reflection{
		SessionRunID: sessionRunID,
		UserID:       userID,
		Content:      content,
		IsPublic:     isPublic,
	}
	if err := s.ReflectionRepo.Create(reflection); err != nil {
		return nil, err
	}
	return reflection, nil
}

func (s *ReflectionService) ListPublic(limit int) ([]model.Reflection, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.ReflectionRepo.ListPublic(limit)
}

package service

import (
	"encoding/json"

	"cs_sprint_backend/internal/catalog"
	"cs_sprint_backend/internal/model"
	"cs_sprint_backend/internal/repository"
	"cs_sprint_backend/internal/util"
)

type AdminService struct {
	SessionRepo       *repository.SessionRepository
	QuestionRepo      *repository.QuestionRepository
	ModuleVersionRepo *repository.ModuleVersionRepository
}

func NewAdminService(
	sessionRepo *repository.SessionRepository,
	questionRepo *repository.QuestionRepository,
	moduleVersionRepo *repository.ModuleVersionRepository,
) *AdminService {
	return &AdminService{
		SessionRepo:       sessionRepo,
		QuestionRepo:      questionRepo,
		ModuleVersionRepo: moduleVersionRepo,
	}
}

type AdminModuleRow struct {
	catalog.Module
	Stats repository.ModuleStats `json:"stats"`
}

// ListModules returns every catalog module with its run aggregates.
func (s *AdminService) ListModules() ([]AdminModuleRow, error) {
	rows := make([]AdminModuleRow, 0, len(catalog.Modules))
	for _, mod := range catalog.Modules {
		stats, err := s.SessionRepo.StatsByModule(mod.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, AdminModuleRow{Module: mod, Stats: *stats})
	}
	return rows, nil
}

func (s *AdminService) ListModuleVersions(moduleID string) ([]model.ModuleVersion, error) {
	if _, ok := catalog.ModuleByID(moduleID); !ok {
		return nil, util.ErrNotFound
	}
	return s.ModuleVersionRepo.ListByModule(moduleID)
}

type CreateQuestionInput struct {
	ModuleID string             `json:"moduleId"`
	Type     model.QuestionType `json:"type"`
	Prompt   string             `json:"prompt"`
	Options  []string           `json:"options"`
	Answer   string             `json:"answer"`
	Category string             `json:"category"`
}

// CreateQuizQuestion validates and stores an admin-authored question, and
// appends a version-history entry for the module it belongs to.
func (s *AdminService) CreateQuizQuestion(editorID uint, input CreateQuestionInput) (*model.QuizQuestion, error) {
	if !input.Type.Valid() {
		return nil, util.NewValidationError("type은 multiple-choice, true-false, fill-in-blank 중 하나여야 합니다")
	}
	if input.Prompt == "" || input.Answer == "" {
		return nil, util.NewValidationError("prompt와 answer는 필수입니다")
	}
	if input.ModuleID != "" {
		if _, ok := catalog.ModuleByID(input.ModuleID); !ok {
			return nil, util.ErrNotFound
		}
	}
	if input.Type == model.MultipleChoice && len(input.Options) < 2 {
		return nil, util.NewValidationError("multiple-choice 문항은 보기가 2개 이상이어야 합니다")
	}
	if input.Category != "" && !catalog.ValidCategory(input.Category) {
		return nil, util.NewValidationError("알 수 없는 카테고리입니다: " + input.Category)
	}

	options := ""
	if len(input.Options) > 0 {
		encoded, err := json.Marshal(input.Options)
		if err != nil {
			return nil, err
		}
		options = string(encoded)
	}

	question := &model.QuizQuestion{
		ModuleID: input.ModuleID,
		Type:     input.Type,
		Prompt:   input.Prompt,
		Options:  options,
		Answer:   input.Answer,
		Category: input.Category,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}

	if input.ModuleID != "" {
		version, err := s.ModuleVersionRepo.NextVersion(input.ModuleID)
		if err != nil {
			return nil, err
		}
		entry := &model.ModuleVersion{
			ModuleID: input.ModuleID,
			Version:  version,
			Summary:  "퀴즈 문항 추가",
			EditorID: editorID,
		}
		if err := s.ModuleVersionRepo.Create(entry); err != nil {
			return nil, err
		}
	}

	return question, nil
}

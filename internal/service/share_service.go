package service

import (
	"errors"

	"cs_sprint_backend/internal/model"
	"cs_sprint_backend/internal/repository"
	"cs_sprint_backend/internal/util"

	"gorm.io/gorm"
)

const shareSlugLength = 10

type ShareService struct {
	ShareLinkRepo *repository.ShareLinkRepository
	SessionRepo   *repository.SessionRepository
}

func NewShareService(
	shareLinkRepo *repository.ShareLinkRepository,
	sessionRepo *repository.SessionRepository,
) *ShareService {
	return &ShareService{ShareLinkRepo: shareLinkRepo, SessionRepo: sessionRepo}
}

// CreateOrGet returns the run's existing active link when one exists;
// otherwise it mints a fresh unique slug. Only the run's owner may share it.
func (s *ShareService) CreateOrGet(runID string, userID uint) (*model.ShareLink, error) {
	run, err := s.SessionRepo.FindByID(runID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	if run.UserID != userID {
		return nil, util.ErrForbidden
	}

	existing, err := s.ShareLinkRepo.FindActiveByRun(runID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	slug, err := s.uniqueSlug()
	if err != nil {
		return nil, err
	}

	link := &model.ShareLink{
		SessionRunID: runID,
		UserID:       userID,
		Slug:         slug,
		Active:       true,
	}
	if err := s.ShareLinkRepo.Create(link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *ShareService) uniqueSlug() (string, error) {
	// Collisions over a 57^10 space are vanishingly rare; retry a few times
	// and give up rather than loop forever.
	for i := 0; i < 5; i++ {
		slug := util.RandomSlug(shareSlugLength)
		exists, err := s.ShareLinkRepo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
	}
	return "", errors.New("failed to allocate a unique share slug")
}

// Resolve returns the shared run for a public slug.
func (s *ShareService) Resolve(slug string) (*model.SessionRun, error) {
	link, err := s.ShareLinkRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	run, err := s.SessionRepo.FindByIDWithDetails(link.SessionRunID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return run, nil
}

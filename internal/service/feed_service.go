package service

import (
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"cs_sprint_backend/internal/config"
	"cs_sprint_backend/internal/model"
	"cs_sprint_backend/internal/repository"
	"cs_sprint_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// autoHideThreshold is the cumulative report count at which a target is
// hidden automatically.
const autoHideThreshold = 3

type FeedService struct {
	PostRepo     *repository.FeedPostRepository
	CommentRepo  *repository.FeedCommentRepository
	ReactionRepo *repository.ReactionRepository
	ReportRepo   *repository.ReportRepository
	UserRepo     *repository.UserRepository
	Redis        *redis.Client
	DB           *gorm.DB

	spam config.SpamConfig
}

func NewFeedService(
	postRepo *repository.FeedPostRepository,
	commentRepo *repository.FeedCommentRepository,
	reactionRepo *repository.ReactionRepository,
	reportRepo *repository.ReportRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
	db *gorm.DB,
	cfg *config.Config,
) *FeedService {
	s := &FeedService{
		PostRepo:     postRepo,
		CommentRepo:  commentRepo,
		ReactionRepo: reactionRepo,
		ReportRepo:   reportRepo,
		UserRepo:     userRepo,
		Redis:        rdb,
		DB:           db,
	}
	if cfg != nil {
		s.spam = cfg.Spam
	}
	if s.spam.DuplicateWindowSeconds <= 0 {
		s.spam.DuplicateWindowSeconds = 60
	}
	if s.spam.MaxLinks <= 0 {
		s.spam.MaxLinks = 3
	}
	return s
}

var (
	scriptRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
	jsURIRe  = regexp.MustCompile(`(?i)javascript:`)
)

// sanitizeContent strips script blocks, remaining markup and script-bearing
// URI schemes, then trims whitespace.
func sanitizeContent(content string) string {
	content = scriptRe.ReplaceAllString(content, "")
	content = tagRe.ReplaceAllString(content, "")
	content = jsURIRe.ReplaceAllString(content, "")
	return strings.TrimSpace(content)
}

// isSpam applies the keyword, link-count and duplicate-content heuristics.
// The duplicate check keys recent content hashes per user in Redis; without
// a Redis client only the static checks run.
func (s *FeedService) isSpam(userID uint, content string) bool {
	lower := strings.ToLower(content)
	for _, keyword := range s.spam.BannedKeywords {
		if keyword != "" && strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}

	links := strings.Count(lower, "http://") + strings.Count(lower, "https://")
	if links > s.spam.MaxLinks {
		return true
	}

	if s.Redis != nil {
		key := fmt.Sprintf("spam:%d:%x", userID, sha1.Sum([]byte(content)))
		window := time.Duration(s.spam.DuplicateWindowSeconds) * time.Second
		fresh, err := s.Redis.SetNX(context.Background(), key, 1, window).Result()
		if err == nil && !fresh {
			// Same user posted identical content inside the window.
			return true
		}
	}

	return false
}

type CommentResponse struct {
	model.FeedComment
	Author model.PublicProfile `json:"author"`
}

// PostComment sanitizes, spam-checks and persists a comment, returned with
// the author's public profile joined.
func (s *FeedService) PostComment(feedPostID string, userID uint, content string) (*CommentResponse, error) {
	if feedPostID == "" {
		return nil, util.NewValidationError("feedPostId는 필수입니다")
	}

	if _, err := s.PostRepo.FindByID(feedPostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	clean := sanitizeContent(content)
	if clean == "" {
		return nil, util.NewValidationError("내용을 입력해주세요")
	}

	if s.isSpam(userID, clean) {
		return nil, util.ErrSpamDetected
	}

	comment := &model.FeedComment{
		PostID:   feedPostID,
		AuthorID: userID,
		Content:  clean,
	}
	if err := s.CommentRepo.Create(comment); err != nil {
		return nil, err
	}

	author, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return &CommentResponse{FeedComment: *comment, Author: author.Public()}, nil
}

func (s *FeedService) ListComments(feedPostID string) ([]CommentResponse, error) {
	comments, err := s.CommentRepo.ListByPost(feedPostID)
	if err != nil {
		return nil, err
	}

	responses := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		if comment.Hidden {
			continue
		}
		responses = append(responses, CommentResponse{
			FeedComment: comment,
			Author:      comment.Author.Public(),
		})
	}
	return responses, nil
}

// UpdateComment is ownership-gated; the new content goes through the same
// sanitize pipeline as creation.
func (s *FeedService) UpdateComment(commentID string, userID uint, content string) (*CommentResponse, error) {
	comment, err := s.CommentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	if comment.AuthorID != userID {
		return nil, util.ErrForbidden
	}

	clean := sanitizeContent(content)
	if clean == "" {
		return nil, util.NewValidationError("내용을 입력해주세요")
	}

	comment.Content = clean
	if err := s.CommentRepo.Update(comment); err != nil {
		return nil, err
	}
	return &CommentResponse{FeedComment: *comment, Author: comment.Author.Public()}, nil
}

func (s *FeedService) DeleteComment(commentID string, userID uint) error {
	comment, err := s.CommentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotFound
		}
		return err
	}
	if comment.AuthorID != userID {
		return util.ErrForbidden
	}
	return s.CommentRepo.Delete(commentID)
}

type PostResponse struct {
	model.FeedPost
	Author model.PublicProfile `json:"author"`
}

func (s *FeedService) CreatePost(userID uint, content, imageURL string) (*PostResponse, error) {
	clean := sanitizeContent(content)
	if clean == "" {
		return nil, util.NewValidationError("내용을 입력해주세요")
	}

	if s.isSpam(userID, clean) {
		return nil, util.ErrSpamDetected
	}

	post := &model.FeedPost{
		AuthorID:   userID,
		Content:    clean,
		ImageURL:   imageURL,
		Visibility: model.VisibilityPublic,
	}
	if err := s.PostRepo.Create(post); err != nil {
		return nil, err
	}

	author, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return &PostResponse{FeedPost: *post, Author: author.Public()}, nil
}

func (s *FeedService) ListPosts(page, limit int) ([]PostResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	posts, total, err := s.PostRepo.ListVisible((page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = PostResponse{FeedPost: post, Author: post.Author.Public()}
	}
	return responses, total, nil
}

// ToggleResult reports which direction the toggle went and the count after.
type ToggleResult struct {
	Action string `json:"action"` // added | removed
	Count  int64  `json:"count"`
}

// ToggleReaction is its own inverse: an existing (post, user, type) row is
// removed, a missing one is created.
func (s *FeedService) ToggleReaction(feedPostID string, userID uint, reactionType string) (*ToggleResult, error) {
	if reactionType == "" {
		return nil, util.NewValidationError("type은 필수입니다")
	}

	if _, err := s.PostRepo.FindByID(feedPostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	existing, err := s.ReactionRepo.Find(feedPostID, userID, reactionType)
	if err != nil {
		return nil, err
	}

	action := "added"
	if existing != nil {
		if err := s.ReactionRepo.Delete(existing.ID); err != nil {
			return nil, err
		}
		action = "removed"
	} else {
		reaction := &model.Reaction{PostID: feedPostID, UserID: userID, Type: reactionType}
		if err := s.ReactionRepo.Create(reaction); err != nil {
			return nil, err
		}
	}

	count, err := s.ReactionRepo.Count(feedPostID, reactionType)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Action: action, Count: count}, nil
}

// FileReport records a report and applies the auto-hide threshold inside one
// transaction, so two concurrent third reports cannot both observe a
// pre-threshold count.
func (s *FeedService) FileReport(targetType model.ReportTargetType, targetID string, userID uint, reason string) (*model.Report, error) {
	switch targetType {
	case model.ReportTargetPost, model.ReportTargetComment:
	default:
		return nil, util.NewValidationError("targetType은 post 또는 comment 여야 합니다")
	}
	if targetID == "" {
		return nil, util.NewValidationError("targetId는 필수입니다")
	}

	report := &model.Report{
		TargetType: targetType,
		TargetID:   targetID,
		ReporterID: userID,
		Reason:     reason,
		Status:     model.ReportPending,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		switch targetType {
		case model.ReportTargetPost:
			var post model.FeedPost
			if err := tx.First(&post, "id = ?", targetID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return util.ErrNotFound
				}
				return err
			}
		case model.ReportTargetComment:
			var comment model.FeedComment
			if err := tx.First(&comment, "id = ?", targetID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return util.ErrNotFound
				}
				return err
			}
		}

		pending, err := s.ReportRepo.HasPendingByReporter(tx, targetType, targetID, userID)
		if err != nil {
			return err
		}
		if pending {
			return fmt.Errorf("이미 신고한 대상입니다: %w", util.ErrConflict)
		}

		if err := s.ReportRepo.Create(tx, report); err != nil {
			return err
		}

		count, err := s.ReportRepo.CountByTarget(tx, targetType, targetID)
		if err != nil {
			return err
		}
		if count < autoHideThreshold {
			return nil
		}

		return s.autoHide(tx, targetType, targetID)
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// autoHide flips the target out of public view and writes one system-authored
// moderation action. Already-hidden targets are left alone, so the action is
// emitted exactly once and the hide is never reversed here.
func (s *FeedService) autoHide(tx *gorm.DB, targetType model.ReportTargetType, targetID string) error {
	switch targetType {
	case model.ReportTargetPost:
		var post model.FeedPost
		if err := tx.First(&post, "id = ?", targetID).Error; err != nil {
			return err
		}
		if post.Visibility == model.VisibilityPrivate {
			return nil
		}
		if err := tx.Model(&model.FeedPost{}).Where("id = ?", targetID).
			Update("visibility", model.VisibilityPrivate).Error; err != nil {
			return err
		}
	case model.ReportTargetComment:
		var comment model.FeedComment
		if err := tx.First(&comment, "id = ?", targetID).Error; err != nil {
			return err
		}
		if comment.Hidden {
			return nil
		}
		if err := tx.Model(&model.FeedComment{}).Where("id = ?", targetID).
			Update("hidden", true).Error; err != nil {
			return err
		}
	}

	action := &model.ModerationAction{
		TargetType: string(targetType),
		TargetID:   targetID,
		Action:     "auto-hide",
		Actor:      "system",
		Detail:     fmt.Sprintf("신고 %d회 누적으로 자동 숨김 처리", autoHideThreshold),
	}
	return s.ReportRepo.CreateModerationAction(tx, action)
}

package service

import (
	"errors"
	"fmt"
	"testing"

	"cs_sprint_backend/internal/config"
	"cs_sprint_backend/internal/model"
	"cs_sprint_backend/internal/repository"
	"cs_sprint_backend/internal/util"
)

func newFeedFixture(t *testing.T) (*FeedService, *model.User) {
	t.Helper()

	db := newTestDB(t)
	user := createTestUser(t, db, "poster")

	cfg := &config.Config{
		Spam: config.SpamConfig{
			DuplicateWindowSeconds: 60,
			BannedKeywords:         []string{"카지노", "도박"},
			MaxLinks:               2,
		},
	}

	svc := NewFeedService(
		repository.NewFeedPostRepository(db),
		repository.NewFeedCommentRepository(db),
		repository.NewReactionRepository(db),
		repository.NewReportRepository(db),
		repository.NewUserRepository(db),
		nil,
		db,
		cfg,
	)
	return svc, user
}

func TestCommentSanitizeThenEmptyRejected(t *testing.T) {
	svc, user := newFeedFixture(t)

	post, err := svc.CreatePost(user.ID, "오늘의 학습 기록", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	_, err = svc.PostComment(post.ID, user.ID, "<script>alert(1)</script>")
	var vErr *util.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error for markup-only content, got %v", err)
	}
}

func TestCommentSpamKeywordRejected(t *testing.T) {
	svc, user := newFeedFixture(t)

	post, err := svc.CreatePost(user.ID, "스터디 모집합니다", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	_, err = svc.PostComment(post.ID, user.ID, "무료 카지노 링크 드립니다")
	if !errors.Is(err, util.ErrSpamDetected) {
		t.Fatalf("expected spam rejection, got %v", err)
	}
}

func TestCommentLinkFloodRejected(t *testing.T) {
	svc, user := newFeedFixture(t)

	post, err := svc.CreatePost(user.ID, "자료 공유", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	content := "참고 자료 https://a.com https://b.com https://c.com"
	if _, err := svc.PostComment(post.ID, user.ID, content); !errors.Is(err, util.ErrSpamDetected) {
		t.Fatalf("expected spam rejection for link flood, got %v", err)
	}
}

func TestToggleReactionIsItsOwnInverse(t *testing.T) {
	svc, user := newFeedFixture(t)

	post, err := svc.CreatePost(user.ID, "해시 테이블 모듈 끝!", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	added, err := svc.ToggleReaction(post.ID, user.ID, "clap")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if added.Action != "added" || added.Count != 1 {
		t.Fatalf("expected added/1, got %s/%d", added.Action, added.Count)
	}

	removed, err := svc.ToggleReaction(post.ID, user.ID, "clap")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if removed.Action != "removed" || removed.Count != 0 {
		t.Fatalf("expected removed/0, got %s/%d", removed.Action, removed.Count)
	}

	// Different reaction types toggle independently.
	if _, err := svc.ToggleReaction(post.ID, user.ID, "fire"); err != nil {
		t.Fatalf("independent type: %v", err)
	}
}

func TestDuplicatePendingReportConflicts(t *testing.T) {
	svc, user := newFeedFixture(t)
	reporter := createTestUser(t, svc.DB, "reporter")

	post, err := svc.CreatePost(user.ID, "신고 대상 게시글", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if _, err := svc.FileReport(model.ReportTargetPost, post.ID, reporter.ID, "부적절한 내용"); err != nil {
		t.Fatalf("first report: %v", err)
	}

	_, err = svc.FileReport(model.ReportTargetPost, post.ID, reporter.ID, "다시 신고")
	if !errors.Is(err, util.ErrConflict) {
		t.Fatalf("expected conflict for duplicate report, got %v", err)
	}
}

func TestThirdReportAutoHidesExactlyOnce(t *testing.T) {
	svc, author := newFeedFixture(t)

	post, err := svc.CreatePost(author.ID, "임계치 테스트 게시글", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	for i := 0; i < 4; i++ {
		reporter := createTestUser(t, svc.DB, fmt.Sprintf("reporter%d", i))
		if _, err := svc.FileReport(model.ReportTargetPost, post.ID, reporter.ID, "스팸 같아요"); err != nil {
			t.Fatalf("report %d: %v", i, err)
		}

		var stored model.FeedPost
		if err := svc.DB.First(&stored, "id = ?", post.ID).Error; err != nil {
			t.Fatalf("reload post: %v", err)
		}
		hidden := stored.Visibility == model.VisibilityPrivate
		if i < 2 && hidden {
			t.Fatalf("post hidden after %d reports", i+1)
		}
		if i >= 2 && !hidden {
			t.Fatalf("post still public after %d reports", i+1)
		}
	}

	actions, err := svc.ReportRepo.ListModerationActions(string(model.ReportTargetPost), post.ID)
	if err != nil {
		t.Fatalf("list actions: %v", err)
	}
	if len(actions) != 1 {
		t.Fatalf("expected exactly one system moderation action, got %d", len(actions))
	}
	if actions[0].Actor != "system" {
		t.Fatalf("expected system actor, got %q", actions[0].Actor)
	}

	// Hidden posts drop out of the feed listing.
	posts, _, err := svc.ListPosts(1, 20)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	for _, p := range posts {
		if p.ID == post.ID {
			t.Fatal("hidden post still listed")
		}
	}
}

func TestCommentAutoHideExcludedFromListing(t *testing.T) {
	svc, author := newFeedFixture(t)

	post, err := svc.CreatePost(author.ID, "댓글 숨김 테스트", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	comment, err := svc.PostComment(post.ID, author.ID, "신고될 댓글입니다")
	if err != nil {
		t.Fatalf("post comment: %v", err)
	}

	for i := 0; i < 3; i++ {
		reporter := createTestUser(t, svc.DB, fmt.Sprintf("creporter%d", i))
		if _, err := svc.FileReport(model.ReportTargetComment, comment.ID, reporter.ID, "욕설"); err != nil {
			t.Fatalf("report %d: %v", i, err)
		}
	}

	comments, err := svc.ListComments(post.ID)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("hidden comment still listed: %d", len(comments))
	}
}

func TestCommentOwnershipOnUpdateAndDelete(t *testing.T) {
	svc, author := newFeedFixture(t)
	other := createTestUser(t, svc.DB, "someone")

	post, err := svc.CreatePost(author.ID, "댓글 권한 테스트", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	comment, err := svc.PostComment(post.ID, author.ID, "내 댓글입니다")
	if err != nil {
		t.Fatalf("post comment: %v", err)
	}

	if _, err := svc.UpdateComment(comment.ID, other.ID, "남의 댓글 수정"); !errors.Is(err, util.ErrForbidden) {
		t.Fatalf("expected forbidden on update, got %v", err)
	}
	if err := svc.DeleteComment(comment.ID, other.ID); !errors.Is(err, util.ErrForbidden) {
		t.Fatalf("expected forbidden on delete, got %v", err)
	}

	if _, err := svc.UpdateComment(comment.ID, author.ID, "수정된 댓글"); err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if err := svc.DeleteComment(comment.ID, author.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}

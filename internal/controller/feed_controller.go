package controller

import (
	"fmt"
	"path/filepath"
	"strconv"

	"cs_sprint_backend/internal/model"
	"cs_sprint_backend/internal/service"
	"cs_sprint_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 5 << 20 // 5MB

type FeedController struct {
	service *service.FeedService
	storage *service.StorageService
}

func NewFeedController(s *service.FeedService, storage *service.StorageService) *FeedController {
	return &FeedController{service: s, storage: storage}
}

type CreatePostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

// CreatePost godoc
// @Summary 피드 게시글 작성
// @Description 게시 전에 내용을 정제하고 스팸 여부를 검사합니다
// @Tags 커뮤니티
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreatePostRequest true "게시글 내용"
// @Success 201 {object} service.PostResponse
// @Failure 403 {object} util.ErrorResponse
// @Router /api/feed/posts [post]
func (c *FeedController) CreatePost(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	post, err := c.service.CreatePost(user.UserID, req.Content, req.ImageURL)
	if err != nil {
		util.RespondError(ctx, "create post", err)
		return
	}

	util.Created(ctx, post)
}

// ListPosts godoc
// @Summary 피드 게시글 목록 조회
// @Description 공개 게시글만 최신순으로 반환합니다
// @Tags 커뮤니티
// @Produce json
// @Param page query int false "페이지" default(1)
// @Param limit query int false "페이지 크기" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /api/feed/posts [get]
func (c *FeedController) ListPosts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	posts, total, err := c.service.ListPosts(page, limit)
	if err != nil {
		util.InternalServerError(ctx, "list posts", err)
		return
	}

	util.Success(ctx, gin.H{
		"posts": posts,
		"total": total,
		"page":  page,
	})
}

type CommentRequest struct {
	Content string `json:"content"`
}

// PostComment godoc
// @Summary 댓글 작성
// @Tags 커뮤니티
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "게시글 ID"
// @Param body body CommentRequest true "댓글 내용"
// @Success 201 {object} service.CommentResponse
// @Failure 403 {object} util.ErrorResponse
// @Router /api/feed/posts/{id}/comments [post]
func (c *FeedController) PostComment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.service.PostComment(ctx.Param("id"), user.UserID, req.Content)
	if err != nil {
		util.RespondError(ctx, "post comment", err)
		return
	}

	util.Created(ctx, comment)
}

// ListComments godoc
// @Summary 댓글 목록 조회
// @Tags 커뮤니티
// @Produce json
// @Param id path string true "게시글 ID"
// @Success 200 {array} service.CommentResponse
// @Router /api/feed/posts/{id}/comments [get]
func (c *FeedController) ListComments(ctx *gin.Context) {
	comments, err := c.service.ListComments(ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, "list comments", err)
		return
	}
	util.Success(ctx, comments)
}

// UpdateComment godoc
// @Summary 댓글 수정
// @Tags 커뮤니티
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "댓글 ID"
// @Param body body CommentRequest true "댓글 내용"
// @Success 200 {object} service.CommentResponse
// @Failure 403 {object} util.ErrorResponse
// @Router /api/feed/comments/{id} [put]
func (c *FeedController) UpdateComment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.service.UpdateComment(ctx.Param("id"), user.UserID, req.Content)
	if err != nil {
		util.RespondError(ctx, "update comment", err)
		return
	}

	util.Success(ctx, comment)
}

// DeleteComment godoc
// @Summary 댓글 삭제
// @Tags 커뮤니티
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "댓글 ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} util.ErrorResponse
// @Router /api/feed/comments/{id} [delete]
func (c *FeedController) DeleteComment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.service.DeleteComment(ctx.Param("id"), user.UserID); err != nil {
		util.RespondError(ctx, "delete comment", err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

type ReactionRequest struct {
	Type string `json:"type"`
}

// ToggleReaction godoc
// @Summary 리액션 토글
// @Description 같은 리액션을 다시 보내면 취소됩니다
// @Tags 커뮤니티
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "게시글 ID"
// @Param body body ReactionRequest true "리액션 종류"
// @Success 200 {object} service.ToggleResult
// @Router /api/feed/posts/{id}/reactions [post]
func (c *FeedController) ToggleReaction(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ReactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.service.ToggleReaction(ctx.Param("id"), user.UserID, req.Type)
	if err != nil {
		util.RespondError(ctx, "toggle reaction", err)
		return
	}

	util.Success(ctx, result)
}

type ReportRequest struct {
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetId"`
	Reason     string `json:"reason"`
}

// FileReport godoc
// @Summary 게시글/댓글 신고
// @Description 같은 대상에 대한 중복 신고는 거부되며 신고가 누적되면 자동으로 숨김 처리됩니다
// @Tags 커뮤니티
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ReportRequest true "신고 내용"
// @Success 201 {object} model.Report
// @Failure 409 {object} util.ErrorResponse
// @Router /api/feed/reports [post]
func (c *FeedController) FileReport(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	report, err := c.service.FileReport(model.ReportTargetType(req.TargetType), req.TargetID, user.UserID, req.Reason)
	if err != nil {
		util.RespondError(ctx, "file report", err)
		return
	}

	util.Created(ctx, report)
}

// UploadImage godoc
// @Summary 피드 이미지 업로드
// @Tags 커뮤니티
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "이미지 파일"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Router /api/feed/images [post]
func (c *FeedController) UploadImage(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "파일이 필요합니다")
		return
	}
	if file.Size > maxUploadSize {
		util.BadRequest(ctx, "파일 크기는 5MB를 넘을 수 없습니다")
		return
	}

	ext := filepath.Ext(file.Filename)
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		util.BadRequest(ctx, "지원하지 않는 이미지 형식입니다")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.InternalServerError(ctx, "open upload", err)
		return
	}
	defer src.Close()

	filename := fmt.Sprintf("feed/%d/%s%s", user.UserID, uuid.New().String(), ext)
	url, err := c.storage.Upload(ctx.Request.Context(), filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		util.InternalServerError(ctx, "upload image", err)
		return
	}

	util.Created(ctx, gin.H{"url": url})
}

package controller

import (
	"cs_sprint_backend/internal/service"
	"cs_sprint_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ShareController struct {
	service *service.ShareService
}

func NewShareController(s *service.ShareService) *ShareController {
	return &ShareController{service: s}
}

// CreateShareLink godoc
// @Summary 세션 공유 링크 생성
// @Description 같은 세션을 다시 공유하면 기존 링크를 그대로 반환합니다
// @Tags 공유
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "세션 ID"
// @Success 201 {object} model.ShareLink
// @Failure 403 {object} util.ErrorResponse
// @Router /api/sessions/{id}/share [post]
func (c *ShareController) CreateShareLink(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	link, err := c.service.CreateOrGet(ctx.Param("id"), user.UserID)
	if err != nil {
		util.RespondError(ctx, "create share link", err)
		return
	}

	util.Created(ctx, link)
}

// ResolveShareLink godoc
// @Summary 공유 링크로 세션 조회
// @Description 로그인 없이 접근 가능한 공개 결과 페이지입니다
// @Tags 공유
// @Produce json
// @Param slug path string true "공유 슬러그"
// @Success 200 {object} model.SessionRun
// @Failure 404 {object} util.ErrorResponse
// @Router /api/share/{slug} [get]
func (c *ShareController) ResolveShareLink(ctx *gin.Context) {
	run, err := c.service.Resolve(ctx.Param("slug"))
	if err != nil {
		util.RespondError(ctx, "resolve share link", err)
		return
	}
	util.Success(ctx, run)
}

package controller

import (
	"cs_sprint_backend/internal/catalog"
	"cs_sprint_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct{}

func NewContentController() *ContentController {
	return &ContentController{}
}

// ListModules godoc
// @Summary 학습 모듈 목록 조회
// @Description 30분 집중 세션으로 학습 가능한 CS 모듈 전체를 반환합니다
// @Tags 학습 콘텐츠
// @Produce json
// @Success 200 {array} catalog.Module
// @Router /api/modules [get]
func (c *ContentController) ListModules(ctx *gin.Context) {
	util.Success(ctx, catalog.Modules)
}

// GetModule godoc
// @Summary 학습 모듈 상세 조회
// @Tags 학습 콘텐츠
// @Produce json
// @Param ref path string true "모듈 ID 또는 슬러그"
// @Success 200 {object} catalog.Module
// @Failure 404 {object} util.ErrorResponse
// @Router /api/modules/{ref} [get]
func (c *ContentController) GetModule(ctx *gin.Context) {
	mod, ok := catalog.Resolve(ctx.Param("ref"))
	if !ok {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, mod)
}

// ListStages godoc
// @Summary 세션 단계 구성 조회
// @Description 시각화, 퀴즈, 적용, 회고 4단계와 단계별 시간 배분을 반환합니다
// @Tags 학습 콘텐츠
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/stages [get]
func (c *ContentController) ListStages(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"stages":       catalog.Stages,
		"totalSeconds": catalog.TotalSessionSeconds,
	})
}

// ListCategories godoc
// @Summary CS 카테고리 목록 조회
// @Tags 학습 콘텐츠
// @Produce json
// @Success 200 {array} string
// @Router /api/categories [get]
func (c *ContentController) ListCategories(ctx *gin.Context) {
	util.Success(ctx, catalog.Categories)
}

// ListDirectory godoc
// @Summary 커뮤니티 멤버 디렉토리 조회
// @Tags 커뮤니티
// @Produce json
// @Success 200 {array} catalog.DirectoryUser
// @Router /api/community/directory [get]
func (c *ContentController) ListDirectory(ctx *gin.Context) {
	util.Success(ctx, catalog.Directory)
}

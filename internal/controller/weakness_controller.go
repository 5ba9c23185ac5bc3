package controller

import (
	"cs_sprint_backend/internal/service"
	"cs_sprint_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type WeaknessController struct {
	service *service.WeaknessService
}

func NewWeaknessController(s *service.WeaknessService) *WeaknessController {
	return &WeaknessController{service: s}
}

// GetWeaknessMap godoc
// @Summary 약점 맵 조회
// @Description 5개 CS 카테고리 전체의 숙련도를 반환합니다. 기록이 없는 카테고리는 0점으로 합성됩니다
// @Tags 약점 진단
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.WeaknessMap
// @Router /api/weakness [get]
func (c *WeaknessController) GetWeaknessMap(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	wm, err := c.service.GetWeaknessMap(user.UserID)
	if err != nil {
		util.InternalServerError(ctx, "weakness map", err)
		return
	}

	util.Success(ctx, wm)
}

type SubmitDiagnosticRequest struct {
	Answers []service.DiagnosticAnswer `json:"answers"`
}

// SubmitDiagnostic godoc
// @Summary 진단 테스트 제출
// @Description 카테고리별 진단 문항 답안을 채점하고 약점 맵을 갱신합니다
// @Tags 약점 진단
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitDiagnosticRequest true "진단 답안"
// @Success 201 {object} model.DiagnosticAttempt
// @Failure 400 {object} util.ErrorResponse
// @Router /api/diagnostics [post]
func (c *WeaknessController) SubmitDiagnostic(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitDiagnosticRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.service.SubmitDiagnostic(user.UserID, req.Answers)
	if err != nil {
		util.RespondError(ctx, "submit diagnostic", err)
		return
	}

	util.Created(ctx, attempt)
}

// GetRecommendations godoc
// @Summary 추천 모듈 조회
// @Description 로그인 여부와 무관하게 기본 추천 목록을 반환합니다
// @Tags 약점 진단
// @Produce json
// @Success 200 {array} model.Recommendation
// @Router /api/recommendations [get]
func (c *WeaknessController) GetRecommendations(ctx *gin.Context) {
	var userID uint
	if user := util.GetUserFromContext(ctx); user != nil {
		userID = user.UserID
	}

	recs, err := c.service.GetRecommendations(userID)
	if err != nil {
		util.InternalServerError(ctx, "recommendations", err)
		return
	}

	util.Success(ctx, recs)
}

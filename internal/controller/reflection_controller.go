package controller

import (
	"strconv"

	"cs_sprint_backend/internal/service"
	"cs_sprint_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReflectionController struct {
	service *service.ReflectionService
}

func NewReflectionController(s *service.ReflectionService) *ReflectionController {
	return &ReflectionController{service: s}
}

type SubmitReflectionRequest struct {
	SessionRunID string `json:"sessionRunId"`
	Content      string `json:"content"`
	IsPublic     bool   `json:"isPublic"`
}

// SubmitReflection godoc
// @Summary 회고 작성
// @Description 세션 마지막 단계의 회고를 저장합니다. 내용이 너무 짧으면 거부됩니다
// @Tags 회고
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitReflectionRequest true "회고 내용"
// @Success 201 {object} model.Reflection
// @Failure 400 {object} util.ErrorResponse
// @Router /api/reflections [post]
func (c *ReflectionController) SubmitReflection(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitReflectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reflection, err := c.service.Submit(user.UserID, req.SessionRunID, req.Content, req.IsPublic)
	if err != nil {
		util.RespondError(ctx, "submit reflection", err)
		return
	}

	util.Created(ctx, reflection)
}

// ListPublicReflections godoc
// @Summary 공개 회고 목록 조회
// @Tags 회고
// @Produce json
// @Param limit query int false "최대 개수" default(20)
// @Success 200 {array} model.Reflection
// @Router /api/reflections/public [get]
func (c *ReflectionController) ListPublicReflections(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	reflections, err := c.service.ListPublic(limit)
	if err != nil {
		util.InternalServerError(ctx, "list public reflections", err)
		return
	}
	util.Success(ctx, reflections)
}

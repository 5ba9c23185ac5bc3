package controller

import (
	"cs_sprint_backend/internal/service"
	"cs_sprint_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	service *service.AdminService
}

func NewAdminController(s *service.AdminService) *AdminController {
	return &AdminController{service: s}
}

// ListModules godoc
// @Summary 관리자 모듈 현황 조회
// @Description 모듈별 세션 수, 완료 수, 평균 점수를 집계합니다
// @Tags 관리자
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} service.AdminModuleRow
// @Router /api/admin/modules [get]
func (c *AdminController) ListModules(ctx *gin.Context) {
	rows, err := c.service.ListModules()
	if err != nil {
		util.InternalServerError(ctx, "admin list modules", err)
		return
	}
	util.Success(ctx, rows)
}

// ListModuleVersions godoc
// @Summary 모듈 변경 이력 조회
// @Tags 관리자
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "모듈 ID"
// @Success 200 {array} model.ModuleVersion
// @Failure 404 {object} util.ErrorResponse
// @Router /api/admin/modules/{id}/versions [get]
func (c *AdminController) ListModuleVersions(ctx *gin.Context) {
	versions, err := c.service.ListModuleVersions(ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, "list module versions", err)
		return
	}
	util.Success(ctx, versions)
}

// CreateQuizQuestion godoc
// @Summary 퀴즈 문항 등록
// @Description 문항 유형과 보기, 정답을 검증한 뒤 모듈 변경 이력을 남깁니다
// @Tags 관리자
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateQuestionInput true "문항"
// @Success 201 {object} model.QuizQuestion
// @Failure 400 {object} util.ErrorResponse
// @Router /api/admin/questions [post]
func (c *AdminController) CreateQuizQuestion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.CreateQuestionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.service.CreateQuizQuestion(user.UserID, input)
	if err != nil {
		util.RespondError(ctx, "create quiz question", err)
		return
	}

	util.Created(ctx, question)
}

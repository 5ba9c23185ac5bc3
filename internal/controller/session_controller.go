package controller

import (
	"strconv"
	"time"

	"cs_sprint_backend/internal/service"
	"cs_sprint_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	service *service.SessionService
}

func NewSessionController(s *service.SessionService) *SessionController {
	return &SessionController{service: s}
}

type StartSessionRequest struct {
	ModuleID string `json:"moduleId"`
}

// StartSession godoc
// @Summary 학습 세션 시작
// @Description 선택한 모듈에 대해 30분 학습 세션을 생성합니다
// @Tags 학습 세션
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body StartSessionRequest true "모듈 ID 또는 슬러그"
// @Success 201 {object} service.SessionRunResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	run, err := c.service.Start(user.UserID, req.ModuleID)
	if err != nil {
		util.RespondError(ctx, "start session", err)
		return
	}

	util.Created(ctx, run)
}

// SaveCheckpoint godoc
// @Summary 세션 체크포인트 저장
// @Description 진행 상태를 저장합니다. 체크포인트는 전체 교체되며 완료 시각은 한 번 기록되면 유지됩니다
// @Tags 학습 세션
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "세션 ID"
// @Param body body service.CheckpointUpdate true "체크포인트"
// @Success 200 {object} service.SessionRunResponse
// @Failure 403 {object} util.ErrorResponse
// @Router /api/sessions/{id}/checkpoint [put]
func (c *SessionController) SaveCheckpoint(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CheckpointUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	run, err := c.service.SaveCheckpoint(ctx.Param("id"), user.UserID, req)
	if err != nil {
		util.RespondError(ctx, "save checkpoint", err)
		return
	}

	util.Success(ctx, run)
}

// GetSession godoc
// @Summary 세션 조회
// @Tags 학습 세션
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "세션 ID"
// @Success 200 {object} service.SessionRunResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/sessions/{id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	run, err := c.service.Get(ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, "get session", err)
		return
	}
	util.Success(ctx, run)
}

// ListMySessions godoc
// @Summary 내 세션 목록 조회
// @Tags 학습 세션
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "최대 개수" default(20)
// @Success 200 {array} model.SessionRun
// @Router /api/sessions/my [get]
func (c *SessionController) ListMySessions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	runs, err := c.service.ListByUser(user.UserID, limit)
	if err != nil {
		util.InternalServerError(ctx, "list sessions", err)
		return
	}

	util.Success(ctx, runs)
}

// GetModuleQuestions godoc
// @Summary 모듈 퀴즈 문항 조회
// @Description 퀴즈 단계에서 풀 문항 목록을 반환합니다. 정답은 포함되지 않습니다
// @Tags 학습 세션
// @Produce json
// @Security ApiKeyAuth
// @Param ref path string true "모듈 ID 또는 슬러그"
// @Success 200 {array} model.QuizQuestion
// @Failure 404 {object} util.ErrorResponse
// @Router /api/modules/{ref}/questions [get]
func (c *SessionController) GetModuleQuestions(ctx *gin.Context) {
	questions, err := c.service.ListModuleQuestions(ctx.Param("ref"))
	if err != nil {
		util.RespondError(ctx, "list module questions", err)
		return
	}
	util.Success(ctx, questions)
}

// GetModuleTasks godoc
// @Summary 모듈 적용 과제 조회
// @Tags 학습 세션
// @Produce json
// @Security ApiKeyAuth
// @Param ref path string true "모듈 ID 또는 슬러그"
// @Success 200 {array} model.ApplyTask
// @Failure 404 {object} util.ErrorResponse
// @Router /api/modules/{ref}/tasks [get]
func (c *SessionController) GetModuleTasks(ctx *gin.Context) {
	tasks, err := c.service.ListModuleTasks(ctx.Param("ref"))
	if err != nil {
		util.RespondError(ctx, "list module tasks", err)
		return
	}
	util.Success(ctx, tasks)
}

type AttemptRequest struct {
	QuestionID uint   `json:"questionId"`
	TaskID     uint   `json:"taskId"`
	Answer     string `json:"answer"`
}

// SubmitQuizAttempt godoc
// @Summary 퀴즈 답안 제출
// @Description 답안은 추가만 되며 수정되지 않습니다
// @Tags 학습 세션
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "세션 ID"
// @Param body body AttemptRequest true "답안"
// @Success 201 {object} model.QuizAttempt
// @Router /api/sessions/{id}/quiz-attempts [post]
func (c *SessionController) SubmitQuizAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.service.RecordQuizAttempt(ctx.Param("id"), user.UserID, req.QuestionID, req.Answer)
	if err != nil {
		util.RespondError(ctx, "record quiz attempt", err)
		return
	}

	util.Created(ctx, attempt)
}

// SubmitApplyAttempt godoc
// @Summary 적용 과제 답안 제출
// @Tags 학습 세션
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "세션 ID"
// @Param body body AttemptRequest true "답안"
// @Success 201 {object} model.ApplyAttempt
// @Router /api/sessions/{id}/apply-attempts [post]
func (c *SessionController) SubmitApplyAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.service.RecordApplyAttempt(ctx.Param("id"), user.UserID, req.TaskID, req.Answer)
	if err != nil {
		util.RespondError(ctx, "record apply attempt", err)
		return
	}

	util.Created(ctx, attempt)
}

// GetMonthlyReport godoc
// @Summary 월간 학습 리포트 조회
// @Description Pro 플랜 전용. 해당 월의 완료 세션 수와 평균 점수, 학습 모듈을 집계합니다
// @Tags 구독
// @Produce json
// @Security ApiKeyAuth
// @Param year query int false "연도"
// @Param month query int false "월"
// @Success 200 {object} service.MonthlyReport
// @Failure 403 {object} util.ErrorResponse
// @Router /api/reports/monthly [get]
func (c *SessionController) GetMonthlyReport(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	now := time.Now()
	year, _ := strconv.Atoi(ctx.DefaultQuery("year", strconv.Itoa(now.Year())))
	month, _ := strconv.Atoi(ctx.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if month < 1 || month > 12 {
		util.BadRequest(ctx, "유효하지 않은 월입니다")
		return
	}

	report, err := c.service.GetMonthlyReport(user.UserID, year, time.Month(month))
	if err != nil {
		util.RespondError(ctx, "monthly report", err)
		return
	}

	util.Success(ctx, report)
}

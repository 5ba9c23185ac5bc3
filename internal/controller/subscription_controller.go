package controller

import (
	"cs_sprint_backend/internal/service"
	"cs_sprint_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubscriptionController struct {
	service *service.SubscriptionService
}

func NewSubscriptionController(s *service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{service: s}
}

// GetEntitlements godoc
// @Summary 내 플랜과 기능 권한 조회
// @Tags 구독
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.Entitlements
// @Router /api/subscription/entitlements [get]
func (c *SubscriptionController) GetEntitlements(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	ent, err := c.service.GetEntitlements(user.UserID)
	if err != nil {
		util.InternalServerError(ctx, "entitlements", err)
		return
	}

	util.Success(ctx, ent)
}

// Checkout godoc
// @Summary Pro 플랜 결제 (모의)
// @Description 결제 연동 전 모의 체크아웃. 30일 Pro 구독을 활성화합니다
// @Tags 구독
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.Subscription
// @Router /api/subscription/checkout [post]
func (c *SubscriptionController) Checkout(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	sub, err := c.service.MockCheckout(user.UserID)
	if err != nil {
		util.RespondError(ctx, "checkout", err)
		return
	}

	util.Success(ctx, sub)
}

// CancelSubscription godoc
// @Summary 구독 해지
// @Description 남은 기간까지는 Pro 기능이 유지됩니다
// @Tags 구독
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.Subscription
// @Failure 404 {object} util.ErrorResponse
// @Router /api/subscription [delete]
func (c *SubscriptionController) CancelSubscription(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	sub, err := c.service.Cancel(user.UserID)
	if err != nil {
		util.RespondError(ctx, "cancel subscription", err)
		return
	}

	util.Success(ctx, sub)
}

// GetAICoach godoc
// @Summary AI 코치 (준비 중)
// @Description Pro 플랜 전용. 본 기능은 출시 준비 중입니다
// @Tags 구독
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/pro/ai-coach [get]
func (c *SubscriptionController) GetAICoach(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status":  "coming-soon",
		"message": "AI 코치 기능을 준비하고 있습니다",
	})
}

// GetStudyRoom godoc
// @Summary 스터디룸 (준비 중)
// @Description Pro 플랜 전용. 본 기능은 출시 준비 중입니다
// @Tags 구독
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/pro/study-room [get]
func (c *SubscriptionController) GetStudyRoom(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status":  "coming-soon",
		"message": "스터디룸 기능을 준비하고 있습니다",
	})
}

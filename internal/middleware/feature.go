package middleware

import (
	"cs_sprint_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// FeatureChecker resolves whether a user's plan unlocks a feature flag.
type FeatureChecker interface {
	CheckFeature(userID uint, flag string) (bool, error)
}

// Guard is the single authorization check in front of every plan-gated
// endpoint: 401 without identity, 403 with an upgrade hint when the plan
// lacks the entitlement. It never downgrades behavior silently.
func Guard(checker FeatureChecker, flag string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		allowed, err := checker.CheckFeature(user.UserID, flag)
		if err != nil {
			util.InternalServerError(c, "feature guard", err)
			c.Abort()
			return
		}

		if !allowed {
			util.RespondError(c, "feature guard", &util.ForbiddenError{
				Message: "Pro 플랜에서 사용할 수 있는 기능입니다",
				Upgrade: "pro",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

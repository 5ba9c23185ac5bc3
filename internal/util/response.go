package util

import (
	"errors"
	"net/http"

	"cs_sprint_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenericServerError is the localized body for unexpected failures. Internals
// are logged server-side and never leaked to the caller.
const GenericServerError = "서버 오류가 발생했습니다"

// ErrorResponse is the uniform error envelope of every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
	Spam  bool   `json:"spam,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "로그인이 필요합니다")
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, ErrNotFound.Error())
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func SpamRejected(c *gin.Context) {
	c.JSON(http.StatusForbidden, ErrorResponse{Error: ErrSpamDetected.Error(), Spam: true})
}

// InternalServerError logs the failing operation and answers with the generic
// localized string only.
func InternalServerError(c *gin.Context, operation string, err error) {
	if logger.Log != nil {
		logger.Log.Error("unexpected failure",
			zap.String("operation", operation),
			zap.Error(err),
		)
	}
	Error(c, http.StatusInternalServerError, GenericServerError)
}

// RespondError maps a service error onto the boundary taxonomy. Anything not
// recognized is treated as Unexpected.
func RespondError(c *gin.Context, operation string, err error) {
	var ve *ValidationError
	var fe *ForbiddenError
	switch {
	case errors.As(err, &ve):
		BadRequest(c, ve.Message)
	case errors.As(err, &fe):
		payload := gin.H{"error": fe.Message}
		if fe.Upgrade != "" {
			payload["upgrade"] = fe.Upgrade
		}
		c.JSON(http.StatusForbidden, payload)
	case errors.Is(err, ErrSpamDetected):
		SpamRejected(c)
	case errors.Is(err, ErrNotFound):
		NotFound(c)
	case errors.Is(err, ErrForbidden):
		Forbidden(c, ErrForbidden.Error())
	case errors.Is(err, ErrConflict):
		Conflict(c, err.Error())
	default:
		InternalServerError(c, operation, err)
	}
}

package util

import "errors"

// Sentinel errors for the boundary taxonomy. Services return these (possibly
// wrapped); controllers convert to HTTP via RespondError.
var (
	ErrNotFound     = errors.New("요청한 리소스를 찾을 수 없습니다")
	ErrForbidden    = errors.New("권한이 없습니다")
	ErrConflict     = errors.New("이미 처리된 요청입니다")
	ErrSpamDetected = errors.New("스팸으로 감지된 내용입니다")
)

// ValidationError carries a caller-facing message for malformed input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// ForbiddenError is a Forbidden with an upgrade-path hint attached, used by
// the feature gate so the client can route the user to the paywall.
type ForbiddenError struct {
	Message string
	Upgrade string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

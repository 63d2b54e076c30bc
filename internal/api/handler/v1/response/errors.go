package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the JSON error payload. Code lets clients branch on outcomes
// that share an HTTP status, e.g. a duplicate ballot versus an election
// that is not open for voting (both 409).
type Err struct {
	statusCode int

	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *Err) Error() string {
	return fmt.Sprintf("%v - %v", e.Code, e.Message)
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.statusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("path", ctx.FullPath()),
			zap.String("code", err.Code),
			zap.String("error", err.Message),
		)
	}

	ctx.AbortWithStatusJSON(err.statusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		statusCode: http.StatusBadRequest,
		Code:       "BAD_REQUEST",
		Message:    err.Error(),
	}
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		statusCode: http.StatusNotFound,
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%v with %v (%v) not found", resource, key, value),
	}
}

func ErrConflict(code string, err error) *Err {
	return &Err{
		statusCode: http.StatusConflict,
		Code:       code,
		Message:    err.Error(),
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		statusCode: http.StatusForbidden,
		Code:       "PERMISSION_DENIED",
		Message:    err.Error(),
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		statusCode: http.StatusUnauthorized,
		Code:       "UNAUTHORIZED",
		Message:    err.Error(),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		statusCode: http.StatusInternalServerError,
		Code:       "INTERNAL_ERROR",
		Message:    err.Error(),
	}
}

// Package middleware はHTTP境界のミドルウェアを提供します。
package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"user_backend/internal/feature/users/transport/http/dto"
	"user_backend/internal/shared/apperror"
)

// ErrorHandler はハンドラーから逃れたすべての失敗を捕捉し、
// 統一されたJSONエラーエンベロープとしてレンダリングする唯一の境界です。
// 3つの失敗クラスを区別します:
//   - リクエストボディのバリデーション失敗 → 400、フィールド別メッセージ付き
//   - ドメインの不正引数（未存在・重複ユーザー名） → 400、単一メッセージ
//   - それ以外 → 500、汎用メッセージ（原因はログのみに記録し、呼び出し元へは返さない）
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var verrs validator.ValidationErrors
		var invalid *apperror.InvalidArgumentError

		switch {
		case errors.As(err, &verrs):
			slog.Warn("request validation failed", "error", err, "path", c.Request.URL.Path)
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Timestamp: dto.LocalDateTime(time.Now()),
				Status:    http.StatusBadRequest,
				Error:     "Validation Failed",
				Message:   "request body validation failed",
				Errors:    fieldErrors(verrs),
			})
		case errors.As(err, &invalid):
			slog.Warn("invalid argument", "error", err, "path", c.Request.URL.Path)
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Timestamp: dto.LocalDateTime(time.Now()),
				Status:    http.StatusBadRequest,
				Error:     "Bad Request",
				Message:   invalid.Reason,
			})
		default:
			// 予期しない失敗。詳細はオペレーター向けログにのみ残す。
			slog.Error("unexpected error", "error", err, "path", c.Request.URL.Path)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Timestamp: dto.LocalDateTime(time.Now()),
				Status:    http.StatusInternalServerError,
				Error:     "Internal Server Error",
				Message:   "an unexpected error occurred",
			})
		}
	}
}

// fieldErrors はバリデーション失敗をフィールド名→メッセージのマップに変換します。
func fieldErrors(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[strings.ToLower(fe.Field())] = fieldMessage(fe)
	}
	return out
}

// fieldMessage は1件のフィールドエラーを人間向けメッセージに変換します。
func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/transport/http/dto"
	"user_backend/internal/shared/apperror"
)

// UserUsecase はユーザーリソース操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	GetAllUsers(ctx context.Context) ([]entity.User, error)
	GetUserByID(ctx context.Context, id uint) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	CreateUser(ctx context.Context, username, email, phone string) (*entity.User, error)
	UpdateUser(ctx context.Context, id uint, email, phone string) (*entity.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

// UserHandler はユーザーリソースのHTTPリクエストを処理します。
// 失敗はc.Errorで境界ミドルウェアに渡し、レンダリングはそこで一元化します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からUserUsecaseを注入します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// GetAllUsers は GET /api/users を処理します。
// すべてのユーザーをストア順でレスポンス表現の配列として返します。
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	slog.Info("GET /api/users", "remote_addr", c.ClientIP())

	users, err := h.users.GetAllUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.UserResponseFrom(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetUserByID は GET /api/users/:id を処理します。
// ユーザーが存在しない場合は400を返します。
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	slog.Info("GET /api/users/:id", "id", id, "remote_addr", c.ClientIP())

	user, err := h.users.GetUserByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.UserResponseFrom(user))
}

// GetUserByUsername は GET /api/users/username/:username を処理します。
// ユーザーが存在しない場合は400を返します。
func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	username := c.Param("username")
	slog.Info("GET /api/users/username/:username", "username", username, "remote_addr", c.ClientIP())

	user, err := h.users.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.UserResponseFrom(user))
}

// CreateUser は POST /api/users を処理します。
// - リクエストJSONをUserRequestにバインドし、バリデーション失敗は400
// - ユーザー名重複は400
// - 成功時は201と作成済みユーザーを返却
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	slog.Info("POST /api/users", "username", req.Username, "remote_addr", c.ClientIP())

	user, err := h.users.CreateUser(c.Request.Context(), req.Username, req.Email, req.Phone)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.UserResponseFrom(user))
}

// UpdateUser は PUT /api/users/:id を処理します。
// メールアドレスと電話番号のみ更新し、ユーザー名とIDは変更しません。
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	slog.Info("PUT /api/users/:id", "id", id, "remote_addr", c.ClientIP())

	user, err := h.users.UpdateUser(c.Request.Context(), id, req.Email, req.Phone)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.UserResponseFrom(user))
}

// DeleteUser は DELETE /api/users/:id を処理します。
// 成功時は204 No Content（ボディなし）を返します。
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	slog.Info("DELETE /api/users/:id", "id", id, "remote_addr", c.ClientIP())

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID はパスパラメータのIDを解析します。
// 数値でない場合はInvalidArgumentErrorを返します。
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperror.NewInvalidArgument("invalid user id: %s", raw)
	}
	return uint(id), nil
}

// bindError はバインドエラーを分類します。
// フィールドバリデーション以外（不正なJSONなど）はInvalidArgumentErrorに包み、
// validator.ValidationErrorsはそのまま境界ミドルウェアへ渡します。
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return err
	}
	return apperror.NewInvalidArgument("invalid request body")
}

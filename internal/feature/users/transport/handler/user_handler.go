// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/auth/domain/entity"
	"user_backend/internal/feature/users/transport/http/dto"
	"user_backend/internal/feature/users/usecase"
	"user_backend/internal/shared/validation"
)

// UserUsecase はユーザー管理操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	// List は全ユーザーを返します。
	List(ctx context.Context) ([]*entity.User, error)
	// Create は新規ユーザーを登録し、作成されたレコードを返します。
	Create(ctx context.Context, name, email, password string) (*entity.User, error)
	// Get はIDでユーザーを取得します。
	Get(ctx context.Context, id uint) (*entity.User, error)
	// Update は既存ユーザーを更新し、更新後のレコードを返します。
	Update(ctx context.Context, id uint, name, email, password string) (*entity.User, error)
	// Delete は指定されたIDのユーザーを削除します。
	Delete(ctx context.Context, id uint) error
}

// UserHandler はユーザーCRUD操作のHTTPリクエストを処理します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// parseID はパスパラメータ:idをuintに変換します。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// List は全ユーザーの一覧を返します。
// パスワードハッシュはシリアライズから常に除外されます。
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		slog.Error("user list failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.StatusRes{Success: false, Message: "could not list users"})
		return
	}
	c.JSON(http.StatusOK, dto.ListRes{
		Success: true,
		Message: "users retrieved successfully",
		Data:    users,
	})
}

// Create は新規ユーザー登録APIエンドポイントを処理します。
// - バリデーション違反時は全フィールドを列挙した422を返却
// - メールアドレス重複時も422（フィールドレベルエラー）を返却
// - 成功時は作成されたユーザー付きで200を返却
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("user create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorRes{
			Error:   "validation_error",
			Message: validation.FieldErrors(err),
		})
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorRes{
				Error:   "validation_error",
				Message: map[string]string{"email": "has already been taken"},
			})
			return
		}
		slog.Error("user create failed", "error", err, "email", req.Email)
		c.JSON(http.StatusBadRequest, dto.StatusRes{Success: false, Message: "could not save user"})
		return
	}

	slog.Info("user created", "user_id", user.ID, "email", user.Email)
	c.JSON(http.StatusOK, dto.ItemRes{
		Success: true,
		Message: "user saved successfully",
		Data:    user,
	})
}

// Show はIDで指定されたユーザーを返します。
func (h *UserHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.StatusRes{Success: false, Message: "user not found"})
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.StatusRes{Success: false, Message: "user not found"})
			return
		}
		slog.Error("user lookup failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, dto.StatusRes{Success: false, Message: "could not fetch user"})
		return
	}

	c.JSON(http.StatusOK, dto.ItemRes{
		Success: true,
		Message: "user retrieved successfully",
		Data:    user,
	})
}

// Update は既存ユーザーの更新APIエンドポイントを処理します。
// 作成時と同じバリデーションを全フィールドに適用します。
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.StatusRes{Success: false, Message: "user not found"})
		return
	}

	var req dto.UserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("user update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorRes{
			Error:   "validation_error",
			Message: validation.FieldErrors(err),
		})
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.StatusRes{Success: false, Message: "user not found"})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorRes{
				Error:   "validation_error",
				Message: map[string]string{"email": "has already been taken"},
			})
		default:
			slog.Error("user update failed", "error", err, "user_id", id)
			c.JSON(http.StatusBadRequest, dto.StatusRes{Success: false, Message: "could not update user"})
		}
		return
	}

	slog.Info("user updated", "user_id", user.ID)
	c.JSON(http.StatusOK, dto.ItemRes{
		Success: true,
		Message: "user updated successfully",
		Data:    user,
	})
}

// Delete は指定されたIDのユーザーを完全に削除します。
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.StatusRes{Success: false, Message: "user not found"})
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.StatusRes{Success: false, Message: "user not found"})
			return
		}
		slog.Error("user delete failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, dto.StatusRes{Success: false, Message: "could not delete user"})
		return
	}

	slog.Info("user deleted", "user_id", id)
	c.JSON(http.StatusOK, dto.StatusRes{Success: true, Message: "user deleted successfully"})
}

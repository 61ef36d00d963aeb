// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/auth/domain/entity"
	"user_backend/internal/feature/auth/transport/http/dto"
	"user_backend/internal/feature/auth/usecase"
	jwtmw "user_backend/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Login はユーザーを認証し、成功時にトークンと有効期間（秒）を返します。
	Login(ctx context.Context, email, password string) (string, int64, error)
	// Logout は提示されたトークンを失効させます。
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	// Refresh は新しいトークンを発行し、古いトークンを失効させます。
	Refresh(ctx context.Context, userID uint, email, oldTokenID string, oldExpiresAt time.Time) (string, int64, error)
	// CurrentUser はユーザーIDに対応するユーザーを返します。
	CurrentUser(ctx context.Context, userID uint) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却
// - 認証成功時はトークンペイロード付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}
	token, expiresIn, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "invalid email or password"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenRes{AccessToken: token, TokenType: "bearer", ExpiresIn: expiresIn})
}

// Logout は提示中のトークンを失効させます。
// ガード通過後にのみ到達するため、クレームは常にコンテキストに存在します。
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := jwtmw.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "missing bearer token"})
		return
	}
	if err := h.auth.Logout(c.Request.Context(), claims.TokenID, claims.ExpiresAt); err != nil {
		slog.Error("logout failed", "error", err, "user_id", claims.UserID)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "logout failed"})
		return
	}
	slog.Info("user logout successful", "user_id", claims.UserID)
	c.JSON(http.StatusOK, dto.MessageRes{Message: "Successfully logged out"})
}

// Refresh は有効なトークンを新しいトークンに差し替えます。
// 古いトークンは即時失効します。
func (h *AuthHandler) Refresh(c *gin.Context) {
	claims, ok := jwtmw.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "missing bearer token"})
		return
	}
	token, expiresIn, err := h.auth.Refresh(c.Request.Context(), claims.UserID, claims.Email, claims.TokenID, claims.ExpiresAt)
	if err != nil {
		slog.Error("token refresh failed", "error", err, "user_id", claims.UserID)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "refresh failed"})
		return
	}
	c.JSON(http.StatusOK, dto.TokenRes{AccessToken: token, TokenType: "bearer", ExpiresIn: expiresIn})
}

// Me はトークンから解決されたユーザーの公開レコードを返します。
// パスワードハッシュはentity.Userのjsonタグにより常に除外されます。
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "missing bearer token"})
		return
	}
	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "user not found"})
			return
		}
		slog.Error("current user lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Package handler はpostsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/posts/domain/entity"
	"user_backend/internal/feature/posts/transport/http/dto"
	"user_backend/internal/feature/posts/usecase"
	jwtmw "user_backend/internal/platform/jwt"
	"user_backend/internal/shared/validation"
)

// PostUsecase は投稿管理操作のユースケースを定義します。
type PostUsecase interface {
	// List は全投稿を返します。
	List(ctx context.Context) ([]*entity.Post, error)
	// Create は認証済みユーザーを著者として新規投稿を作成します。
	Create(ctx context.Context, userID uint, title, body string) (*entity.Post, error)
	// Get はIDで投稿を取得します。
	Get(ctx context.Context, id uint) (*entity.Post, error)
	// Update は著者本人の投稿を更新します。
	Update(ctx context.Context, userID, id uint, title, body string) (*entity.Post, error)
	// Delete は著者本人の投稿を削除します。
	Delete(ctx context.Context, userID, id uint) error
}

// PostHandler は投稿CRUD操作のHTTPリクエストを処理します。
// すべてのエンドポイントは認証ガードの背後に置かれます。
type PostHandler struct {
	posts PostUsecase
}

// NewPostHandler はPostHandlerの新しいインスタンスを生成します。
func NewPostHandler(posts PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

// parseID はパスパラメータ:idをuintに変換します。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// List は全投稿の一覧を返します。
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		slog.Error("post list failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.StatusRes{Success: false, Message: "could not list posts"})
		return
	}
	c.JSON(http.StatusOK, dto.ListRes{
		Success: true,
		Message: "posts retrieved successfully",
		Data:    posts,
	})
}

// Create は新規投稿を作成します。著者はガードが解決したユーザーです。
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	var req dto.PostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorRes{
			Error:   "validation_error",
			Message: validation.FieldErrors(err),
		})
		return
	}

	post, err := h.posts.Create(c.Request.Context(), userID, req.Title, req.Body)
	if err != nil {
		slog.Error("post create failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, dto.StatusRes{Success: false, Message: "could not save post"})
		return
	}

	c.JSON(http.StatusOK, dto.ItemRes{
		Success: true,
		Message: "post saved successfully",
		Data:    post,
	})
}

// Show はIDで指定された投稿を返します。
func (h *PostHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.StatusRes{Success: false, Message: "post not found"})
		return
	}

	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, dto.StatusRes{Success: false, Message: "post not found"})
			return
		}
		slog.Error("post lookup failed", "error", err, "post_id", id)
		c.JSON(http.StatusInternalServerError, dto.StatusRes{Success: false, Message: "could not fetch post"})
		return
	}

	c.JSON(http.StatusOK, dto.ItemRes{
		Success: true,
		Message: "post retrieved successfully",
		Data:    post,
	})
}

// Update は著者本人の投稿を更新します。
func (h *PostHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.StatusRes{Success: false, Message: "post not found"})
		return
	}

	var req dto.PostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorRes{
			Error:   "validation_error",
			Message: validation.FieldErrors(err),
		})
		return
	}

	post, err := h.posts.Update(c.Request.Context(), userID, id, req.Title, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPostNotFound):
			c.JSON(http.StatusNotFound, dto.StatusRes{Success: false, Message: "post not found"})
		case errors.Is(err, usecase.ErrNotPostAuthor):
			c.JSON(http.StatusForbidden, dto.StatusRes{Success: false, Message: "post belongs to another user"})
		default:
			slog.Error("post update failed", "error", err, "post_id", id)
			c.JSON(http.StatusBadRequest, dto.StatusRes{Success: false, Message: "could not update post"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ItemRes{
		Success: true,
		Message: "post updated successfully",
		Data:    post,
	})
}

// Delete は著者本人の投稿を削除します。
func (h *PostHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.StatusRes{Success: false, Message: "post not found"})
		return
	}

	if err := h.posts.Delete(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPostNotFound):
			c.JSON(http.StatusNotFound, dto.StatusRes{Success: false, Message: "post not found"})
		case errors.Is(err, usecase.ErrNotPostAuthor):
			c.JSON(http.StatusForbidden, dto.StatusRes{Success: false, Message: "post belongs to another user"})
		default:
			slog.Error("post delete failed", "error", err, "post_id", id)
			c.JSON(http.StatusInternalServerError, dto.StatusRes{Success: false, Message: "could not delete post"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.StatusRes{Success: true, Message: "post deleted successfully"})
}

// Package dto はpostsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "user_backend/internal/feature/posts/domain/entity"

// PostReq は/postの作成・更新エンドポイントのリクエストボディを表します。
type PostReq struct {
	Title string `json:"title" binding:"required,max=255"`
	Body  string `json:"body" binding:"required"`
}

// ListRes is the envelope returned by the post list endpoint.
type ListRes struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []*entity.Post `json:"data"`
}

// ItemRes is the envelope returned for a single post record.
type ItemRes struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *entity.Post `json:"data"`
}

// StatusRes is the envelope for responses without a data payload.
type StatusRes struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ValidationErrorRes enumerates every failing field of a rejected request.
type ValidationErrorRes struct {
	Error   string            `json:"error"`
	Message map[string]string `json:"message"`
}

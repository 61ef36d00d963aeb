// Package dto はusersフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// UserReq は/userの作成・更新エンドポイントのリクエストボディを表します。
// 作成と更新で同一のバリデーションルールを適用します。
type UserReq struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8"`
}

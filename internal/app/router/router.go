package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "user_backend/internal/feature/auth/transport/handler"
	posthandler "user_backend/internal/feature/posts/transport/handler"
	userhandler "user_backend/internal/feature/users/transport/handler"
	"user_backend/internal/platform/http/handler"
)

// NewRouter はルーティングテーブルを構築します。
// guard には jwtmw.AuthRequired で生成した認証ミドルウェアを渡します。
func NewRouter(authH *authhandler.AuthHandler, userH *userhandler.UserHandler,
	postH *posthandler.PostHandler, guard gin.HandlerFunc, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = corsOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// ログイン（トークン発行）
	r.POST("/login", authH.Login)

	// 認証必須のルート
	auth := r.Group("/")
	// guard ミドルウェアを適用
	// → リクエストヘッダーに Bearer トークンが必要になる
	auth.Use(guard)
	{
		auth.GET("/refresh", authH.Refresh)
		auth.GET("/logout", authH.Logout)
		auth.GET("/me", authH.Me)

		auth.GET("/user", userH.List)
		auth.POST("/user", userH.Create)
		auth.GET("/user/:id", userH.Show)
		auth.PUT("/user/:id", userH.Update)
		auth.PATCH("/user/:id", userH.Update)
		auth.DELETE("/user/:id", userH.Delete)

		auth.GET("/post", postH.List)
		auth.POST("/post", postH.Create)
		auth.GET("/post/:id", postH.Show)
		auth.PUT("/post/:id", postH.Update)
		auth.PATCH("/post/:id", postH.Update)
		auth.DELETE("/post/:id", postH.Delete)
	}

	return r
}

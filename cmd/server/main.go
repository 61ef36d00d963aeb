package main

import (
	"log"

	"github.com/joho/godotenv"

	"user_backend/internal/app/router"
	authadapters "user_backend/internal/feature/auth/adapters"
	authhandler "user_backend/internal/feature/auth/transport/handler"
	authusecase "user_backend/internal/feature/auth/usecase"
	postadapters "user_backend/internal/feature/posts/adapters"
	posthandler "user_backend/internal/feature/posts/transport/handler"
	postusecase "user_backend/internal/feature/posts/usecase"
	useradapters "user_backend/internal/feature/users/adapters"
	userhandler "user_backend/internal/feature/users/transport/handler"
	userusecase "user_backend/internal/feature/users/usecase"
	"user_backend/internal/platform/config"
	infradb "user_backend/internal/platform/db"
	jwtmw "user_backend/internal/platform/jwt"
	infraredis "user_backend/internal/platform/redis"
	"user_backend/internal/platform/revocation"
)

func main() {
	// .env があれば読み込む（本番では環境変数を直接設定）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// db
	db := infradb.OpenDB(cfg.DB, cfg.RunMigrations)

	// Revocation set: Redis共有、なければプロセス内フォールバック
	// フォールバック時はログアウトの効果が単一プロセスに限定される
	var revStore jwtmw.RevocationChecker
	var revoker authusecase.RevocationStore
	if cfg.RedisAddr != "" {
		rdb, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("redis connect failed: %v", err)
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
		store := revocation.NewRedisStore(rdb, "revoked")
		revStore, revoker = store, store
	} else {
		log.Println("[WARN] REDIS_ADDR not set. Token revocation is process-local.")
		store := revocation.NewMemoryStore()
		revStore, revoker = store, store
	}

	// Repository
	authUserRepo := authadapters.NewUserMySQL(db)
	userRepo := useradapters.NewUserMySQL(db)
	postRepo := postadapters.NewPostMySQL(db)

	// Token issuer/validator
	generator := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTTTL)
	validator := jwtmw.NewValidator(cfg.JWTSecret)

	// Usecase
	authUC := authusecase.NewAuthUsecase(authUserRepo, generator, revoker)
	userUC := userusecase.NewUserUsecase(userRepo)
	postUC := postusecase.NewPostUsecase(postRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	userH := userhandler.NewUserHandler(userUC)
	postH := posthandler.NewPostHandler(postUC)

	// 認証ガードとルータ生成
	guard := jwtmw.AuthRequired(validator, revStore)
	r := router.NewRouter(authH, userH, postH, guard, cfg.CORSOrigins)

	if err := r.Run(cfg.HTTPAddress()); err != nil {
		log.Fatal(err)
	}
}

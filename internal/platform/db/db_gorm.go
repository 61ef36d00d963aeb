package db

import (
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	authentity "user_backend/internal/feature/auth/domain/entity"
	postentity "user_backend/internal/feature/posts/domain/entity"
	"user_backend/internal/platform/config"
)

// OpenDB connects to MySQL with retries and optionally runs schema migrations.
// The retry loop tolerates a database container that is still starting up.
func OpenDB(cfg config.DBConfig, runMigrations bool) *gorm.DB {
	dsn := cfg.DSN()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if runMigrations {
		// マイグレーション（User, Post）
		if err := db.AutoMigrate(
			&authentity.User{},
			&postentity.Post{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

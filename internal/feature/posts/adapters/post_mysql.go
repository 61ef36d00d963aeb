// Package adapters はpostsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"user_backend/internal/feature/posts/domain/entity"
	"user_backend/internal/feature/posts/usecase"
)

// postMySQL はPostRepositoryインターフェースのMySQL実装です。
type postMySQL struct {
	db *gorm.DB
}

// postMySQLがPostRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.PostRepository = (*postMySQL)(nil)

// NewPostMySQL は指定されたgorm.DB接続でpostMySQLの新しいインスタンスを生成します。
func NewPostMySQL(db *gorm.DB) *postMySQL {
	return &postMySQL{db: db}
}

// List は全投稿をID昇順で取得します。
func (r *postMySQL) List(ctx context.Context) ([]*entity.Post, error) {
	var posts []*entity.Post
	if err := r.db.WithContext(ctx).Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Create は投稿をデータベースに追加します。
func (r *postMySQL) Create(ctx context.Context, p *entity.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindByID はIDで投稿を取得します。
// 投稿が存在しない場合、usecase.ErrPostNotFoundを返します。
func (r *postMySQL) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	var p entity.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Update は既存投稿の変更を保存します。
func (r *postMySQL) Update(ctx context.Context, p *entity.Post) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete は指定されたIDの投稿を削除します。
func (r *postMySQL) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrPostNotFound
	}
	return nil
}

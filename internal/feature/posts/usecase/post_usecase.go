// Package usecase はpostsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"user_backend/internal/feature/posts/domain/entity"
)

// PostRepository は投稿エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PostRepository interface {
	// List は全投稿を取得します。
	List(ctx context.Context) ([]*entity.Post, error)

	// Create は新しい投稿をストレージに永続化します。
	Create(ctx context.Context, post *entity.Post) error

	// FindByID は指定されたIDに一致する投稿を取得します。
	FindByID(ctx context.Context, id uint) (*entity.Post, error)

	// Update は既存投稿の変更を永続化します。
	Update(ctx context.Context, post *entity.Post) error

	// Delete は指定されたIDの投稿を削除します。
	Delete(ctx context.Context, id uint) error
}

// postUsecase は投稿管理のビジネスロジックを実装します。
type postUsecase struct {
	posts PostRepository
}

// NewPostUsecase はpostUsecaseの新しいインスタンスを生成します。
func NewPostUsecase(posts PostRepository) *postUsecase {
	return &postUsecase{posts: posts}
}

// List は全投稿を返します。
func (u *postUsecase) List(ctx context.Context) ([]*entity.Post, error) {
	return u.posts.List(ctx)
}

// Create は認証済みユーザーを著者として新規投稿を作成します。
func (u *postUsecase) Create(ctx context.Context, userID uint, title, body string) (*entity.Post, error) {
	post := &entity.Post{UserID: userID, Title: title, Body: body}
	if err := u.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Get はIDで投稿を取得します。
func (u *postUsecase) Get(ctx context.Context, id uint) (*entity.Post, error) {
	return u.posts.FindByID(ctx, id)
}

// Update は投稿のタイトルと本文を更新します。
// 著者以外による更新はErrNotPostAuthorで拒否されます。
func (u *postUsecase) Update(ctx context.Context, userID, id uint, title, body string) (*entity.Post, error) {
	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, ErrNotPostAuthor
	}

	post.Title = title
	post.Body = body

	if err := u.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete は投稿を削除します。
// 著者以外による削除はErrNotPostAuthorで拒否されます。
func (u *postUsecase) Delete(ctx context.Context, userID, id uint) error {
	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return ErrNotPostAuthor
	}
	return u.posts.Delete(ctx, id)
}

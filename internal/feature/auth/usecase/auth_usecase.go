// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"time"

	"user_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository はユーザーエンティティの読み取り層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、エラーを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、エラーを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenGenerator はアクセストークン発行のインターフェースを定義します。
type TokenGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)

	// TTL は発行されるトークンの有効期間を返します。
	TTL() time.Duration
}

// RevocationStore はログアウト済みトークンの失効セットを抽象化します。
type RevocationStore interface {
	// Revoke は指定されたトークンIDを自然失効時刻まで失効セットに追加します。
	Revoke(ctx context.Context, tokenID string, until time.Time) error
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users       UserRepository
	tokens      TokenGenerator
	revocations RevocationStore
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenGenerator, revocations RevocationStore) *authUsecase {
	return &authUsecase{
		users:       users,
		tokens:      tokens,
		revocations: revocations,
	}
}

// Login はユーザーを認証し、成功時にアクセストークンと有効期間（秒）を返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, int64, error) {
	// メールアドレスでユーザーを検索
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", 0, ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", 0, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, int64(u.tokens.TTL().Seconds()), nil
}

// Logout は提示されたトークンを失効させます。
// 既に失効済みのトークンを再度失効させても成功扱い（冪等）です。
func (u *authUsecase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := u.revocations.Revoke(ctx, tokenID, expiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// Refresh は新しいトークンを発行し、古いトークンを即時失効させます。
// 古いトークンを残すとログアウトの意味が曖昧になるため、一貫して失効ポリシーを採用しています。
func (u *authUsecase) Refresh(ctx context.Context, userID uint, email, oldTokenID string, oldExpiresAt time.Time) (string, int64, error) {
	token, err := u.tokens.GenerateToken(userID, email)
	if err != nil {
		return "", 0, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := u.revocations.Revoke(ctx, oldTokenID, oldExpiresAt); err != nil {
		return "", 0, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return token, int64(u.tokens.TTL().Seconds()), nil
}

// CurrentUser はトークンから解決されたユーザーIDに対応するユーザーを返します。
func (u *authUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

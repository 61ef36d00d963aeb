package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"user_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	ListFunc     func(ctx context.Context) ([]*entity.User, error)
	CreateFunc   func(ctx context.Context, user *entity.User) error
	FindByIDFunc func(ctx context.Context, id uint) (*entity.User, error)
	UpdateFunc   func(ctx context.Context, user *entity.User) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound // Default: not found
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func TestUserUsecase_Create(t *testing.T) {
	t.Run("hashes the password before persisting", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				// Verify that the password is hashed
				if user.Password == "" || user.Password == "password123" {
					t.Error("password is not hashed")
				}
				// Verify that it's a valid bcrypt hash
				if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				user.ID = 1
				return nil
			},
		}

		uc := NewUserUsecase(mockRepo)
		user, err := uc.Create(context.Background(), "Alice", "alice@example.com", "password123")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != 1 || user.Name != "Alice" || user.Email != "alice@example.com" {
			t.Errorf("unexpected created record: %+v", user)
		}
	})

	t.Run("duplicate email surfaces as ErrEmailAlreadyExists", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrEmailAlreadyExists
			},
		}

		uc := NewUserUsecase(mockRepo)
		_, err := uc.Create(context.Background(), "Alice", "taken@example.com", "password123")

		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("concurrent creates with the same email have exactly one winner", func(t *testing.T) {
		// The repository enforces email uniqueness the way the database's
		// unique index does: first write wins, the loser gets the conflict.
		var mu sync.Mutex
		taken := make(map[string]bool)
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				mu.Lock()
				defer mu.Unlock()
				if taken[user.Email] {
					return ErrEmailAlreadyExists
				}
				taken[user.Email] = true
				return nil
			},
		}

		uc := NewUserUsecase(mockRepo)

		const attempts = 8
		errs := make(chan error, attempts)
		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := uc.Create(context.Background(), "Racer", "race@example.com", "password123")
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		var wins, conflicts int
		for err := range errs {
			switch {
			case err == nil:
				wins++
			case errors.Is(err, ErrEmailAlreadyExists):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}
		if wins != 1 {
			t.Errorf("expected exactly one successful create, got %d", wins)
		}
		if conflicts != attempts-1 {
			t.Errorf("expected %d conflicts, got %d", attempts-1, conflicts)
		}
	})
}

func TestUserUsecase_Update(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	stored := &entity.User{ID: 1, Name: "Before", Email: "before@example.com", Password: string(hashed)}

	t.Run("updates all fields and re-hashes the password", func(t *testing.T) {
		var saved *entity.User
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				clone := *stored
				return &clone, nil
			},
			UpdateFunc: func(ctx context.Context, user *entity.User) error {
				saved = user
				return nil
			},
		}

		uc := NewUserUsecase(mockRepo)
		user, err := uc.Update(context.Background(), 1, "After", "after@example.com", "new-password")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved == nil {
			t.Fatal("expected repository update to be called")
		}
		if user.Name != "After" || user.Email != "after@example.com" {
			t.Errorf("unexpected updated record: %+v", user)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("new-password")); err != nil {
			t.Errorf("password was not re-hashed: %v", err)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		uc := NewUserUsecase(&mockUserRepository{})
		_, err := uc.Update(context.Background(), 99, "Name", "mail@example.com", "password123")

		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserUsecase_Delete(t *testing.T) {
	t.Run("delegates to the repository", func(t *testing.T) {
		var deleted uint
		mockRepo := &mockUserRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = id
				return nil
			},
		}

		uc := NewUserUsecase(mockRepo)
		if err := uc.Delete(context.Background(), 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 7 {
			t.Errorf("expected delete of id 7, got %d", deleted)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				return ErrUserNotFound
			},
		}

		uc := NewUserUsecase(mockRepo)
		err := uc.Delete(context.Background(), 99)

		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

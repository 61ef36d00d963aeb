package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user_backend/internal/feature/auth/domain/entity"
	"user_backend/internal/feature/auth/usecase"
	jwtmw "user_backend/internal/platform/jwt"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	LoginFunc       func(ctx context.Context, email, password string) (string, int64, error)
	LogoutFunc      func(ctx context.Context, tokenID string, expiresAt time.Time) error
	RefreshFunc     func(ctx context.Context, userID uint, email, oldTokenID string, oldExpiresAt time.Time) (string, int64, error)
	CurrentUserFunc func(ctx context.Context, userID uint) (*entity.User, error)
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, int64, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", 0, usecase.ErrInvalidCredentials // Default: failure
}

func (m *mockAuthUsecase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, tokenID, expiresAt)
	}
	return nil
}

func (m *mockAuthUsecase) Refresh(ctx context.Context, userID uint, email, oldTokenID string, oldExpiresAt time.Time) (string, int64, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, userID, email, oldTokenID, oldExpiresAt)
	}
	return "refreshed-token", 3600, nil
}

func (m *mockAuthUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx, userID)
	}
	return nil, usecase.ErrUserNotFound
}

// withClaims injects guard-resolved claims the way the auth middleware does.
func withClaims(claims *jwtmw.Claims) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, claims.UserID)
		c.Set(jwtmw.ContextClaims, claims)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLoginFunc  func(ctx context.Context, email, password string) (string, int64, error)
		expectedStatus int
		checkBody      func(t *testing.T, body map[string]any)
	}{
		{
			name:        "success: valid credentials",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, int64, error) {
				return "issued-token", 3600, nil
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "issued-token", body["access_token"])
				assert.Equal(t, "bearer", body["token_type"])
				assert.Equal(t, float64(3600), body["expires_in"])
			},
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "password": "password123"},
			mockLoginFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "test@example.com"},
			mockLoginFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: wrong credentials",
			requestBody:    gin.H{"email": "test@example.com", "password": "wrong"},
			expectedStatus: http.StatusUnauthorized,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "invalid email or password", body["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLoginFunc}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/login", h.Login)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkBody != nil {
				var got map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				tt.checkBody(t, got)
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	claims := &jwtmw.Claims{UserID: 1, Email: "u@example.com", TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}

	t.Run("success: revokes the presented token", func(t *testing.T) {
		var revokedID string
		mockUC := &mockAuthUsecase{
			LogoutFunc: func(ctx context.Context, tokenID string, expiresAt time.Time) error {
				revokedID = tokenID
				return nil
			},
		}
		h := NewAuthHandler(mockUC)

		router := gin.New()
		router.GET("/logout", withClaims(claims), h.Logout)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/logout", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "jti-1", revokedID)
		assert.Contains(t, w.Body.String(), "Successfully logged out")
	})

	t.Run("failure: no guard context", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		router := gin.New()
		router.GET("/logout", h.Logout)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/logout", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("failure: revocation store error", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			LogoutFunc: func(ctx context.Context, tokenID string, expiresAt time.Time) error {
				return errors.New("redis down")
			},
		}
		h := NewAuthHandler(mockUC)

		router := gin.New()
		router.GET("/logout", withClaims(claims), h.Logout)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/logout", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)

	claims := &jwtmw.Claims{UserID: 7, Email: "u@example.com", TokenID: "old-jti", ExpiresAt: time.Now().Add(time.Minute)}

	t.Run("success: returns a fresh token payload", func(t *testing.T) {
		var revokedID string
		mockUC := &mockAuthUsecase{
			RefreshFunc: func(ctx context.Context, userID uint, email, oldTokenID string, oldExpiresAt time.Time) (string, int64, error) {
				revokedID = oldTokenID
				assert.Equal(t, uint(7), userID)
				return "fresh-token", 3600, nil
			},
		}
		h := NewAuthHandler(mockUC)

		router := gin.New()
		router.GET("/refresh", withClaims(claims), h.Refresh)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/refresh", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "old-jti", revokedID)

		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "fresh-token", got["access_token"])
		assert.Equal(t, "bearer", got["token_type"])
	})

	t.Run("failure: no guard context", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		router := gin.New()
		router.GET("/refresh", h.Refresh)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/refresh", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	claims := &jwtmw.Claims{UserID: 3, Email: "me@example.com", TokenID: "jti-me", ExpiresAt: time.Now().Add(time.Hour)}

	t.Run("success: returns the public record without the password hash", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			CurrentUserFunc: func(ctx context.Context, userID uint) (*entity.User, error) {
				return &entity.User{ID: 3, Name: "Me", Email: "me@example.com", Password: "bcrypt-hash"}, nil
			},
		}
		h := NewAuthHandler(mockUC)

		router := gin.New()
		router.GET("/me", withClaims(claims), h.Me)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "me@example.com", got["email"])
		assert.Equal(t, "Me", got["name"])
		assert.NotContains(t, got, "password")
		assert.False(t, strings.Contains(w.Body.String(), "bcrypt-hash"), "password hash must never be serialized")
	})

	t.Run("failure: user no longer exists", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		router := gin.New()
		router.GET("/me", withClaims(claims), h.Me)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

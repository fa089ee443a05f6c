package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasknest/tasknest-api/internal/api/shared"
	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/mocks"
	"github.com/tasknest/tasknest-api/internal/service/auth"
)

func newAuthHandler(userStore *mocks.MockUserStore, jwtService *mocks.MockJWTService) *AuthHandler {
	hasher := auth.NewBcryptVerifier()
	return NewAuthHandler(userStore, jwtService, hasher, hasher, testLogger())
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader([]byte(body)))
	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	t.Run("registers a new user", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		handler := newAuthHandler(userStore, &mocks.MockJWTService{})

		recorder := postJSON(t, handler.Register, "/api/auth/register",
			`{"username":"alice","password":"correct horse"}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp RegisterResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "User registered successfully", resp.Message)
		assert.Equal(t, int64(1), resp.UserID)

		stored := userStore.Users["alice"]
		require.NotNil(t, stored)
		assert.Empty(t, stored.Password)
		assert.NotEmpty(t, stored.HashedPassword)
		assert.NotEqual(t, "correct horse", stored.HashedPassword)
	})

	t.Run("duplicate username yields 409", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.Users["alice"] = &domain.User{ID: 1, Username: "alice"}
		handler := newAuthHandler(userStore, &mocks.MockJWTService{})

		recorder := postJSON(t, handler.Register, "/api/auth/register",
			`{"username":"alice","password":"correct horse"}`)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Username already exists")
	})

	t.Run("missing fields yield 400", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{})

		recorder := postJSON(t, handler.Register, "/api/auth/register", `{"username":"alice"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Username and password required")
	})

	t.Run("short password yields 400", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{})

		recorder := postJSON(t, handler.Register, "/api/auth/register",
			`{"username":"alice","password":"short"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("malformed body yields 400", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{})

		recorder := postJSON(t, handler.Register, "/api/auth/register", `{not json`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	registeredStore := func(t *testing.T, username, password string) *mocks.MockUserStore {
		t.Helper()

		hasher := auth.NewBcryptVerifier()
		hashed, err := hasher.Hash(password)
		require.NoError(t, err)

		userStore := mocks.NewMockUserStore()
		userStore.Users[username] = &domain.User{
			ID:             1,
			Username:       username,
			HashedPassword: hashed,
			CreatedAt:      time.Now().UTC(),
		}
		return userStore
	}

	t.Run("valid credentials yield a token", func(t *testing.T) {
		t.Parallel()

		userStore := registeredStore(t, "alice", "correct horse")
		jwtService := &mocks.MockJWTService{Token: "signed-token"}
		handler := newAuthHandler(userStore, jwtService)

		recorder := postJSON(t, handler.Login, "/api/auth/login",
			`{"username":"alice","password":"correct horse"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, int64(1), resp.UserID)
		assert.Equal(t, "alice", resp.Username)
	})

	t.Run("wrong password yields 401", func(t *testing.T) {
		t.Parallel()

		userStore := registeredStore(t, "alice", "correct horse")
		handler := newAuthHandler(userStore, &mocks.MockJWTService{})

		recorder := postJSON(t, handler.Login, "/api/auth/login",
			`{"username":"alice","password":"wrong horse"}`)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid credentials")
	})

	t.Run("unknown username yields the same 401", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{})

		recorder := postJSON(t, handler.Login, "/api/auth/login",
			`{"username":"nobody","password":"whatever!"}`)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid credentials")
	})

	t.Run("missing fields yield 400", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{})

		recorder := postJSON(t, handler.Login, "/api/auth/login", `{}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("token generation failure yields 500", func(t *testing.T) {
		t.Parallel()

		userStore := registeredStore(t, "alice", "correct horse")
		jwtService := &mocks.MockJWTService{Err: assert.AnError}
		handler := newAuthHandler(userStore, jwtService)

		recorder := postJSON(t, handler.Login, "/api/auth/login",
			`{"username":"alice","password":"correct horse"}`)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Login failed")
	})
}

func TestAuthHandler_Verify(t *testing.T) {
	t.Parallel()

	verify := func(t *testing.T, jwtService *mocks.MockJWTService, authHeader string) *httptest.ResponseRecorder {
		t.Helper()

		handler := newAuthHandler(mocks.NewMockUserStore(), jwtService)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		recorder := httptest.NewRecorder()
		handler.Verify(recorder, req)
		return recorder
	}

	t.Run("valid token echoes its identity", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{
			Claims: &auth.Claims{UserID: 42, Username: "alice"},
		}
		recorder := verify(t, jwtService, "Bearer stored-token")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp VerifyResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, int64(42), resp.UserID)
		assert.Equal(t, "alice", resp.Username)
	})

	t.Run("raw token without scheme", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{
			Claims: &auth.Claims{UserID: 42, Username: "alice"},
		}
		recorder := verify(t, jwtService, "stored-token")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("missing token yields 401", func(t *testing.T) {
		t.Parallel()

		recorder := verify(t, &mocks.MockJWTService{}, "")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "No token provided")
	})

	t.Run("expired token yields 401", func(t *testing.T) {
		t.Parallel()

		recorder := verify(t, &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken}, "Bearer old-token")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Token expired")
	})

	t.Run("invalid token yields 401", func(t *testing.T) {
		t.Parallel()

		recorder := verify(t, &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}, "Bearer garbage")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid token")
	})
}

func TestAuthHandler_Profile(t *testing.T) {
	t.Parallel()

	t.Run("returns the authenticated user's profile", func(t *testing.T) {
		t.Parallel()

		created := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
		userStore := mocks.NewMockUserStore()
		userStore.Users["alice"] = &domain.User{ID: 3, Username: "alice", CreatedAt: created}
		handler := newAuthHandler(userStore, &mocks.MockJWTService{})

		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, int64(3))
		recorder := httptest.NewRecorder()
		handler.Profile(recorder, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp ProfileResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, int64(3), resp.ID)
		assert.Equal(t, "alice", resp.Username)
		assert.True(t, created.Equal(resp.CreatedAt))
	})

	t.Run("unknown user yields 404", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{})

		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, int64(99))
		recorder := httptest.NewRecorder()
		handler.Profile(recorder, req.WithContext(ctx))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("missing identity yields 401", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{})

		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		recorder := httptest.NewRecorder()
		handler.Profile(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

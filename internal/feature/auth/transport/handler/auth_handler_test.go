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

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social_backend/internal/feature/auth/domain/entity"
	"social_backend/internal/feature/auth/usecase"
	"social_backend/internal/shared/apperr"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	LoginFunc    func(ctx context.Context, email, password string) (string, error)
}

// Register is the mock implementation of the Register method.
func (m *mockAuthUsecase) Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, in)
	}
	return &entity.User{ID: "u-1", Email: in.Email}, nil // Default: success
}

// Login is the mock implementation of the Login method.
func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", apperr.Auth(usecase.MsgInvalidCredentials) // Default: failure
}

func serve(t *testing.T, handler gin.HandlerFunc, path, rawBody string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST(path, handler)

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(rawBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		rawBody        string
		mockRegister   func(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:    "success: user registration",
			rawBody: `{"username":"alice123","email":"alice@example.com","password":"Tr0ub4dor&3"}`,
			mockRegister: func(ctx context.Context, in usecase.RegisterInput) (*entity.User, error) {
				if in.Username != "alice123" || in.Email != "alice@example.com" || in.Password != "Tr0ub4dor&3" {
					return nil, errors.New("unexpected input")
				}
				return &entity.User{ID: "u-1", Email: in.Email, Password: "$2a$10$secret-hash"}, nil
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   gin.H{"id": "u-1", "email": "alice@example.com"},
		},
		{
			name:    "failure: validation error names the field",
			rawBody: `{"username":"alice123","email":"nope","password":"Tr0ub4dor&3"}`,
			mockRegister: func(ctx context.Context, in usecase.RegisterInput) (*entity.User, error) {
				return nil, apperr.Validation("email", "Invalid email")
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"title": "Validation Failed", "message": "Invalid email", "field": "email"},
		},
		{
			name:    "failure: duplicate email",
			rawBody: `{"username":"alice123","email":"alice@example.com","password":"Tr0ub4dor&3"}`,
			mockRegister: func(ctx context.Context, in usecase.RegisterInput) (*entity.User, error) {
				return nil, apperr.Conflict("email", usecase.MsgUserRegistered)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"title": "Validation Failed", "message": "User already registered", "field": "email"},
		},
		{
			name:           "failure: malformed JSON",
			rawBody:        `{"username":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"title": "Validation Failed", "message": MsgInvalidBody},
		},
		{
			name:    "failure: server error hides the cause",
			rawBody: `{"username":"alice123","email":"alice@example.com","password":"Tr0ub4dor&3"}`,
			mockRegister: func(ctx context.Context, in usecase.RegisterInput) (*entity.User, error) {
				return nil, apperr.Server("failed to register user", errors.New("pq: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"title": "Server error", "message": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthUsecase{RegisterFunc: tt.mockRegister})

			w := serve(t, handler.Register, "/register", tt.rawBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var responseBody gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedBody, responseBody)
			assert.False(t, strings.Contains(w.Body.String(), "$2a$"), "hash must never be returned")
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		rawBody        string
		mockLogin      func(ctx context.Context, email, password string) (string, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:           "success: user login",
			rawBody:        `{"email":"alice@example.com","password":"Tr0ub4dor&3"}`,
			mockLogin:      func(ctx context.Context, email, password string) (string, error) { return "dummy-jwt-token", nil },
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"accessToken": "dummy-jwt-token"},
		},
		{
			name:    "failure: missing password",
			rawBody: `{"email":"alice@example.com"}`,
			mockLogin: func(ctx context.Context, email, password string) (string, error) {
				return "", apperr.Validation("", usecase.MsgAllFieldsRequired)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"title": "Validation Failed", "message": "All fields are required"},
		},
		{
			name:           "failure: invalid credentials",
			rawBody:        `{"email":"wrong@example.com","password":"wrong-password"}`,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"title": "Unauthorized", "message": "Email or password is not valid"},
		},
		{
			name:    "failure: token signing error is hidden",
			rawBody: `{"email":"alice@example.com","password":"Tr0ub4dor&3"}`,
			mockLogin: func(ctx context.Context, email, password string) (string, error) {
				return "", apperr.Server("failed to log in", errors.New("signing key missing"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"title": "Server error", "message": "Internal server error"},
		},
		{
			name:           "failure: not JSON",
			rawBody:        `email=alice@example.com`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"title": "Validation Failed", "message": MsgInvalidBody},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthUsecase{LoginFunc: tt.mockLogin})

			w := serve(t, handler.Login, "/login", tt.rawBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var responseBody gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

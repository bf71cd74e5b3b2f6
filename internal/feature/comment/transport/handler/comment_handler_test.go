package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social_backend/internal/feature/comment/domain/entity"
	"social_backend/internal/feature/comment/usecase"
	jwtmw "social_backend/internal/platform/jwt"
	"social_backend/internal/shared/apperr"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockCommentUsecase struct {
	CreateFunc func(ctx context.Context, userID, postID, content string) (*entity.Comment, error)
	ListFunc   func(ctx context.Context, postID string) ([]entity.Comment, error)
}

func (m *mockCommentUsecase) Create(ctx context.Context, userID, postID, content string) (*entity.Comment, error) {
	return m.CreateFunc(ctx, userID, postID, content)
}

func (m *mockCommentUsecase) List(ctx context.Context, postID string) ([]entity.Comment, error) {
	return m.ListFunc(ctx, postID)
}

var alice = jwtmw.Claims{ID: "u-1", Username: "alice123", Email: "alice@example.com"}

func serve(t *testing.T, method, route, target string, handler gin.HandlerFunc, rawBody string) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		c.Set(jwtmw.ContextClaims, alice)
		c.Next()
	}, handler)

	req, err := http.NewRequest(method, target, bytes.NewBufferString(rawBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCommentHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		rawBody        string
		mockCreate     func(ctx context.Context, userID, postID, content string) (*entity.Comment, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:    "success: returns the created comment",
			rawBody: `{"content":"nice"}`,
			mockCreate: func(ctx context.Context, userID, postID, content string) (*entity.Comment, error) {
				if userID != "u-1" || postID != "p-1" || content != "nice" {
					return nil, errors.New("unexpected input")
				}
				return &entity.Comment{ID: "c-1", PostID: postID, UserID: userID, Content: content}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: gin.H{
				"id": "c-1", "post": "p-1", "user": "u-1", "content": "nice",
				"createdAt": "0001-01-01T00:00:00Z", "updatedAt": "0001-01-01T00:00:00Z",
			},
		},
		{
			name:    "failure: post not found",
			rawBody: `{"content":"nice"}`,
			mockCreate: func(ctx context.Context, userID, postID, content string) (*entity.Comment, error) {
				return nil, apperr.NotFound(usecase.MsgPostNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   gin.H{"title": "Not Found", "message": usecase.MsgPostNotFound},
		},
		{
			name:    "failure: empty content",
			rawBody: `{"content":""}`,
			mockCreate: func(ctx context.Context, userID, postID, content string) (*entity.Comment, error) {
				return nil, apperr.Validation("content", usecase.MsgContentRequired)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"title": "Validation Failed", "message": usecase.MsgContentRequired, "field": "content"},
		},
		{
			name:           "failure: malformed JSON",
			rawBody:        `{`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"title": "Validation Failed", "message": MsgInvalidBody},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCommentHandler(&mockCommentUsecase{CreateFunc: tt.mockCreate})

			w := serve(t, http.MethodPost, "/comments/create/:postId", "/comments/create/p-1", h.Create, tt.rawBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestCommentHandler_List(t *testing.T) {
	h := NewCommentHandler(&mockCommentUsecase{ListFunc: func(ctx context.Context, postID string) ([]entity.Comment, error) {
		assert.Equal(t, "p-1", postID)
		return []entity.Comment{{ID: "c-1", PostID: postID}, {ID: "c-2", PostID: postID}}, nil
	}})

	w := serve(t, http.MethodGet, "/comments/:postId", "/comments/p-1", h.List, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var comments []entity.Comment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	require.Len(t, comments, 2)
	assert.Equal(t, "c-1", comments[0].ID)
}

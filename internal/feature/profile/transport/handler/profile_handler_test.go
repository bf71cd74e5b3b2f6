package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social_backend/internal/feature/auth/domain/entity"
	"social_backend/internal/feature/profile/usecase"
	jwtmw "social_backend/internal/platform/jwt"
	"social_backend/internal/shared/apperr"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockProfileUsecase struct {
	ViewFunc   func(ctx context.Context, userID string) (*entity.User, error)
	CreateFunc func(ctx context.Context, userID string, in usecase.ProfileInput) (*entity.User, error)
	EditFunc   func(ctx context.Context, userID string, in usecase.ProfileInput) (*entity.User, error)
}

func (m *mockProfileUsecase) View(ctx context.Context, userID string) (*entity.User, error) {
	return m.ViewFunc(ctx, userID)
}

func (m *mockProfileUsecase) Create(ctx context.Context, userID string, in usecase.ProfileInput) (*entity.User, error) {
	return m.CreateFunc(ctx, userID, in)
}

func (m *mockProfileUsecase) Edit(ctx context.Context, userID string, in usecase.ProfileInput) (*entity.User, error) {
	return m.EditFunc(ctx, userID, in)
}

var alice = jwtmw.Claims{ID: "u-1", Username: "alice123", Email: "alice@example.com"}

// serveAs は指定したクレームを設定したうえでハンドラーを呼び出します。
func serveAs(t *testing.T, claims *jwtmw.Claims, method string, handler gin.HandlerFunc, rawBody string) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	router.Handle(method, "/profile", func(c *gin.Context) {
		if claims != nil {
			c.Set(jwtmw.ContextClaims, *claims)
		}
		c.Next()
	}, handler)

	req, err := http.NewRequest(method, "/profile", bytes.NewBufferString(rawBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestProfileHandler_View(t *testing.T) {
	t.Run("success returns user without password", func(t *testing.T) {
		h := NewProfileHandler(&mockProfileUsecase{
			ViewFunc: func(ctx context.Context, userID string) (*entity.User, error) {
				assert.Equal(t, "u-1", userID)
				return &entity.User{ID: userID, Username: "alice123", Email: "alice@example.com", Password: "$2a$10$hash"}, nil
			},
		})

		w := serveAs(t, &alice, http.MethodGet, h.View, "")

		assert.Equal(t, http.StatusOK, w.Code)
		user, ok := decode(t, w)["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "alice123", user["username"])
		assert.NotContains(t, w.Body.String(), "$2a$")
	})

	t.Run("missing user is 404", func(t *testing.T) {
		h := NewProfileHandler(&mockProfileUsecase{
			ViewFunc: func(ctx context.Context, userID string) (*entity.User, error) {
				return nil, apperr.NotFound("User not found")
			},
		})

		w := serveAs(t, &alice, http.MethodGet, h.View, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", decode(t, w)["message"])
	})

	t.Run("no claims is 401", func(t *testing.T) {
		h := NewProfileHandler(&mockProfileUsecase{})

		w := serveAs(t, nil, http.MethodGet, h.View, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestProfileHandler_CreateAndEdit(t *testing.T) {
	dob := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	updated := &entity.User{ID: "u-1", Username: "alice123", FirstName: "Alice", LastName: "Smith", DOB: &dob}

	t.Run("create passes the body through", func(t *testing.T) {
		h := NewProfileHandler(&mockProfileUsecase{
			CreateFunc: func(ctx context.Context, userID string, in usecase.ProfileInput) (*entity.User, error) {
				require.NotNil(t, in.FirstName)
				require.NotNil(t, in.DOB)
				assert.Equal(t, "Alice", *in.FirstName)
				assert.Equal(t, "1990-05-17", *in.DOB)
				return updated, nil
			},
		})

		w := serveAs(t, &alice, http.MethodPost, h.Create, `{"firstName":"Alice","lastName":"Smith","dob":"1990-05-17"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		user, ok := decode(t, w)["updatedUser"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Smith", user["lastName"])
	})

	t.Run("edit keeps omitted fields nil", func(t *testing.T) {
		h := NewProfileHandler(&mockProfileUsecase{
			EditFunc: func(ctx context.Context, userID string, in usecase.ProfileInput) (*entity.User, error) {
				assert.Nil(t, in.FirstName)
				assert.Nil(t, in.DOB)
				require.NotNil(t, in.LastName)
				return updated, nil
			},
		})

		w := serveAs(t, &alice, http.MethodPut, h.Edit, `{"lastName":"Smith"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, decode(t, w), "updatedUser")
	})

	t.Run("validation error names the field", func(t *testing.T) {
		h := NewProfileHandler(&mockProfileUsecase{
			EditFunc: func(ctx context.Context, userID string, in usecase.ProfileInput) (*entity.User, error) {
				return nil, apperr.Validation("dob", "Not valid date of birth")
			},
		})

		w := serveAs(t, &alice, http.MethodPut, h.Edit, `{"dob":"2999-01-01"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, map[string]any{"title": "Validation Failed", "message": "Not valid date of birth", "field": "dob"}, decode(t, w))
	})

	t.Run("malformed JSON", func(t *testing.T) {
		h := NewProfileHandler(&mockProfileUsecase{})

		w := serveAs(t, &alice, http.MethodPost, h.Create, `{"firstName":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, MsgInvalidBody, decode(t, w)["message"])
	})
}
